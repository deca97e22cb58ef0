package payload

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/caching/domain"
	"encore.app/caching/mocks/business/transform_business"
	"encore.app/caching/mocks/cache/output_cache"
	"encore.app/caching/mocks/repository/payload_repo"
	"encore.app/caching/repository/payloads"
)

// runAsyncSynchronously makes fire-and-forget operations execute inline so
// mock expectations are checked deterministically.
func runAsyncSynchronously(t *testing.T) {
	t.Helper()
	prev := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) {
		_ = fn(context.Background())
	}
	t.Cleanup(func() { runAsync = prev })
}

func uppercaseAll(values []string) []string {
	results := make([]string, 0, len(values))
	for _, v := range values {
		results = append(results, strings.ToUpper(v))
	}
	return results
}

func TestCreatePayloadFreshCreation(t *testing.T) {
	runAsyncSynchronously(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := payload_repo.NewMockQuerier(ctrl)
	mockTransform := transform_business.NewMockBusiness(ctrl)
	mockOutputs := output_cache.NewMockStore(ctrl)
	business := &business{payloadRepo: mockRepo, transform: mockTransform, outputs: mockOutputs}

	list1 := []string{"first string", "second string", "third string"}
	list2 := []string{"other string", "another string", "last string"}
	expectedID := domain.CanonicalHash(list1, list2)
	expectedOutput := "FIRST STRING, OTHER STRING, SECOND STRING, ANOTHER STRING, THIRD STRING, LAST STRING"

	mockRepo.EXPECT().
		GetPayload(gomock.Any(), expectedID).
		Return(payloads.Payload{}, pgx.ErrNoRows)
	mockTransform.EXPECT().
		TransformStrings(gomock.Any(), append(append([]string{}, list1...), list2...)).
		DoAndReturn(func(_ context.Context, values []string) ([]string, int, error) {
			return uppercaseAll(values), 0, nil
		})
	mockRepo.EXPECT().
		CreatePayload(gomock.Any(), payloads.CreatePayloadParams{
			ID:        expectedID,
			InputHash: expectedID,
			List1:     `["first string","second string","third string"]`,
			List2:     `["other string","another string","last string"]`,
			Output:    expectedOutput,
		}).
		Return(payloads.Payload{ID: expectedID}, nil)
	mockOutputs.EXPECT().
		Set(gomock.Any(), expectedID, expectedOutput).
		Return(nil)

	id, cached, err := business.CreatePayload(context.Background(), list1, list2)

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
	assert.False(t, cached)
}

func TestCreatePayloadReturnsExistingWithoutRecomputation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := payload_repo.NewMockQuerier(ctrl)
	mockTransform := transform_business.NewMockBusiness(ctrl)
	mockOutputs := output_cache.NewMockStore(ctrl)
	business := &business{payloadRepo: mockRepo, transform: mockTransform, outputs: mockOutputs}

	list1 := []string{"a"}
	list2 := []string{"b"}
	expectedID := domain.CanonicalHash(list1, list2)

	// No transform and no insert may happen on a dedup hit.
	mockRepo.EXPECT().
		GetPayload(gomock.Any(), expectedID).
		Return(payloads.Payload{ID: expectedID}, nil)

	id, cached, err := business.CreatePayload(context.Background(), list1, list2)

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
	assert.True(t, cached)
}

func TestCreatePayloadRecoversFromInsertRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := payload_repo.NewMockQuerier(ctrl)
	mockTransform := transform_business.NewMockBusiness(ctrl)
	mockOutputs := output_cache.NewMockStore(ctrl)
	business := &business{payloadRepo: mockRepo, transform: mockTransform, outputs: mockOutputs}

	list1 := []string{"a"}
	list2 := []string{"b"}
	expectedID := domain.CanonicalHash(list1, list2)

	mockRepo.EXPECT().
		GetPayload(gomock.Any(), expectedID).
		Return(payloads.Payload{}, pgx.ErrNoRows)
	mockTransform.EXPECT().
		TransformStrings(gomock.Any(), []string{"a", "b"}).
		Return([]string{"A", "B"}, 0, nil)
	mockRepo.EXPECT().
		CreatePayload(gomock.Any(), gomock.Any()).
		Return(payloads.Payload{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation})

	id, cached, err := business.CreatePayload(context.Background(), list1, list2)

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
	assert.True(t, cached)
}

func TestCreatePayloadErrors(t *testing.T) {
	testCases := []struct {
		name              string
		mockLookupError   error
		mockTransformErr  error
		mockInsertError   error
		expectedError     string
		expectTransform   bool
		expectInsertCall  bool
	}{
		{
			name:            "lookup_failure",
			mockLookupError: assert.AnError,
			expectedError:   "failed to look up payload",
		},
		{
			name:             "transform_failure",
			mockLookupError:  pgx.ErrNoRows,
			mockTransformErr: assert.AnError,
			expectedError:    assert.AnError.Error(),
			expectTransform:  true,
		},
		{
			name:             "insert_failure",
			mockLookupError:  pgx.ErrNoRows,
			mockInsertError:  assert.AnError,
			expectedError:    "failed to create payload",
			expectTransform:  true,
			expectInsertCall: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := payload_repo.NewMockQuerier(ctrl)
			mockTransform := transform_business.NewMockBusiness(ctrl)
			mockOutputs := output_cache.NewMockStore(ctrl)
			business := &business{payloadRepo: mockRepo, transform: mockTransform, outputs: mockOutputs}

			list1 := []string{"a"}
			list2 := []string{"b"}

			mockRepo.EXPECT().
				GetPayload(gomock.Any(), gomock.Any()).
				Return(payloads.Payload{}, tc.mockLookupError)

			if tc.expectTransform {
				mockTransform.EXPECT().
					TransformStrings(gomock.Any(), []string{"a", "b"}).
					DoAndReturn(func(_ context.Context, values []string) ([]string, int, error) {
						if tc.mockTransformErr != nil {
							return nil, 0, tc.mockTransformErr
						}
						return uppercaseAll(values), 0, nil
					})
			}

			if tc.expectInsertCall {
				mockRepo.EXPECT().
					CreatePayload(gomock.Any(), gomock.Any()).
					Return(payloads.Payload{}, tc.mockInsertError)
			}

			id, cached, err := business.CreatePayload(context.Background(), list1, list2)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
			assert.Empty(t, id)
			assert.False(t, cached)
		})
	}
}
