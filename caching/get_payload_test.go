package caching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/caching/mocks/business/payload_business"
	"encore.app/caching/model"
)

func TestGetPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := payload_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	testCases := []struct {
		name           string
		id             string
		mockReturn     *model.Payload
		mockError      error
		expectedOutput string
		expectedError  string
	}{
		{
			name: "successful_retrieval",
			id:   "a3f1c2d4e5b60718293a4b5c6d7e8f901234567890abcdef1234567890abcdef",
			mockReturn: &model.Payload{
				ID:     "a3f1c2d4e5b60718293a4b5c6d7e8f901234567890abcdef1234567890abcdef",
				Output: "FIRST STRING, OTHER STRING",
			},
			expectedOutput: "FIRST STRING, OTHER STRING",
		},
		{
			name:          "payload_not_found",
			id:            "unknown-id",
			mockError:     &errs.Error{Code: errs.NotFound, Message: "payload not found"},
			expectedError: "payload not found",
		},
		{
			name:          "storage_failure",
			id:            "some-id",
			mockError:     &errs.Error{Code: errs.Internal, Message: "failed to get payload"},
			expectedError: "failed to get payload",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockBusiness.EXPECT().
				GetPayload(gomock.Any(), tc.id).
				Return(tc.mockReturn, tc.mockError)

			response, err := service.GetPayload(context.Background(), tc.id)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.expectedOutput, response.Output)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	service := &Service{}

	response, err := service.Health(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "healthy", response.Status)
}
