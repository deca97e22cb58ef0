package caching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/caching/mocks/business/payload_business"
)

func TestCreatePayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := payload_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	testCases := []struct {
		name           string
		request        *CreatePayloadRequest
		mockID         string
		mockCached     bool
		mockError      error
		expectedError  string
		expectSuccess  bool
	}{
		{
			name: "fresh_creation",
			request: &CreatePayloadRequest{
				List1: []string{"first string"},
				List2: []string{"other string"},
			},
			mockID:        "a3f1c2d4e5b60718293a4b5c6d7e8f901234567890abcdef1234567890abcdef",
			mockCached:    false,
			expectSuccess: true,
		},
		{
			name: "deduplicated_creation",
			request: &CreatePayloadRequest{
				List1: []string{"first string"},
				List2: []string{"other string"},
			},
			mockID:        "a3f1c2d4e5b60718293a4b5c6d7e8f901234567890abcdef1234567890abcdef",
			mockCached:    true,
			expectSuccess: true,
		},
		{
			name: "business_failure",
			request: &CreatePayloadRequest{
				List1: []string{"first string"},
				List2: []string{"other string"},
			},
			mockError:     assert.AnError,
			expectedError: assert.AnError.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockBusiness.EXPECT().
				CreatePayload(gomock.Any(), tc.request.List1, tc.request.List2).
				Return(tc.mockID, tc.mockCached, tc.mockError)

			response, err := service.CreatePayload(context.Background(), tc.request)

			if tc.expectSuccess {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.mockID, response.ID)
				assert.Equal(t, tc.mockCached, response.Cached)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			}
		})
	}
}

// TestCreatePayloadRequest_Validation tests the validation logic
func TestCreatePayloadRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *CreatePayloadRequest
		expectedError string
	}{
		{
			name: "valid_request",
			request: &CreatePayloadRequest{
				List1: []string{"a", "b"},
				List2: []string{"x", "y"},
			},
		},
		{
			name: "valid_single_element",
			request: &CreatePayloadRequest{
				List1: []string{"ONE"},
				List2: []string{"TWO"},
			},
		},
		{
			name: "empty_list1",
			request: &CreatePayloadRequest{
				List1: []string{},
				List2: []string{"x"},
			},
			expectedError: "List1",
		},
		{
			name: "empty_list2",
			request: &CreatePayloadRequest{
				List1: []string{"a"},
				List2: []string{},
			},
			expectedError: "List2",
		},
		{
			name: "missing_list2",
			request: &CreatePayloadRequest{
				List1: []string{"a"},
			},
			expectedError: "List2",
		},
		{
			name: "length_mismatch",
			request: &CreatePayloadRequest{
				List1: []string{"a", "b"},
				List2: []string{"x"},
			},
			expectedError: "list1 and list2 must have the same length",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}
