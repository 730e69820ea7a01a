package setupsdk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		code   string
	}{
		{"json body", http.StatusConflict, `{"error":"duplicate_name","error_description":"taken"}`, ErrorCodeDuplicateName},
		{"bearer challenge", http.StatusUnauthorized, ``, ErrorCodeInvalidToken},
		{"scope text", http.StatusForbidden, `insufficient_scope`, ErrorCodeInsufficientScope},
		{"unknown", http.StatusBadGateway, `<html>`, ErrorCodeServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseErrorResponse(&http.Response{StatusCode: tt.status}, []byte(tt.body))
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.code, apiErr.Code)
			require.Equal(t, tt.status, apiErr.StatusCode)
		})
	}

	t.Run("success is nil", func(t *testing.T) {
		require.NoError(t, parseErrorResponse(&http.Response{StatusCode: http.StatusOK}, nil))
	})
}

func TestSessionSendsBearerAndDetails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "/v1/games", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"validation_error","error_description":"invalid game","details":{"name":"Name is required."}}`))
	}))
	defer srv.Close()

	s := NewSDKClient(srv.URL + "/").NewSessionFromToken("tok")
	_, err := s.CreateGame(context.Background(), CreateGameRequest{})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, ErrorCodeValidation, apiErr.Code)
	require.Equal(t, "Name is required.", apiErr.Details["name"])
}

func TestRolePathEscapes(t *testing.T) {
	t.Parallel()
	require.Equal(t, "/v1/roles/Dream%20Wolf/increment", rolePath("Dream Wolf", "/increment"))
}
