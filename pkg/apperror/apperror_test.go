package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NewNotFound("profile", "42"), http.StatusNotFound},
		{NewInvalidInput("File must be an image", nil), http.StatusBadRequest},
		{NewUnauthorized("bad token", nil), http.StatusUnauthorized},
		{NewPermissionDenied("ownerID not found in context"), http.StatusForbidden},
		{NewConflict("user", "email", "a@b.c"), http.StatusConflict},
		{NewTooLarge("avatar exceeds 5 MiB"), http.StatusRequestEntityTooLarge},
		{NewInternal("boom", errors.New("db down")), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NewNotFound("user", "x")), http.StatusNotFound},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToHTTPStatus(tt.err), tt.err.Error())
	}
}

func TestAppError_MessageAndJSON(t *testing.T) {
	err := NewInternal("failed to upsert profile", errors.New("conn reset"))
	assert.Contains(t, err.Error(), "conn reset")
	assert.ErrorIs(t, err, ErrInternal)

	body := NewInvalidInput("File must be an image", nil).ToJSON()
	assert.Equal(t, "invalid input", body["error"])
	assert.Equal(t, "File must be an image", body["details"])
}
