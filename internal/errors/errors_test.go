package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "company"}
		assert.Equal(t, "company not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "company"}
		err2 := &NotFoundError{Entity: "company"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrCompanyNotFound, ErrTaskNotFound))
		assert.False(t, errors.Is(ErrCompanyNotFound, ErrResourceNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("authorize company: %w", ErrResourceNotFound)
		assert.True(t, errors.Is(wrapped, ErrResourceNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTaskNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrResourceNotFound)))
		assert.False(t, IsNotFound(ErrUserExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this username or email", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name", "is required")))
		assert.False(t, IsValidation(ErrCompanyNotFound))
	})
}

func TestAuthenticationErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(ErrUnauthenticated))
	assert.False(t, errors.Is(ErrInvalidCredentials, ErrUnauthenticated))
	assert.Equal(t, "invalid email or password", ErrInvalidCredentials.Error())
	assert.False(t, IsAuthentication(ErrUserNotFound))
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("unsupported session store %q", "redis")
	assert.Equal(t, `unsupported session store "redis"`, err.Error())
	assert.True(t, IsConfiguration(fmt.Errorf("config validation failed: %w", err)))
	assert.False(t, IsConfiguration(errors.New("plain")))
}

func TestFromValidator(t *testing.T) {
	type request struct {
		Email string `validate:"required,email"`
		Name  string `validate:"max=3"`
	}
	v := validator.New()

	t.Run("required field", func(t *testing.T) {
		err := FromValidator(v.Struct(&request{}))
		assert.True(t, IsValidation(err))
		assert.Equal(t, "validation error: email - is required", err.Error())
	})

	t.Run("max length", func(t *testing.T) {
		err := FromValidator(v.Struct(&request{Email: "a@b.co", Name: "toolong"}))
		assert.Equal(t, "validation error: name - must be at most 3 characters", err.Error())
	})

	t.Run("other errors pass through", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Same(t, plain, FromValidator(plain))
	})
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("name", "is required"), http.StatusBadRequest},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized},
		{"plain not found", ErrCompanyNotFound, http.StatusNotFound},
		{"user gone", ErrUserNotFound, http.StatusNotFound},
		{"collapsed not found", fmt.Errorf("authorize: %w", ErrResourceNotFound), http.StatusNotFound},
		{"conflict", ErrUserExists, http.StatusConflict},
		{"unknown", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
