package http

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "github.com/AlibekovAA/book-reviews/backend/internal/common/errors"
)

type credentialsPayload struct {
	Username string `json:"username" validate:"required,max=8"`
	Password string `json:"password" validate:"required"`
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.NoError(t, ValidateStruct(credentialsPayload{Username: "alice", Password: "pw1"}))
}

func TestValidateStruct_MissingFields(t *testing.T) {
	err := ValidateStruct(credentialsPayload{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, commonerrors.ErrValidation))

	de, ok := commonerrors.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, 400, de.HTTPStatus())
	assert.Contains(t, de.Message(), "username is required")
	assert.Contains(t, de.Message(), "password is required")
}

func TestValidateStruct_MaxLength(t *testing.T) {
	err := ValidateStruct(credentialsPayload{Username: strings.Repeat("a", 9), Password: "pw"})
	require.Error(t, err)

	de, ok := commonerrors.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, "username must be at most 8 characters", de.Message())
}
