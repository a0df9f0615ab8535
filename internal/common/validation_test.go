package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestValidatorCollectsAllFailures(t *testing.T) {
	v := NewValidator().
		Field("name", "  ", Required).
		Field("profile_id", "not-a-uuid", Required, UUID).
		Field("currency", "eur", CurrencyCode)

	require.True(t, v.HasErrors())
	msg := v.ErrorMessage()
	assert.Contains(t, msg, `field "name"`)
	assert.Contains(t, msg, "must be a valid UUID")
	assert.Contains(t, msg, "ISO 4217")
}

func TestValidatorPasses(t *testing.T) {
	v := NewValidator().
		Field("name", "Acme", Required).
		Field("profile_id", uuid.New().String(), Required, UUID).
		Field("currency", "EUR", CurrencyCode)

	assert.False(t, v.HasErrors())
	assert.Empty(t, v.ErrorMessage())
	assert.NoError(t, ValidateAndReturnError(v))
}

func TestValidateAndReturnErrorStatusCode(t *testing.T) {
	v := NewValidator().Field("name", "", Required)

	err := ValidateAndReturnError(v)
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestRequiredNilPointer(t *testing.T) {
	var s *string
	assert.NotNil(t, Required("note", s))
	assert.NotNil(t, Required("note", nil))

	val := "x"
	assert.Nil(t, Required("note", &val))
}
