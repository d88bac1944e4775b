package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&loginRequest{Email: "not-an-email"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "email", verrs[0].Field())
	assert.Equal(t, "email", verrs[0].Tag())
	assert.Equal(t, "password", verrs[1].Field())
	assert.Equal(t, "required", verrs[1].Tag())
}

func TestCustomValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&loginRequest{Email: "admin@email.com", Password: "pw"}))
}
