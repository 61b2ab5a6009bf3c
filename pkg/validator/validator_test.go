package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type address struct {
	State string `json:"state" validate:"required"`
}

type sample struct {
	Name    string  `json:"name" validate:"required,min=2"`
	Email   string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string  `json:"phone" validate:"required,ngphone"`
	Address address `json:"address"`
}

func TestValidate_ReportsEveryField(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Email: "nope", Phone: "12345"})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	require.Equal(t, map[string]string{
		"name":          "name is required",
		"email":         "email must be a valid email address",
		"phone":         "phone must be a valid Nigerian phone number",
		"address.state": "address.state is required",
	}, fields)
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Name: "Ada", Phone: "+2348012345678", Address: address{State: "Lagos"}})
	require.NoError(t, err)
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	v := NewValidator()
	require.Empty(t, v.FormatValidationErrors(nil))
}
