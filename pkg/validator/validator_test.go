package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	AcceptTerms     bool   `validate:"eq=true"`
}

func TestFormatValidationError(t *testing.T) {
	v := validator.New()

	err := v.Struct(registerForm{
		Name:            "A",
		Email:           "not-an-email",
		Password:        "123",
		ConfirmPassword: "456",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	msg := FormatValidationError(err)
	assert.Contains(t, msg, "email không hợp lệ")
	assert.Contains(t, msg, "mật khẩu phải có ít nhất 6 ký tự")
	assert.Contains(t, msg, "Mật khẩu xác nhận không khớp")
	assert.Contains(t, msg, "Vui lòng đồng ý với điều khoản sử dụng")
}

func TestFormatValidationError_Plain(t *testing.T) {
	err := errors.New("boom")
	assert.False(t, IsValidationError(err))
	assert.Equal(t, "boom", FormatValidationError(err))
}
