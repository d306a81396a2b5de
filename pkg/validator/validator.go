package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// IsValidationError reports whether err came from struct tag validation.
func IsValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Vui lòng nhập %s", field)
	case "email":
		return fmt.Sprintf("%s không hợp lệ", field)
	case "eqfield":
		return "Mật khẩu xác nhận không khớp"
	case "eq":
		if fe.Field() == "AcceptTerms" {
			return "Vui lòng đồng ý với điều khoản sử dụng"
		}
		return fmt.Sprintf("%s không hợp lệ", field)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s phải có ít nhất %s ký tự", field, fe.Param())
		}
		return fmt.Sprintf("%s tối thiểu là %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s tối đa %s ký tự", field, fe.Param())
		}
		return fmt.Sprintf("%s tối đa là %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s phải là một trong: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s không hợp lệ", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Name":            "họ tên",
		"Email":           "email",
		"Password":        "mật khẩu",
		"ConfirmPassword": "xác nhận mật khẩu",
		"AcceptTerms":     "điều khoản",
		"Avatar":          "ảnh đại diện",
		"Query":           "từ khóa",
		"Page":            "trang",
		"Limit":           "số lượng",
		"Filter":          "bộ lọc",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
