package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	letterRe = regexp.MustCompile(`[A-Za-z]`)
	digitRe  = regexp.MustCompile(`\d`)
	phoneRe  = regexp.MustCompile(`^[0-9]{11}$`)
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the clinic-specific rules: password policy, Pakistani
//   mobile numbers, and non-blank strings.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("pwd", passwordPolicy)
		_ = v.RegisterValidation("phone_pk", phoneNumber)
		_ = v.RegisterValidation("notblank", notBlank)
	}
}

// passwordPolicy: 8-128 chars, at least one letter, at least one digit, no spaces.
func passwordPolicy(fl validator.FieldLevel) bool {
	pwd := fl.Field().String()
	if len(pwd) < 8 || len(pwd) > 128 {
		return false
	}
	if strings.Contains(pwd, " ") {
		return false
	}
	return letterRe.MatchString(pwd) && digitRe.MatchString(pwd)
}

// phoneNumber: exactly 11 digits and starting with "03".
func phoneNumber(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return phoneRe.MatchString(v) && strings.HasPrefix(v, "03")
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// FieldError is one field-level violation reported back to the caller.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ToDetails converts validation/binding errors into an ordered list of
// field-level violations so the HTTP layer can surface all of them at once.
func ToDetails(err error) []FieldError {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) {
		return []FieldError{{Field: "payload", Message: "invalid json"}}
	}
	if errors.As(err, &ute) {
		field := ute.Field
		if field == "" {
			field = "payload"
		}
		return []FieldError{{Field: field, Message: "invalid type"}}
	}

	// Validation errors from validator.v10
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fe.Field(), Message: formatFieldError(fe)})
		}
		return out
	}

	// Fallback
	return []FieldError{{Field: "payload", Message: "invalid payload"}}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	kind := fe.Kind()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "len":
		if param != "" {
			return fmt.Sprintf("must be exactly %s characters long", param)
		}
		return "invalid length"
	case "min":
		if param != "" {
			if isNumberKind(kind) {
				return "must be at least " + param
			}
			return "must be at least " + param + " characters long"
		}
		return "too small"
	case "max":
		if param != "" {
			if isNumberKind(kind) {
				return "must be at most " + param
			}
			return "must be at most " + param + " characters long"
		}
		return "too large"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "dive":
		return "list validation failed"
	case "pwd":
		return "must be 8-128 characters with at least one letter, one number and no spaces"
	case "phone_pk":
		return "must be exactly 11 digits starting with '03'"
	case "notblank":
		return "cannot be empty"
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
