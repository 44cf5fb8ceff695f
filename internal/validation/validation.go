// Package validation decodes JSON request bodies and checks them against the
// struct `validate` tags of the target payload type.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is matched by every validation failure.
var ErrValidation = errors.New("validation error")

// Error describes the first constraint a payload violated.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *Error) Unwrap() error {
	return ErrValidation
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// DecodeJSON decodes a JSON object from r into dst. An empty body decodes as
// an empty object. Malformed JSON and wrong value types yield *Error.
func DecodeJSON(r io.Reader, dst any) error {
	err := json.NewDecoder(r).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return &Error{Reason: "request body must be a JSON object"}
		}
		return &Error{Field: typeErr.Field, Reason: "must be " + jsonKind(typeErr.Type)}
	}

	return &Error{Reason: fmt.Sprintf("invalid JSON body: %v", err)}
}

// Struct validates v against its `validate` tags and returns the first
// violation as *Error.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &Error{Reason: err.Error()}
	}

	fe := fieldErrs[0]
	return &Error{Field: fe.Field(), Reason: reason(fe)}
}

// Decode is DecodeJSON followed by Struct.
func Decode(r io.Reader, dst any) error {
	if err := DecodeJSON(r, dst); err != nil {
		return err
	}
	return Struct(dst)
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "datetime":
		return "must be a valid date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed on the %q constraint", fe.Tag())
	}
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}
