// Package errors provides the error taxonomy shared by the client, the codecs and every endpoint.
//
// Sentinel errors are string constants of type Error so they can be compared with Is and
// wrapped with a cause. The two structured kinds are UnexpectedStatusError, returned for
// undocumented status codes when the client asks for it, and DecodeError, returned when a
// documented response body does not decode as its declared variant.
package errors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrSeperator is used to seperate the message from the cause in the error message
const ErrSeperator = " -- "

const (
	// ErrMissingRequiredField is returned when a model is decoded from an object missing a required key.
	ErrMissingRequiredField Error = "missing required field"
	// ErrInvalidEnumValue is returned when a string is not one of the declared enum members.
	ErrInvalidEnumValue Error = "invalid enum value"
	// ErrNoVariantMatched is returned when no variant of a union decodes the input.
	ErrNoVariantMatched Error = "no union variant matched"
	// ErrInvalidJSON is returned when a payload is not well-formed JSON.
	ErrInvalidJSON Error = "invalid JSON"
	// ErrNotJSONObject is returned when a model is decoded from something other than a JSON object.
	ErrNotJSONObject Error = "expected a JSON object"
	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate Error = "invalid date"
	// ErrMissingToken is returned when an authenticated client is built without a token.
	ErrMissingToken Error = "missing access token"
	// ErrInvalidConfig is returned when a client configuration cannot be used.
	ErrInvalidConfig Error = "invalid client configuration"
)

// Error provides a string based error type allowing the definition of const errors in packages
type Error string

func (s Error) Error() string {
	return string(s)
}

// Is checks if targer error is equivelant to Error
func (s Error) Is(target error) bool {
	return s.Error() == target.Error() || strings.HasPrefix(target.Error(), s.Error()+ErrSeperator)
}

// As will set target errors value to equal Error if they are equivelant
func (s Error) As(target interface{}) bool {
	v := reflect.ValueOf(target).Elem()
	if v.Type().Name() == "Error" && v.CanSet() {
		v.SetString(string(s))
		return true
	}
	return false
}

// Wrap will add the provided error as a cause for this Error and return the wrapped error
func (s Error) Wrap(err error) error {
	return wrappedError{cause: err, msg: string(s)}
}

type wrappedError struct {
	cause error
	msg   string
}

func (w wrappedError) Error() string {
	if w.cause != nil {
		return fmt.Sprintf("%s%s%v", w.msg, ErrSeperator, w.cause)
	}
	return w.msg
}

func (w wrappedError) Is(target error) bool {
	return Error(w.msg).Is(target)
}

func (w wrappedError) As(target interface{}) bool {
	return Error(w.msg).As(target)
}

func (w wrappedError) Unwrap() error {
	return w.cause
}

// UnexpectedStatusError is returned when a server answers with a status code the endpoint does not
// document and the client was configured to raise on unexpected statuses.
type UnexpectedStatusError struct {
	StatusCode int
	Content    []byte
}

var _ error = (*UnexpectedStatusError)(nil)

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d\n\nResponse content:\n%s", e.StatusCode, strings.ToValidUTF8(string(e.Content), ""))
}

// DecodeError is returned when a documented response body fails to decode as the variant declared for its status.
type DecodeError struct {
	Operation  string
	StatusCode int
	Err        error
}

var _ error = (*DecodeError)(nil)

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding %d response: %v", e.Operation, e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// The below are just wrappers as we are stealing the namespace of the errors package

// Is checks if err is equivelant to target
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As will set target errors value to equal Error if they are equivelant
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns a new error with the specified message.
func New(message string) error {
	return errors.New(message)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

type JoinedErrors interface {
	Unwrap() []error
}

func UnwrapErrors(err error) []error {
	if err == nil {
		return nil
	}

	if je, ok := err.(JoinedErrors); ok {
		return je.Unwrap()
	}
	return []error{err}
}
