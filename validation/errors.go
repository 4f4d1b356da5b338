package validation

import "fmt"

// Error is a single schema violation found in an encoded model.
type Error struct {
	// Rule classifies the violation, one of the RuleValidation constants.
	Rule string
	// Schema is the name of the schema that was violated.
	Schema string
	// Location is the JSON pointer of the offending value within the document.
	Location        string
	UnderlyingError error
}

func (e *Error) Error() string {
	location := e.Location
	if location == "" {
		location = "/"
	}
	return fmt.Sprintf("[%s] %s %s", location, e.Schema, e.UnderlyingError.Error())
}

func (e *Error) Unwrap() error {
	return e.UnderlyingError
}
