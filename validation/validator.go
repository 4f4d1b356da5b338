// Package validation checks encoded models against JSON Schemas of the Mastodon API components.
//
// The schemas are embedded and compiled once. Each named schema is a definition in the
// embedded document, so a model is validated with its entity name:
//
//	errs := validation.Validate("Account", account)
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	_ "embed"

	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"github.com/theepicsaxguy/Mastowatch-sub001/json"
)

//go:embed schemas/mastodon.schema.json
var mastodonSchemaJSON []byte

const schemaURL = "https://schemas.mastowatch.dev/mastodon.schema.json"

var (
	compiled    map[string]*jsValidator.Schema
	names       []string
	compileErr  error
	compileOnce sync.Once
)

// Schemas returns the names of the embedded schemas, sorted.
func Schemas() ([]string, error) {
	if err := initValidation(); err != nil {
		return nil, err
	}
	return slices.Clone(names), nil
}

// Validate encodes model as JSON and validates it against the named schema. It returns every
// violation found, or a single error when the model cannot be encoded or the schema is unknown.
func Validate(schema string, model any, opts ...Option) []error {
	if err := initValidation(); err != nil {
		return []error{err}
	}

	s, ok := compiled[schema]
	if !ok {
		return []error{fmt.Errorf("unknown schema %q", schema)}
	}

	data, err := json.Marshal(model)
	if err != nil {
		return []error{fmt.Errorf("encoding %s: %w", schema, err)}
	}

	return validateDocument(schema, s, data, NewOptions(opts...))
}

// ValidateJSON validates an already encoded document against the named schema.
func ValidateJSON(schema string, data []byte, opts ...Option) []error {
	if err := initValidation(); err != nil {
		return []error{err}
	}

	s, ok := compiled[schema]
	if !ok {
		return []error{fmt.Errorf("unknown schema %q", schema)}
	}

	return validateDocument(schema, s, data, NewOptions(opts...))
}

func validateDocument(name string, s *jsValidator.Schema, data []byte, o *Options) []error {
	doc, err := jsValidator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return []error{&Error{
			Rule:            RuleValidationInvalidSyntax,
			Schema:          name,
			UnderlyingError: fmt.Errorf("document is not valid json: %w", err),
		}}
	}

	err = s.Validate(doc)
	if err == nil {
		return nil
	}

	var validationErr *jsValidator.ValidationError
	if !errors.As(err, &validationErr) {
		return []error{err}
	}

	errs := getRootCauses(name, validationErr, o)
	SortValidationErrors(errs)
	return errs
}

func getRootCauses(name string, err *jsValidator.ValidationError, o *Options) []error {
	if len(err.Causes) == 0 {
		return []error{newError(name, err, o)}
	}

	errs := []error{}
	for _, cause := range err.Causes {
		errs = append(errs, getRootCauses(name, cause, o)...)
	}
	return errs
}

func newError(name string, cause *jsValidator.ValidationError, o *Options) *Error {
	rule := RuleValidationInvalidValue
	switch cause.ErrorKind.(type) {
	case *kind.Type:
		rule = RuleValidationTypeMismatch
	case *kind.Required:
		rule = RuleValidationRequiredField
	case *kind.Enum, *kind.Const:
		rule = RuleValidationAllowedValues
	case *kind.Format:
		rule = RuleValidationInvalidFormat
	}

	location := ""
	if len(cause.InstanceLocation) > 0 {
		location = "/" + strings.Join(cause.InstanceLocation, "/")
	}

	return &Error{
		Rule:            rule,
		Schema:          name,
		Location:        location,
		UnderlyingError: errors.New(cause.ErrorKind.LocalizedString(o.Printer)),
	}
}

func initValidation() error {
	compileOnce.Do(func() {
		doc, err := jsValidator.UnmarshalJSON(bytes.NewReader(mastodonSchemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parsing embedded schemas: %w", err)
			return
		}

		defs, err := definitionNames(mastodonSchemaJSON)
		if err != nil {
			compileErr = err
			return
		}

		c := jsValidator.NewCompiler()
		c.AssertFormat()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = err
			return
		}

		compiled = make(map[string]*jsValidator.Schema, len(defs))
		for _, def := range defs {
			s, err := c.Compile(schemaURL + "#/$defs/" + def)
			if err != nil {
				compileErr = fmt.Errorf("compiling schema %s: %w", def, err)
				return
			}
			compiled[def] = s
		}

		names = defs
		slices.Sort(names)
	})

	return compileErr
}

func definitionNames(data []byte) ([]string, error) {
	fields, err := json.RawFields(data)
	if err != nil {
		return nil, err
	}

	raw, ok := fields.Get("$defs")
	if !ok {
		return nil, errors.New("embedded schema document has no $defs")
	}

	defs, err := json.RawFields(raw)
	if err != nil {
		return nil, err
	}

	return slices.Collect(defs.Keys()), nil
}
