// Package marshaller implements the wire codecs shared by every model: JSON objects with an
// open set of additional properties, and multipart/form-data request bodies.
//
// Models declare their fields as ordinary tagged struct fields and keep unknown keys in an
// AdditionalProperties bag. Their MarshalJSON and UnmarshalJSON methods convert to a local
// method-less type and delegate here:
//
//	func (a *Account) UnmarshalJSON(data []byte) error {
//		type account Account
//		return marshaller.Unmarshal(data, (*account)(a), &a.AdditionalProperties)
//	}
//
// A field is required when its json tag carries neither omitempty nor omitzero.
package marshaller

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"github.com/theepicsaxguy/Mastowatch-sub001/json"
	"github.com/theepicsaxguy/Mastowatch-sub001/sequencedmap"
)

// AdditionalProperties holds the keys of a JSON object that a model does not declare, in the order
// they were received or added.
type AdditionalProperties = *sequencedmap.Map[string, any]

type modelFields struct {
	name     string
	known    map[string]struct{}
	required []string
}

var fieldCache sync.Map

// Unmarshal decodes the JSON object in data into model, which must be a pointer to a struct
// without its own UnmarshalJSON method. Required keys must be present, although they may be null
// where the field allows it. Keys the struct does not declare are stored in additional, which is
// left nil when there are none.
func Unmarshal(data []byte, model any, additional *AdditionalProperties) error {
	fields := getModelFields(reflect.TypeOf(model))

	raw, err := json.RawFields(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", fields.name, err)
	}

	for _, key := range fields.required {
		if !raw.Has(key) {
			return errors.ErrMissingRequiredField.Wrap(fmt.Errorf("%s.%s", fields.name, key))
		}
	}

	if err := json.Unmarshal(data, model); err != nil {
		return fmt.Errorf("decoding %s: %w", fields.name, err)
	}

	var extra AdditionalProperties
	for key, value := range raw.All() {
		if _, ok := fields.known[key]; ok {
			continue
		}

		decoded, err := json.Decode(value)
		if err != nil {
			return fmt.Errorf("decoding %s.%s: %w", fields.name, key, err)
		}

		if extra == nil {
			extra = sequencedmap.New[string, any]()
		}
		extra.Set(key, decoded)
	}

	*additional = extra
	return nil
}

// Marshal encodes model, a struct value without its own MarshalJSON method, as a JSON object and
// merges additional into it. An additional key that matches a declared key replaces that key's
// value in place, other keys are appended in order.
func Marshal(model any, additional AdditionalProperties) ([]byte, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return nil, err
	}

	if additional.Len() == 0 {
		return data, nil
	}

	fields, err := json.RawFields(data)
	if err != nil {
		return nil, err
	}

	for key, value := range additional.All() {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding additional property %s: %w", key, err)
		}
		fields.Set(key, encoded)
	}

	return fields.MarshalJSON()
}

// IsRequired reports whether the JSON key is required on the given model type.
func IsRequired(model any, key string) bool {
	return slices.Contains(getModelFields(reflect.TypeOf(model)).required, key)
}

func getModelFields(typ reflect.Type) *modelFields {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if cached, ok := fieldCache.Load(typ); ok {
		return cached.(*modelFields)
	}

	fields := &modelFields{
		name:  typ.Name(),
		known: map[string]struct{}{},
	}
	if typ.Kind() == reflect.Struct {
		collectFields(typ, fields)
	}

	actual, _ := fieldCache.LoadOrStore(typ, fields)
	return actual.(*modelFields)
}

func collectFields(typ reflect.Type, fields *modelFields) {
	for i := range typ.NumField() {
		field := typ.Field(i)

		tag, hasTag := field.Tag.Lookup("json")
		if tag == "-" {
			continue
		}

		if field.Anonymous && !hasTag {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				collectFields(embedded, fields)
				continue
			}
		}

		if !field.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}

		fields.known[name] = struct{}{}

		optional := slices.ContainsFunc(strings.Split(opts, ","), func(opt string) bool {
			return opt == "omitempty" || opt == "omitzero"
		})
		if !optional {
			fields.required = append(fields.required, name)
		}
	}
}
