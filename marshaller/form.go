package marshaller

import (
	"fmt"
	"net/url"

	"github.com/theepicsaxguy/Mastowatch-sub001/json"
	"github.com/tidwall/gjson"
)

// FormValues encodes v as a JSON object and flattens it into form values with the rules used for
// query parameters: an array of scalars repeats its bare key once per element. Nested objects
// become key[field], and objects inside arrays are indexed as key[i][field]. Null values are left
// out.
func FormValues(v any) (url.Values, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	fields, err := json.RawFields(data)
	if err != nil {
		return nil, err
	}

	out := url.Values{}
	for key, raw := range fields.All() {
		if err := addFormValue(out, key, gjson.ParseBytes(raw)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func addFormValue(out url.Values, key string, r gjson.Result) error {
	switch {
	case r.Type == gjson.Null:
		return nil
	case r.IsArray():
		for i, item := range r.Array() {
			itemKey := key
			if item.IsObject() || item.IsArray() {
				itemKey = fmt.Sprintf("%s[%d]", key, i)
			}
			if err := addFormValue(out, itemKey, item); err != nil {
				return err
			}
		}
	case r.IsObject():
		var err error
		r.ForEach(func(k, v gjson.Result) bool {
			err = addFormValue(out, fmt.Sprintf("%s[%s]", key, k.Str), v)
			return err == nil
		})
		return err
	case r.Type == gjson.String:
		out.Add(key, r.Str)
	case r.Type == gjson.Number, r.Type == gjson.True, r.Type == gjson.False:
		out.Add(key, r.Raw)
	default:
		return fmt.Errorf("form field %s: unsupported JSON value %q", key, r.Raw)
	}

	return nil
}
