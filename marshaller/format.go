package marshaller

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/theepicsaxguy/Mastowatch-sub001/json"
)

// FormatValue renders a scalar the way it is sent in a query string, a url-encoded form or a
// text part: strings and string enums as-is, booleans as true or false, numbers in decimal,
// times as RFC 3339 and anything implementing encoding.TextMarshaler through that. Any other
// value is JSON encoded.
func FormatValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case time.Time:
		return t.Format(time.RFC3339), nil
	case json.Number:
		return t.String(), nil
	case encoding.TextMarshaler:
		text, err := t.MarshalText()
		if err != nil {
			return "", err
		}
		return string(text), nil
	case fmt.Stringer:
		return t.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits()), nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
