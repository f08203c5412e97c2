package reverse

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

// ReverseValue reverses v with fn when v is text: a string, or a value whose
// underlying type is string. Anything else fails with ErrInvalidInputType
// before fn is called.
//
// This is the entry point for callers that only hold an interface{}, such as
// values decoded from an untyped payload.
func ReverseValue(fn Func, v interface{}) (string, error) {
	text, err := asText(v)
	if err != nil {
		return "", err
	}
	return fn(text), nil
}

// ReverseJSON decodes a single JSON value from data, reverses it with fn and
// returns the result encoded as a JSON string. Only JSON strings are text;
// numbers, booleans, null, arrays and objects fail with ErrInvalidInputType.
func ReverseJSON(fn Func, data []byte) ([]byte, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "failed to decode JSON value")
	}

	rev, err := ReverseValue(fn, v)
	if err != nil {
		return nil, err
	}

	out, err := json.Marshal(rev)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode reversed text")
	}
	return out, nil
}

func asText(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case nil:
		return "", errors.Wrap(ErrInvalidInputType, "got nil")
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return "", errors.Wrapf(ErrInvalidInputType, "got %T", v)
}
