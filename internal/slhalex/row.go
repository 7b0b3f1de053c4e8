package slhalex

import (
	"reflect"
	"strings"

	"github.com/aledsdavies/slha/errors"
)

// WordCount reports how many words a value of type T consumes from a row,
// and whether that count is fixed. Slice types are unbounded (consume
// whatever is left); struct types consume one word per field; everything
// else consumes exactly one word.
func WordCount[T any]() (n int, fixed bool) {
	var zero T
	return wordCount(reflect.TypeOf(zero))
}

func wordCount(t reflect.Type) (int, bool) {
	if t == nil {
		return 1, true
	}
	switch t.Kind() {
	case reflect.Slice:
		return 0, false
	case reflect.Struct:
		return t.NumField(), true
	default:
		return 1, true
	}
}

// ParseValue parses T from the front of words, returning the unconsumed
// remainder. T may be a struct (fixed-arity tuple, one word per field), a
// slice (consumes every remaining word) or a scalar (consumes one word).
func ParseValue[T any](words []string) (T, []string, error) {
	var value T
	rest, err := parseValueReflect(reflect.ValueOf(&value).Elem(), words)
	return value, rest, err
}

// ParseValueStrict is ParseValue but additionally requires every word to be
// consumed.
func ParseValueStrict[T any](words []string) (T, error) {
	value, rest, err := ParseValue[T](words)
	if err != nil {
		return value, err
	}
	if len(rest) != 0 {
		return value, errors.NewIncompleteParseError(rest)
	}
	return value, nil
}

func parseValueReflect(rv reflect.Value, words []string) ([]string, error) {
	switch rv.Kind() {
	case reflect.Slice:
		elemType := rv.Type().Elem()
		slice := reflect.MakeSlice(rv.Type(), 0, len(words))
		for _, w := range words {
			elem := reflect.New(elemType).Elem()
			if err := setWordValue(elem, w); err != nil {
				return nil, err
			}
			slice = reflect.Append(slice, elem)
		}
		rv.Set(slice)
		return nil, nil

	case reflect.Struct:
		n := rv.NumField()
		if len(words) < n {
			return nil, errors.NewUnexpectedEolError()
		}
		for i := 0; i < n; i++ {
			if err := setWordValue(rv.Field(i), words[i]); err != nil {
				return nil, err
			}
		}
		return words[n:], nil

	default:
		if len(words) < 1 {
			return nil, errors.NewUnexpectedEolError()
		}
		if err := setWordValue(rv, words[0]); err != nil {
			return nil, err
		}
		return words[1:], nil
	}
}

// SplitStrKey recovers the ordered word list behind a BlockStr canonical key
// (see the Go adaptation note in SPEC_FULL.md section 3: []string cannot be
// a map key, so BlockStr joins the key words with a single space).
func SplitStrKey(key string) []string {
	return strings.Fields(key)
}
