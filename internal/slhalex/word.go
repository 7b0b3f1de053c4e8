package slhalex

import (
	"reflect"
	"strconv"

	"github.com/aledsdavies/slha/errors"
)

// Scalar is the set of word-parseable primitive types: signed and unsigned
// integers of every width, both float widths, and string.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// ParseWord parses a single word into T, dispatching on T's reflect.Kind so
// one implementation serves every scalar width.
func ParseWord[T Scalar](word string) (T, error) {
	var value T
	if err := setWordValue(reflect.ValueOf(&value).Elem(), word); err != nil {
		return value, err
	}
	return value, nil
}

func setWordValue(rv reflect.Value, word string) error {
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(word, 10, rv.Type().Bits())
		if err != nil {
			return errors.NewInvalidIntError(err)
		}
		rv.SetInt(n)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(word, 10, rv.Type().Bits())
		if err != nil {
			return errors.NewInvalidIntError(err)
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(word, rv.Type().Bits())
		if err != nil {
			return errors.NewInvalidFloatError(err)
		}
		rv.SetFloat(f)
	case reflect.String:
		rv.SetString(word)
	default:
		return errors.NewInvalidBlockValueError(nil)
	}
	return nil
}
