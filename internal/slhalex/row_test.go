package slhalex_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/slha/errors"
	"github.com/aledsdavies/slha/internal/slhalex"
)

func TestParseWordScalars(t *testing.T) {
	i8, err := slhalex.ParseWord[int8]("3")
	if err != nil || i8 != 3 {
		t.Fatalf("ParseWord[int8](3) = (%v, %v)", i8, err)
	}

	f64, err := slhalex.ParseWord[float64]("8.88194465e-01")
	if err != nil || f64 != 8.88194465e-01 {
		t.Fatalf("ParseWord[float64] = (%v, %v)", f64, err)
	}

	_, err = slhalex.ParseWord[int8]("not-a-number")
	if !errors.Is(err, errors.KindInvalidInt) {
		t.Fatalf("expected KindInvalidInt, got %v", err)
	}
}

func TestParseValueTuple(t *testing.T) {
	type key = slhalex.Tuple2[int8, int8]
	value, rest, err := slhalex.ParseValue[key](strings.Fields("3 3 8.88194465e-01"))
	if err != nil {
		t.Fatalf("ParseValue: %v", err)
	}
	if diff := cmp.Diff(key{V1: 3, V2: 3}, value); diff != "" {
		t.Fatalf("tuple mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"8.88194465e-01"}, rest); diff != "" {
		t.Fatalf("rest mismatch (-want +got):\n%s", diff)
	}
}

func TestParseValueStrictSlice(t *testing.T) {
	value, err := slhalex.ParseValueStrict[[]int64](strings.Fields("5 24"))
	if err != nil {
		t.Fatalf("ParseValueStrict: %v", err)
	}
	if diff := cmp.Diff([]int64{5, 24}, value); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseValueStrictIncompleteParse(t *testing.T) {
	_, err := slhalex.ParseValueStrict[int8](strings.Fields("3 3"))
	if !errors.Is(err, errors.KindIncompleteParse) {
		t.Fatalf("expected KindIncompleteParse, got %v", err)
	}
}

func TestParseValueUnexpectedEol(t *testing.T) {
	type key = slhalex.Tuple2[int8, int8]
	_, _, err := slhalex.ParseValue[key](strings.Fields("3"))
	if !errors.Is(err, errors.KindUnexpectedEol) {
		t.Fatalf("expected KindUnexpectedEol, got %v", err)
	}
}

func TestWordCount(t *testing.T) {
	if n, fixed := slhalex.WordCount[int8](); n != 1 || !fixed {
		t.Fatalf("WordCount[int8]() = (%d, %v)", n, fixed)
	}
	if n, fixed := slhalex.WordCount[slhalex.Tuple2[int8, int8]](); n != 2 || !fixed {
		t.Fatalf("WordCount[Tuple2]() = (%d, %v)", n, fixed)
	}
	if _, fixed := slhalex.WordCount[[]int64](); fixed {
		t.Fatalf("WordCount[[]int64]() should not be fixed")
	}
}

func TestSplitStrKey(t *testing.T) {
	got := slhalex.SplitStrKey("1 this 5 bar")
	if diff := cmp.Diff([]string{"1", "this", "5", "bar"}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
