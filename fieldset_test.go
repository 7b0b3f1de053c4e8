package slha_test

import (
	"testing"

	"github.com/aledsdavies/slha"
	"github.com/aledsdavies/slha/errors"
	"github.com/aledsdavies/slha/internal/slhalex"
)

func TestFieldSetDecodeRequiredAndOptional(t *testing.T) {
	input := "Block MODSEL\n     1    1\n" +
		"Block yu Q= 4.64649125e+02\n    3  3 8.88194465e-01\n"

	type key = slhalex.Tuple2[int8, int8]

	fs := slha.NewFieldSet()
	modsel := slha.RegisterRequired(fs, "modsel", slha.ParseBlock[int8, int8])
	yu := slha.RegisterOptional(fs, "yu", slha.ParseBlock[key, float64])

	if err := fs.Decode(input); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if modsel.Value().Map[1] != 1 {
		t.Fatalf("unexpected modsel value: %+v", modsel.Value())
	}
	value, present := yu.Value()
	if !present || value.Map[key{V1: 3, V2: 3}] != 8.88194465e-01 {
		t.Fatalf("unexpected yu value: present=%v value=%+v", present, value)
	}
}

func TestFieldSetMissingRequired(t *testing.T) {
	fs := slha.NewFieldSet()
	slha.RegisterRequired(fs, "modsel", slha.ParseBlock[int8, int8])
	err := fs.Decode("Block other\n  1 1\n")
	if !errors.Is(err, errors.KindMissingBlock) {
		t.Fatalf("expected KindMissingBlock, got %v", err)
	}
}

func TestFieldSetUnrecognizedBlockSkipped(t *testing.T) {
	fs := slha.NewFieldSet()
	modsel := slha.RegisterRequired(fs, "modsel", slha.ParseBlock[int8, int8])
	input := "Block unused\n  9 9\nBlock MODSEL\n  1 1\n"
	if err := fs.Decode(input); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if modsel.Value().Map[1] != 1 {
		t.Fatalf("unexpected modsel value: %+v", modsel.Value())
	}
}

func TestFieldSetDecaysIgnoredWhenNotRegistered(t *testing.T) {
	fs := slha.NewFieldSet()
	input := "DECAY 6 1.35\n   1.0  2  5  24\nDECAY 6 1.2\n   1.0  2  5  24\n"
	if err := fs.Decode(input); err != nil {
		t.Fatalf("Decode should not error on unrequested duplicate decays: %v", err)
	}
}

func TestFieldSetDecaysDuplicateRejected(t *testing.T) {
	fs := slha.NewFieldSet()
	fs.RegisterDecays()
	input := "DECAY 6 1.35\n   1.0  2  5  24\nDECAY 6 1.2\n   1.0  2  5  24\n"
	err := fs.Decode(input)
	if !errors.Is(err, errors.KindDuplicateDecay) {
		t.Fatalf("expected KindDuplicateDecay, got %v", err)
	}
}

func TestFieldSetDecaysCollected(t *testing.T) {
	fs := slha.NewFieldSet()
	decays := fs.RegisterDecays()
	input := "DECAY 6 1.35\n   1.0  2  5  24\n"
	if err := fs.Decode(input); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	dt, ok := decays[6]
	if !ok {
		t.Fatalf("expected decay table for pdg id 6")
	}
	if dt.Width != 1.35 || len(dt.Decays) != 1 {
		t.Fatalf("unexpected decay table: %+v", dt)
	}
}
