package segment_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/slha/errors"
	"github.com/aledsdavies/slha/internal/segment"
)

func f64(v float64) *float64 { return &v }

func drain(t *testing.T, tok *segment.Tokenizer) []segment.Segment {
	t.Helper()
	var segs []segment.Segment
	for {
		seg, err := tok.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seg == nil {
			return segs
		}
		segs = append(segs, seg)
	}
}

func TestMinimalBlock(t *testing.T) {
	input := "Block MODSEL\n     1    1\n"
	segs := drain(t, segment.New(input))
	want := []segment.Segment{
		segment.BlockSegment{
			Name: "modsel",
			Body: segment.RawBlock{Lines: []segment.Line{{Data: "1    1"}}},
		},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScaledBlockHeaderVariants(t *testing.T) {
	for _, header := range []string{"Q= 4.64649125e+02", "Q =4.64649125e+02", "Q = 4.64649125e+02", "Q=4.64649125e+02"} {
		input := "Block yu " + header + "\n    3  3 8.88194465e-01\n"
		segs := drain(t, segment.New(input))
		if len(segs) != 1 {
			t.Fatalf("header %q: expected 1 segment, got %d", header, len(segs))
		}
		blk, ok := segs[0].(segment.BlockSegment)
		if !ok {
			t.Fatalf("header %q: expected BlockSegment", header)
		}
		if blk.Body.Scale == nil || *blk.Body.Scale != 4.64649125e+02 {
			t.Fatalf("header %q: scale = %v, want 4.64649125e+02", header, blk.Body.Scale)
		}
	}
}

func TestDecayTable(t *testing.T) {
	input := "DECAY 6 1.35\n   1.0  2  5  24\n"
	segs := drain(t, segment.New(input))
	want := []segment.Segment{
		segment.DecaySegment{
			PdgID: 6,
			Width: 1.35,
			Decays: []segment.Decay{
				{BranchingRatio: 1.0, Daughters: []int64{5, 24}},
			},
		},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDaughterCountMismatch(t *testing.T) {
	input := "DECAY 1000022 1.0\n   0.5  2  1  2  3\n"
	tok := segment.New(input)
	_, err := tok.Next()
	if !errors.Is(err, errors.KindInvalidDecay) || !errors.Is(err, errors.KindInvalidDecayLine) || !errors.Is(err, errors.KindIncompleteParse) {
		t.Fatalf("expected InvalidDecay<-InvalidDecayLine<-IncompleteParse chain, got %v", err)
	}
}

func TestBodyBeforeHeaderRejected(t *testing.T) {
	input := " Block MODSEL\n     1 1\n"
	tok := segment.New(input)
	_, err := tok.Next()
	if !errors.Is(err, errors.KindUnexpectedIdent) {
		t.Fatalf("expected KindUnexpectedIdent, got %v", err)
	}
}

func TestUnknownSegment(t *testing.T) {
	tok := segment.New("FOO bar\n")
	_, err := tok.Next()
	if !errors.Is(err, errors.KindUnknownSegment) {
		t.Fatalf("expected KindUnknownSegment, got %v", err)
	}
}

func TestCommentAndBlankLinesSkipped(t *testing.T) {
	input := "# a header comment\n\nBlock MODSEL\n   # a body comment\n   1 1  # trailing\n\nBlock MODSEL2\n   2 2\n"
	segs := drain(t, segment.New(input))
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	blk := segs[0].(segment.BlockSegment)
	want := []segment.Line{{Data: "1 1  ", Comment: "# trailing"}}
	if diff := cmp.Diff(want, blk.Body.Lines); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockCrossesCRLF(t *testing.T) {
	input := "Block MODSEL\r\n    1 1\r\n"
	segs := drain(t, segment.New(input))
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
}
