// Package errors defines the error taxonomy raised while lexing, tokenizing
// and decoding an SLHA file.
package errors

import "fmt"

// Kind identifies the category of a parse failure.
type Kind string

const (
	KindUnexpectedIdent       Kind = "unexpected_ident"
	KindUnknownSegment        Kind = "unknown_segment"
	KindMissingBlockName      Kind = "missing_block_name"
	KindMalformedBlockHeader  Kind = "malformed_block_header"
	KindInvalidScale          Kind = "invalid_scale"
	KindUnexpectedEol         Kind = "unexpected_eol"
	KindIncompleteParse       Kind = "incomplete_parse"
	KindInvalidInt            Kind = "invalid_int"
	KindInvalidFloat          Kind = "invalid_float"
	KindInvalidBlock          Kind = "invalid_block"
	KindInvalidBlockSingle    Kind = "invalid_block_single"
	KindInvalidBlockLine      Kind = "invalid_block_line"
	KindInvalidBlockKey       Kind = "invalid_block_key"
	KindInvalidBlockValue     Kind = "invalid_block_value"
	KindDuplicateKey          Kind = "duplicate_key"
	KindWrongNumberOfValues   Kind = "wrong_number_of_values"
	KindDuplicateBlock        Kind = "duplicate_block"
	KindDuplicateBlockScale   Kind = "duplicate_block_scale"
	KindRedefinedBlockWithQ   Kind = "redefined_block_with_q"
	KindMissingBlock          Kind = "missing_block"
	KindInvalidDecayingPdgID  Kind = "invalid_decaying_pdg_id"
	KindInvalidDecay          Kind = "invalid_decay"
	KindInvalidDecayLine      Kind = "invalid_decay_line"
	KindInvalidWidth          Kind = "invalid_width"
	KindInvalidBranchingRatio Kind = "invalid_branching_ratio"
	KindInvalidNumOfDaughters Kind = "invalid_num_of_daughters"
	KindNotEnoughDaughters    Kind = "not_enough_daughters"
	KindInvalidDaughterID     Kind = "invalid_daughter_id"
	KindDuplicateDecay        Kind = "duplicate_decay"
)

// Error is the single error type produced by this module. Every parse
// failure, from the lowest-level word parser up through the segment
// tokenizer, is a *Error so callers can use errors.Is/errors.As against Kind
// without type-switching on a dozen distinct Go types.
type Error struct {
	Kind    Kind
	Message string
	Cause   error

	Name string // block name, where applicable
	N    int    // 1-based data line number, where applicable
	PdgID int64 // decaying particle id, where applicable
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether err is a *Error of the given kind, anywhere in its
// cause chain.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind == kind {
				return true
			}
			err = e.Cause
			continue
		}
		break
	}
	return false
}

func NewUnexpectedIdentError(line string) *Error {
	return &Error{Kind: KindUnexpectedIdent, Message: fmt.Sprintf("expected the beginning of a segment, found an indented line instead: %q", line)}
}

func NewUnknownSegmentError(keyword string) *Error {
	return &Error{Kind: KindUnknownSegment, Message: fmt.Sprintf("unknown top level segment encountered: %q", keyword)}
}

func NewMissingBlockNameError() *Error {
	return &Error{Kind: KindMissingBlockName, Message: "missing block name"}
}

func NewMalformedBlockHeaderError(rest string) *Error {
	return &Error{Kind: KindMalformedBlockHeader, Message: fmt.Sprintf("encountered trailing non-whitespace characters after block header: %q", rest)}
}

func NewInvalidScaleError(cause error) *Error {
	return &Error{Kind: KindInvalidScale, Message: "failed to parse the scale", Cause: cause}
}

func NewUnexpectedEolError() *Error {
	return &Error{Kind: KindUnexpectedEol, Message: "the parser reached the end of the line before finishing"}
}

func NewIncompleteParseError(rest []string) *Error {
	return &Error{Kind: KindIncompleteParse, Message: fmt.Sprintf("the parser did not consume the whole line, %v was left over", rest)}
}

func NewInvalidIntError(cause error) *Error {
	return &Error{Kind: KindInvalidInt, Message: "failed to parse an integer", Cause: cause}
}

func NewInvalidFloatError(cause error) *Error {
	return &Error{Kind: KindInvalidFloat, Message: "failed to parse a floating point number", Cause: cause}
}

func NewInvalidBlockError(name string, cause error) *Error {
	return &Error{Kind: KindInvalidBlock, Message: fmt.Sprintf("malformed block: %q", name), Cause: cause, Name: name}
}

func NewInvalidBlockSingleError(name string, cause error) *Error {
	return &Error{Kind: KindInvalidBlockSingle, Message: fmt.Sprintf("malformed block single: %q", name), Cause: cause, Name: name}
}

func NewInvalidBlockLineError(n int, cause error) *Error {
	return &Error{Kind: KindInvalidBlockLine, Message: fmt.Sprintf("failed to parse the %dth data line in the body", n), Cause: cause, N: n}
}

func NewInvalidBlockKeyError(cause error) *Error {
	return &Error{Kind: KindInvalidBlockKey, Message: "failed to parse the key of a block", Cause: cause}
}

func NewInvalidBlockValueError(cause error) *Error {
	return &Error{Kind: KindInvalidBlockValue, Message: "failed to parse the value of a block", Cause: cause}
}

func NewDuplicateKeyError(line int) *Error {
	return &Error{Kind: KindDuplicateKey, Message: fmt.Sprintf("the key in line %d appears more than once in the block", line), N: line}
}

func NewWrongNumberOfValuesError(n int) *Error {
	return &Error{Kind: KindWrongNumberOfValues, Message: fmt.Sprintf("found %d values in a single valued block", n), N: n}
}

func NewDuplicateBlockError(name string) *Error {
	return &Error{Kind: KindDuplicateBlock, Message: fmt.Sprintf("found a duplicate block: %q", name), Name: name}
}

func NewDuplicateBlockScaleError(name string, scale float64) *Error {
	return &Error{Kind: KindDuplicateBlockScale, Message: fmt.Sprintf("found a duplicate block with name %q and scale %v", name, scale), Name: name}
}

func NewRedefinedBlockWithQError(name string) *Error {
	return &Error{Kind: KindRedefinedBlockWithQ, Message: fmt.Sprintf("found a duplicate block with and without scale: %q", name), Name: name}
}

func NewMissingBlockError(name string) *Error {
	return &Error{Kind: KindMissingBlock, Message: fmt.Sprintf("did not find the block with name %q", name), Name: name}
}

func NewInvalidDecayingPdgIDError(cause error) *Error {
	return &Error{Kind: KindInvalidDecayingPdgID, Message: "failed to parse the pdg id of the decaying particle", Cause: cause}
}

func NewInvalidDecayError(pdgID int64, cause error) *Error {
	return &Error{Kind: KindInvalidDecay, Message: fmt.Sprintf("invalid decay table for particle %d", pdgID), Cause: cause, PdgID: pdgID}
}

func NewInvalidDecayLineError(n int, cause error) *Error {
	return &Error{Kind: KindInvalidDecayLine, Message: fmt.Sprintf("failed to parse the %dth data line in the body", n), Cause: cause, N: n}
}

func NewInvalidWidthError(cause error) *Error {
	return &Error{Kind: KindInvalidWidth, Message: "failed to parse the width", Cause: cause}
}

func NewInvalidBranchingRatioError(cause error) *Error {
	return &Error{Kind: KindInvalidBranchingRatio, Message: "failed to parse the branching ratio", Cause: cause}
}

func NewInvalidNumOfDaughtersError(cause error) *Error {
	return &Error{Kind: KindInvalidNumOfDaughters, Message: "failed to parse the number of daughter particles", Cause: cause}
}

func NewNotEnoughDaughtersError(expected, found uint8) *Error {
	return &Error{Kind: KindNotEnoughDaughters, Message: fmt.Sprintf("did not find enough daughter particles, expected %d but found %d", expected, found)}
}

func NewInvalidDaughterIDError(cause error) *Error {
	return &Error{Kind: KindInvalidDaughterID, Message: "failed to parse the pdg id of a daughter particle", Cause: cause}
}

func NewDuplicateDecayError(pdgID int64) *Error {
	return &Error{Kind: KindDuplicateDecay, Message: fmt.Sprintf("found multiple decay tables for the same particle: %d", pdgID), PdgID: pdgID}
}
