package slha

import (
	"strings"

	"github.com/aledsdavies/slha/errors"
	"github.com/aledsdavies/slha/internal/segment"
	"github.com/aledsdavies/slha/internal/slhalex"
)

// Line, RawBlock, Decay and DecayTable are re-exported from the internal
// segment tokenizer: they are part of this package's public data model even
// though the tokenizer that produces them is an implementation detail.
type (
	Line       = segment.Line
	RawBlock   = segment.RawBlock
	Decay      = segment.Decay
	DecayTable = segment.DecayTable
)

// ParseFunc turns one block occurrence's raw lines and optional scale into a
// T. Block, BlockSingle and BlockStr each expose a generic function of this
// shape; FieldSet registration and the dynamic Slha accessors both take a
// ParseFunc as their schema.
type ParseFunc[T any] func(name string, lines []Line, scale *float64) (T, error)

// Scaled is implemented by every block value type; Vec-policy accumulators
// and Slha.GetBlocks use it to check scale consistency across repeated
// block occurrences.
type Scaled interface {
	scale() *float64
}

// Block is a parsed map-form block: K is the row's key shape (a scalar or a
// slhalex.TupleN), V is the row's value shape.
type Block[K comparable, V any] struct {
	Scale *float64
	Map   map[K]V
}

func (b Block[K, V]) scale() *float64 { return b.Scale }

// ParseBlock parses a block's raw lines into a Block[K,V]. It satisfies
// ParseFunc[Block[K,V]] and is the function callers pass to
// RegisterRequired, GetBlock and friends when instantiated for concrete K
// and V, e.g. slha.ParseBlock[int8, int8].
func ParseBlock[K comparable, V any](name string, lines []Line, scale *float64) (Block[K, V], error) {
	m := make(map[K]V, len(lines))
	for i, line := range lines {
		n := i + 1
		words := strings.Fields(line.Data)
		key, rest, err := slhalex.ParseValue[K](words)
		if err != nil {
			return Block[K, V]{}, wrapBlockLineError(name, n, err)
		}
		value, err := slhalex.ParseValueStrict[V](rest)
		if err != nil {
			return Block[K, V]{}, wrapBlockLineError(name, n, err)
		}
		if _, exists := m[key]; exists {
			return Block[K, V]{}, wrapBlockLineError(name, n, errors.NewDuplicateKeyError(n))
		}
		m[key] = value
	}
	return Block[K, V]{Scale: scale, Map: m}, nil
}

func wrapBlockLineError(name string, n int, err error) error {
	return errors.NewInvalidBlockError(name, errors.NewInvalidBlockLineError(n, err))
}

// BlockSingle is a parsed single-value block.
type BlockSingle[V any] struct {
	Scale *float64
	Value V
}

func (b BlockSingle[V]) scale() *float64 { return b.Scale }

// ParseBlockSingle requires exactly one data line and parses it strictly as
// V.
func ParseBlockSingle[V any](name string, lines []Line, scale *float64) (BlockSingle[V], error) {
	if len(lines) != 1 {
		return BlockSingle[V]{}, errors.NewWrongNumberOfValuesError(len(lines))
	}
	value, err := slhalex.ParseValueStrict[V](strings.Fields(lines[0].Data))
	if err != nil {
		return BlockSingle[V]{}, errors.NewInvalidBlockSingleError(name, err)
	}
	return BlockSingle[V]{Value: value, Scale: scale}, nil
}

// BlockStr is a parsed string-keyed block: the key of each row is the word
// prefix in front of the value (see splitStrRow for how the split is found).
// Go maps can't key on []string (it isn't comparable), so the key space is
// represented as the words joined by a single space; slhalex.SplitStrKey
// recovers the original word list.
type BlockStr[V any] struct {
	Scale *float64
	Map   map[string]V
}

func (b BlockStr[V]) scale() *float64 { return b.Scale }

// ParseBlockStr parses a block's raw lines into a BlockStr[V].
func ParseBlockStr[V any](name string, lines []Line, scale *float64) (BlockStr[V], error) {
	m := make(map[string]V, len(lines))
	for i, line := range lines {
		n := i + 1
		words := strings.Fields(line.Data)
		keyWords, value, err := splitStrRow[V](words)
		if err != nil {
			return BlockStr[V]{}, wrapBlockLineError(name, n, err)
		}
		key := strings.Join(keyWords, " ")
		if _, exists := m[key]; exists {
			return BlockStr[V]{}, wrapBlockLineError(name, n, errors.NewDuplicateKeyError(n))
		}
		m[key] = value
	}
	return BlockStr[V]{Scale: scale, Map: m}, nil
}

// splitStrRow splits words into a key prefix and a suffix that parses
// strictly as V. For a fixed-arity V the split point is exact (no search
// needed); for an unbounded V (a slice) it tries the longest value-parse
// from the end of the row first, shrinking until one succeeds, so the key is
// the shortest prefix whose suffix parses.
func splitStrRow[V any](words []string) ([]string, V, error) {
	var zero V
	n, fixed := slhalex.WordCount[V]()
	if fixed {
		if len(words) < n {
			return nil, zero, errors.NewUnexpectedEolError()
		}
		split := len(words) - n
		value, err := slhalex.ParseValueStrict[V](words[split:])
		if err != nil {
			return nil, zero, err
		}
		return words[:split], value, nil
	}

	var lastErr error = errors.NewUnexpectedEolError()
	for split := 0; split <= len(words); split++ {
		value, err := slhalex.ParseValueStrict[V](words[split:])
		if err == nil {
			return words[:split], value, nil
		}
		lastErr = err
	}
	return nil, zero, lastErr
}
