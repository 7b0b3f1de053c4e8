package slha

import "github.com/aledsdavies/slha/errors"

// fieldAccumulator is the interface a FieldSet drives: one add() per
// occurrence of the named block in the file, one finish() once the whole
// file has been consumed.
type fieldAccumulator interface {
	add(raw RawBlock) error
	finish() error
}

// checkScaleConsistency enforces the invariant behind the Vec policy and
// Slha.GetBlocks: either every value carries a scale and the scales are
// pairwise distinct, or at most one value carries no scale.
//
// The original crate's two consumers of this rule disagree on a second
// no-scale occurrence: the WrappedBlock<Vec<T>> impl doesn't catch it, while
// Slha::get_blocks raises DuplicateBlock. The documented invariant (section
// 8 of SPEC_FULL.md) requires N=1 when unscaled, so both paths here share
// this implementation and raise DuplicateBlock for the second case.
func checkScaleConsistency[T Scaled](name string, values []T) error {
	noScale := false
	var seen []float64
	for _, v := range values {
		scale := v.scale()
		if scale != nil {
			if noScale {
				return errors.NewRedefinedBlockWithQError(name)
			}
			for _, s := range seen {
				if s == *scale {
					return errors.NewDuplicateBlockScaleError(name, *scale)
				}
			}
			seen = append(seen, *scale)
			continue
		}
		if noScale {
			return errors.NewDuplicateBlockError(name)
		}
		noScale = true
		if len(seen) > 0 {
			return errors.NewRedefinedBlockWithQError(name)
		}
	}
	return nil
}

// Required holds a block that must appear exactly once.
type Required[T any] struct {
	name  string
	parse ParseFunc[T]
	value T
	seen  bool
}

// NewRequired returns a Required accumulator for the named block.
func NewRequired[T any](name string, parse ParseFunc[T]) *Required[T] {
	return &Required[T]{name: name, parse: parse}
}

func (r *Required[T]) add(raw RawBlock) error {
	if r.seen {
		return errors.NewDuplicateBlockError(r.name)
	}
	v, err := r.parse(r.name, raw.Lines, raw.Scale)
	if err != nil {
		return err
	}
	r.value, r.seen = v, true
	return nil
}

func (r *Required[T]) finish() error {
	if !r.seen {
		return errors.NewMissingBlockError(r.name)
	}
	return nil
}

// Value returns the parsed block. Only valid after a successful Decode.
func (r *Required[T]) Value() T { return r.value }

// Optional holds a block that may be absent.
type Optional[T any] struct {
	name    string
	parse   ParseFunc[T]
	value   T
	present bool
}

// NewOptional returns an Optional accumulator for the named block.
func NewOptional[T any](name string, parse ParseFunc[T]) *Optional[T] {
	return &Optional[T]{name: name, parse: parse}
}

func (o *Optional[T]) add(raw RawBlock) error {
	if o.present {
		return errors.NewDuplicateBlockError(o.name)
	}
	v, err := o.parse(o.name, raw.Lines, raw.Scale)
	if err != nil {
		return err
	}
	o.value, o.present = v, true
	return nil
}

func (o *Optional[T]) finish() error { return nil }

// Value returns the parsed block and whether it was present.
func (o *Optional[T]) Value() (T, bool) { return o.value, o.present }

// Vec holds every occurrence of a block, and checks scale consistency at
// finish time.
type Vec[T Scaled] struct {
	name   string
	parse  ParseFunc[T]
	values []T
}

// NewVec returns a Vec accumulator for the named block.
func NewVec[T Scaled](name string, parse ParseFunc[T]) *Vec[T] {
	return &Vec[T]{name: name, parse: parse}
}

func (v *Vec[T]) add(raw RawBlock) error {
	item, err := v.parse(v.name, raw.Lines, raw.Scale)
	if err != nil {
		return err
	}
	v.values = append(v.values, item)
	return nil
}

func (v *Vec[T]) finish() error {
	return checkScaleConsistency(v.name, v.values)
}

// Values returns every parsed occurrence, in file order.
func (v *Vec[T]) Values() []T { return v.values }

// VecUnchecked holds every occurrence of a block with no consistency check.
type VecUnchecked[T any] struct {
	name   string
	parse  ParseFunc[T]
	values []T
}

// NewVecUnchecked returns a VecUnchecked accumulator for the named block.
func NewVecUnchecked[T any](name string, parse ParseFunc[T]) *VecUnchecked[T] {
	return &VecUnchecked[T]{name: name, parse: parse}
}

func (v *VecUnchecked[T]) add(raw RawBlock) error {
	item, err := v.parse(v.name, raw.Lines, raw.Scale)
	if err != nil {
		return err
	}
	v.values = append(v.values, item)
	return nil
}

func (v *VecUnchecked[T]) finish() error { return nil }

// Values returns every parsed occurrence, in file order.
func (v *VecUnchecked[T]) Values() []T { return v.values }

// TakeFirst keeps only the first occurrence of a block, ignoring the rest.
type TakeFirst[T any] struct {
	name  string
	parse ParseFunc[T]
	value T
	seen  bool
}

// NewTakeFirst returns a TakeFirst accumulator for the named block.
func NewTakeFirst[T any](name string, parse ParseFunc[T]) *TakeFirst[T] {
	return &TakeFirst[T]{name: name, parse: parse}
}

func (f *TakeFirst[T]) add(raw RawBlock) error {
	if f.seen {
		return nil
	}
	v, err := f.parse(f.name, raw.Lines, raw.Scale)
	if err != nil {
		return err
	}
	f.value, f.seen = v, true
	return nil
}

func (f *TakeFirst[T]) finish() error {
	if !f.seen {
		return errors.NewMissingBlockError(f.name)
	}
	return nil
}

// Value returns the first parsed occurrence.
func (f *TakeFirst[T]) Value() T { return f.value }

// TakeLast keeps only the last occurrence of a block, overwriting as it
// goes.
type TakeLast[T any] struct {
	name  string
	parse ParseFunc[T]
	value T
	seen  bool
}

// NewTakeLast returns a TakeLast accumulator for the named block.
func NewTakeLast[T any](name string, parse ParseFunc[T]) *TakeLast[T] {
	return &TakeLast[T]{name: name, parse: parse}
}

func (l *TakeLast[T]) add(raw RawBlock) error {
	v, err := l.parse(l.name, raw.Lines, raw.Scale)
	if err != nil {
		return err
	}
	l.value, l.seen = v, true
	return nil
}

func (l *TakeLast[T]) finish() error {
	if !l.seen {
		return errors.NewMissingBlockError(l.name)
	}
	return nil
}

// Value returns the last parsed occurrence.
func (l *TakeLast[T]) Value() T { return l.value }
