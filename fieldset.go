package slha

import (
	"strings"

	"github.com/aledsdavies/slha/errors"
	"github.com/aledsdavies/slha/internal/segment"
)

// FieldSet is the builder-style stand-in for the original crate's derive
// macro: instead of generating one accumulator-wiring call per struct
// field at compile time, the caller registers each field explicitly, then
// calls Decode once.
type FieldSet struct {
	order  []string
	fields map[string]fieldAccumulator

	wantDecays bool
	decays     map[int64]DecayTable
}

// NewFieldSet returns an empty FieldSet.
func NewFieldSet() *FieldSet {
	return &FieldSet{fields: make(map[string]fieldAccumulator)}
}

func (fs *FieldSet) register(name string, acc fieldAccumulator) {
	canonical := strings.ToLower(name)
	if _, exists := fs.fields[canonical]; !exists {
		fs.order = append(fs.order, canonical)
	}
	fs.fields[canonical] = acc
}

// RegisterRequired registers a block that must appear exactly once.
func RegisterRequired[T any](fs *FieldSet, name string, parse ParseFunc[T]) *Required[T] {
	acc := NewRequired(strings.ToLower(name), parse)
	fs.register(name, acc)
	return acc
}

// RegisterOptional registers a block that may be absent.
func RegisterOptional[T any](fs *FieldSet, name string, parse ParseFunc[T]) *Optional[T] {
	acc := NewOptional(strings.ToLower(name), parse)
	fs.register(name, acc)
	return acc
}

// RegisterVec registers a block whose repeated occurrences are collected
// and checked for scale consistency.
func RegisterVec[T Scaled](fs *FieldSet, name string, parse ParseFunc[T]) *Vec[T] {
	acc := NewVec(strings.ToLower(name), parse)
	fs.register(name, acc)
	return acc
}

// RegisterVecUnchecked registers a block whose repeated occurrences are
// collected without any consistency check.
func RegisterVecUnchecked[T any](fs *FieldSet, name string, parse ParseFunc[T]) *VecUnchecked[T] {
	acc := NewVecUnchecked(strings.ToLower(name), parse)
	fs.register(name, acc)
	return acc
}

// RegisterTakeFirst registers a block where only the first occurrence is
// kept.
func RegisterTakeFirst[T any](fs *FieldSet, name string, parse ParseFunc[T]) *TakeFirst[T] {
	acc := NewTakeFirst(strings.ToLower(name), parse)
	fs.register(name, acc)
	return acc
}

// RegisterTakeLast registers a block where only the last occurrence is
// kept.
func RegisterTakeLast[T any](fs *FieldSet, name string, parse ParseFunc[T]) *TakeLast[T] {
	acc := NewTakeLast(strings.ToLower(name), parse)
	fs.register(name, acc)
	return acc
}

// RegisterDecays requests that DECAY segments be collected into a map keyed
// by PDG id. If this is never called, DECAY segments are silently
// discarded. The returned map is populated once Decode returns
// successfully.
func (fs *FieldSet) RegisterDecays() map[int64]DecayTable {
	fs.wantDecays = true
	fs.decays = make(map[int64]DecayTable)
	return fs.decays
}

// Decode drives the tokenizer over input, dispatching each block to its
// registered accumulator by lowercased name and feeding decays (if
// requested) into the decays map, then finalizes every accumulator in
// registration order. The first error aborts the decode.
func (fs *FieldSet) Decode(input string) error {
	tok := segment.New(input)
	for {
		seg, err := tok.Next()
		if err != nil {
			return err
		}
		if seg == nil {
			break
		}
		switch s := seg.(type) {
		case segment.BlockSegment:
			if acc, ok := fs.fields[s.Name]; ok {
				if err := acc.add(s.Body); err != nil {
					return err
				}
			}
		case segment.DecaySegment:
			if !fs.wantDecays {
				continue
			}
			if _, exists := fs.decays[s.PdgID]; exists {
				return errors.NewDuplicateDecayError(s.PdgID)
			}
			fs.decays[s.PdgID] = DecayTable{Width: s.Width, Decays: s.Decays}
		}
	}
	for _, name := range fs.order {
		if err := fs.fields[name].finish(); err != nil {
			return err
		}
	}
	return nil
}
