package slha

import (
	"strings"

	"github.com/aledsdavies/slha/errors"
	"github.com/aledsdavies/slha/internal/segment"
)

// Slha is the dynamic, whole-file view of an SLHA document: every block
// header is parsed eagerly and its raw body retained by lowercased name;
// DECAY tables are parsed eagerly too, with PDG-id uniqueness enforced at
// parse time. Typed values are then parsed on demand by the accessor
// methods.
type Slha struct {
	blocks map[string][]RawBlock
	decays map[int64]DecayTable
}

// Parse reads an entire SLHA document.
func Parse(input string) (*Slha, error) {
	s := &Slha{blocks: make(map[string][]RawBlock), decays: make(map[int64]DecayTable)}
	tok := segment.New(input)
	for {
		seg, err := tok.Next()
		if err != nil {
			return nil, err
		}
		if seg == nil {
			break
		}
		switch v := seg.(type) {
		case segment.BlockSegment:
			s.blocks[v.Name] = append(s.blocks[v.Name], v.Body)
		case segment.DecaySegment:
			if _, exists := s.decays[v.PdgID]; exists {
				return nil, errors.NewDuplicateDecayError(v.PdgID)
			}
			s.decays[v.PdgID] = DecayTable{Width: v.Width, Decays: v.Decays}
		}
	}
	return s, nil
}

// GetBlock parses the single occurrence of the named block, or reports it
// absent. Multiple occurrences are a DuplicateBlock error.
func GetBlock[T any](s *Slha, name string, parse ParseFunc[T]) (value T, found bool, err error) {
	canonical := strings.ToLower(name)
	raws, ok := s.blocks[canonical]
	if !ok {
		return value, false, nil
	}
	if len(raws) > 1 {
		return value, true, errors.NewDuplicateBlockError(canonical)
	}
	value, err = parse(canonical, raws[0].Lines, raws[0].Scale)
	return value, true, err
}

// GetBlocksUnchecked parses every occurrence of the named block with no
// scale-consistency check.
func GetBlocksUnchecked[T any](s *Slha, name string, parse ParseFunc[T]) ([]T, error) {
	canonical := strings.ToLower(name)
	raws := s.blocks[canonical]
	values := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := parse(canonical, raw.Lines, raw.Scale)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// GetBlocks parses every occurrence of the named block and applies the Vec
// scale-consistency check (see checkScaleConsistency).
func GetBlocks[T Scaled](s *Slha, name string, parse ParseFunc[T]) ([]T, error) {
	canonical := strings.ToLower(name)
	values, err := GetBlocksUnchecked(s, canonical, parse)
	if err != nil {
		return nil, err
	}
	if err := checkScaleConsistency(canonical, values); err != nil {
		return nil, err
	}
	return values, nil
}

// GetRawBlocks returns every unparsed occurrence of the named block.
func (s *Slha) GetRawBlocks(name string) []RawBlock {
	return s.blocks[strings.ToLower(name)]
}

// GetDecay returns the decay table for a PDG id, if one was present.
func (s *Slha) GetDecay(pdgID int64) (DecayTable, bool) {
	dt, ok := s.decays[pdgID]
	return dt, ok
}
