package segment

import (
	"bufio"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aledsdavies/slha/errors"
	"github.com/aledsdavies/slha/internal/slhalex"
)

// Tokenizer walks an SLHA file's lines and yields Segment values. It wraps a
// bufio.Scanner (whose default split function, ScanLines, accepts both LF
// and CRLF) with a single line of lookahead, the equivalent of a
// Peekable<Lines> iterator.
type Tokenizer struct {
	sc     *bufio.Scanner
	peeked *string
	eof    bool
}

// New returns a Tokenizer over the given SLHA file content.
func New(input string) *Tokenizer {
	sc := bufio.NewScanner(strings.NewReader(input))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Tokenizer{sc: sc}
}

func (t *Tokenizer) peekLine() (string, bool) {
	if t.peeked != nil {
		return *t.peeked, true
	}
	if t.eof {
		return "", false
	}
	if t.sc.Scan() {
		line := t.sc.Text()
		t.peeked = &line
		return line, true
	}
	t.eof = true
	return "", false
}

func (t *Tokenizer) nextLine() (string, bool) {
	line, ok := t.peekLine()
	if ok {
		t.peeked = nil
	}
	return line, ok
}

func (t *Tokenizer) skipBlankOrComment() {
	for {
		line, ok := t.peekLine()
		if !ok || !slhalex.IsBlankOrComment(line) {
			return
		}
		t.nextLine()
	}
}

func startsWithSpace(line string) bool {
	if line == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsSpace(r)
}

// Next returns the next segment, or (nil, nil) when the input is exhausted.
// Any non-nil error aborts the parse; the tokenizer must not be reused after
// an error.
func (t *Tokenizer) Next() (Segment, error) {
	t.skipBlankOrComment()
	line, ok := t.nextLine()
	if !ok {
		return nil, nil
	}
	return t.parseSegmentLine(line)
}

func (t *Tokenizer) parseSegmentLine(line string) (Segment, error) {
	if startsWithSpace(line) {
		return nil, errors.NewUnexpectedIdentError(line)
	}
	word, rest, ok := slhalex.NextWord(line)
	if !ok {
		return nil, errors.NewUnexpectedIdentError(line)
	}
	switch strings.ToLower(word) {
	case "block":
		return t.parseBlock(rest)
	case "decay":
		return t.parseDecay(rest)
	default:
		return nil, errors.NewUnknownSegmentError(strings.ToLower(word))
	}
}

func (t *Tokenizer) collectBody() []Line {
	var lines []Line
	for {
		t.skipBlankOrComment()
		line, ok := t.peekLine()
		if !ok || !startsWithSpace(line) {
			return lines
		}
		trimmed := strings.TrimSpace(line)
		data, comment := slhalex.SplitComment(trimmed)
		lines = append(lines, Line{Data: data, Comment: comment})
		t.nextLine()
	}
}

func (t *Tokenizer) parseBlock(rest string) (Segment, error) {
	name, scale, err := parseBlockHeader(rest)
	if err != nil {
		return nil, err
	}
	lines := t.collectBody()
	return BlockSegment{Name: name, Body: RawBlock{Scale: scale, Lines: lines}}, nil
}

func parseBlockHeader(header string) (string, *float64, error) {
	data, _ := slhalex.SplitComment(header)
	word, rest, ok := slhalex.NextWord(data)
	if !ok {
		return "", nil, errors.NewMissingBlockNameError()
	}
	name := strings.ToLower(word)
	scale, err := parseBlockScale(rest)
	if err != nil {
		return "", nil, errors.NewInvalidBlockError(name, err)
	}
	return name, scale, nil
}

// parseBlockScale accepts the four whitespace variants of the Q= clause:
// "Q=<f>", "Q =<f>", "Q= <f>", "Q = <f>", with Q case-insensitive.
func parseBlockScale(header string) (*float64, error) {
	trimmed := strings.TrimSpace(header)
	if trimmed == "" {
		return nil, nil
	}
	r, size := utf8.DecodeRuneInString(trimmed)
	if r != 'Q' && r != 'q' {
		return nil, errors.NewMalformedBlockHeaderError(header)
	}
	rest := strings.TrimLeft(trimmed[size:], " \t\r\n\v\f")
	if !strings.HasPrefix(rest, "=") {
		return nil, errors.NewMalformedBlockHeaderError(header)
	}
	valueText := strings.TrimLeft(rest[1:], " \t\r\n\v\f")
	scale, err := slhalex.ParseValueStrict[float64](strings.Fields(valueText))
	if err != nil {
		return nil, errors.NewInvalidScaleError(err)
	}
	return &scale, nil
}

func (t *Tokenizer) parseDecay(rest string) (Segment, error) {
	pdgID, width, err := parseDecayHeader(rest)
	if err != nil {
		return nil, err
	}
	var decays []Decay
	for {
		t.skipBlankOrComment()
		line, ok := t.peekLine()
		if !ok || !startsWithSpace(line) {
			break
		}
		t.nextLine()
		n := len(decays) + 1
		trimmed := strings.TrimSpace(line)
		data, _ := slhalex.SplitComment(trimmed)
		decay, err := parseDecayLine(data)
		if err != nil {
			return nil, errors.NewInvalidDecayError(pdgID, errors.NewInvalidDecayLineError(n, err))
		}
		decays = append(decays, decay)
	}
	return DecaySegment{PdgID: pdgID, Width: width, Decays: decays}, nil
}

func parseDecayHeader(header string) (int64, float64, error) {
	data, _ := slhalex.SplitComment(header)
	words := strings.Fields(data)
	if len(words) == 0 {
		return 0, 0, errors.NewInvalidDecayingPdgIDError(errors.NewUnexpectedEolError())
	}
	pdgID, err := slhalex.ParseWord[int64](words[0])
	if err != nil {
		return 0, 0, errors.NewInvalidDecayingPdgIDError(err)
	}
	width, err := slhalex.ParseValueStrict[float64](words[1:])
	if err != nil {
		return 0, 0, errors.NewInvalidDecayError(pdgID, err)
	}
	return pdgID, width, nil
}

func parseDecayLine(data string) (Decay, error) {
	words := strings.Fields(data)
	idx := 0
	next := func() (string, bool) {
		if idx >= len(words) {
			return "", false
		}
		w := words[idx]
		idx++
		return w, true
	}

	w, ok := next()
	if !ok {
		return Decay{}, errors.NewInvalidBranchingRatioError(errors.NewUnexpectedEolError())
	}
	branchingRatio, err := slhalex.ParseWord[float64](w)
	if err != nil {
		return Decay{}, errors.NewInvalidBranchingRatioError(err)
	}

	w, ok = next()
	if !ok {
		return Decay{}, errors.NewInvalidNumOfDaughtersError(errors.NewUnexpectedEolError())
	}
	numDaughters, err := slhalex.ParseWord[uint8](w)
	if err != nil {
		return Decay{}, errors.NewInvalidNumOfDaughtersError(err)
	}

	daughters := make([]int64, 0, numDaughters)
	for i := uint8(0); i < numDaughters; i++ {
		w, ok := next()
		if !ok {
			return Decay{}, errors.NewNotEnoughDaughtersError(numDaughters, i)
		}
		id, err := slhalex.ParseWord[int64](w)
		if err != nil {
			return Decay{}, errors.NewInvalidDaughterIDError(err)
		}
		daughters = append(daughters, id)
	}

	if idx != len(words) {
		return Decay{}, errors.NewIncompleteParseError(words[idx:])
	}
	return Decay{BranchingRatio: branchingRatio, Daughters: daughters}, nil
}
