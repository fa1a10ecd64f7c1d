package reorder

import (
	"fmt"

	"github.com/npillmayer/kanbun"
)

// State is the state of the reordering pass, threaded through the token
// sequence by Step. Clients usually do not use State directly, but call
// Reorder, Validate or Checked.
type State struct {
	out      []kanbun.Token
	group    *Group      // current group
	reversal bool        // previous token carried a reversal
	link     bool        // previous token carried a vertical link
	pending  kanbun.Mark // rank to apply as soon as the current group is complete
	slots    [len(kanbun.Families) + 1][kanbun.MaxRank + 1]*Group
	end      int     // end position of the last token seen
	issues   []error // structural problems, in order of occurrence
}

// NewState creates a reordering state for a token sequence of (roughly)
// n tokens.
func NewState(n int) *State {
	return &State{out: make([]kanbun.Token, 0, n+n/4)}
}

// Step consumes the next token of the sequence.
func (s *State) Step(tok kanbun.Token) {
	s.end = tok.Span.To
	if tok.IsReread() { // first reading is emitted in place
		s.out = append(s.out, tok)
		tok = tok.Reread()
	}
	switch {
	case s.reversal: // previous group moves behind tok
		s.group.Prepend(tok)
		s.reversal = false
	case s.link:
		s.group.Append(tok)
		s.link = false
	default:
		s.group = NewGroup(tok)
	}
	if tok.Mark.HasRank() {
		if s.pending.HasRank() {
			s.issue(tok, fmt.Sprintf("rank %s superseded by %s before it could be resolved",
				s.pending.Symbols(), tok.Mark.RankOnly().Symbols()))
		}
		s.pending = tok.Mark.RankOnly()
	}
	switch {
	case tok.Mark.Reversal:
		s.reversal = true
	case tok.Link:
		s.link = true
	case s.pending.HasRank():
		s.apply(tok, s.pending)
		s.pending = kanbun.Mark{}
	default:
		s.emit(s.group)
	}
}

// apply resolves a rank for the current group: the lowest rank flushes its
// family, any other rank stores the group in a slot of its family.
func (s *State) apply(tok kanbun.Token, m kanbun.Mark) {
	f := m.Family
	if int(m.Rank) > f.Size() {
		s.issue(tok, fmt.Sprintf("unknown rank %d of family %s", m.Rank, f))
		s.emit(s.group)
		return
	}
	if m.IsLowest() {
		T().Debugf("flush family %s with %v", f, s.group)
		s.emit(s.group)
		for r := 2; r <= f.Size(); r++ {
			s.emit(s.slots[f][r])
			s.slots[f][r] = nil
		}
		return
	}
	if !s.slots[f][m.Rank].IsEmpty() {
		s.issue(tok, fmt.Sprintf("rank %s used twice without intervening %c",
			m.Symbols(), f.Symbol(1)))
	}
	T().Debugf("hold back %v for %s", s.group, m.Symbols())
	s.slots[f][m.Rank] = s.group
}

// emit appends a group to the output. Empty groups contribute nothing.
func (s *State) emit(g *Group) {
	if g.IsEmpty() {
		return
	}
	s.out = append(s.out, g.Tokens()...)
}

func (s *State) issue(tok kanbun.Token, reason string) {
	T().Errorf("kanbun: %s (at %q)", reason, tok.Raw)
	s.issues = append(s.issues, &kanbun.StructuralParseError{
		Offset:    tok.Span.From,
		Remainder: tok.Raw,
		Reason:    reason,
	})
}

// Close signals the end of the token sequence. It checks for groups which
// are still held back or waiting for a successor.
func (s *State) Close() {
	at := kanbun.Token{Span: kanbun.Span{From: s.end, To: s.end}}
	if s.reversal {
		s.issue(at, "reversal mark without a following glyph")
	} else if s.link {
		s.issue(at, "vertical link without a following glyph")
	}
	for _, f := range kanbun.Families {
		for r := 2; r <= f.Size(); r++ {
			if !s.slots[f][r].IsEmpty() {
				s.issue(at, fmt.Sprintf("rank %c never resolved by %c",
					f.Symbol(kanbun.Rank(r)), f.Symbol(1)))
			}
		}
	}
}

// Output returns the tokens emitted so far, in reading order.
func (s *State) Output() []kanbun.Token {
	return s.out
}

// Err returns the first structural problem found, or nil.
func (s *State) Err() error {
	if len(s.issues) == 0 {
		return nil
	}
	return s.issues[0]
}

// Issues returns all structural problems found.
func (s *State) Issues() []error {
	return s.issues
}

func run(tokens []kanbun.Token) *State {
	s := NewState(len(tokens))
	for _, tok := range tokens {
		s.Step(tok)
	}
	s.Close()
	return s
}

// Reorder permutes a token sequence from Chinese reading order into
// Japanese reading order. Tokens of glyphs read twice appear twice in the
// result.
//
// Reorder never fails. For malformed mark nesting the result may lack
// tokens; use Validate to check a sequence.
func Reorder(tokens []kanbun.Token) []kanbun.Token {
	return run(tokens).Output()
}

// Validate checks the reading-order marks of a token sequence. It returns
// a *kanbun.StructuralParseError for the first problem found:
//
// - a higher rank which is not resolved by the lowest rank of its family
//
// - a higher rank used twice before the lowest rank of its family
//
// - a reversal or vertical link at the end of the sequence
//
// - a rank deferred by a reversal which is superseded by another rank
//
// A lowest rank without any higher rank is legal.
func Validate(tokens []kanbun.Token) error {
	return run(tokens).Err()
}

// Checked reorders a token sequence and reports structural problems,
// combining Reorder and Validate in a single pass.
func Checked(tokens []kanbun.Token) ([]kanbun.Token, error) {
	s := run(tokens)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return s.Output(), nil
}
