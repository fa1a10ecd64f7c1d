package reorder

import (
	"strings"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/npillmayer/kanbun"
)

// Group is a run of tokens destined to move as a unit. Groups grow at the
// front (reversal) and at the back (vertical link).
//
// A nil Group is a valid empty group.
type Group struct {
	list *doublylinkedlist.List
}

// NewGroup creates a group holding the given tokens.
func NewGroup(tokens ...kanbun.Token) *Group {
	g := &Group{list: doublylinkedlist.New()}
	for _, t := range tokens {
		g.list.Add(t)
	}
	return g
}

// Prepend puts t in front of the group.
func (g *Group) Prepend(t kanbun.Token) {
	g.list.Prepend(t)
}

// Append puts t at the end of the group.
func (g *Group) Append(t kanbun.Token) {
	g.list.Append(t)
}

// Len returns the number of tokens in g.
func (g *Group) Len() int {
	if g == nil || g.list == nil {
		return 0
	}
	return g.list.Size()
}

// IsEmpty is true for groups without tokens.
func (g *Group) IsEmpty() bool {
	return g.Len() == 0
}

// Tokens returns the tokens of g in order.
func (g *Group) Tokens() []kanbun.Token {
	if g.IsEmpty() {
		return nil
	}
	tokens := make([]kanbun.Token, 0, g.Len())
	it := g.list.Iterator()
	for it.Next() {
		tokens = append(tokens, it.Value().(kanbun.Token))
	}
	return tokens
}

// First returns the first token of g. It returns false if g is empty.
func (g *Group) First() (kanbun.Token, bool) {
	if g.IsEmpty() {
		return kanbun.Token{}, false
	}
	v, ok := g.list.Get(0)
	if !ok {
		return kanbun.Token{}, false
	}
	return v.(kanbun.Token), true
}

func (g *Group) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, t := range g.Tokens() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(t.String())
	}
	b.WriteString(")")
	return b.String()
}
