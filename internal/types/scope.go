package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/nova/internal/syntax"
)

// Scope is one frame of the lexical scope stack. Frames form a tree and
// the parent chain of the innermost frame is the stack, searched innermost
// first.
type Scope struct {
	parent   *Scope
	children []*Scope // in opening order, for String
	elems    map[string]Object
	pos, end syntax.Pos
	comment  string // frame kind: "program", "function f", "loop", ...
}

// NewScope creates a frame nested in parent, or a root frame if parent is nil.
func NewScope(parent *Scope, pos, end syntax.Pos, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]Object),
		pos:     pos,
		end:     end,
		comment: comment,
	}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// Parent returns the enclosing frame, or nil for a root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Lookup returns the object bound to name in this frame only.
func (s *Scope) Lookup(name string) Object {
	return s.elems[name]
}

// LookupParent searches s and then each enclosing frame for name and
// returns the object with the frame that binds it, or (nil, nil).
func (s *Scope) LookupParent(name string) (Object, *Scope) {
	for f := s; f != nil; f = f.parent {
		if obj := f.elems[name]; obj != nil {
			return obj, f
		}
	}
	return nil, nil
}

// Insert binds obj in s. If the name is already bound in s, the existing
// object is returned and s is unchanged.
func (s *Scope) Insert(obj Object) Object {
	if prev := s.elems[obj.Name()]; prev != nil {
		return prev
	}
	s.elems[obj.Name()] = obj
	obj.setParent(s)
	return nil
}

// Names returns the names bound in s, sorted.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders s and its nested frames, one binding per line.
func (s *Scope) String() string {
	var b strings.Builder
	s.write(&b, 0)
	return b.String()
}

func (s *Scope) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent + "scope " + s.comment)
	if s.pos.IsValid() && s.end.IsValid() {
		fmt.Fprintf(b, " %d:%d-%d:%d", s.pos.Line(), s.pos.Col(), s.end.Line(), s.end.Col())
	}
	b.WriteString(" {\n")
	for _, name := range s.Names() {
		fmt.Fprintf(b, "%s  %s: %s\n", indent, name, typeString(s.elems[name].Type()))
	}
	for _, c := range s.children {
		c.write(b, depth+1)
	}
	b.WriteString(indent + "}\n")
}
