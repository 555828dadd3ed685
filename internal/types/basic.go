package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	Num  // integer numbers
	Text // strings
	Bool // truth values, declared with the flag keyword
)

// BasicInfo describes properties of a basic type.
type BasicInfo int

const (
	IsNum BasicInfo = 1 << iota
	IsText
	IsBoolean
)

// Basic represents a basic type: num, text, or bool.
type Basic struct {
	typ
	kind    BasicKind
	info    BasicInfo
	name    string
	keyword string // declaration keyword
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Info returns information about the basic type.
func (b *Basic) Info() BasicInfo {
	return b.info
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// Keyword returns the keyword that declares variables of this type:
// num, text, or flag.
func (b *Basic) Keyword() string {
	return b.keyword
}

// Underlying implements Type.
func (b *Basic) Underlying() Type {
	return b
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the predeclared basic types, indexed by BasicKind.
// Typ[Invalid] is nil, representing an invalid type.
var Typ = []*Basic{
	Invalid: nil,
	Num:     {kind: Num, info: IsNum, name: "num", keyword: "num"},
	Text:    {kind: Text, info: IsText, name: "text", keyword: "text"},
	Bool:    {kind: Bool, info: IsBoolean, name: "bool", keyword: "flag"},
}
