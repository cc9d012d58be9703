package ast

import "fmt"

// Span is a half-open range of byte offsets into the source text.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// Join returns the smallest span covering both s and o.
func (s Span) Join(o Span) Span {
	return Span{Start: min(s.Start, o.Start), End: max(s.End, o.End)}
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Ident is a name paired with the span it was written at.
// Example: "bar" in "type Foo { bar: int }"
type Ident struct {
	Value string
	Span  Span
}
