// Package tokenizer splits delimited text into field, delimiter and newline tokens.
package tokenizer

import "fmt"

// Kind identifies the type of a token.
// The set is closed: consumers switch over all three kinds and treat
// anything else as malformed.
type Kind uint8

const (
	// KindField is the content of one field. Quotes are stripped.
	KindField Kind = iota + 1
	// KindDelimiter is a single field separator.
	KindDelimiter
	// KindNewline is a row separator (\n or \r\n).
	KindNewline
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindField:
		return "Field"
	case KindDelimiter:
		return "Delimiter"
	case KindNewline:
		return "Newline"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Token is one lexical unit of the input.
//
// For KindField, Value is a substring of the tokenizer's input and shares its
// memory. For the separator kinds Value holds the separator text.
type Token struct {
	Kind   Kind
	Value  string
	Offset int // byte offset of the token in the input
}

// Field returns a field token. Used mostly by tests and fake token sources.
func Field(value string) Token {
	return Token{Kind: KindField, Value: value}
}

func (t Token) String() string {
	if t.Kind == KindField {
		return fmt.Sprintf("Field(%q)", t.Value)
	}
	return t.Kind.String()
}

// State describes what the tokenizer will produce on the next call to Next.
type State uint8

const (
	StateReadyAtField State = iota
	StateReadyAtDelimiter
	StateReadyAtNewline
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateReadyAtField:
		return "ReadyAtField"
	case StateReadyAtDelimiter:
		return "ReadyAtDelimiter"
	case StateReadyAtNewline:
		return "ReadyAtNewline"
	case StateExhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}
