package lexer

import "fmt"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindError
	KindIdentifier
	KindIntLiteral
	KindFloatLiteral
	KindBoolLiteral
	KindStringLiteral
	KindCharLiteral
	KindKeyword
	KindOp
	KindLParen   // (
	KindRParen   // )
	KindLBracket // [
	KindRBracket // ]
	KindLBrace   // {
	KindRBrace   // }
)

// String returns the display label used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindError:
		return "<error msg>"
	case KindIdentifier:
		return "<identifier>"
	case KindIntLiteral:
		return "<literal: int>"
	case KindFloatLiteral:
		return "<literal: float>"
	case KindBoolLiteral:
		return "<literal: bool>"
	case KindStringLiteral:
		return "<literal: string>"
	case KindCharLiteral:
		return "<literal: char>"
	case KindKeyword:
		return "keyword"
	case KindOp:
		return "<operator>"
	case KindLParen, KindRParen, KindLBracket, KindRBracket, KindLBrace, KindRBrace:
		return "<punctuation>"
	}
	return "<unknown>"
}

// Token represents a lexical unit of the source.
//
// Text holds the canonical form of the token: the raw lexeme for
// identifiers, numbers and operators, and the decoded content for string
// and char literals. Error tokens carry the diagnostic message instead.
// Line is 1-based; Column counts consumed scalar values on the current
// line and resets after every newline. Both refer to the first character
// of the token.
type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
}

// String renders the token as a single diagnostic line.
func (t Token) String() string {
	return fmt.Sprintf("Lexeme: (Type: %s, Content: %s, At: (L: %d, C: %d))",
		t.Kind, t.Text, t.Line, t.Column)
}
