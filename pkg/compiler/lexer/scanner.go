package lexer

import "unicode"

// eof is the sentinel returned by the cursor once the source is exhausted.
const eof rune = -1

var keywords = map[string]bool{
	"let":    true,
	"func":   true,
	"if":     true,
	"else":   true,
	"while":  true,
	"for":    true,
	"return": true,
}

// operators is the fixed operator table. Operator scanning grows the
// lexeme one character at a time while the extended text is still an
// entry, which yields longest-match tokenization (">>=" is one token).
var operators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"^": true, "|": true, ">>": true, "<<": true, "&": true, "!": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"^=": true, "|=": true, ">>=": true, "<<=": true, "&=": true,
	">": true, "<": true, "||": true, "&&": true,
	"==": true, "!=": true, ">=": true, "<=": true,
	",": true, ";": true, ".": true, "->": true, "::": true,
}

// Scanner performs lexical analysis on miqro source. It owns the
// remaining source text and yields one token per call to Next.
type Scanner struct {
	src    []rune
	cursor int
	line   int
	column int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(src string) *Scanner {
	return &Scanner{
		src:  []rune(src),
		line: 1,
	}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(src string) {
	s.src = []rune(src)
	s.cursor = 0
	s.line = 1
	s.column = 0
}

func (s *Scanner) eof() bool {
	return s.cursor >= len(s.src)
}

// next consumes one scalar value. Consuming a newline advances the line
// counter and resets the column.
func (s *Scanner) next() rune {
	if s.eof() {
		return eof
	}
	r := s.src[s.cursor]
	s.cursor++
	s.column++
	if r == '\n' {
		s.line++
		s.column = 0
	}
	return r
}

func (s *Scanner) lookahead() rune {
	if s.eof() {
		return eof
	}
	return s.src[s.cursor]
}

// Next returns the next token from the source. After the token with
// KindEOF has been returned, further calls are not meaningful.
//
// Whitespace and comments are skipped inside the loop rather than by
// re-entering Next, so arbitrarily long runs cannot grow the stack.
func (s *Scanner) Next() Token {
	for {
		if s.eof() {
			return Token{Kind: KindEOF, Line: s.line, Column: s.column}
		}

		first := s.next()
		line, column := s.line, s.column

		switch {
		case unicode.IsSpace(first):
			for unicode.IsSpace(s.lookahead()) {
				s.next()
			}
			continue

		case first == '/' && s.lookahead() == '/':
			s.next()
			for !s.eof() && s.lookahead() != '\n' {
				s.next()
			}
			continue

		case first == '/' && s.lookahead() == '*':
			s.next()
			s.skipBlockComment()
			continue

		case first == '\'':
			return s.scanQuoted('\'', KindCharLiteral, line, column)

		case first == '"':
			return s.scanQuoted('"', KindStringLiteral, line, column)

		case isIdentStart(first):
			return s.scanIdentifier(first, line, column)

		case first >= '0' && first <= '9':
			return s.scanNumber(first, line, column)

		case isOpStart(first):
			return s.scanOperator(first, line, column)

		case first == '(':
			return Token{Kind: KindLParen, Text: "(", Line: line, Column: column}
		case first == ')':
			return Token{Kind: KindRParen, Text: ")", Line: line, Column: column}
		case first == '[':
			return Token{Kind: KindLBracket, Text: "[", Line: line, Column: column}
		case first == ']':
			return Token{Kind: KindRBracket, Text: "]", Line: line, Column: column}
		case first == '{':
			return Token{Kind: KindLBrace, Text: "{", Line: line, Column: column}
		case first == '}':
			return Token{Kind: KindRBrace, Text: "}", Line: line, Column: column}

		default:
			return Token{Kind: KindError, Text: "Invalid character", Line: line, Column: column}
		}
	}
}

// skipBlockComment consumes through the closing "*/". An unterminated
// block comment stops silently at end of input.
func (s *Scanner) skipBlockComment() {
	for !s.eof() {
		if s.next() == '*' && s.lookahead() == '/' {
			s.next()
			return
		}
	}
}

// scanQuoted accumulates the raw literal body up to the closing
// delimiter and hands it to Unescape. An unterminated literal keeps
// whatever was accumulated before end of input.
func (s *Scanner) scanQuoted(delim rune, kind Kind, line, column int) Token {
	var raw []rune
	for !s.eof() && s.lookahead() != delim {
		raw = append(raw, s.next())
	}
	if !s.eof() {
		s.next()
	}

	text, err := Unescape(string(raw))
	if err != nil {
		return Token{Kind: KindError, Text: err.Error(), Line: line, Column: column}
	}
	return Token{Kind: kind, Text: text, Line: line, Column: column}
}

func (s *Scanner) scanIdentifier(first rune, line, column int) Token {
	id := []rune{first}
	for isIdentContinue(s.lookahead()) {
		id = append(id, s.next())
	}

	text := string(id)
	kind := KindIdentifier
	if keywords[text] {
		kind = KindKeyword
	} else if text == "true" || text == "false" {
		kind = KindBoolLiteral
	}
	return Token{Kind: kind, Text: text, Line: line, Column: column}
}

// scanNumber handles the numeric dispatch. A leading zero selects a
// radix prefix, a fraction, or a plain leading-zero decimal; the raw
// text is preserved as scanned, prefix and decimal point included.
func (s *Scanner) scanNumber(first rune, line, column int) Token {
	if first == '0' {
		switch c := s.lookahead(); {
		case c == 'b':
			s.next()
			return Token{Kind: KindIntLiteral, Text: "0b" + s.digitRun(isBinDigit), Line: line, Column: column}
		case c == 'o':
			s.next()
			return Token{Kind: KindIntLiteral, Text: "0o" + s.digitRun(isOctDigit), Line: line, Column: column}
		case c == 'x':
			s.next()
			return Token{Kind: KindIntLiteral, Text: "0x" + s.digitRun(isHexDigit), Line: line, Column: column}
		case c == '.':
			s.next()
			return Token{Kind: KindFloatLiteral, Text: "0." + s.digitRun(isDecDigit), Line: line, Column: column}
		case c >= '0' && c <= '9':
			s.next()
			return Token{Kind: KindIntLiteral, Text: "0" + string(c) + s.digitRun(isDecDigit), Line: line, Column: column}
		default:
			return Token{Kind: KindError, Text: "Invalid number literal suffix", Line: line, Column: column}
		}
	}

	if s.lookahead() == '.' {
		s.next()
		return Token{Kind: KindFloatLiteral, Text: string(first) + "." + s.digitRun(isDecDigit), Line: line, Column: column}
	}
	return Token{Kind: KindIntLiteral, Text: string(first) + s.digitRun(isDecDigit), Line: line, Column: column}
}

// digitRun consumes a maximal run of digits accepted by valid.
func (s *Scanner) digitRun(valid func(rune) bool) string {
	var run []rune
	for valid(s.lookahead()) {
		run = append(run, s.next())
	}
	return string(run)
}

func (s *Scanner) scanOperator(first rune, line, column int) Token {
	op := string(first)
	for operators[op+string(s.lookahead())] {
		op += string(s.next())
	}
	return Token{Kind: KindOp, Text: op, Line: line, Column: column}
}

func isOpStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '^', '|', '>', '<', '&', '!', '=', ',', ';', '.', ':':
		return true
	}
	return false
}

func isDecDigit(r rune) bool { return r >= '0' && r <= '9' }
func isBinDigit(r rune) bool { return r == '0' || r == '1' }
func isOctDigit(r rune) bool { return r >= '0' && r <= '7' }
func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
