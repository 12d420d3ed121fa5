package lexer

import "unicode/utf8"

// EscapeError identifies a malformed escape sequence inside a quoted
// literal body. The scanner only forwards the message text, but callers
// of Unescape can compare against the constants to act on the kind.
type EscapeError int

const (
	ErrOnlyOneSlash EscapeError = iota
	ErrIllegalEscape
	ErrEmptyUnicode
	ErrUnclosedUnicode
	ErrIllegalUnicode
	ErrTooLongUnicode
	ErrValueOutOfUnicode
	ErrIllegalSurrogate
	ErrInvalidCharInUnicode
	ErrTooShortEscape
	ErrInvalidCharInHex
	ErrValueOutOfHex
)

func (e EscapeError) Error() string {
	switch e {
	case ErrOnlyOneSlash:
		return "Only one slash found, expected an escape sequence"
	case ErrIllegalEscape:
		return "Illegal escape sequence"
	case ErrEmptyUnicode:
		return "Empty unicode escape sequence"
	case ErrUnclosedUnicode:
		return "Unclosed unicode escape sequence"
	case ErrIllegalUnicode:
		return "Illegal unicode escape sequence"
	case ErrTooLongUnicode:
		return "Too long unicode escape sequence"
	case ErrValueOutOfUnicode:
		return "Value out of unicode range"
	case ErrIllegalSurrogate:
		return "Illegal surrogate pairs in unicode escape sequence"
	case ErrInvalidCharInUnicode:
		return "Invalid character in unicode escape sequence"
	case ErrTooShortEscape:
		return "Too short escape sequence"
	case ErrInvalidCharInHex:
		return "Invalid character in hexadecimal escape sequence"
	case ErrValueOutOfHex:
		return "Value out of hexadecimal range"
	}
	return "Unknown escape error"
}

// Unescape decodes the raw interior of a quoted literal. Plain
// characters are copied through; a backslash introduces one of the
// escape forms \b \r \n \t \' \\ \u{...} \xNN. Decoding stops at the
// first malformed escape and reports its kind.
func Unescape(input string) (string, error) {
	rest := []rune(input)
	var out []rune

	for len(rest) > 0 {
		c := rest[0]
		rest = rest[1:]
		if c != '\\' {
			out = append(out, c)
			continue
		}

		if len(rest) == 0 {
			return "", ErrOnlyOneSlash
		}
		esc := rest[0]
		rest = rest[1:]

		switch esc {
		case 'b':
			out = append(out, '\b')
		case 'r':
			out = append(out, '\r')
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case '\'':
			out = append(out, '\'')
		case '\\':
			out = append(out, '\\')
		case 'u':
			r, tail, err := unescapeUnicode(rest)
			if err != nil {
				return "", err
			}
			out = append(out, r)
			rest = tail
		case 'x':
			r, tail, err := unescapeHex(rest)
			if err != nil {
				return "", err
			}
			out = append(out, r)
			rest = tail
		default:
			return "", ErrIllegalEscape
		}
	}
	return string(out), nil
}

// unescapeUnicode decodes the "{hhhhhh}" part of a \u escape. The
// closing-brace presence check deliberately scans the whole remaining
// input before the opening brace is validated; changing that order
// changes which error some malformed escapes report.
func unescapeUnicode(rest []rune) (rune, []rune, error) {
	if len(rest) == 0 || !containsRune(rest, '}') {
		return 0, nil, ErrUnclosedUnicode
	}
	if rest[0] != '{' {
		return 0, nil, ErrIllegalUnicode
	}
	rest = rest[1:]

	digits := 0
	value := 0
	for len(rest) > 0 {
		x := rest[0]
		rest = rest[1:]

		if digits > 6 {
			return 0, nil, ErrTooLongUnicode
		}
		if x == '}' {
			if digits == 0 {
				return 0, nil, ErrEmptyUnicode
			}
			if value > 0x10FFFF {
				return 0, nil, ErrValueOutOfUnicode
			}
			r := rune(value)
			if !utf8.ValidRune(r) {
				return 0, nil, ErrIllegalSurrogate
			}
			return r, rest, nil
		}

		d, ok := hexDigit(x)
		if !ok {
			return 0, nil, ErrInvalidCharInUnicode
		}
		digits++
		value = value<<4 | d
	}
	return 0, nil, ErrUnclosedUnicode
}

// unescapeHex decodes the two-digit part of a \x escape. Values above
// 0x7F are rejected: this is a 7-bit byte escape.
func unescapeHex(rest []rune) (rune, []rune, error) {
	if len(rest) == 0 {
		return 0, nil, ErrTooShortEscape
	}
	hi, ok := hexDigit(rest[0])
	if !ok {
		return 0, nil, ErrInvalidCharInHex
	}
	rest = rest[1:]

	if len(rest) == 0 {
		return 0, nil, ErrTooShortEscape
	}
	lo, ok := hexDigit(rest[0])
	if !ok {
		return 0, nil, ErrInvalidCharInHex
	}
	rest = rest[1:]

	v := hi*16 + lo
	if v > 0x7F {
		return 0, nil, ErrValueOutOfHex
	}
	return rune(v), rest, nil
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

func containsRune(rs []rune, want rune) bool {
	for _, r := range rs {
		if r == want {
			return true
		}
	}
	return false
}
