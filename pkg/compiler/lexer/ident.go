package lexer

import "unicode"

// Identifier classification per the UAX #31 default identifier
// definitions, composed from the standard library's Unicode property
// tables. Digits and '_' are continue-only; '_' therefore cannot start
// an identifier.
var (
	identStart = []*unicode.RangeTable{
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
	}
	identContinue = []*unicode.RangeTable{
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
	}
	identExclude = []*unicode.RangeTable{
		unicode.Pattern_Syntax, unicode.Pattern_White_Space,
	}
)

func isIdentStart(r rune) bool {
	return unicode.In(r, identStart...) && !unicode.In(r, identExclude...)
}

func isIdentContinue(r rune) bool {
	return unicode.In(r, identContinue...) && !unicode.In(r, identExclude...)
}
