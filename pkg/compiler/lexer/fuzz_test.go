package lexer_test

import (
	"testing"
	"unicode/utf8"

	"github.com/miqro-lang/miqro/pkg/compiler/lexer"
)

func FuzzScanner(f *testing.F) {
	f.Add("let x = 10;")
	f.Add(`"\u{1F600}" '\x41'`)
	f.Add("/* unterminated")
	f.Add("0b1 0o7 0xFF 3.14 07 >>= :: ->")
	f.Add("// comment\nfunc αβγ() { return $ }")
	f.Add(`"abc`)

	f.Fuzz(func(t *testing.T, src string) {
		s := lexer.NewScanner(src)

		// Every non-EOF token consumes at least one scalar value, so the
		// token count is bounded by the source length.
		limit := utf8.RuneCountInString(src) + 1
		for i := 0; ; i++ {
			tok := s.Next()
			if tok.Line < 1 || tok.Column < 0 {
				t.Fatalf("bad position on %v", tok)
			}
			if tok.Kind == lexer.KindEOF {
				break
			}
			if i >= limit {
				t.Fatalf("scanner did not terminate on %q", src)
			}
		}
	})
}

func FuzzUnescape(f *testing.F) {
	f.Add(`plain`)
	f.Add(`\n\t\u{1F600}\x41`)
	f.Add(`\u{`)
	f.Add(`\`)

	f.Fuzz(func(t *testing.T, src string) {
		out, err := lexer.Unescape(src)
		if err == nil && !utf8.ValidString(out) {
			t.Fatalf("decoded %q to invalid UTF-8 %q", src, out)
		}
	})
}
