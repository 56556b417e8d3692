package lexer

import (
	"fmt"
	"io"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
	ansiDim   = "\033[2m"
)

// Dump writes a readable rendering of the scan result to w, one token
// per line followed by the interned symbol list. Colors are ANSI escapes
// and should only be enabled when w is a terminal.
func (t *Text) Dump(w io.Writer, color bool) {
	paint := func(code, s string) string {
		if !color {
			return s
		}
		return code + s + ansiReset
	}

	fmt.Fprintf(w, "tokens (%d):\n", len(t.Tokens))
	for _, tok := range t.Tokens {
		span := paint(ansiDim, fmt.Sprintf("%s%s", tok.Start, tok.End))
		lex := tok.Lexeme.String()
		switch tok.Lexeme.Kind {
		case KindError:
			lex = paint(ansiRed, lex)
		case KindIdent:
			lex = paint(ansiCyan, lex)
		case KindString, KindNumber32, KindDecimal64:
			lex = paint(ansiGreen, lex)
		}
		fmt.Fprintf(w, "  %s %s\n", span, lex)
	}

	fmt.Fprintf(w, "symbols (%d):\n", len(t.Symbols))
	for id, name := range t.Symbols {
		fmt.Fprintf(w, "  %s %s\n", paint(ansiDim, fmt.Sprintf("#%d", id)), name)
	}
}
