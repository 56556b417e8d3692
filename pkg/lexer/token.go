package lexer

import (
	"fmt"
	"strconv"
)

// Kind identifies the lexeme variant carried by a token.
type Kind uint8

const (
	KindError Kind = iota
	KindEOF

	// Single-character signs.
	KindSignExclamation // !
	KindSignNumber      // #
	KindSignLParen      // (
	KindSignRParen      // )
	KindSignAsterisk    // *
	KindSignPlus        // +
	KindSignComma       // ,
	KindSignMinus       // -
	KindSignFullStop    // .
	KindSignSemicolon   // ;
	KindSignEquals      // =
	KindSignQuestion    // ?

	// Operators.
	KindOpSolidus      // /
	KindOpAssign       // :=
	KindOpLess         // <
	KindOpLessEqual    // <=
	KindOpGreater      // >
	KindOpGreaterEqual // >=

	// Keywords.
	KindKwBegin
	KindKwCall
	KindKwConst
	KindKwDo
	KindKwEnd
	KindKwIf
	KindKwOdd
	KindKwProcedure
	KindKwThen
	KindKwVar
	KindKwWhile

	// Payload-carrying lexemes.
	KindIdent     // interned symbol id
	KindString    // raw text between quotes
	KindNumber32  // unsigned 32-bit integer
	KindDecimal64 // 64-bit float
)

var kindNames = map[Kind]string{
	KindError:           "Error",
	KindEOF:             "EOF",
	KindSignExclamation: "!",
	KindSignNumber:      "#",
	KindSignLParen:      "(",
	KindSignRParen:      ")",
	KindSignAsterisk:    "*",
	KindSignPlus:        "+",
	KindSignComma:       ",",
	KindSignMinus:       "-",
	KindSignFullStop:    ".",
	KindSignSemicolon:   ";",
	KindSignEquals:      "=",
	KindSignQuestion:    "?",
	KindOpSolidus:       "/",
	KindOpAssign:        ":=",
	KindOpLess:          "<",
	KindOpLessEqual:     "<=",
	KindOpGreater:       ">",
	KindOpGreaterEqual:  ">=",
	KindKwBegin:         "begin",
	KindKwCall:          "call",
	KindKwConst:         "const",
	KindKwDo:            "do",
	KindKwEnd:           "end",
	KindKwIf:            "if",
	KindKwOdd:           "odd",
	KindKwProcedure:     "procedure",
	KindKwThen:          "then",
	KindKwVar:           "var",
	KindKwWhile:         "while",
	KindIdent:           "identifier",
	KindString:          "string",
	KindNumber32:        "number",
	KindDecimal64:       "decimal",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// keywords maps reserved spellings to their kinds, case-sensitively.
var keywords = map[string]Kind{
	"begin":     KindKwBegin,
	"call":      KindKwCall,
	"const":     KindKwConst,
	"do":        KindKwDo,
	"end":       KindKwEnd,
	"if":        KindKwIf,
	"odd":       KindKwOdd,
	"procedure": KindKwProcedure,
	"then":      KindKwThen,
	"var":       KindKwVar,
	"while":     KindKwWhile,
}

// Lexeme is the classified content of a token. Kind selects the variant;
// at most one of the payload fields is meaningful for any given kind.
type Lexeme struct {
	Kind Kind
	Sym  Symbol  // KindIdent
	Text string  // KindString
	Num  uint32  // KindNumber32
	Dec  float64 // KindDecimal64
}

// Plain builds a payload-free lexeme.
func Plain(k Kind) Lexeme {
	return Lexeme{Kind: k}
}

// IdentLexeme builds an identifier reference to an interned symbol.
func IdentLexeme(sym Symbol) Lexeme {
	return Lexeme{Kind: KindIdent, Sym: sym}
}

// StringLexeme builds a string literal holding the text between quotes.
func StringLexeme(text string) Lexeme {
	return Lexeme{Kind: KindString, Text: text}
}

// NumberLexeme builds an unsigned integer literal.
func NumberLexeme(n uint32) Lexeme {
	return Lexeme{Kind: KindNumber32, Num: n}
}

// DecimalLexeme builds a floating-point literal.
func DecimalLexeme(d float64) Lexeme {
	return Lexeme{Kind: KindDecimal64, Dec: d}
}

func (l Lexeme) String() string {
	switch l.Kind {
	case KindIdent:
		return fmt.Sprintf("identifier#%d", l.Sym)
	case KindString:
		return "string " + strconv.Quote(l.Text)
	case KindNumber32:
		return fmt.Sprintf("number %d", l.Num)
	case KindDecimal64:
		return fmt.Sprintf("decimal %v", l.Dec)
	}
	return l.Kind.String()
}

// Token is one classified span of source text.
type Token struct {
	Lexeme Lexeme
	Start  Position
	End    Bound
}

func (t Token) String() string {
	return fmt.Sprintf("%s%s %s", t.Start, t.End, t.Lexeme)
}

// Text is the result of one scan: the token sequence and the interned
// symbol spellings, ordered so that Symbols[id] recovers the spelling
// behind an identifier token. Immutable once returned by Scan.
type Text struct {
	Symbols []string
	Tokens  []Token
}
