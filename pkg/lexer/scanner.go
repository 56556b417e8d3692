package lexer

import (
	"strconv"
	"unicode"
)

// stateKind enumerates the variants of the scanner's finite-state machine.
type stateKind uint8

const (
	stCommon stateKind = iota
	stBlockComment
	stBlockCommentAst
	stLineComment
	stOperator
	stIdent
	stString
	stStringEsc
	stNumber
	stDecimal
)

// state is the live machine state plus whatever the variant needs:
// the pending first character of a two-character operator, the byte
// offset where the current span began, and the numeric base (0 while
// still undetermined, just past a leading zero).
type state struct {
	kind  stateKind
	first rune
	start int
	radix int
}

// action is a transition rule's verdict on the character it was offered.
type action uint8

const (
	// consumed: the character belongs to the current state; advance.
	consumed action = iota
	// boundary: the token ending before this character is complete;
	// the same character must be offered again under the new state.
	boundary
)

type scanner struct {
	src        string
	tokens     []Token
	symbols    *SymbolTable
	state      state
	tokenStart Position
	pos        Position
}

// Scan tokenizes src in a single pass. It never fails: malformed runs
// become Error tokens, and the token list always ends with exactly one
// zero-width EOF token.
func Scan(src string) *Text {
	s := &scanner{
		src:     src,
		symbols: NewSymbolTable(),
		pos:     Position{Line: 1, Col: 1},
	}
	for i, r := range src {
		for s.step(r, i) == boundary {
		}
		s.pos = s.pos.Advance(r)
	}
	s.finalize()
	return &Text{Symbols: s.symbols.Table(), Tokens: s.tokens}
}

func (s *scanner) step(r rune, i int) action {
	switch s.state.kind {
	case stCommon:
		return s.stepCommon(r, i)
	case stBlockComment:
		return s.stepBlockComment(r, false)
	case stBlockCommentAst:
		return s.stepBlockComment(r, true)
	case stLineComment:
		return s.stepLineComment(r)
	case stOperator:
		return s.stepOperator(s.state.first, r)
	case stIdent:
		return s.stepIdent(r, i)
	case stString:
		return s.stepString(r, false, i)
	case stStringEsc:
		return s.stepString(r, true, i)
	case stNumber:
		return s.stepNumber(r, i)
	case stDecimal:
		return s.stepDecimal(r, i)
	}
	return consumed
}

func (s *scanner) stepCommon(r rune, i int) action {
	// Every attempt at a fresh token starts here, whitespace included;
	// the recorded start is simply overwritten until a real token begins.
	s.tokenStart = s.pos
	switch {
	case unicode.IsSpace(r):
		return consumed
	case r == '"':
		s.state = state{kind: stString, start: i + 1}
		return consumed
	case r == '/' || r == ':' || r == '<' || r == '>':
		s.state = state{kind: stOperator, first: r}
		return consumed
	case r == '0':
		s.state = state{kind: stNumber, start: i}
		return consumed
	case r >= '1' && r <= '9':
		s.state = state{kind: stNumber, start: i, radix: 10}
		return consumed
	case unicode.IsLetter(r):
		s.state = state{kind: stIdent, start: i}
		return consumed
	}
	return s.pushInclusive(Plain(signKind(r)))
}

func signKind(r rune) Kind {
	switch r {
	case '!':
		return KindSignExclamation
	case '#':
		return KindSignNumber
	case '(':
		return KindSignLParen
	case ')':
		return KindSignRParen
	case '*':
		return KindSignAsterisk
	case '+':
		return KindSignPlus
	case ',':
		return KindSignComma
	case '-':
		return KindSignMinus
	case '.':
		return KindSignFullStop
	case ';':
		return KindSignSemicolon
	case '=':
		return KindSignEquals
	case '?':
		return KindSignQuestion
	}
	return KindError
}

func (s *scanner) stepOperator(first, r rune) action {
	if first == '/' && r == '*' {
		s.state = state{kind: stBlockComment}
		return consumed
	}
	if first == '/' && r == '/' {
		s.state = state{kind: stLineComment}
		return consumed
	}
	s.state = state{kind: stCommon}
	switch {
	case first == '/':
		return s.pushExclusive(Plain(KindOpSolidus))
	case first == ':' && r == '=':
		return s.pushInclusive(Plain(KindOpAssign))
	case first == '<' && r == '=':
		return s.pushInclusive(Plain(KindOpLessEqual))
	case first == '<':
		return s.pushExclusive(Plain(KindOpLess))
	case first == '>' && r == '=':
		return s.pushInclusive(Plain(KindOpGreaterEqual))
	case first == '>':
		return s.pushExclusive(Plain(KindOpGreater))
	}
	// A first character with no valid completion, e.g. a bare ':'.
	return s.pushExclusive(Plain(KindError))
}

func (s *scanner) stepIdent(r rune, i int) action {
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return consumed
	}
	spelling := s.src[s.state.start:i]
	s.state = state{kind: stCommon}
	if kw, ok := keywords[spelling]; ok {
		return s.pushExclusive(Plain(kw))
	}
	return s.pushExclusive(IdentLexeme(s.symbols.Intern(spelling)))
}

func (s *scanner) stepString(r rune, escaped bool, i int) action {
	if escaped {
		// The escaped character is accepted unconditionally.
		s.state.kind = stString
		return consumed
	}
	switch r {
	case '"':
		text := s.src[s.state.start:i]
		s.state = state{kind: stCommon}
		return s.pushInclusive(StringLexeme(text))
	case '\\':
		s.state.kind = stStringEsc
		return consumed
	}
	return consumed
}

func (s *scanner) stepNumber(r rune, i int) action {
	radix := s.state.radix
	if radix == 0 {
		switch r {
		case 'b':
			radix = 2
		case 'o':
			radix = 8
		case 'x':
			radix = 16
		default:
			radix = 10
		}
		if radix != 10 {
			// The digit span restarts just past the prefix character.
			s.state = state{kind: stNumber, start: i + 1, radix: radix}
			return consumed
		}
		// Plain decimal: the leading zero stays part of the span.
		s.state.radix = 10
	}
	if isDigit(r, radix) {
		return consumed
	}
	if r == '.' && radix == 10 {
		s.state.kind = stDecimal
		return consumed
	}
	span := s.src[s.state.start:i]
	s.state = state{kind: stCommon}
	n, err := strconv.ParseUint(span, radix, 32)
	if err != nil {
		return s.pushExclusive(Plain(KindError))
	}
	return s.pushExclusive(NumberLexeme(uint32(n)))
}

func (s *scanner) stepDecimal(r rune, i int) action {
	if r >= '0' && r <= '9' {
		return consumed
	}
	span := s.src[s.state.start:i]
	s.state = state{kind: stCommon}
	d, err := strconv.ParseFloat(span, 64)
	if err != nil {
		return s.pushExclusive(Plain(KindError))
	}
	return s.pushExclusive(DecimalLexeme(d))
}

func (s *scanner) stepBlockComment(r rune, afterAsterisk bool) action {
	if afterAsterisk {
		switch r {
		case '*':
			// Still one asterisk away from a possible close.
		case '/':
			s.state = state{kind: stCommon}
		default:
			s.state.kind = stBlockComment
		}
	} else if r == '*' {
		s.state.kind = stBlockCommentAst
	}
	return consumed
}

func (s *scanner) stepLineComment(r rune) action {
	if r == '\n' {
		s.state = state{kind: stCommon}
	}
	return consumed
}

func (s *scanner) pushInclusive(l Lexeme) action {
	s.tokens = append(s.tokens, Token{Lexeme: l, Start: s.tokenStart, End: IncludedAt(s.pos)})
	return consumed
}

func (s *scanner) pushExclusive(l Lexeme) action {
	s.tokens = append(s.tokens, Token{Lexeme: l, Start: s.tokenStart, End: ExcludedAt(s.pos)})
	return boundary
}

// finalize resolves whatever token is still open at end of input and
// appends the terminal EOF token. Unterminated comments produce nothing;
// unterminated strings produce an Error token.
func (s *scanner) finalize() {
	switch s.state.kind {
	case stCommon, stBlockComment, stBlockCommentAst, stLineComment:
	case stOperator:
		s.stepOperator(s.state.first, 0)
	case stIdent:
		s.stepIdent(0, len(s.src))
	case stString, stStringEsc:
		s.pushExclusive(Plain(KindError))
	case stNumber:
		s.stepNumber(0, len(s.src))
	case stDecimal:
		s.stepDecimal(0, len(s.src))
	}
	s.tokenStart = s.pos
	s.pushExclusive(Plain(KindEOF))
}

// isDigit reports whether r is a digit in the given base, accepting
// both letter cases for bases above ten.
func isDigit(r rune, radix int) bool {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'z':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		v = int(r-'A') + 10
	default:
		return false
	}
	return v < radix
}
