package exact

import (
	"errors"
	"math/big"
	"strconv"
	"unicode/utf8"
)

type token struct {
	kind tokenKind
	text string
	// num is the literal value carried by a tokenNum.
	num *Number
	col int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.col)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an integer or float literal.
	tokenNum
	// tokenIdent is a variable or function name.
	tokenIdent
	// tokenOp is an operator: + - * / ^ % !
	tokenOp
	// tokenOpen and tokenClose are ( and ).
	tokenOpen
	tokenClose
	// tokenSep is the argument separator ,
	tokenSep
	// tokenAssign is =
	tokenAssign
	// tokenErr is a rune matching no rule. The parser rejects it.
	tokenErr
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSep:
		return "Sep"
	case tokenAssign:
		return "Assign"
	case tokenErr:
		return "Err"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// lexer scans tokens from a string. It is a pure producer: lexing the same
// text always yields the same token sequence, and tokens are only produced as
// the parser asks for them.
type lexer struct {
	src string
	pos int // byte offset of the next rune
	col int // runes consumed so far
}

func lex(src string) *lexer {
	return &lexer{src: src}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// take consumes source bytes up to end. Only ASCII sections may be consumed
// this way.
func (l *lexer) take(end int) {
	l.col += end - l.pos
	l.pos = end
}

// next scans the next token. After the input is exhausted it returns EOF
// tokens forever.
func (l *lexer) next() token {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
		l.col++
	}
	col := l.col + 1
	if l.pos >= len(l.src) {
		return token{kind: tokenEOF, col: col}
	}
	c := l.src[l.pos]
	switch {
	case isDigit(c):
		return l.scanNumber(col)
	case isLetter(c):
		return l.scanIdent(col)
	}
	switch c {
	case '+', '-', '*', '/', '^', '%', '!':
		l.take(l.pos + 1)
		return token{kind: tokenOp, text: string(c), col: col}
	case '(':
		l.take(l.pos + 1)
		return token{kind: tokenOpen, text: "(", col: col}
	case ')':
		l.take(l.pos + 1)
		return token{kind: tokenClose, text: ")", col: col}
	case ',':
		l.take(l.pos + 1)
		return token{kind: tokenSep, text: ",", col: col}
	case '=':
		l.take(l.pos + 1)
		return token{kind: tokenAssign, text: "=", col: col}
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += sz
	l.col++
	return token{kind: tokenErr, text: string(r), col: col}
}

// scanNumber scans an integer or float literal with maximal munch: a partial
// match backs off to the longest valid prefix, so "1e" is the integer 1
// followed by the identifier e, and "0x" with no hex digits is 0 followed by
// x. Floats require a leading digit and either a decimal point or an
// exponent; everything else is an arbitrary-precision integer, with lowercase
// 0x and 0b prefixes selecting base 16 and 2.
func (l *lexer) scanNumber(col int) token {
	src, p := l.src, l.pos
	if src[p] == '0' && p+1 < len(src) && (src[p+1] == 'x' || src[p+1] == 'b') {
		digit := isHexDigit
		base := 16
		if src[p+1] == 'b' {
			digit = func(c byte) bool { return c == '0' || c == '1' }
			base = 2
		}
		q := p + 2
		for q < len(src) && digit(src[q]) {
			q++
		}
		if q > p+2 {
			i, ok := new(big.Int).SetString(src[p+2:q], base)
			if !ok {
				panic("exact: invalid base-" + strconv.Itoa(base) + " literal " + strconv.Quote(src[p:q]))
			}
			text := src[p:q]
			l.take(q)
			return token{kind: tokenNum, text: text, num: intNum(i), col: col}
		}
		// No digits after the prefix: the 0 stands alone.
	}
	q := p
	for q < len(src) && isDigit(src[q]) {
		q++
	}
	end := q
	float := false
	if q < len(src) && src[q] == '.' {
		float = true
		q++
		for q < len(src) && isDigit(src[q]) {
			q++
		}
		end = q
	}
	if q < len(src) && (src[q] == 'e' || src[q] == 'E') {
		e := q + 1
		if e < len(src) && (src[e] == '+' || src[e] == '-') {
			e++
		}
		d := e
		for d < len(src) && isDigit(src[d]) {
			d++
		}
		if d > e {
			// An exponent counts only with at least one digit; otherwise
			// the e starts an identifier token.
			float = true
			end = d
		}
	}
	text := src[p:end]
	l.take(end)
	if float {
		// ParseFloat reports a range error for literals like 1e999 but still
		// returns the saturated infinity, which is the value we want.
		f, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			panic("exact: invalid float literal " + strconv.Quote(text) + ": " + err.Error())
		}
		return token{kind: tokenNum, text: text, num: NewFloat(f), col: col}
	}
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		panic("exact: invalid integer literal " + strconv.Quote(text))
	}
	return token{kind: tokenNum, text: text, num: intNum(i), col: col}
}

// scanIdent scans [A-Za-z][A-Za-z0-9_]*.
func (l *lexer) scanIdent(col int) token {
	src, p := l.src, l.pos
	q := p + 1
	for q < len(src) && (isLetter(src[q]) || isDigit(src[q]) || src[q] == '_') {
		q++
	}
	text := src[p:q]
	l.take(q)
	return token{kind: tokenIdent, text: text, col: col}
}
