package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	// val is the numeric value of a tokenNum.
	val float64
	// pos is the 1-based rune column of the token's first rune.
	pos int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal.
	tokenNum
	// tokenIdent is a constant or function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenLparen and tokenRparen are ( and ).
	tokenLparen
	tokenRparen
	// tokenComma is a function argument separator.
	tokenComma
)

var tokenKindNames = [...]string{"None", "EOF", "Num", "Ident", "Op", "Lparen", "Rparen", "Comma"}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/%^!√"

type lexer struct {
	src string
	// off is the byte offset of the next rune.
	off int
	// rune is the 1-based column of the next rune.
	rune int
	p    lexToken
	eof  bool
}

func lex(src string) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("calc: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("calc: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, bool) {
	if l.off >= len(l.src) {
		return 0, false
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += sz
	l.rune++
	return r, true
}

// unreadRune unreads the rune r and updates the lexer's position info.
func (l *lexer) unreadRune(r rune) {
	l.off -= utf8.RuneLen(r)
	l.rune--
}

// next scans the next token from the input. The end of the input yields a
// single tokenEOF; scanning again after that, unless the EOF token was
// pushed, is a programming error and panics.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		panic("calc: scan after EOF")
	}
	tok := lexToken{pos: l.rune}
	for {
		r, ok := l.readRune()
		if !ok {
			tok.kind = tokenEOF
			l.eof = true
			return tok, nil
		}
		switch {
		case unicode.IsSpace(r):
			tok.pos++
			continue
		case '0' <= r && r <= '9':
			l.unreadRune(r)
			return l.scanNum(tok.pos)
		case r == '_', unicode.IsLetter(r):
			l.unreadRune(r)
			return l.scanIdent(tok.pos), nil
		case r == '(':
			tok.text, tok.kind = "(", tokenLparen
			return tok, nil
		case r == ')':
			tok.text, tok.kind = ")", tokenRparen
			return tok, nil
		case r == ',':
			tok.text, tok.kind = ",", tokenComma
			return tok, nil
		default:
			if strings.ContainsRune(Operators, r) {
				tok.text, tok.kind = string(r), tokenOp
				return tok, nil
			}
			return tok, &LexError{Text: string(r), Col: tok.pos}
		}
	}
}

// scanNum scans a numeric literal: digits, at most one decimal point, and an
// optional exponent marker with an optional sign. The text is converted at
// scan time; text that doesn't parse, like "3e", is an invalid number, but
// literals whose magnitude overflows float64 round to an infinity.
func (l *lexer) scanNum(pos int) (lexToken, error) {
	start := l.off
	l.digits()
	if r, ok := l.readRune(); ok {
		if r == '.' {
			l.digits()
		} else {
			l.unreadRune(r)
		}
	}
	if r, ok := l.readRune(); ok {
		if r == 'e' || r == 'E' {
			if r, ok := l.readRune(); ok && r != '+' && r != '-' {
				l.unreadRune(r)
			}
			l.digits()
		} else {
			l.unreadRune(r)
		}
	}
	tok := lexToken{text: l.src[start:l.off], kind: tokenNum, pos: pos}
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return tok, &LexError{Text: tok.text, Kind: "number", Col: pos}
	}
	tok.val = v
	return tok, nil
}

// digits consumes a possibly empty run of decimal digits.
func (l *lexer) digits() {
	for {
		r, ok := l.readRune()
		if !ok {
			return
		}
		if r < '0' || r > '9' {
			l.unreadRune(r)
			return
		}
	}
}

// scanIdent scans an identifier: a letter or underscore, then any run of
// letters, digits, and underscores. Letters are Unicode letters, so π is an
// identifier, but operator glyphs like √ are not.
func (l *lexer) scanIdent(pos int) lexToken {
	start := l.off
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		l.unreadRune(r)
		break
	}
	return lexToken{text: l.src[start:l.off], kind: tokenIdent, pos: pos}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the offending text: the malformed number, or the single
	// unexpected rune.
	Text string
	// Kind is "number" for a malformed numeric literal, or the empty string
	// for a rune that cannot start any token.
	Kind string
	// Col is the 1-based rune column of the offending token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "unexpected character " + strconv.Quote(err.Text) + " at " + pos
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
