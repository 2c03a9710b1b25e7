package decode

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	eof    rune = -1
	space       = ' '
	tab         = '\t'
	cr          = '\r'
	nl          = '\n'
	lparen      = '('
	rparen      = ')'
	comma       = ','
	hash        = '#'
	dollar      = '$'
	squote      = '\''
	dquote      = '"'
)

// class groups the characters the lexer handles the same way.
type class int

const (
	classWord class = iota
	classBlank
	classNewline
	classPunct
	classQuote
	classHash
	classDollar
	classEnd
)

func classify(r rune) class {
	switch r {
	case space, tab:
		return classBlank
	case nl:
		return classNewline
	case comma, lparen, rparen:
		return classPunct
	case squote, dquote:
		return classQuote
	case hash:
		return classHash
	case dollar:
		return classDollar
	case eof:
		return classEnd
	default:
		return classWord
	}
}

// delimits reports whether r ends a bare word.
func delimits(r rune) bool {
	switch classify(r) {
	case classBlank, classNewline, classPunct, classEnd:
		return true
	default:
		return false
	}
}

var punctuations = map[rune]rune{
	comma:  Comma,
	lparen: Lparen,
	rparen: Rparen,
}

// Scanner splits a chart file into tokens. Position always points at the
// character under the cursor.
type Scanner struct {
	src []byte
	off int

	Position
}

func Scan(r io.Reader) *Scanner {
	in, _ := io.ReadAll(r)
	return &Scanner{
		src:      bytes.ReplaceAll(in, []byte{cr, nl}, []byte{nl}),
		Position: Position{Line: 1, Column: 1},
	}
}

func (s *Scanner) Scan() Token {
	s.skip(classBlank)

	tok := Token{Position: s.Position}
	switch c := s.current(); classify(c) {
	case classEnd:
		tok.Type = EOF
	case classNewline:
		s.skip(classNewline)
		tok.Type = EOL
	case classPunct:
		tok.Type = punctuations[c]
		s.advance()
	case classQuote:
		s.scanQuoted(&tok)
	case classDollar:
		s.advance()
		if s.current() == lparen {
			s.scanCommand(&tok)
		} else {
			s.scanWord(&tok, Variable)
		}
	case classHash:
		if delimits(s.lookahead()) {
			s.scanComment(&tok)
		} else {
			s.scanWord(&tok, Literal)
		}
	default:
		s.scanWord(&tok, Literal)
	}
	return tok
}

func (s *Scanner) scanWord(tok *Token, kind rune) {
	start := s.off
	for !delimits(s.current()) {
		s.advance()
	}
	tok.Type = kind
	tok.Literal = string(s.src[start:s.off])
	if kind == Literal && isKeyword(tok.Literal) {
		tok.Type = Keyword
	}
}

// scanComment leaves the end of line in place so that it still yields an EOL.
func (s *Scanner) scanComment(tok *Token) {
	s.advance()
	start := s.off
	for c := s.current(); c != nl && c != eof; c = s.current() {
		s.advance()
	}
	tok.Type = Comment
	tok.Literal = strings.TrimSpace(string(s.src[start:s.off]))
}

func (s *Scanner) scanCommand(tok *Token) {
	s.advance()
	s.scanUntil(tok, rparen, Command)
}

func (s *Scanner) scanQuoted(tok *Token) {
	delim := s.current()
	s.advance()
	s.scanUntil(tok, delim, Literal)
}

// scanUntil reads up to delim and consumes it. The token is invalid when the
// input ends first.
func (s *Scanner) scanUntil(tok *Token, delim, kind rune) {
	start := s.off
	for c := s.current(); c != delim && c != eof; c = s.current() {
		s.advance()
	}
	tok.Literal = string(s.src[start:s.off])
	tok.Type = kind
	if s.current() != delim {
		tok.Type = Invalid
		return
	}
	s.advance()
}

func (s *Scanner) skip(c class) {
	for classify(s.current()) == c {
		s.advance()
	}
}

func (s *Scanner) current() rune {
	if s.off >= len(s.src) {
		return eof
	}
	r, _ := utf8.DecodeRune(s.src[s.off:])
	return r
}

func (s *Scanner) lookahead() rune {
	if s.off >= len(s.src) {
		return eof
	}
	_, size := utf8.DecodeRune(s.src[s.off:])
	if s.off+size >= len(s.src) {
		return eof
	}
	r, _ := utf8.DecodeRune(s.src[s.off+size:])
	return r
}

func (s *Scanner) advance() {
	if s.off >= len(s.src) {
		return
	}
	r, size := utf8.DecodeRune(s.src[s.off:])
	s.off += size
	if r == nl {
		s.Line++
		s.Column = 1
		return
	}
	s.Column++
}
