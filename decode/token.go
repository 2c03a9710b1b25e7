package decode

import (
	"fmt"
)

const (
	kwSet     = "set"
	kwAxis    = "axis"
	kwMap     = "map"
	kwTo      = "to"
	kwWith    = "with"
	kwNote    = "note"
	kwInclude = "include"
	kwDeclare = "declare"
)

func isKeyword(str string) bool {
	switch str {
	case kwSet, kwAxis, kwMap, kwTo, kwWith, kwNote, kwInclude, kwDeclare:
		return true
	default:
		return false
	}
}

// Token types.
const (
	Invalid rune = -(iota + 1)
	Keyword
	Literal
	Variable
	Command
	Comment
	Comma
	Lparen
	Rparen
	EOL
	EOF
)

var typeNames = map[rune]string{
	Invalid:  "invalid",
	Keyword:  "keyword",
	Literal:  "literal",
	Variable: "variable",
	Command:  "command",
	Comment:  "comment",
	Comma:    "comma",
	Lparen:   "lparen",
	Rparen:   "rparen",
	EOL:      "eol",
	EOF:      "eof",
}

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Literal string
	Type    rune
	Position
}

// String gives punctuation and line markers as <name> and the other tokens
// as name(literal).
func (t Token) String() string {
	name, ok := typeNames[t.Type]
	if !ok {
		name = "unknown"
	}
	switch t.Type {
	case Comma, Lparen, Rparen, EOL, EOF:
		return "<" + name + ">"
	default:
		return fmt.Sprintf("%s(%s)", name, t.Literal)
	}
}
