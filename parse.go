package exact

import (
	"sort"
	"strconv"
)

// Expr = num | name | name '=' Expr | name '(' Args ')' | name '(' Params ')' '=' Expr
//      | '-' Expr | Expr '!' | Expr op Expr | '(' Expr ')'
// op   = '+' | '-' | '*' | '/' | '%' | '^'
//
// Implicit multiplication: a value immediately followed by '(' or an
// identifier multiplies, so 2(3+4) and 2x parse.

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression so it can be evaluated with a context. Parsing
// is pure: it has no side effects, and parsing the same text twice yields
// equivalent expressions. The whole input must form one expression; trailing
// tokens are an error, and no partial result is returned on error.
func Parse(src string) (*Expr, error) {
	p := parser{lex: lex(src)}
	p.cur = p.lex.next()
	n, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokenEOF {
		return nil, &ParseError{Col: p.cur.col, Msg: "unexpected token " + strconv.Quote(p.cur.text) + " after expression"}
	}
	return &Expr{n: n}, nil
}

// String creates a string representation of the parsed expression with every
// operation parenthesized.
func (e *Expr) String() string {
	return e.n.String()
}

// Vars returns the sorted variable names referenced by the expression,
// including parameter references inside function definition bodies.
func (e *Expr) Vars() []string {
	set := make(map[string]bool)
	e.n.vars(set)
	names := make([]string, 0, len(set))
	for k := range set {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// parser is a Pratt parser with one token of lookahead in cur.
type parser struct {
	lex *lexer
	cur token
}

// advance returns the lookahead token and scans the next one.
func (p *parser) advance() token {
	tok := p.cur
	p.cur = p.lex.next()
	return tok
}

// Binding powers. An infix operator binds a left operand when its left power
// is at least the enclosing minimum and recurses into its right operand with
// its right power as the new minimum, so left power < right power gives left
// associativity and the reverse gives right associativity.
const (
	negBP  = 9  // right power of unary minus
	factBP = 11 // left power of postfix factorial
)

// infixBP returns the binding powers and node kind for an explicit infix
// operator. The kind is nodeNone for any other token.
func infixBP(tok token) (l, r int8, kind nodeKind) {
	if tok.kind != tokenOp {
		return 0, 0, nodeNone
	}
	switch tok.text {
	case "+":
		return 1, 2, nodeAdd
	case "-":
		return 1, 2, nodeSub
	case "*":
		return 3, 4, nodeMul
	case "/":
		return 3, 4, nodeDiv
	case "%":
		return 3, 4, nodeMod
	case "^":
		// Right-associative: 2^3^4 is 2^(3^4).
		return 6, 5, nodePow
	}
	return 0, 0, nodeNone
}

// parseExpr parses a term, then consumes infix and postfix operators whose
// left binding power is at least min.
func (p *parser) parseExpr(min int8) (*node, error) {
	tok := p.advance()
	var n *node
	switch tok.kind {
	case tokenNum:
		n = &node{kind: nodeNum, num: tok.num}
	case tokenIdent:
		var err error
		n, err = p.identExpr(tok)
		if err != nil {
			return nil, err
		}
	case tokenOpen:
		sub, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokenClose {
			return nil, &ParseError{Col: p.cur.col, Msg: `expected ")"`}
		}
		p.advance()
		n = sub
	case tokenOp:
		if tok.text != "-" {
			return nil, &ParseError{Col: tok.col, Msg: "unexpected operator " + strconv.Quote(tok.text)}
		}
		rhs, err := p.parseExpr(negBP)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeNeg, left: rhs}
	case tokenEOF:
		return nil, &ParseError{Col: tok.col, Msg: "unexpected end of input"}
	case tokenErr:
		return nil, &ParseError{Col: tok.col, Msg: "unrecognized character " + strconv.Quote(tok.text)}
	default:
		return nil, &ParseError{Col: tok.col, Msg: "unexpected token " + strconv.Quote(tok.text)}
	}
	for {
		op := p.cur
		if op.kind == tokenEOF {
			break
		}
		if op.kind == tokenOp && op.text == "!" {
			if factBP < min {
				break
			}
			p.advance()
			n = &node{kind: nodeFact, left: n}
			continue
		}
		l, r, kind := infixBP(op)
		explicit := kind != nodeNone
		if !explicit {
			// A value directly followed by ( or an identifier is an
			// implicit multiplication at the binding power of *.
			if op.kind != tokenOpen && op.kind != tokenIdent {
				break
			}
			l, r, kind = 3, 4, nodeMul
		}
		if l < min {
			break
		}
		if explicit {
			p.advance()
		}
		rhs, err := p.parseExpr(r)
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
	return n, nil
}

// identExpr parses the expression beginning at an identifier: a function
// call or definition when ( follows, an assignment when = follows, and a
// variable reference otherwise. Calls and definitions share the argument
// parse; a definition is recognized by the = after the closing parenthesis,
// at which point every argument must have been a bare variable reference.
func (p *parser) identExpr(tok token) (*node, error) {
	switch p.cur.kind {
	case tokenOpen:
		p.advance()
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokenAssign {
			return &node{kind: nodeCall, name: tok.text, args: args}, nil
		}
		p.advance()
		body, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		params := make([]string, len(args))
		for i, a := range args {
			if a.kind != nodeName {
				return nil, &ParseError{Col: tok.col, Msg: "function parameters must be identifiers"}
			}
			params[i] = a.name
		}
		return &node{kind: nodeFuncDef, name: tok.text, params: params, left: body}, nil
	case tokenAssign:
		p.advance()
		v, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeAssign, name: tok.text, left: v}, nil
	default:
		return &node{kind: nodeName, name: tok.text}, nil
	}
}

// arguments parses a possibly empty comma-separated argument list and its
// closing parenthesis.
func (p *parser) arguments() ([]*node, error) {
	if p.cur.kind == tokenClose {
		p.advance()
		return nil, nil
	}
	var args []*node
	for {
		a, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		switch p.cur.kind {
		case tokenSep:
			p.advance()
		case tokenClose:
			p.advance()
			return args, nil
		default:
			return nil, &ParseError{Col: p.cur.col, Msg: `expected "," or ")" in argument list`}
		}
	}
}
