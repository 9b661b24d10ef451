package exact_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/exactcalc/exact"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"float", "1.5", "1.5"},
		{"ident", "x", "x"},
		{"add", "1+2+3", "((1 + 2) + 3)"},
		{"sub", "1-2-3", "((1 - 2) - 3)"},
		{"addmul", "1+2*3", "(1 + (2 * 3))"},
		{"muladd", "1*2+3", "((1 * 2) + 3)"},
		{"mod", "7%3+1", "((7 % 3) + 1)"},
		{"divdiv", "8/4/2", "((8 / 4) / 2)"},
		{"pow", "2^3^4", "(2 ^ (3 ^ 4))"},
		{"powmul", "2*3^4", "(2 * (3 ^ 4))"},
		{"negpow", "-2^2", "((-2) ^ 2)"},
		{"negmul", "-2*3", "((-2) * 3)"},
		{"negneg", "--2", "(-(-2))"},
		{"paren", "(1+2)*3", "((1 + 2) * 3)"},
		{"fact", "5!", "(5!)"},
		{"factfact", "3!!", "((3!)!)"},
		{"factpow", "2^3!", "(2 ^ (3!))"},
		{"negfact", "-3!", "(-(3!))"},
		{"implicit paren", "2(3+4)", "(2 * (3 + 4))"},
		{"implicit ident", "2x", "(2 * x)"},
		{"implicit idents", "a b", "(a * b)"},
		{"implicit close", "(1+2)(3+4)", "((1 + 2) * (3 + 4))"},
		{"call", "f(1, 2)", "f(1, 2)"},
		{"call empty", "f()", "f()"},
		{"call nested", "f(g(x), 2+3)", "f(g(x), (2 + 3))"},
		{"assign", "x = 1+2", "(x = (1 + 2))"},
		{"assign chain", "x = y = 1", "(x = (y = 1))"},
		{"funcdef", "f(x, y) = x+y", "f(x, y) = (x + y)"},
		{"funcdef empty", "f() = 42", "f() = 42"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := exact.Parse(c.src)
			if err != nil {
				t.Fatalf("parsing %q: %v", c.src, err)
			}
			if got := e.String(); got != c.want {
				t.Errorf("parsing %q: want %s, got %s", c.src, c.want, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"empty", "", "unexpected end of input"},
		{"dangling op", "1+", "unexpected end of input"},
		{"leading op", "*1", "unexpected operator"},
		{"unclosed", "(1+2", `expected ")"`},
		{"trailing", "1 2", "after expression"},
		{"trailing close", "1)", "after expression"},
		{"bad rune", "$", "unrecognized character"},
		{"bad params", "f(1) = 2", "function parameters must be identifiers"},
		{"bad args", "f(1 2)", `expected "," or ")" in argument list`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := exact.Parse(c.src)
			if err == nil {
				t.Fatalf("parsing %q: expected error", c.src)
			}
			perr, ok := err.(*exact.ParseError)
			if !ok {
				t.Fatalf("parsing %q: want *ParseError, got %T: %v", c.src, err, err)
			}
			if !strings.Contains(perr.Error(), c.msg) {
				t.Errorf("parsing %q: want message containing %q, got %q", c.src, c.msg, perr.Error())
			}
			if perr.Pos() < 1 {
				t.Errorf("parsing %q: position %d out of range", c.src, perr.Pos())
			}
		})
	}
}

func TestVars(t *testing.T) {
	cases := []struct {
		src  string
		want []string
	}{
		{"1+2", nil},
		{"x", []string{"x"}},
		{"x+y*x", []string{"x", "y"}},
		{"f(a, b+c)", []string{"a", "b", "c"}},
		{"f(a, b) = a+b+c", []string{"a", "b", "c"}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			e, err := exact.Parse(c.src)
			if err != nil {
				t.Fatal(err)
			}
			got := e.Vars()
			if len(got) == 0 && len(c.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("vars of %q: want %v, got %v", c.src, c.want, got)
			}
		})
	}
}
