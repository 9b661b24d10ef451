package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/exactcalc/exact"
	"github.com/exactcalc/exact/funcs"
)

const (
	prompt       = "\033[32m>\033[0m "
	resultprompt = "\033[31m=\033[0m "
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		with   [][2]string
		echo   bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default interactive if no args given)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Parse()

	ctx := exact.NewContext(exact.Library(funcs.Library()))
	for _, d := range with {
		nm := d[0]
		vl := d[1]
		r, err := exact.Evaluate(vl, exact.NewContext(exact.Library(funcs.Library())))
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		ctx.Set(nm, r)
	}

	switch {
	case inname != "":
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := evalLines(f, ctx, echo); err != nil {
			log.Fatal(err)
		}
	case flag.NArg() > 0:
		for _, arg := range flag.Args() {
			if err := evalOne(arg, ctx, echo, os.Stdout); err != nil {
				log.Fatal(err)
			}
		}
	default:
		repl(ctx, echo)
	}
}

func evalLines(r io.Reader, ctx *exact.Context, echo bool) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := evalOne(line, ctx, echo, os.Stdout); err != nil {
			return err
		}
	}
	return sc.Err()
}

func evalOne(src string, ctx *exact.Context, echo bool, w io.Writer) error {
	a, err := exact.Parse(src)
	if err != nil {
		return err
	}
	if echo {
		fmt.Fprintf(w, "%v : ", a)
	}
	r, err := a.Eval(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, r)
	return nil
}

func repl(ctx *exact.Context, echo bool) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			log.Fatal(err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		a, err := exact.Parse(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := a.Eval(ctx)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Print(resultprompt)
		fmt.Println(r)
	}
}

func historyFile() string {
	d, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return d + "/.exact_history"
}
