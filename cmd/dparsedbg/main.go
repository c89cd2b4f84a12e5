package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/halvorsen-lang/dparse"
	"github.com/halvorsen-lang/dparse/forest"
	"github.com/halvorsen-lang/dparse/term"
)

// buildListGrammar constructs list -> list ',' item | item over a
// lowercase-letter alphabet, the running example used throughout this
// module's tests and documentation.
func buildListGrammar() (*term.Node[rune, []rune], error) {
	var letters []*term.Node[rune, rune]
	for c := 'a'; c <= 'z'; c++ {
		letters = append(letters, term.Terminal(c))
	}
	letter, err := term.Alt(letters...)
	if err != nil {
		return nil, err
	}
	itemVal, err := term.Red(letter, func(r rune) []rune { return []rune{r} })
	if err != nil {
		return nil, err
	}
	comma := term.Terminal(',')

	rec := term.NewRecursion[rune, []rune]()
	step1, err := term.Con(rec.Node(), comma)
	if err != nil {
		return nil, err
	}
	step2, err := term.Con(step1, letter)
	if err != nil {
		return nil, err
	}
	recCase, err := term.Red(step2, func(p term.Pair[term.Pair[[]rune, rune], rune]) []rune {
		out := append([]rune{}, p.First.First...)
		return append(out, p.Second)
	})
	if err != nil {
		return nil, err
	}
	body, err := term.Alt(recCase, itemVal)
	if err != nil {
		return nil, err
	}
	if err := rec.Bind(body); err != nil {
		return nil, err
	}
	return rec.Node(), nil
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	pterm.Info.Println("Welcome to dparsedbg")
	pterm.Info.Println("Grammar: list -> list ',' item | item   (item = a lowercase letter)")

	list, err := buildListGrammar()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	repl, err := readline.New("dparse> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	tracer().Infof("Quit with <ctrl>D, or type :graph to dump the term graph")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":graph" {
			printGraph(list)
			continue
		}
		runInput(list, line)
	}
	println("Good bye!")
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func runInput(list *term.Node[rune, []rune], line string) {
	input := []rune(line)

	full, err := dparse.ParseFull(list, input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if full.Len() == 0 {
		pterm.Println(fmt.Sprintf("no full match for %q", line))
	} else {
		for _, v := range full.Values() {
			pterm.Println(fmt.Sprintf("full match: %v", v))
		}
	}

	splits, err := dparse.Parse(list, input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(fmt.Sprintf("%d prefix split(s)", splits.Len()))
	for _, s := range splits.Values() {
		pterm.Println(fmt.Sprintf("  value=%v remaining=%q", s.First, string(s.Second)))
	}
}

func printGraph(list *term.Node[rune, []rune]) {
	records := forest.Walk(list.Walkable())
	ll := pterm.LeveledList{}
	for _, r := range records {
		ll = append(ll, pterm.LeveledListItem{
			Level: 0,
			Text:  fmt.Sprintf("#%d %s -> %v", r.Identity, r.Label, r.Children),
		})
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
