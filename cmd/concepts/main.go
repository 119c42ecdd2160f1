package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"
)

// Each demo covers one concept: function values, enumerations, and the
// discriminant rules checked by tagset.
//
// Run:
//
//	go run ./cmd/concepts
//	go run ./cmd/concepts -only enums -no-color
func main() {
	only := flag.String("only", "", "run a single chapter: funcs, enums or tagset")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	logger := log.New(os.Stderr, "concepts: ", 0)

	if *noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Disable()
	}

	if err := run(*only); err != nil {
		logger.Fatal(err)
	}
}

type step struct {
	title string
	demo  func() error
}

// chapter groups related steps under one -only name.
type chapter struct {
	name  string
	steps []step
}

func chapters() []chapter {
	return []chapter{
		{"funcs", []step{
			{"Function values — copy, call, compare through Handle", demoFunctionValues},
			{"Code reuse — Calculator(x, y, op)", demoCalculator},
			{"Dynamic behavior — Sorter(seq, compare)", demoSorter},
			{"Registry — pick the operation by name", demoRegistry},
		}},
		{"enums", []step{
			{"Explicit discriminants — HTTPStatusCode", demoHTTPStatus},
			{"Generic union — SchedulerState[Job, Pid]", demoScheduler},
			{"Variants with fields — Shape", demoShapes},
			{"Mixed variants + Stringer — ProgramLanguage", demoLanguages},
		}},
		{"tagset", []step{
			{"Declared sets — tag assignment and casts", demoTagset},
			{"Rejected declarations", demoTagsetErrors},
		}},
	}
}

func run(only string) error {
	matched := false
	for _, ch := range chapters() {
		if only != "" && only != ch.name {
			continue
		}
		matched = true
		for _, s := range ch.steps {
			section(s.title)
			if err := s.demo(); err != nil {
				return fmt.Errorf("%s: %w", ch.name, err)
			}
		}
	}
	if !matched {
		return fmt.Errorf("unknown chapter %q", only)
	}
	return nil
}

func section(title string) {
	color.LightCyan.Printf("\n━━━ %s ━━━\n", title)
}

// label prints a key in yellow followed by its value.
func label(key string, value any) {
	color.Yellow.Printf("  %-28s", key)
	fmt.Println(value)
}
