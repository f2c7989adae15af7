package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-petriplan/parser"
	"github.com/pflow-xyz/go-petriplan/translate"
	"github.com/pflow-xyz/go-petriplan/validation"
)

func validateCmd(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	outputJSON := fs.Bool("json", false, "Output results as JSON")
	maxAmbiguous := fs.Int("max-ambiguous", 20, "Cap on ambiguous effects per operator")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: petriplan validate <task.json> [options]

Build the intermediate place/transition net for a grounded task and
report structural issues.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Checks performed:
  - Binary initial marking (every place holds 0 or 1 tokens)
  - No duplicate places among a transition's origins or destinations
  - All arcs reference known places
  - Complement pairs hold exactly one token initially and after any
    single firing from the initial marking
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("task file required")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading task: %w", err)
	}
	task, err := parser.FromJSON(data)
	if err != nil {
		return err
	}
	if !task.RelaxedReachable {
		fmt.Println("Task has no relaxed solution; nothing to validate.")
		return nil
	}

	limits := translate.Limits{MaxAmbiguousEffects: *maxAmbiguous}
	safe, err := translate.SafeOperators(task.Operators, limits)
	if err != nil {
		return err
	}
	positive, complements := translate.RemovePolarity(safe)
	net, err := translate.BuildNet(task.Atoms, complements, positive, task.Init)
	if err != nil {
		return err
	}

	result := validation.NewValidator(net, complements).Validate()

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("Places: %d  Transitions: %d  Complement pairs: %d\n",
		result.Summary.Places, result.Summary.Transitions, result.Summary.Complements)
	for _, issue := range result.Errors {
		fmt.Printf("ERROR [%s] %s\n", issue.Category, issue.Message)
	}
	for _, issue := range result.Warnings {
		fmt.Printf("WARN  [%s] %s\n", issue.Category, issue.Message)
	}
	if result.Valid {
		fmt.Println("Net is well-formed.")
		return nil
	}
	return fmt.Errorf("%d validation errors", len(result.Errors))
}
