package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pflow-xyz/go-petriplan/eventlog"
)

func historyCmd(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	dbPath := fs.String("db", "runs.db", "SQLite run database")
	limit := fs.Int("limit", 20, "Maximum runs to list")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: petriplan history [options]

List recorded translation runs, newest first.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := eventlog.OpenStore(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(*limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-36s  %-19s  %8s  %8s  %7s  %11s  %s\n",
		"RUN", "STARTED", "OPS", "SAFE", "PLACES", "TRANSITIONS", "INPUT")
	for _, run := range runs {
		status := ""
		if run.Unsolvable {
			status = " (unsolvable)"
		}
		fmt.Printf("%-36s  %-19s  %8d  %8d  %7d  %11d  %s%s\n",
			run.ID, run.Started.Local().Format(time.DateTime),
			run.Operators, run.SafeOperators, run.Places, run.Transitions,
			run.Input, status)
	}
	return nil
}
