package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "translate":
		if err := translateCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validateCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "history":
		if err := historyCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("petriplan version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`petriplan - grounded planning task to finite-domain translator

Usage:
  petriplan <command> [options]

Commands:
  translate  Translate a grounded task JSON into a finite-domain task file
  validate   Build the intermediate net and report structural issues
  history    List recorded translation runs
  help       Show this help message
  version    Show version information

Examples:
  # Translate a grounded task
  petriplan translate task.json --output task.sas

  # Validate the intermediate net
  petriplan validate task.json

  # Show the last recorded runs
  petriplan history --db runs.db --limit 10

For command-specific help, run:
  petriplan <command> --help`)
}
