package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pflow-xyz/go-petriplan/config"
	"github.com/pflow-xyz/go-petriplan/eventlog"
	"github.com/pflow-xyz/go-petriplan/parser"
	"github.com/pflow-xyz/go-petriplan/translate"
)

func translateCmd(args []string) error {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	configFile := fs.String("config", "", "YAML config file")
	output := fs.String("output", "", "Finite-domain task output path (default from config)")
	eventsFile := fs.String("events", "", "Write per-stage events as JSONL")
	historyDB := fs.String("db", "", "Record the run in a SQLite database")
	logLevel := fs.String("log", "", "Log level: disabled, error, warn, info, debug")
	maxAmbiguous := fs.Int("max-ambiguous", 0, "Cap on ambiguous effects per operator (0 = config default)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: petriplan translate <task.json> [options]

Translate a grounded planning task into a finite-domain task file by
way of a 1-safe place/transition net.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Translate with defaults
  petriplan translate task.json --output task.sas

  # Record stage events and run history
  petriplan translate task.json --events run.jsonl --db runs.db

  # Verbose logging
  petriplan translate task.json --log debug
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("task file required")
	}
	taskFile := fs.Arg(0)

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *eventsFile != "" {
		cfg.EventLog = *eventsFile
	}
	if *historyDB != "" {
		cfg.HistoryDB = *historyDB
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *maxAmbiguous > 0 {
		cfg.MaxAmbiguousEffects = *maxAmbiguous
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(taskFile)
	if err != nil {
		return fmt.Errorf("reading task: %w", err)
	}
	task, err := parser.FromJSON(data)
	if err != nil {
		return err
	}

	opts := translate.Options{
		Limits: translate.Limits{
			MaxAmbiguousEffects: cfg.MaxAmbiguousEffects,
			MaxOperators:        cfg.MaxOperators,
		},
		Logger:   newLogger(cfg.LogLevel),
		Recorder: eventlog.NewRecorder(),
	}

	result, err := translate.Translate(task, opts)
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()
	if err := result.Task.Write(out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if cfg.EventLog != "" {
		if err := writeEvents(cfg.EventLog, opts.Recorder.Events()); err != nil {
			return err
		}
	}
	if cfg.HistoryDB != "" {
		if err := saveRun(cfg.HistoryDB, opts.Recorder, taskFile, result); err != nil {
			return err
		}
	}

	if result.Unsolvable {
		fmt.Printf("Task unsolvable (%s); wrote trivially unsolvable encoding to %s\n",
			result.Reason, cfg.Output)
		return nil
	}
	fmt.Printf("Translated %d operators into %d safe operators, %d variables, %d encoded operators -> %s\n",
		result.Stats.Operators, result.Stats.SafeOperators,
		result.Stats.Variables, result.Stats.Transitions, cfg.Output)
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

func writeEvents(path string, events []eventlog.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating event log: %w", err)
	}
	defer f.Close()
	return eventlog.WriteJSONL(f, events)
}

func saveRun(path string, rec *eventlog.Recorder, input string, result *translate.Result) error {
	store, err := eventlog.OpenStore(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveRun(eventlog.Run{
		ID:            rec.RunID(),
		Input:         input,
		Started:       rec.Started(),
		Finished:      time.Now().UTC(),
		Operators:     result.Stats.Operators,
		SafeOperators: result.Stats.SafeOperators,
		Places:        result.Stats.Places,
		Transitions:   result.Stats.Transitions,
		Unsolvable:    result.Unsolvable,
	})
}
