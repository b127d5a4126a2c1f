package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/eriklarko/logic-evaluator/src/boolexpr"
	"github.com/eriklarko/logic-evaluator/src/config"
	"github.com/eriklarko/logic-evaluator/src/environment"
	"github.com/eriklarko/logic-evaluator/src/evaluator"
	"github.com/eriklarko/logic-evaluator/src/logs"
	"github.com/eriklarko/logic-evaluator/src/truthtable"
	"github.com/eriklarko/logic-evaluator/src/tui"
)

const (
	defaultConfigFile = "logic-evaluator.yaml"
	defaultExpression = "not (A or B) and C"
)

func main() {
	configFile := flag.String("config", defaultConfigFile, "YAML config file, ignored if missing")
	format := flag.String("format", "", "output format: text, csv, dot or yaml")
	workers := flag.Int("workers", 0, "goroutines evaluating truth table rows")
	maxVariables := flag.Int("max-variables", 0, "refuse expressions with more variables")
	timeout := flag.Duration("timeout", 0, "give up on an expression after this long")
	csvFile := flag.String("csv", "", "also write the truth table to this CSV file")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	logFile := flag.String("log-file", "", "append JSON logs to this file")
	interactive := flag.Bool("interactive", false, "prompt for expressions even when not attached to a terminal")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [expression]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Operators: not, and, or, xor, xnor, nand, nor. Variables: A-Z.")
		flag.PrintDefaults()
	}
	flag.Parse()

	conf, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// flags win over the config file
	if *format != "" {
		conf.Format = config.Format(*format)
	}
	if *workers > 0 {
		conf.Workers = *workers
	}
	if *maxVariables > 0 {
		conf.MaxVariables = *maxVariables
	}
	if *timeout > 0 {
		conf.Timeout = *timeout
	}
	if *csvFile != "" {
		conf.CSVFile = *csvFile
	}
	if *logLevel != "" {
		conf.LogLevel = *logLevel
	}
	if *logFile != "" {
		conf.LogFile = *logFile
	}
	if *interactive {
		environment.ForceSetIsInteractive(true)
	}
	if err := conf.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, _ := conf.Level()
	logger, closeLogs, err := logs.New(logs.Options{
		Writer: os.Stderr,
		Level:  level,
		File:   conf.LogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	ev := evaluator.New(conf)
	ui := tui.New()
	ctx := context.Background()

	exitCode := 0
	switch {
	case flag.NArg() > 0:
		exitCode = run(ctx, ev, conf, ui, strings.Join(flag.Args(), " "))
	case environment.IsInteractive():
		repl(ctx, ev, conf, ui)
	default:
		// expressions piped in, one per line
		exitCode = runLines(ctx, ev, conf, ui, os.Stdin)
	}

	if err := closeLogs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to close log file: %v\n", err)
	}
	os.Exit(exitCode)
}

func loadConfig(path string) (*config.Config, error) {
	conf, err := config.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		if path != defaultConfigFile {
			return nil, err
		}
		return config.Default(), nil
	}
	return conf, err
}

func repl(ctx context.Context, ev *evaluator.Evaluator, conf *config.Config, ui *tui.TUI) {
	ui.Printf("Enter a logical expression using not, and, or, xor, xnor, nand, nor and the variables A-Z.\n")
	ui.Printf("An empty line evaluates the default, Ctrl-D quits.\n\n")

	for {
		expression, ok, err := ui.AskExpression("Expression", defaultExpression)
		if err != nil {
			slog.Error("failed to read user input", "error", err)
			return
		}
		if !ok {
			ui.Printf("\n")
			return
		}

		run(ctx, ev, conf, ui, expression)
		ui.Printf("\n")
	}
}

func runLines(ctx context.Context, ev *evaluator.Evaluator, conf *config.Config, ui *tui.TUI, input io.Reader) int {
	exitCode := 0
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if code := run(ctx, ev, conf, ui, line); code != 0 {
			exitCode = code
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Error("failed to read expressions", "error", err)
		return 1
	}
	return exitCode
}

// run evaluates one expression and prints it in the configured format,
// returning the process exit code for it.
func run(ctx context.Context, ev *evaluator.Evaluator, conf *config.Config, ui *tui.TUI, expression string) int {
	result, err := ev.Evaluate(ctx, expression)
	if err != nil {
		return reportError(ui, err)
	}
	slog.Debug("evaluated expression", "expression", expression, "rows", len(result.Table.Rows), "gates", result.Circuit.GateCount())

	switch conf.Format {
	case config.FormatCSV:
		err = result.Table.WriteCSV(os.Stdout)
	case config.FormatDOT:
		ui.Printf("%s", result.Circuit.DOT())
	case config.FormatYAML:
		err = result.Circuit.WriteYAML(os.Stdout)
	default:
		ui.Printf("Detected variables: %s\n\n", strings.Join(result.Variables, ", "))
		ui.PrintTable(result.Table)
		ui.Printf("\n")
		ui.PrintCircuit(result.Circuit)

		summary, summaryErr := result.Summary()
		if summaryErr != nil {
			err = summaryErr
			break
		}
		ui.PrintSummary(summary)
	}
	if err != nil {
		slog.Error("failed to write result", "expression", expression, "error", err)
		return 1
	}

	if conf.CSVFile != "" {
		if err := conf.WriteTableCSV(result.Table); err != nil {
			slog.Error("failed to write csv file", "file", conf.CSVFile, "error", err)
			return 1
		}
		slog.Info("wrote truth table", "file", conf.CSVFile, "rows", len(result.Table.Rows))
	}
	return 0
}

func reportError(ui *tui.TUI, err error) int {
	var syntaxErr *boolexpr.SyntaxError
	var noVariables *boolexpr.NoVariablesError
	var tooMany *truthtable.TooManyVariablesError

	switch {
	case errors.As(err, &syntaxErr):
		ui.Printf("Invalid logical expression: %s\n", syntaxErr)
		return 2
	case errors.As(err, &noVariables):
		ui.Printf("Please enter at least one variable (A, B, C...)\n")
		return 3
	case errors.As(err, &tooMany):
		ui.Printf("%s\n", tooMany)
		return 3
	default:
		slog.Error("failed to evaluate expression", "error", err)
		return 1
	}
}
