package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rafael-arreola/zpl-forge/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// varFlag collects repeated -var name=value occurrences.
type varFlag map[string]string

func (v varFlag) String() string {
	pairs := make([]string, 0, len(v))
	for name, value := range v {
		pairs = append(pairs, name+"="+value)
	}
	return strings.Join(pairs, ",")
}

func (v varFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	v[name] = value
	return nil
}

// Parse processes command-line arguments. It returns a populated app
// Config, a boolean indicating if the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("zplforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
zpl-forge - A ZPL label compiler producing PNG and PDF output.

Usage:
  zplforge [options] [LABEL_PATH]

Arguments:
  LABEL_PATH
    Path to a file containing ZPL label source.

Options:
`)
		flagSet.PrintDefaults()
	}

	labelFlag := flagSet.String("label", "", "Path to the ZPL label file.")
	lFlag := flagSet.String("l", "", "Path to the ZPL label file (shorthand).")
	profileFlag := flagSet.String("profile", "", "Path to an HCL render profile.")
	outputFlag := flagSet.String("output", "", "Output file path. Overrides the profile.")
	formatFlag := flagSet.String("format", "", "Output format: 'png' or 'pdf'. Overrides the profile.")
	widthFlag := flagSet.String("width", "", "Label width, e.g. '4in', '101.6mm' or dots. Overrides the profile.")
	heightFlag := flagSet.String("height", "", "Label height, e.g. '6in', '152.4mm' or dots. Overrides the profile.")
	dpiFlag := flagSet.Float64("dpi", 0, "Printer resolution in dots per inch. 0 keeps the profile value.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	vars := varFlag{}
	flagSet.Var(vars, "var", "Variable substitution as name=value. May be repeated.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *labelFlag != "" {
		path = *labelFlag
	} else if *lFlag != "" {
		path = *lFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Label path determined.", "path", path)

	if path == "" {
		slog.Debug("No label path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format := strings.ToLower(*formatFlag)
	if format != "" && format != "png" && format != "pdf" {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'png' or 'pdf'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		LabelPath:   path,
		ProfilePath: *profileFlag,
		OutputPath:  *outputFlag,
		Format:      format,
		Width:       *widthFlag,
		Height:      *heightFlag,
		DPI:         *dpiFlag,
		Vars:        vars,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
