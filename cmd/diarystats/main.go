// Command diarystats reports text statistics and auto ratings as JSON.
//
// Usage:
//
//	diarystats stats [file]                      # counts and readability
//	diarystats rate --config rating.yml [file]   # penalty-based rating
//	diarystats syllables [--trace] word...       # syllable estimates
//	diarystats inflect word...                   # singular and plural forms
//
// Text is read from file, or from stdin when no file is given.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cours-de-latin/diarystats"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand shares.
type app struct {
	in     io.Reader
	out    io.Writer
	logger *log.Logger
	engine *diarystats.Engine
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out}
	var (
		logLevel string
		logJSON  bool
		pretty   bool
	)

	root := &cobra.Command{
		Use:           "diarystats",
		Short:         "Text statistics, readability and auto rating for diary entries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(errOut, logLevel, logJSON)
			if err != nil {
				return err
			}
			a.logger = logger
			a.engine = diarystats.Default()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")
	root.PersistentFlags().BoolVar(&pretty, "pretty", true, "indent JSON output")

	root.AddCommand(
		a.statsCmd(&pretty),
		a.rateCmd(&pretty),
		a.syllablesCmd(&pretty),
		a.inflectCmd(&pretty),
	)
	root.SetOut(out)
	root.SetErr(errOut)
	return root
}

func newLogger(w io.Writer, level string, asJSON bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "diarystats",
	})
	if asJSON {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger, nil
}

// readText returns the contents of the single file argument, or stdin.
func (a *app) readText(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(a.in)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func (a *app) writeJSON(v any, pretty bool) error {
	enc := json.NewEncoder(a.out)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func (a *app) statsCmd(pretty *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Print counts and readability scores",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text, err := a.readText(args)
			if err != nil {
				return err
			}
			st := a.engine.Analyze(text)
			a.logger.Debug("analysed text", "words", st.Counts.Words, "sentences", st.Counts.Sentences)
			return a.writeJSON(toStatsJSON(st), *pretty)
		},
	}
}

func (a *app) rateCmd(pretty *bool) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "rate [file]",
		Short: "Rate text against a YAML rating configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := diarystats.LoadConfig(configPath)
			if err != nil {
				return err
			}
			a.logger.Info("loaded rating config", "path", configPath,
				"max_score", cfg.MaxScore, "common_errors", len(cfg.CommonErrors))
			text, err := a.readText(args)
			if err != nil {
				return err
			}
			res, err := a.engine.Rate(text, cfg)
			if err != nil {
				a.logger.Error("rating failed", "err", err)
				return err
			}
			a.logger.Debug("rated text", "penalty", res.TotalPenalty, "rating", res.FinalRating)
			return a.writeJSON(toRatingJSON(res), *pretty)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "rating configuration (YAML)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func (a *app) syllablesCmd(pretty *bool) *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "syllables word...",
		Short: "Estimate the syllables of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			out := make([]syllablesJSON, 0, len(args))
			for _, w := range args {
				if !trace {
					out = append(out, syllablesJSON{Word: w, Syllables: a.engine.CountSyllables(w)})
					continue
				}
				n, steps := a.engine.CountTrace(w)
				out = append(out, syllablesJSON{Word: w, Syllables: n, Trace: toTraceJSON(steps)})
			}
			return a.writeJSON(out, *pretty)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "include the passes behind each count")
	return cmd
}

func (a *app) inflectCmd(pretty *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "inflect word...",
		Short: "Print the singular and plural of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			out := make([]inflectionJSON, 0, len(args))
			for _, w := range args {
				out = append(out, inflectionJSON{
					Word:     w,
					Singular: a.engine.Singular(w),
					Plural:   a.engine.Plural(w),
				})
			}
			return a.writeJSON(out, *pretty)
		},
	}
}
