package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harrisonrobin/taskdigest/pkg/colors"
	"github.com/harrisonrobin/taskdigest/pkg/config"
	"github.com/harrisonrobin/taskdigest/pkg/digest"
	"github.com/harrisonrobin/taskdigest/pkg/input"
	"github.com/harrisonrobin/taskdigest/pkg/logger"
	"github.com/harrisonrobin/taskdigest/pkg/model"
)

type flags struct {
	configPath string
	now        string
	outputPath string
	logLevel   string
	pretty     bool
	envelope   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "taskdigest [items.json]",
		Short: "Build per-user HTML task summaries",
		Long: `taskdigest groups task records by assignee and company, drops duplicate
task ids, sorts by due date and renders one HTML summary per user.

Input is a JSON array or a stream of JSON objects, read from the given file
or stdin. Output is a JSON array of {email, userName, html} records.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, f, path)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "Config file (default: ~/.config/taskdigest/config.*)")
	cmd.Flags().StringVar(&f.now, "now", "", "Reference time for due date colours, RFC 3339 (default: current time)")
	cmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&f.envelope, "envelope", false, `Wrap each record as {"json": ...}`)
	return cmd
}

func run(cmd *cobra.Command, f *flags, inputPath string) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if f.logLevel != "" {
		level = f.logLevel
	}
	log := logger.Setup(level, cmd.ErrOrStderr()).With("run_id", uuid.NewString())

	now := time.Now()
	if f.now != "" {
		now, err = time.Parse(time.RFC3339, f.now)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
	}

	var items []model.InputItem
	if inputPath == "" || inputPath == "-" {
		items, err = input.NewReader().ParseItems(cmd.InOrStdin())
	} else {
		items, err = input.NewReader().ParseFile(inputPath)
	}
	if err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	log.Debug("parsed input", "items", len(items))

	builder := digest.NewBuilder(digest.Options{
		DefaultEmail:   cfg.Defaults.Email,
		DefaultCompany: cfg.Defaults.Company,
		DueSoonWindow:  cfg.DueSoonWindow,
		Palette: colors.Palette{
			NoDueDate: cfg.Palette.NoDueDate,
			Overdue:   cfg.Palette.Overdue,
			DueSoon:   cfg.Palette.DueSoon,
			DueLater:  cfg.Palette.DueLater,
		},
		Logger: log,
	})
	records, err := builder.Build(items, now)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.outputPath != "" {
		file, err := os.Create(f.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer file.Close()
		out = file
	}
	if err := writeRecords(out, records, f.pretty, f.envelope); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Debug("wrote output", "records", len(records), "path", f.outputPath)
	return nil
}

func writeRecords(w io.Writer, records []model.OutputRecord, pretty, envelope bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	if !envelope {
		return encoder.Encode(records)
	}
	wrapped := make([]model.Envelope[model.OutputRecord], len(records))
	for i, r := range records {
		wrapped[i] = model.Envelope[model.OutputRecord]{JSON: r}
	}
	return encoder.Encode(wrapped)
}
