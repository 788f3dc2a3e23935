// briefing prints the daily staff briefing for one date of an attendance
// export, read from a file or a published CSV URL.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/spec-kit/staff-briefing/internal/config"
	"github.com/spec-kit/staff-briefing/internal/observability"
	"github.com/spec-kit/staff-briefing/internal/roster"
	"github.com/spec-kit/staff-briefing/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	file      string
	url       string
	date      string
	rules     string
	logLevel  string
	timeout   time.Duration
	listDates bool
	asJSON    bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("briefing", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.file, "file", "f", os.Getenv("ROSTER_CSV_PATH"), "attendance CSV on disk")
	flagSet.StringVarP(&opts.url, "url", "u", os.Getenv("ROSTER_CSV_URL"), "published attendance CSV (takes precedence over --file)")
	flagSet.StringVarP(&opts.date, "date", "d", "", "date to brief, as written in the export")
	flagSet.StringVar(&opts.rules, "rules", os.Getenv("RULES_FILE"), "site rules YAML file")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	flagSet.DurationVar(&opts.timeout, "timeout", 10*time.Second, "roster download timeout")
	flagSet.BoolVar(&opts.listDates, "list-dates", false, "print the dates in the export and exit")
	flagSet.BoolVar(&opts.asJSON, "json", false, "print the structured briefing as JSON")

	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if !opts.listDates && strings.TrimSpace(opts.date) == "" {
		return errors.New("--date is required (use --list-dates to see the choices)")
	}

	rulesCfg, err := config.LoadRules(opts.rules)
	if err != nil {
		return err
	}
	src, err := roster.NewSource(opts.url, opts.file, opts.timeout)
	if err != nil {
		return fmt.Errorf("%w: pass --file or --url", err)
	}
	logger, err := observability.NewLogger(config.LoggerConfig{Level: opts.logLevel, Output: "stderr"})
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	svc := service.NewBriefingService(*rulesCfg, service.BriefingDependencies{
		Loader: roster.SourceLoader{Source: src},
		Logger: logger,
	})

	if opts.listDates {
		dates, err := svc.Dates(ctx)
		if err != nil {
			return err
		}
		for _, d := range dates {
			fmt.Fprintln(stdout, d)
		}
		return nil
	}

	if opts.asJSON {
		b, err := svc.Briefing(ctx, opts.date)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}

	text, err := svc.RenderBriefing(ctx, opts.date)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, text)
	return err
}
