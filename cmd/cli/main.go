package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/domaincheck/internal/config"
	"github.com/hamed0406/domaincheck/internal/domain"
	"github.com/hamed0406/domaincheck/internal/input"
	"github.com/hamed0406/domaincheck/internal/logging"
	"github.com/hamed0406/domaincheck/internal/notify"
	"github.com/hamed0406/domaincheck/internal/output"
	"github.com/hamed0406/domaincheck/internal/probe"
	"github.com/hamed0406/domaincheck/internal/scheduler"
)

var (
	flagInput       string
	flagOutput      string
	flagFormat      string
	flagConfig      string
	flagSheet       string
	flagColumn      string
	flagTimeout     int
	flagRedirects   int
	flagConcurrency int
	flagRate        float64
	flagUserAgent   string
	flagProtocols   []string
	flagInsecure    bool
	flagQuiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "domaincheck -i <file> [flags]",
	Short: "Bulk DNS and HTTP liveness audit for domain lists",
	Long: `domaincheck reads a list of domains from an Excel workbook, CSV file or
plain text list, probes each one (DNS resolution, then HTTPS with HTTP
fallback) under a concurrency bound, and writes one classified result row
per input domain.`,
	Example: `  domaincheck -i domains.xlsx -o results.xlsx --sheet Sheet1
  domaincheck -i domains.txt -o results.csv --format csv -c 50
  domaincheck -i domains.csv --column Host --format jsonl
  domaincheck -i domains.txt --config audit.yaml`,
	RunE: run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagInput, "input", "i", "", "input file (.xlsx, .csv or text list)")
	f.StringVarP(&flagOutput, "output", "o", "", "output file (default: stdout)")
	f.StringVar(&flagFormat, "format", "", "output format: csv, jsonl or xlsx (default: by extension)")
	f.StringVar(&flagConfig, "config", "", "YAML config file")
	f.StringVar(&flagSheet, "sheet", "", "workbook sheet holding the domains")
	f.StringVar(&flagColumn, "column", "Domain", "header of the domain column")
	f.IntVar(&flagTimeout, "timeout", 10, "per-request timeout in seconds")
	f.IntVar(&flagRedirects, "redirects", 5, "max redirect hops per request")
	f.IntVarP(&flagConcurrency, "concurrency", "c", 20, "max concurrent checks")
	f.Float64Var(&flagRate, "rate", 0, "max requests per second (0 = unthrottled)")
	f.StringVar(&flagUserAgent, "user-agent", "", "User-Agent header")
	f.StringSliceVar(&flagProtocols, "protocols", nil, "protocol trial order (default https,http)")
	f.BoolVar(&flagInsecure, "insecure", false, "accept invalid TLS certificates")
	f.BoolVarP(&flagQuiet, "quiet", "q", false, "suppress the summary")
	_ = rootCmd.MarkFlagRequired("input")
}

func buildConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()
	if flagConfig != "" {
		var err error
		if cfg, err = config.FromFile(flagConfig); err != nil {
			return cfg, err
		}
	}

	// explicit flags win over env and file
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutS = flagTimeout
		cfg.Timeout = time.Duration(flagTimeout) * time.Second
	}
	if cmd.Flags().Changed("redirects") {
		cfg.MaxRedirects = flagRedirects
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = flagConcurrency
	}
	if cmd.Flags().Changed("rate") {
		cfg.RatePerSecond = flagRate
	}
	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent = flagUserAgent
	}
	if cmd.Flags().Changed("protocols") {
		cfg.Protocols = flagProtocols
	}
	if cmd.Flags().Changed("insecure") {
		cfg.SkipVerify = flagInsecure
	}
	if cmd.Flags().Changed("sheet") {
		cfg.Sheet = flagSheet
	}
	if cmd.Flags().Changed("column") {
		cfg.DomainColumn = flagColumn
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync()

	domains, err := input.ReadDomains(flagInput, input.Options{
		Sheet:  cfg.Sheet,
		Column: cfg.DomainColumn,
	})
	if err != nil {
		return err
	}
	logger.Info("domains_found", zap.String("file", flagInput), zap.Int("count", len(domains)))

	checker := probe.NewDomainChecker(cfg.ProberOptions())
	batch := scheduler.NewBatch(logger, checker, cfg.Concurrency, cfg.RatePerSecond)

	start := time.Now()
	results := batch.Run(context.Background(), domains)
	elapsed := time.Since(start)

	format := flagFormat
	if format == "" {
		format = formatFor(flagOutput)
	}
	w, err := output.New(format, flagOutput)
	if err != nil {
		return err
	}
	if err := output.WriteAll(w, results); err != nil {
		w.Close()
		return fmt.Errorf("write results: %w", err)
	}
	if err := w.Close(); err != nil {
		return err
	}

	sum := domain.Summarize(results)
	if !flagQuiet {
		printSummary(sum, elapsed)
	}

	var notifiers notify.Multi
	if slack := notify.NewSlack(cfg.SlackWebhook); slack != nil {
		notifiers = append(notifiers, slack)
	}
	if len(notifiers) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := notifiers.Send(ctx, "Domain audit finished", notify.SummaryText(sum, elapsed)); err != nil {
			logger.Warn("notify_error", zap.Error(err))
		}
	}
	return nil
}

func formatFor(path string) string {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".xlsx"):
		return "xlsx"
	case strings.HasSuffix(strings.ToLower(path), ".jsonl"):
		return "jsonl"
	}
	return "csv"
}

func printSummary(sum domain.Summary, elapsed time.Duration) {
	fmt.Fprintf(os.Stderr, "\nChecked %d domains in %s\n", sum.Total, elapsed.Round(time.Millisecond))
	color.New(color.FgGreen).Fprintf(os.Stderr, "  Active:                        %d\n", sum.Active)
	color.New(color.FgYellow).Fprintf(os.Stderr, "  Client errors (4xx):           %d\n", sum.ClientError)
	color.New(color.FgRed).Fprintf(os.Stderr, "  Server errors (5xx):           %d\n", sum.ServerError)
	color.New(color.FgRed).Fprintf(os.Stderr, "  Inactive (DNS not resolving):  %d\n", sum.InactiveDNS)
	color.New(color.FgRed).Fprintf(os.Stderr, "  Inactive (Connection failed):  %d\n", sum.InactiveConn)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
