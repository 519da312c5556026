package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"lead-sync/internal/config"
	"lead-sync/internal/export"
	"lead-sync/internal/logger"
	"lead-sync/internal/metrics"
	"lead-sync/internal/providers"
	"lead-sync/internal/providers/airtable"
	"lead-sync/internal/report"
	"lead-sync/internal/sftpclient"
)

type options struct {
	envFile     string
	outPath     string
	pageSize    int
	uploadSFTP  bool
	metricsFile string
	logLevel    string
	logJSON     bool

	stdout io.Writer
	stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "fetchleads",
		Short:         "Fetch all leads from Airtable and save a normalized JSON snapshot",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "key=value file loaded into the environment when present")
	f.StringVar(&opts.outPath, "out", "", "snapshot path (default $LEADS_OUT_FILE or "+config.DefaultOutFile+")")
	f.IntVar(&opts.pageSize, "page-size", airtable.DefaultPageSize, "records per page (1-100)")
	f.BoolVar(&opts.uploadSFTP, "sftp", false, "upload the snapshot via SFTP after writing it")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write a Prometheus textfile with run metrics")
	f.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	f.BoolVar(&opts.logJSON, "log-json", false, "log as JSON")

	return cmd
}

func run(ctx context.Context, opts *options) error {
	start := time.Now()

	log := logger.New(logger.Config{Level: opts.logLevel, JSON: opts.logJSON, Output: opts.stderr}).
		With("run", uuid.NewString()[:8])

	err := fetch(ctx, log, opts, start)
	if err != nil {
		log.Error("run failed", "err", err, "took", time.Since(start).Round(time.Millisecond))
		return err
	}
	log.Info("run finished", "took", time.Since(start).Round(time.Millisecond))
	return nil
}

func fetch(ctx context.Context, log *charmlog.Logger, opts *options, start time.Time) error {
	if opts.pageSize < 1 || opts.pageSize > airtable.DefaultPageSize {
		return fmt.Errorf("page size must be between 1 and %d, got %d", airtable.DefaultPageSize, opts.pageSize)
	}

	loaded, err := config.LoadEnvFile(opts.envFile)
	if err != nil {
		return err
	}
	if loaded {
		log.Debug("loaded env file", "path", opts.envFile)
	}

	cfg := config.Load()
	if opts.outPath != "" {
		cfg.OutFile = opts.outPath
	}
	if cfg.HasPlaceholders() {
		log.Warn("AIRTABLE_TOKEN / AIRTABLE_BASE_ID / AIRTABLE_TABLE_ID not set, using placeholders")
	}

	m := metrics.NewRun()

	client := airtable.New(cfg.AirtableBaseURL, cfg.AirtableToken, cfg.AirtableBaseID, cfg.AirtableTableID).
		WithTimeout(cfg.HTTPTimeout)
	client.PageSize = opts.pageSize
	client.Limiter = airtable.NewLimiter(cfg.RequestsPerSec)
	client.OnPage = func(page int) {
		log.Info(fmt.Sprintf("Fetching page %d…", page))
		m.ObservePage()
	}

	var prov providers.LeadProvider = airtable.Provider{C: client}
	leads, err := prov.ListLeads(ctx)
	if err != nil {
		return fmt.Errorf("list leads from %s: %w", prov.Name(), err)
	}
	log.Info("Total records fetched", "count", len(leads))

	if err := export.WriteLeadsJSON(cfg.OutFile, leads); err != nil {
		return err
	}
	log.Info("Saved snapshot", "path", cfg.OutFile)

	if err := report.Print(opts.stdout, report.Summarize(leads)); err != nil {
		return err
	}

	if opts.uploadSFTP {
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			KnownHostsPath:        cfg.SFTPKnownHosts,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		upCtx, upCancel := context.WithTimeout(ctx, 5*time.Minute)
		defer upCancel()

		remoteName := filepath.Base(cfg.OutFile)
		if err := sftpclient.UploadFile(upCtx, upCfg, cfg.OutFile, remoteName); err != nil {
			return err
		}
		log.Info("uploaded snapshot", "to", fmt.Sprintf("sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, remoteName))
	}

	if opts.metricsFile != "" {
		m.ObserveLeads(leads)
		m.Finish(time.Since(start), time.Now())
		if err := m.WriteTextfile(opts.metricsFile); err != nil {
			return err
		}
	}

	return nil
}
