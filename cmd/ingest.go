package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thingvallatech/community-assist/internal/fetch"
	"github.com/thingvallatech/community-assist/internal/pipeline"
	"github.com/thingvallatech/community-assist/internal/source"
	"github.com/thingvallatech/community-assist/internal/store"
)

// newIngestCmd creates the 'ingest' subcommand, which runs one full
// collection and reconciliation cycle.
func newIngestCmd() *cobra.Command {
	var seedOnly bool

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Run the data collection pipeline once",
		Long: `Runs every source adapter in sequence, merging collected programs,
providers and income limits into the catalog database. Individual adapter
failures are logged and skipped; the command fails only when the database
is unreachable or the run is interrupted.`,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIngest(cmd.Context(), seedOnly)
		},
	}

	cmd.Flags().BoolVar(&seedOnly, "seed-only", false, "skip live scraping and load curated data only")
	return cmd
}

func runIngest(parent context.Context, seedOnly bool) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.New(ctx, cfg.DB.DSN, logger.Named("store"))
	if err != nil {
		return fmt.Errorf("connect store: %w", err)
	}
	defer st.Close()

	live, curated := buildAdapters()

	skipLive := seedOnly || cfg.Scrape.SkipLive
	summary, err := pipeline.New(live, curated, st, logger.Named("pipeline")).Run(ctx, skipLive)
	if err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	logger.Info("ingest finished",
		zap.Int("programs_inserted", summary.ProgramsInserted),
		zap.Int("programs_updated", summary.ProgramsUpdated),
		zap.Int("providers_inserted", summary.ProvidersInserted),
		zap.Int("providers_updated", summary.ProvidersUpdated),
		zap.Int("income_limits", summary.IncomeLimitsSaved),
		zap.Int("adapter_failures", summary.AdapterFailures))
	return nil
}

// buildAdapters wires every source adapter against a fresh per-run visit
// set and one shared throttle, so the request interval and concurrency cap
// hold across all sources, not per adapter. Live adapters do network I/O;
// curated adapters never do.
func buildAdapters() (live, curated []source.Adapter) {
	visits := fetch.NewVisitSet()
	throttle := fetch.NewThrottle(cfg.Scrape.Delay(), cfg.Scrape.MaxConcurrent)

	newFetcher := func(name string) *fetch.Fetcher {
		return fetch.New(fetch.Config{
			Source:    name,
			UserAgent: cfg.Scrape.UserAgent,
			Timeout:   cfg.Scrape.Timeout(),
		}, throttle, visits, logger.Named("fetch"))
	}

	dcf := source.NewFloridaDCF(newFetcher("Florida DCF"), logger.Named("dcf"))
	benefits := source.NewBenefitsGov(
		newFetcher("Benefits.gov"), logger.Named("benefits"),
		cfg.Scrape.EnableDiscovery, cfg.Scrape.MaxPerCategory)
	local := source.NewLocal211(logger.Named("local211"))

	return []source.Adapter{dcf, benefits}, []source.Adapter{local}
}
