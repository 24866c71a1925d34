// Package pipeline runs the source adapters in sequence and reconciles
// their output into the store. A broken adapter or a broken record never
// takes down a run; failures are logged, counted, and skipped.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thingvallatech/community-assist/internal/catalog"
	"github.com/thingvallatech/community-assist/internal/metrics"
	"github.com/thingvallatech/community-assist/internal/source"
)

// Store is the write surface the pipeline needs.
type Store interface {
	UpsertProgram(ctx context.Context, rec catalog.ProgramRecord) (bool, error)
	UpsertProvider(ctx context.Context, rec catalog.ProviderRecord) (bool, error)
	ProgramIDByCode(ctx context.Context, code string) (int64, error)
	UpsertIncomeLimit(ctx context.Context, limit catalog.IncomeLimit) error
}

// Summary reports what one run accomplished.
type Summary struct {
	ProgramsInserted  int
	ProgramsUpdated   int
	ProvidersInserted int
	ProvidersUpdated  int
	IncomeLimitsSaved int
	AdapterFailures   int
	Elapsed           time.Duration
}

// Pipeline drives ingestion end to end: live adapters first, curated
// adapters always, then a single reconciliation pass over everything
// collected.
type Pipeline struct {
	live    []source.Adapter
	curated []source.Adapter
	store   Store
	logger  *zap.Logger
}

// New builds a pipeline. Adapters in live are skipped when a run is asked
// to stay offline; adapters in curated run regardless because they perform
// no network I/O.
func New(live, curated []source.Adapter, st Store, logger *zap.Logger) *Pipeline {
	return &Pipeline{live: live, curated: curated, store: st, logger: logger}
}

// Run executes one full ingestion cycle. skipLive suppresses the
// network-bound adapters so curated data can be seeded on its own. Run
// returns an error only when the context is canceled; adapter and record
// failures are absorbed into the summary.
func (p *Pipeline) Run(ctx context.Context, skipLive bool) (Summary, error) {
	start := time.Now()
	logger := p.logger.With(zap.String("run_id", uuid.NewString()))

	var summary Summary
	var collected []source.Result

	adapters := p.curated
	if !skipLive {
		adapters = append(append([]source.Adapter{}, p.live...), p.curated...)
	}

	for _, adapter := range adapters {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := p.collect(ctx, logger, adapter)
		if err != nil {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			summary.AdapterFailures++
			metrics.ObserveAdapterFailure(adapter.Name())
			logger.Error("adapter failed",
				zap.String("source", adapter.Name()), zap.Error(err))
			continue
		}

		logger.Info("adapter finished",
			zap.String("source", adapter.Name()),
			zap.Int("programs", len(result.Programs)),
			zap.Int("providers", len(result.Providers)),
			zap.Int("income_limits", len(result.IncomeLimits)))
		collected = append(collected, result)
	}

	p.save(ctx, logger, collected, &summary)

	summary.Elapsed = time.Since(start)
	metrics.ObserveRun(summary.Elapsed)
	logger.Info("pipeline complete",
		zap.Int("programs_inserted", summary.ProgramsInserted),
		zap.Int("programs_updated", summary.ProgramsUpdated),
		zap.Int("providers_inserted", summary.ProvidersInserted),
		zap.Int("providers_updated", summary.ProvidersUpdated),
		zap.Int("income_limits", summary.IncomeLimitsSaved),
		zap.Int("adapter_failures", summary.AdapterFailures),
		zap.Duration("elapsed", summary.Elapsed))

	return summary, nil
}

// collect invokes one adapter, converting a panic into an error so a buggy
// adapter cannot abort the run.
func (p *Pipeline) collect(ctx context.Context, logger *zap.Logger, adapter source.Adapter) (result source.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("adapter %s panicked: %v", adapter.Name(), r)
		}
	}()
	logger.Info("running adapter", zap.String("source", adapter.Name()))
	return adapter.Collect(ctx)
}

// save reconciles everything collected. Programs go first so income limits
// can resolve their program codes against fresh rows.
func (p *Pipeline) save(ctx context.Context, logger *zap.Logger, collected []source.Result, summary *Summary) {
	for _, result := range collected {
		for _, rec := range result.Programs {
			inserted, err := p.store.UpsertProgram(ctx, rec)
			if err != nil {
				metrics.ObserveRecord("program", "error")
				logger.Error("save program failed",
					zap.String("program", rec.Name), zap.Error(err))
				continue
			}
			if inserted {
				summary.ProgramsInserted++
				metrics.ObserveRecord("program", "inserted")
			} else {
				summary.ProgramsUpdated++
				metrics.ObserveRecord("program", "updated")
			}
		}

		for _, rec := range result.Providers {
			inserted, err := p.store.UpsertProvider(ctx, rec)
			if err != nil {
				metrics.ObserveRecord("provider", "error")
				logger.Error("save provider failed",
					zap.String("provider", rec.Name), zap.Error(err))
				continue
			}
			if inserted {
				summary.ProvidersInserted++
				metrics.ObserveRecord("provider", "inserted")
			} else {
				summary.ProvidersUpdated++
				metrics.ObserveRecord("provider", "updated")
			}
		}
	}

	for _, result := range collected {
		for _, row := range result.IncomeLimits {
			programID, err := p.store.ProgramIDByCode(ctx, row.ProgramCode)
			if err != nil {
				metrics.ObserveRecord("income_limit", "error")
				logger.Warn("income limit references unknown program",
					zap.String("code", row.ProgramCode), zap.Error(err))
				continue
			}
			limit := catalog.IncomeLimit{
				ProgramID:     programID,
				HouseholdSize: row.HouseholdSize,
				MonthlyLimit:  row.MonthlyLimit,
				FPLPercentage: row.FPLPercentage,
				EffectiveDate: row.EffectiveDate,
			}
			if err := p.store.UpsertIncomeLimit(ctx, limit); err != nil {
				metrics.ObserveRecord("income_limit", "error")
				logger.Error("save income limit failed",
					zap.String("code", row.ProgramCode), zap.Error(err))
				continue
			}
			summary.IncomeLimitsSaved++
			metrics.ObserveRecord("income_limit", "inserted")
		}
	}
}
