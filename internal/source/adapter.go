// Package source contains one adapter per upstream data source. Each
// adapter enumerates the pages or records it knows about, drives the fetch
// and extract layers for live pages, and always ships its hand-curated
// high-confidence seed records regardless of live-fetch outcome.
package source

import (
	"context"
	"time"

	"github.com/thingvallatech/community-assist/internal/catalog"
)

// Adapter is the capability set every source implements. Collect is allowed
// to fail outright; isolation of that failure is the orchestrator's job,
// not the adapter's.
type Adapter interface {
	Name() string
	BaseURL() string
	Collect(ctx context.Context) (Result, error)
}

// Result is one adapter's contribution to a pipeline run.
type Result struct {
	Programs     []catalog.ProgramRecord
	Providers    []catalog.ProviderRecord
	IncomeLimits []IncomeLimitRow
}

// IncomeLimitRow is an income-limit table row keyed by program code. The
// store resolves the code to a program id at upsert time, after the program
// itself has been reconciled.
type IncomeLimitRow struct {
	ProgramCode   string
	HouseholdSize int
	MonthlyLimit  float64
	FPLPercentage int
	EffectiveDate time.Time
}
