package source

import (
	"context"

	"go.uber.org/zap"
)

const (
	local211Name    = "211 Brevard / Local"
	local211BaseURL = "https://211brevard.org"
)

// Local211 supplies curated Brevard County programs and service providers.
// The 211 network exposes its directory only through a licensed API, so
// there is no live-fetch path; everything this adapter contributes is
// hand-maintained.
type Local211 struct {
	logger *zap.Logger
}

// NewLocal211 builds the adapter.
func NewLocal211(logger *zap.Logger) *Local211 {
	return &Local211{logger: logger}
}

// Name identifies the source in provenance fields and logs.
func (a *Local211) Name() string { return local211Name }

// BaseURL is the public 211 Brevard site.
func (a *Local211) BaseURL() string { return local211BaseURL }

// Collect returns the curated local programs and providers. It never fails
// and performs no network I/O.
func (a *Local211) Collect(ctx context.Context) (Result, error) {
	programs := local211SeedPrograms()
	providers := local211SeedProviders()

	a.logger.Info("curated local resources ready",
		zap.Int("programs", len(programs)),
		zap.Int("providers", len(providers)))

	return Result{Programs: programs, Providers: providers}, nil
}
