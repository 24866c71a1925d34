package source

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"github.com/thingvallatech/community-assist/internal/catalog"
	"github.com/thingvallatech/community-assist/internal/extract"
	"github.com/thingvallatech/community-assist/internal/fetch"
)

const (
	floridaDCFName    = "Florida DCF"
	floridaDCFBaseURL = "https://www.myflfamilies.com"

	accessFloridaURL   = "https://www.myflorida.com/accessflorida/"
	accessFloridaPhone = "1-866-762-2237"
)

// Known program pages; link discovery is deliberately not done.
var floridaDCFPaths = []string{
	"/service-programs/access/food-assistance-snap",
	"/service-programs/access/medicaid",
	"/service-programs/access/temporary-cash-assistance",
	"/service-programs/access",
}

var floridaDCFRules = extract.Ruleset{
	TitleSelectors:      []string{"h1", "title"},
	ContentSelectors:    []string{".content", ".main-content", "article", "main"},
	MaxParagraphs:       5,
	EligibilityKeywords: []string{"eligibility", "qualify", "requirements"},
	ApplyKeywords:       []string{"apply", "application", "how to"},
	TitleTrimmers: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\s*[-|]\s*Florida.*$`),
		regexp.MustCompile(`(?i)\s*[-|]\s*DCF.*$`),
	},
}

// FloridaDCF scrapes the Florida Department of Children and Families
// program pages and supplies the curated core state programs.
type FloridaDCF struct {
	fetcher *fetch.Fetcher
	logger  *zap.Logger
}

// NewFloridaDCF builds the adapter around an injected fetcher.
func NewFloridaDCF(fetcher *fetch.Fetcher, logger *zap.Logger) *FloridaDCF {
	return &FloridaDCF{fetcher: fetcher, logger: logger}
}

// Name identifies the source in provenance fields and logs.
func (a *FloridaDCF) Name() string { return floridaDCFName }

// BaseURL is the root all program paths are resolved against.
func (a *FloridaDCF) BaseURL() string { return floridaDCFBaseURL }

// Collect fetches the known program pages and appends the curated state
// programs plus the SNAP income-limit table. Curated records ship even when
// every live fetch fails.
func (a *FloridaDCF) Collect(ctx context.Context) (Result, error) {
	var programs []catalog.ProgramRecord

	for _, path := range floridaDCFPaths {
		url := floridaDCFBaseURL + path
		body, err := a.fetcher.Fetch(ctx, url)
		if err != nil {
			return Result{}, err
		}
		if body == "" {
			continue
		}

		rec, err := extract.Extract(body, url, floridaDCFRules)
		if err != nil {
			a.logger.Error("parse failed", zap.String("url", url), zap.Error(err))
			continue
		}
		if rec == nil {
			continue
		}

		a.decorate(rec)
		programs = append(programs, *rec)
		a.logger.Info("extracted program", zap.String("program", rec.Name))
	}

	programs = append(programs, floridaDCFSeedPrograms()...)

	return Result{
		Programs:     programs,
		IncomeLimits: snapIncomeLimits2024(),
	}, nil
}

// decorate fills the fields every DCF page shares but no page states.
func (a *FloridaDCF) decorate(rec *catalog.ProgramRecord) {
	rec.ApplicationURL = catalog.Ptr(accessFloridaURL)
	rec.SourceName = catalog.Ptr(floridaDCFName)
	rec.ServesState = []string{"FL"}
	rec.ContactPhone = catalog.Ptr(accessFloridaPhone)
	rec.ContactWebsite = catalog.Ptr(accessFloridaURL)
}
