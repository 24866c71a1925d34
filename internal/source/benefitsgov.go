package source

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/thingvallatech/community-assist/internal/catalog"
	"github.com/thingvallatech/community-assist/internal/extract"
	"github.com/thingvallatech/community-assist/internal/fetch"
)

const (
	benefitsGovName    = "Benefits.gov"
	benefitsGovBaseURL = "https://www.benefits.gov"
)

// Directory categories used by the optional discovery path.
var benefitsGovCategories = []string{
	"food-nutrition",
	"healthcare-medical",
	"housing-shelter",
	"income-expenses",
	"family-children",
	"employment",
	"education-training",
	"disability",
}

var benefitsGovRules = extract.Ruleset{
	TitleSelectors:      []string{"h1"},
	ContentSelectors:    []string{".program-description", ".description", "#program-details"},
	MaxParagraphs:       5,
	EligibilityKeywords: []string{"eligibility", "who is eligible"},
	ApplyKeywords:       []string{"apply", "application"},
}

// BenefitsGov supplies curated federal programs relevant to Florida. Live
// directory discovery exists but is off by default: the curated list is
// predictable and polite, and the directory's recall is not worth the
// request volume.
type BenefitsGov struct {
	fetcher        *fetch.Fetcher
	logger         *zap.Logger
	discover       bool
	maxPerCategory int
}

// NewBenefitsGov builds the adapter. Discovery only runs when enabled.
func NewBenefitsGov(fetcher *fetch.Fetcher, logger *zap.Logger, discover bool, maxPerCategory int) *BenefitsGov {
	if maxPerCategory <= 0 {
		maxPerCategory = 10
	}
	return &BenefitsGov{
		fetcher:        fetcher,
		logger:         logger,
		discover:       discover,
		maxPerCategory: maxPerCategory,
	}
}

// Name identifies the source in provenance fields and logs.
func (a *BenefitsGov) Name() string { return benefitsGovName }

// BaseURL is the directory root.
func (a *BenefitsGov) BaseURL() string { return benefitsGovBaseURL }

// Collect returns the curated federal programs, plus any discovered
// directory programs when discovery is enabled.
func (a *BenefitsGov) Collect(ctx context.Context) (Result, error) {
	programs := federalSeedPrograms()

	if a.discover {
		for _, category := range benefitsGovCategories {
			found, err := a.collectCategory(ctx, category)
			if err != nil {
				return Result{}, err
			}
			programs = append(programs, found...)
		}
	}

	return Result{Programs: programs}, nil
}

func (a *BenefitsGov) collectCategory(ctx context.Context, category string) ([]catalog.ProgramRecord, error) {
	url := benefitsGovBaseURL + "/categories/" + category
	body, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if body == "" {
		return nil, nil
	}

	links, err := programLinks(body, a.maxPerCategory)
	if err != nil {
		a.logger.Error("parse category page failed", zap.String("url", url), zap.Error(err))
		return nil, nil
	}

	var programs []catalog.ProgramRecord
	for _, link := range links {
		pageBody, err := a.fetcher.Fetch(ctx, link)
		if err != nil {
			return nil, err
		}
		if pageBody == "" {
			continue
		}

		rec, err := extract.Extract(pageBody, link, benefitsGovRules)
		if err != nil {
			a.logger.Error("parse failed", zap.String("url", link), zap.Error(err))
			continue
		}
		if rec == nil {
			continue
		}

		rec.SourceName = catalog.Ptr(benefitsGovName)
		rec.ServesState = []string{"FL"}
		programs = append(programs, *rec)
		a.logger.Info("extracted program", zap.String("program", rec.Name))
	}
	return programs, nil
}

// programLinks pulls absolute program-page links off a category page,
// capped at limit.
func programLinks(body string, limit int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var links []string
	doc.Find("a[href*='/benefits/']").EachWithBreak(func(i int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return true
		}
		if !strings.HasPrefix(href, "http") {
			href = benefitsGovBaseURL + href
		}
		if _, dup := seen[href]; dup {
			return true
		}
		seen[href] = struct{}{}
		links = append(links, href)
		return len(links) < limit
	})
	return links, nil
}
