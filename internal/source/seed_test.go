package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thingvallatech/community-assist/internal/catalog"
	"github.com/thingvallatech/community-assist/internal/fetch"
)

func codesOf(programs []catalog.ProgramRecord) map[string]catalog.ProgramRecord {
	byCode := make(map[string]catalog.ProgramRecord, len(programs))
	for _, p := range programs {
		byCode[p.Code] = p
	}
	return byCode
}

func TestFloridaDCFSeedPrograms(t *testing.T) {
	byCode := codesOf(floridaDCFSeedPrograms())
	for _, code := range []string{"SNAP-FL", "MEDICAID-FL", "TANF-FL", "LIHEAP-FL", "WIC-FL"} {
		rec, ok := byCode[code]
		require.True(t, ok, "missing %s", code)
		assert.NotEmpty(t, rec.Name)
		assert.NotNil(t, rec.NameES, "%s should be bilingual", code)
		assert.NotNil(t, rec.Category, code)
		require.NotNil(t, rec.Confidence, code)
		assert.GreaterOrEqual(t, *rec.Confidence, 0.9, "curated records are high confidence")
		assert.Contains(t, rec.ServesState, "FL", code)
	}
}

func TestSNAPIncomeLimits2024(t *testing.T) {
	limits := snapIncomeLimits2024()
	require.Len(t, limits, 8)

	wantBySize := map[int]float64{
		1: 1580, 2: 2137, 3: 2694, 4: 3250,
		5: 3807, 6: 4364, 7: 4921, 8: 5478,
	}
	for _, row := range limits {
		assert.Equal(t, "SNAP-FL", row.ProgramCode)
		assert.Equal(t, wantBySize[row.HouseholdSize], row.MonthlyLimit, "size %d", row.HouseholdSize)
		assert.Equal(t, 130, row.FPLPercentage)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), row.EffectiveDate)
	}
}

func TestFederalSeedPrograms(t *testing.T) {
	byCode := codesOf(federalSeedPrograms())
	for _, code := range []string{"SSI", "SSDI", "SECTION8-HCV", "MEDICARE", "PELL-GRANT", "UI-FL", "FREE-LUNCH"} {
		rec, ok := byCode[code]
		require.True(t, ok, "missing %s", code)
		assert.NotEmpty(t, rec.Name)
		assert.NotNil(t, rec.Category, code)
		assert.Contains(t, rec.ServesState, "FL", code)
	}
}

func TestLocal211Collect(t *testing.T) {
	adapter := NewLocal211(zap.NewNop())

	result, err := adapter.Collect(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Programs, 8)
	assert.Len(t, result.Providers, 9)
	assert.Empty(t, result.IncomeLimits)

	byCode := codesOf(result.Programs)
	info, ok := byCode["211-INFO"]
	require.True(t, ok)
	require.NotNil(t, info.IsEmergency)
	assert.True(t, *info.IsEmergency)
	require.NotNil(t, info.Confidence)
	assert.Equal(t, 1.0, *info.Confidence)
	assert.Contains(t, info.ServesCounty, "Brevard")

	for _, p := range result.Providers {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.City)
		assert.True(t, p.IsActive)
	}
}

func TestBenefitsGovCollect_CuratedOnlyWithoutDiscovery(t *testing.T) {
	// Discovery is off, so no fetcher call should ever happen; a nil
	// fetcher proves it.
	adapter := NewBenefitsGov(nil, zap.NewNop(), false, 0)

	result, err := adapter.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Programs, 7)
}

func TestFloridaDCFCollect_CuratedSurvivesFetchFailures(t *testing.T) {
	// Pre-marking every page URL makes each fetch return no content, the
	// same outcome as an HTTP or transport failure. The curated programs
	// and income limits must still ship.
	visits := fetch.NewVisitSet()
	for _, path := range floridaDCFPaths {
		visits.MarkIfNew(floridaDCFBaseURL + path)
	}

	fetcher := fetch.New(fetch.Config{Source: "test", Timeout: 5 * time.Second},
		fetch.NewThrottle(0, 2), visits, zap.NewNop())
	adapter := NewFloridaDCF(fetcher, zap.NewNop())

	result, err := adapter.Collect(context.Background())
	require.NoError(t, err)

	byCode := codesOf(result.Programs)
	assert.Contains(t, byCode, "SNAP-FL")
	assert.Len(t, result.IncomeLimits, 8)
}

func TestProgramLinks(t *testing.T) {
	html := `
		<html><body>
		<a href="/benefits/one">One</a>
		<a href="/benefits/two">Two</a>
		<a href="/benefits/one">One again</a>
		<a href="https://www.benefits.gov/benefits/three">Three</a>
		<a href="/about">Not a program</a>
		</body></html>`

	links, err := programLinks(html, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://www.benefits.gov/benefits/one",
		"https://www.benefits.gov/benefits/two",
		"https://www.benefits.gov/benefits/three",
	}, links)

	capped, err := programLinks(html, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}
