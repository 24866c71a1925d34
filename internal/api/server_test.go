package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thingvallatech/community-assist/internal/api"
	"github.com/thingvallatech/community-assist/internal/catalog"
	"github.com/thingvallatech/community-assist/internal/config"
	"github.com/thingvallatech/community-assist/internal/store"
)

// stubCatalog implements api.Catalog with overridable behavior per test.
type stubCatalog struct {
	pingErr      error
	programs     []catalog.ProgramRecord
	searched     []catalog.ProgramRecord
	byID         map[int64]catalog.ProgramRecord
	providers    []catalog.ProviderRecord
	translations map[string]string

	lastSearchTerm string
	lastCounty     string
}

func (c *stubCatalog) Ping(context.Context) error { return c.pingErr }

func (c *stubCatalog) GetAllPrograms(_ context.Context, _ bool, _ string) ([]catalog.ProgramRecord, error) {
	return c.programs, nil
}

func (c *stubCatalog) SearchPrograms(_ context.Context, term, _ string) ([]catalog.ProgramRecord, error) {
	c.lastSearchTerm = term
	return c.searched, nil
}

func (c *stubCatalog) GetEmergencyPrograms(context.Context) ([]catalog.ProgramRecord, error) {
	return c.programs, nil
}

func (c *stubCatalog) GetProgramByID(_ context.Context, id int64) (catalog.ProgramRecord, error) {
	rec, ok := c.byID[id]
	if !ok {
		return catalog.ProgramRecord{}, store.ErrNotFound
	}
	return rec, nil
}

func (c *stubCatalog) GetIncomeLimits(context.Context, int64) ([]catalog.IncomeLimit, error) {
	return nil, nil
}

func (c *stubCatalog) GetProvidersForProgram(context.Context, int64) ([]catalog.ProviderRecord, error) {
	return c.providers, nil
}

func (c *stubCatalog) GetProvidersByCounty(_ context.Context, county string) ([]catalog.ProviderRecord, error) {
	c.lastCounty = county
	return c.providers, nil
}

func (c *stubCatalog) GetProgramStats(context.Context) (store.Stats, error) {
	return store.Stats{TotalPrograms: int64(len(c.programs))}, nil
}

func (c *stubCatalog) GetCategoryCounts(context.Context) ([]store.CategoryCount, error) {
	return nil, nil
}

func (c *stubCatalog) GetAllTranslations(context.Context, string) (map[string]string, error) {
	return c.translations, nil
}

func newTestServer(t *testing.T, cat *stubCatalog) *httptest.Server {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	srv := httptest.NewServer(api.NewServer(cat, cfg, zap.NewNop()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHealthz(t *testing.T) {
	cat := &stubCatalog{}
	srv := newTestServer(t, cat)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestHealthz_DatabaseDown(t *testing.T) {
	cat := &stubCatalog{pingErr: errors.New("connection refused")}
	srv := newTestServer(t, cat)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "degraded", body["status"])
}

func TestListPrograms_SearchTakesPrecedence(t *testing.T) {
	cat := &stubCatalog{
		programs: []catalog.ProgramRecord{{Code: "ALL", Name: "All"}},
		searched: []catalog.ProgramRecord{{Code: "HIT", Name: "Hit"}},
	}
	srv := newTestServer(t, cat)

	resp, err := http.Get(srv.URL + "/v1/programs?q=food&category=housing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Programs []catalog.ProgramRecord `json:"programs"`
		Count    int                     `json:"count"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "food", cat.lastSearchTerm)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "HIT", body.Programs[0].Code)
}

func TestGetProgram_NotFound(t *testing.T) {
	srv := newTestServer(t, &stubCatalog{byID: map[int64]catalog.ProgramRecord{}})

	resp, err := http.Get(srv.URL + "/v1/programs/42")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetProgram_BadID(t *testing.T) {
	srv := newTestServer(t, &stubCatalog{})

	resp, err := http.Get(srv.URL + "/v1/programs/not-a-number")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetProgram_Found(t *testing.T) {
	cat := &stubCatalog{byID: map[int64]catalog.ProgramRecord{
		5: {ID: 5, Code: "SNAP-FL", Name: "SNAP Food Assistance"},
	}}
	srv := newTestServer(t, cat)

	resp, err := http.Get(srv.URL + "/v1/programs/5")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Program catalog.ProgramRecord `json:"program"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "SNAP-FL", body.Program.Code)
}

func TestListProviders_DefaultsToTargetCounty(t *testing.T) {
	cat := &stubCatalog{}
	srv := newTestServer(t, cat)

	resp, err := http.Get(srv.URL + "/v1/providers")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Brevard", cat.lastCounty)
}

func TestMatchPrograms(t *testing.T) {
	food := catalog.CategoryFood
	cat := &stubCatalog{programs: []catalog.ProgramRecord{
		{Code: "SNAP-FL", Name: "SNAP", Category: &food},
		{Code: "SECTION8-HCV", Name: "Housing Vouchers"},
	}}
	srv := newTestServer(t, cat)

	resp, err := http.Post(srv.URL+"/v1/match", "application/json",
		strings.NewReader(`{"household_size": 2, "needs": ["food"]}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Matches []struct {
			Program catalog.ProgramRecord `json:"program"`
			Percent int                   `json:"match_score"`
		} `json:"matches"`
		Count int `json:"count"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Matches)
	assert.Equal(t, "SNAP-FL", body.Matches[0].Program.Code)
	assert.Greater(t, body.Matches[0].Percent, 0)
}

func TestMatchPrograms_BadJSON(t *testing.T) {
	srv := newTestServer(t, &stubCatalog{})

	resp, err := http.Post(srv.URL+"/v1/match", "application/json",
		strings.NewReader(`{broken`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCalculateSNAP(t *testing.T) {
	srv := newTestServer(t, &stubCatalog{})

	resp, err := http.Post(srv.URL+"/v1/calculate/snap", "application/json",
		strings.NewReader(`{"household_size": 3, "gross_income": 0, "rent": 0, "utilities": 0}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Eligible         bool    `json:"eligible"`
		EstimatedMonthly float64 `json:"estimated_monthly"`
		MaximumPossible  float64 `json:"maximum_possible"`
		Disclaimer       string  `json:"disclaimer"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Eligible)
	assert.Equal(t, float64(616), body.EstimatedMonthly)
	assert.Equal(t, float64(616), body.MaximumPossible)
	assert.NotEmpty(t, body.Disclaimer)
}

func TestCalculateSNAP_NegativeIncome(t *testing.T) {
	srv := newTestServer(t, &stubCatalog{})

	resp, err := http.Post(srv.URL+"/v1/calculate/snap", "application/json",
		strings.NewReader(`{"household_size": 1, "gross_income": -5}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetTranslations(t *testing.T) {
	cat := &stubCatalog{translations: map[string]string{"nav.home": "Inicio"}}
	srv := newTestServer(t, cat)

	resp, err := http.Get(srv.URL + "/v1/translations/es")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Inicio", body["nav.home"])
}

func TestGetTranslations_UnsupportedLanguage(t *testing.T) {
	srv := newTestServer(t, &stubCatalog{})

	resp, err := http.Get(srv.URL + "/v1/translations/fr")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, &stubCatalog{})

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
