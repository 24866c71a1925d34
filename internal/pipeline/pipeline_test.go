package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thingvallatech/community-assist/internal/catalog"
	"github.com/thingvallatech/community-assist/internal/pipeline"
	"github.com/thingvallatech/community-assist/internal/source"
)

type fakeAdapter struct {
	name   string
	result source.Result
	err    error
	panics bool
	calls  int
}

func (a *fakeAdapter) Name() string    { return a.name }
func (a *fakeAdapter) BaseURL() string { return "https://example.org" }

func (a *fakeAdapter) Collect(ctx context.Context) (source.Result, error) {
	a.calls++
	if a.panics {
		panic("adapter bug")
	}
	return a.result, a.err
}

type fakeStore struct {
	programs     []catalog.ProgramRecord
	providers    []catalog.ProviderRecord
	limits       []catalog.IncomeLimit
	programIDs   map[string]int64
	failPrograms map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{programIDs: map[string]int64{}, failPrograms: map[string]error{}}
}

func (s *fakeStore) UpsertProgram(_ context.Context, rec catalog.ProgramRecord) (bool, error) {
	if err := s.failPrograms[rec.Code]; err != nil {
		return false, err
	}
	inserted := true
	for _, existing := range s.programs {
		if rec.Code != "" && existing.Code == rec.Code {
			inserted = false
			break
		}
	}
	s.programs = append(s.programs, rec)
	if rec.Code != "" {
		if _, ok := s.programIDs[rec.Code]; !ok {
			s.programIDs[rec.Code] = int64(len(s.programIDs) + 1)
		}
	}
	return inserted, nil
}

func (s *fakeStore) UpsertProvider(_ context.Context, rec catalog.ProviderRecord) (bool, error) {
	s.providers = append(s.providers, rec)
	return true, nil
}

func (s *fakeStore) ProgramIDByCode(_ context.Context, code string) (int64, error) {
	id, ok := s.programIDs[code]
	if !ok {
		return 0, errors.New("not found")
	}
	return id, nil
}

func (s *fakeStore) UpsertIncomeLimit(_ context.Context, limit catalog.IncomeLimit) error {
	s.limits = append(s.limits, limit)
	return nil
}

func program(code, name string) catalog.ProgramRecord {
	return catalog.ProgramRecord{Code: code, Name: name}
}

func TestRun_FailingAdapterDoesNotBlockOthers(t *testing.T) {
	broken := &fakeAdapter{name: "broken", err: errors.New("site down")}
	healthy := &fakeAdapter{name: "healthy", result: source.Result{
		Programs: []catalog.ProgramRecord{program("A", "Program A")},
	}}
	curated := &fakeAdapter{name: "curated", result: source.Result{
		Programs: []catalog.ProgramRecord{program("B", "Program B")},
	}}

	st := newFakeStore()
	p := pipeline.New([]source.Adapter{broken, healthy}, []source.Adapter{curated}, st, zap.NewNop())

	summary, err := p.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.AdapterFailures)
	assert.Equal(t, 2, summary.ProgramsInserted)
	require.Len(t, st.programs, 2)
}

func TestRun_PanickingAdapterIsIsolated(t *testing.T) {
	angry := &fakeAdapter{name: "angry", panics: true}
	curated := &fakeAdapter{name: "curated", result: source.Result{
		Programs: []catalog.ProgramRecord{program("B", "Program B")},
	}}

	st := newFakeStore()
	p := pipeline.New([]source.Adapter{angry}, []source.Adapter{curated}, st, zap.NewNop())

	summary, err := p.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.AdapterFailures)
	assert.Equal(t, 1, summary.ProgramsInserted)
}

func TestRun_SkipLiveStillRunsCurated(t *testing.T) {
	live := &fakeAdapter{name: "live", result: source.Result{
		Programs: []catalog.ProgramRecord{program("A", "Program A")},
	}}
	curated := &fakeAdapter{name: "curated", result: source.Result{
		Programs:  []catalog.ProgramRecord{program("B", "Program B")},
		Providers: []catalog.ProviderRecord{{Name: "Provider", City: "Melbourne"}},
	}}

	st := newFakeStore()
	p := pipeline.New([]source.Adapter{live}, []source.Adapter{curated}, st, zap.NewNop())

	summary, err := p.Run(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, 0, live.calls)
	assert.Equal(t, 1, curated.calls)
	assert.Equal(t, 1, summary.ProgramsInserted)
	assert.Equal(t, 1, summary.ProvidersInserted)
}

func TestRun_RecordFailureDoesNotAbortRun(t *testing.T) {
	adapter := &fakeAdapter{name: "src", result: source.Result{
		Programs: []catalog.ProgramRecord{
			program("BAD", "Bad Program"),
			program("GOOD", "Good Program"),
		},
	}}

	st := newFakeStore()
	st.failPrograms["BAD"] = errors.New("constraint violation")
	p := pipeline.New(nil, []source.Adapter{adapter}, st, zap.NewNop())

	summary, err := p.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ProgramsInserted)
	require.Len(t, st.programs, 1)
	assert.Equal(t, "GOOD", st.programs[0].Code)
}

func TestRun_IncomeLimitsResolveAgainstSavedPrograms(t *testing.T) {
	adapter := &fakeAdapter{name: "src", result: source.Result{
		Programs: []catalog.ProgramRecord{program("SNAP-FL", "SNAP")},
		IncomeLimits: []source.IncomeLimitRow{
			{ProgramCode: "SNAP-FL", HouseholdSize: 1, MonthlyLimit: 1580, FPLPercentage: 130},
			{ProgramCode: "MISSING", HouseholdSize: 1, MonthlyLimit: 100},
		},
	}}

	st := newFakeStore()
	p := pipeline.New(nil, []source.Adapter{adapter}, st, zap.NewNop())

	summary, err := p.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.IncomeLimitsSaved)
	require.Len(t, st.limits, 1)
	assert.Equal(t, st.programIDs["SNAP-FL"], st.limits[0].ProgramID)
	assert.Equal(t, float64(1580), st.limits[0].MonthlyLimit)
}

func TestRun_CanceledContext(t *testing.T) {
	adapter := &fakeAdapter{name: "src"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := pipeline.New(nil, []source.Adapter{adapter}, newFakeStore(), zap.NewNop())
	_, err := p.Run(ctx, false)
	require.Error(t, err)
	assert.Equal(t, 0, adapter.calls)
}
