package fetch

import "sync"

// VisitSet provides thread-safe visited URL tracking for one pipeline run.
// Each adapter run owns its own set; nothing is persisted across runs, so
// re-verification of the same URL on the next run is expected.
type VisitSet struct {
	seen sync.Map
}

// NewVisitSet creates an empty VisitSet.
func NewVisitSet() *VisitSet {
	return &VisitSet{}
}

// MarkIfNew stores the URL if it has not been seen before and returns true.
func (s *VisitSet) MarkIfNew(url string) bool {
	if url == "" {
		return false
	}
	_, loaded := s.seen.LoadOrStore(url, struct{}{})
	return !loaded
}

// Clear forgets a URL so a caller-driven retry can fetch it again. The
// fetcher itself never retries.
func (s *VisitSet) Clear(url string) {
	s.seen.Delete(url)
}
