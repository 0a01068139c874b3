package fakeapi

import (
	"sync"

	"github.com/sevigo/review-analyzer/internal/core"
)

// memoryStore keeps analyzed reviews for the lifetime of the process.
type memoryStore struct {
	mu      sync.RWMutex
	records []core.ReviewRecord
}

func (s *memoryStore) add(r core.ReviewRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// list returns a copy of the records, newest first.
func (s *memoryStore) list() []core.ReviewRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.ReviewRecord, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		out = append(out, s.records[i])
	}
	return out
}
