package server

import (
	"fmt"
	"sync"
)

// VerdictStore records validation verdicts by ID
type VerdictStore interface {
	FindVerdict(ID string) (VerdictRes, bool)
	AddVerdict(verdict VerdictRes) error
}

// InMemoryVerdictStore is a mutex-guarded in-memory VerdictStore
type InMemoryVerdictStore struct {
	mu       sync.Mutex
	verdicts map[string]VerdictRes
}

// NewInMemoryVerdictStore constructs an empty InMemoryVerdictStore
func NewInMemoryVerdictStore() *InMemoryVerdictStore {
	return &InMemoryVerdictStore{
		verdicts: map[string]VerdictRes{},
	}
}

func (s *InMemoryVerdictStore) FindVerdict(ID string) (VerdictRes, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	verdict, ok := s.verdicts[ID]
	return verdict, ok
}

func (s *InMemoryVerdictStore) AddVerdict(verdict VerdictRes) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.verdicts[verdict.ID]; ok {
		return fmt.Errorf("verdict with ID '%s' already exists", verdict.ID)
	}

	s.verdicts[verdict.ID] = verdict
	return nil
}
