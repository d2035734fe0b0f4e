package tool

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// InstanceState is the mutable per-trajectory state of one tool instance.
type InstanceState struct {
	// Response is the observation text from the most recent Execute call.
	Response string

	// GroundTruth is the optional reference answer for reward scoring.
	GroundTruth string

	// Reward is the running reward for this instance.
	Reward float64
}

// InstanceStore maps opaque instance identifiers to per-trajectory state.
// Each tool owns exactly one store; the mapping itself is shared mutable
// state across trajectories, so every operation is mutex-guarded even though
// each trajectory touches a disjoint key.
type InstanceStore struct {
	mu        sync.RWMutex
	instances map[string]*InstanceState
}

// NewInstanceStore creates an empty instance store.
func NewInstanceStore() *InstanceStore {
	return &InstanceStore{
		instances: make(map[string]*InstanceState),
	}
}

// Create allocates state under id, generating a unique identifier when id is
// empty. Returns ErrInstanceExists when the identifier is already live.
func (s *InstanceStore) Create(id, groundTruth string) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.instances[id]; exists {
		return "", fmt.Errorf("%w: %s", ErrInstanceExists, id)
	}
	s.instances[id] = &InstanceState{GroundTruth: groundTruth}
	return id, nil
}

// Get returns a snapshot of the instance state.
func (s *InstanceStore) Get(id string) (InstanceState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.instances[id]
	if !ok {
		return InstanceState{}, fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
	}
	return *state, nil
}

// SetResponse overwrites the instance's recorded observation.
func (s *InstanceStore) SetResponse(id, response string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.instances[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
	}
	state.Response = response
	return nil
}

// SetReward updates the instance's running reward.
func (s *InstanceStore) SetReward(id string, reward float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.instances[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
	}
	state.Reward = reward
	return nil
}

// Release removes the instance state. Releasing an identifier that was never
// created, or was already released, returns ErrInstanceNotFound.
func (s *InstanceStore) Release(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.instances[id]; !ok {
		return fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
	}
	delete(s.instances, id)
	return nil
}

// Len returns the number of live instances.
func (s *InstanceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.instances)
}
