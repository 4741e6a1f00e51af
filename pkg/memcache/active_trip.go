// pkg/memcache/active_trip.go
package memcache

import "sync"

// ActiveTripStore holds per-session state: which itinerary the user is
// currently logging expenses against. Set at selection, cleared at logout or
// explicitly; never shared across users.
type ActiveTripStore interface {
	Set(userID uint, itineraryID uint)

	// Get returns the selected itinerary for the user, if any.
	Get(userID uint) (uint, bool)

	Clear(userID uint)
}

type ActiveTrips struct {
	mu   sync.RWMutex
	data map[uint]uint
}

func NewActiveTrips() *ActiveTrips {
	return &ActiveTrips{
		data: make(map[uint]uint),
	}
}

func (s *ActiveTrips) Set(userID uint, itineraryID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = itineraryID
}

func (s *ActiveTrips) Get(userID uint) (uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.data[userID]
	return id, ok
}

func (s *ActiveTrips) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
}
