package memcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveTripsSetGetClear(t *testing.T) {
	trips := NewActiveTrips()

	_, ok := trips.Get(1)
	assert.False(t, ok)

	trips.Set(1, 10)
	selected, ok := trips.Get(1)
	assert.True(t, ok)
	assert.EqualValues(t, 10, selected)

	trips.Set(1, 11)
	selected, _ = trips.Get(1)
	assert.EqualValues(t, 11, selected, "a later selection replaces the earlier one")

	trips.Clear(1)
	_, ok = trips.Get(1)
	assert.False(t, ok)
}

func TestActiveTripsIsolatedPerUser(t *testing.T) {
	trips := NewActiveTrips()
	trips.Set(1, 10)
	trips.Set(2, 20)

	trips.Clear(1)

	_, ok := trips.Get(1)
	assert.False(t, ok)

	selected, ok := trips.Get(2)
	assert.True(t, ok)
	assert.EqualValues(t, 20, selected)
}

func TestActiveTripsConcurrentAccess(t *testing.T) {
	trips := NewActiveTrips()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			trips.Set(id, id*2)
			trips.Get(id)
			trips.Clear(id)
		}(uint(i))
	}
	wg.Wait()
}
