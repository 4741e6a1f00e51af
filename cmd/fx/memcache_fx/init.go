package memcache_fx

import (
	"go.uber.org/fx"

	mem "wayfarer/pkg/memcache"
)

var Module = fx.Provide(
	provideActiveTripStore)

func provideActiveTripStore() mem.ActiveTripStore {
	return mem.NewActiveTrips()
}
