package gateway

import "context"

// CollectionStore reads and writes whole named collections. The HTTP
// client is the canonical implementation; the local cache and the
// fallback wrapper satisfy it too so repositories stay agnostic of
// where a collection actually came from.
type CollectionStore interface {
	GetCollection(ctx context.Context, name string, out interface{}) error
	ReplaceCollection(ctx context.Context, name string, data interface{}) error
}

// CollectionNames lists every collection the gateway persists. Cache
// sync iterates this set.
var CollectionNames = []string{
	projectsCollection,
	usersCollection,
	organizationsCollection,
	categoriesCollection,
	suppliersCollection,
	activityCollection,
	permissionsCollection,
}
