package index

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hearthside/homefinder/pkg/common"
	"github.com/hearthside/homefinder/pkg/types"
)

var (
	totalListings = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "homefinder_listings",
		Help: "Number of listings held in memory per kind",
	}, []string{"kind"})
	noChanges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "homefinder_listing_changes_total",
		Help: "The total number of applied listing changes",
	})
)

// Change is one change-feed entry.
type Change struct {
	Record  types.ListingRecord `json:"record"`
	Deleted bool                `json:"deleted,omitempty"`
}

// Index holds the full in-memory listing collections per kind and applies
// change-feed updates in background batches.
type Index struct {
	collections map[types.Kind]*Collection
	queue       *common.QueueHandler[Change]
}

func New() *Index {
	idx := &Index{
		collections: make(map[types.Kind]*Collection, len(types.Kinds)),
	}
	for _, kind := range types.Kinds {
		idx.collections[kind] = NewCollection()
	}
	idx.queue = common.NewQueueHandler(idx.applyChanges, 100)
	return idx
}

// Collection returns the collection for a kind, falling back to homes for
// an unknown kind so callers never get nil.
func (i *Index) Collection(kind types.Kind) *Collection {
	if c, ok := i.collections[kind]; ok {
		return c
	}
	return i.collections[types.KindHome]
}

// All returns a copy of one kind's records in collection order.
func (i *Index) All(kind types.Kind) []types.ListingRecord {
	return i.Collection(kind).All()
}

// Get looks a listing up across every kind.
func (i *Index) Get(id types.ListingID) (types.ListingRecord, bool) {
	for _, kind := range types.Kinds {
		if record, ok := i.collections[kind].Get(id); ok {
			return record, true
		}
	}
	return types.ListingRecord{}, false
}

// Upsert applies a record immediately, used for bulk loads at boot.
func (i *Index) Upsert(record types.ListingRecord) {
	if record.ID == "" {
		return
	}
	kind := record.Kind
	if _, ok := i.collections[kind]; !ok {
		log.Printf("unknown listing kind %q for id %s, storing as home", kind, record.ID)
		kind = types.KindHome
	}
	i.collections[kind].Upsert(record)
	totalListings.WithLabelValues(string(kind)).Set(float64(i.collections[kind].Len()))
}

// Apply queues a change for background batching.
func (i *Index) Apply(changes ...Change) {
	i.queue.Add(changes...)
}

func (i *Index) applyChanges(changes []Change) {
	for _, change := range changes {
		noChanges.Inc()
		if change.Deleted {
			for _, kind := range types.Kinds {
				i.collections[kind].Delete(change.Record.ID)
				totalListings.WithLabelValues(string(kind)).Set(float64(i.collections[kind].Len()))
			}
			continue
		}
		i.Upsert(change.Record)
	}
}

// Snapshot copies every collection, keyed by kind.
func (i *Index) Snapshot() map[types.Kind][]types.ListingRecord {
	result := make(map[types.Kind][]types.ListingRecord, len(i.collections))
	for kind, c := range i.collections {
		result[kind] = c.All()
	}
	return result
}

// CommunityNames builds the community id to display name lookup used for
// filter chips.
func (i *Index) CommunityNames() map[types.ListingID]string {
	communities := i.collections[types.KindCommunity].All()
	names := make(map[types.ListingID]string, len(communities))
	for _, c := range communities {
		names[c.ID] = c.Name
	}
	return names
}
