package pricing

import "context"

// Store provides persistence for the price list. A nil Pricing means no
// list has been configured yet.
type Store interface {
	Pricing(ctx context.Context) (*Pricing, error)
	SavePricing(ctx context.Context, pricing *Pricing) error
}

// Replicator triggers a best-effort background push of the local document
// to the remote copy. Implementations must not block.
type Replicator interface {
	Replicate()
}
