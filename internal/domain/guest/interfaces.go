package guest

import "context"

// Store provides persistence for the status ledger and the additional
// roster. The whole value is read and rewritten per operation; the store is
// expected to make each write durable before returning.
type Store interface {
	GuestStatuses(ctx context.Context) ([]StatusEntry, error)
	SaveGuestStatuses(ctx context.Context, entries []StatusEntry) error
	AdditionalGuests(ctx context.Context) ([]BaseGuest, error)
	SaveAdditionalGuests(ctx context.Context, guests []BaseGuest) error
	SaveGuestData(ctx context.Context, entries []StatusEntry, guests []BaseGuest) error
}

// Replicator triggers a best-effort background push of the local document
// to the remote copy. Implementations must not block.
type Replicator interface {
	Replicate()
}
