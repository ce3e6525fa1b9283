package store

import (
	"github.com/weckerleben/bday-guests/internal/domain/guest"
	"github.com/weckerleben/bday-guests/internal/domain/pricing"
)

// Document is the single JSON value this system persists locally and
// replicates to the remote blob store. LastUpdated is epoch milliseconds
// and drives last-write-wins acceptance on sync-in.
type Document struct {
	GuestStatuses    []guest.StatusEntry `json:"guestStatuses"`
	AdditionalGuests []guest.BaseGuest   `json:"additionalGuests"`
	Pricing          *pricing.Pricing    `json:"pricing"`
	LastUpdated      int64               `json:"lastUpdated"`
}

// Export is the user-triggered snapshot dump.
type Export struct {
	GuestStatuses    []guest.StatusEntry `json:"guestStatuses"`
	AdditionalGuests []guest.BaseGuest   `json:"additionalGuests"`
	Pricing          *pricing.Pricing    `json:"pricing"`
	ExportedAt       string              `json:"exportedAt"`
}

// Clone returns a deep copy. Status entries carry count pointers, so a
// shallow copy would alias mutable state across goroutines.
func (d Document) Clone() Document {
	out := Document{LastUpdated: d.LastUpdated}
	out.GuestStatuses = cloneEntries(d.GuestStatuses)
	out.AdditionalGuests = append([]guest.BaseGuest(nil), d.AdditionalGuests...)
	out.Pricing = clonePricing(d.Pricing)
	return out
}

func cloneEntries(entries []guest.StatusEntry) []guest.StatusEntry {
	if entries == nil {
		return nil
	}
	out := make([]guest.StatusEntry, len(entries))
	for i, entry := range entries {
		entry.ConfirmedAdults = cloneInt(entry.ConfirmedAdults)
		entry.ConfirmedChildren = cloneInt(entry.ConfirmedChildren)
		entry.ConfirmedBabies = cloneInt(entry.ConfirmedBabies)
		out[i] = entry
	}
	return out
}

func clonePricing(p *pricing.Pricing) *pricing.Pricing {
	if p == nil {
		return nil
	}
	return &pricing.Pricing{Items: append([]pricing.Item(nil), p.Items...)}
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
