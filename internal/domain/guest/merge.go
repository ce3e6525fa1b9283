package guest

// Merge combines the base roster, the additional roster and the status
// ledger into the working guest list. Output order is roster order: base
// entries first, then additional entries, each preserving insertion order.
//
// A roster entry with a ledger record takes that record's status and
// confirmed counts verbatim; one without defaults to invited with no
// confirmed counts. Ledger entries whose id is not in either roster are
// ignored. Pure and idempotent.
func Merge(base, additional []BaseGuest, ledger []StatusEntry) []Guest {
	byID := make(map[string]StatusEntry, len(ledger))
	for _, entry := range ledger {
		byID[entry.ID] = entry
	}

	merged := make([]Guest, 0, len(base)+len(additional))
	for _, roster := range [][]BaseGuest{base, additional} {
		for _, bg := range roster {
			g := Guest{BaseGuest: bg, Status: StatusInvited}
			if entry, ok := byID[bg.ID]; ok {
				g.Status = entry.Status
				g.ConfirmedAdults = entry.ConfirmedAdults
				g.ConfirmedChildren = entry.ConfirmedChildren
				g.ConfirmedBabies = entry.ConfirmedBabies
			}
			merged = append(merged, g)
		}
	}
	return merged
}

// ComputeStats sums effective headcounts across a guest list.
func ComputeStats(guests []Guest) Stats {
	var stats Stats
	for _, g := range guests {
		adults := g.EffectiveAdults()
		children := g.EffectiveChildren()
		babies := g.EffectiveBabies()
		stats.TotalAdults += adults
		stats.TotalChildren += children
		stats.TotalBabies += babies
		stats.TotalGuests += adults + children + babies
	}
	return stats
}
