package guest

// ComputeAvailableSpots counts seats that can be handed to new families.
// Declined guests free their full invited adult and child counts; confirmed
// guests free the gap between invited and effective confirmed counts;
// invited guests still hold their seats. Babies are unlimited and excluded.
//
// Both components are non-negative as long as the confirmed-within-invited
// invariant is upheld at the mutation boundary.
func ComputeAvailableSpots(guests []Guest) AvailableSpots {
	var spots AvailableSpots
	for _, g := range guests {
		switch g.Status {
		case StatusDeclined:
			spots.Adults += g.Adults
			spots.Children += g.Children
		case StatusConfirmed:
			spots.Adults += g.Adults - g.EffectiveAdults()
			spots.Children += g.Children - g.EffectiveChildren()
		}
	}
	return spots
}

// ComputeSpotsSummary produces the all-category seat accounting for the
// summary view: declined seats plus the unconfirmed remainder of partial
// confirmations make up the available pool.
func ComputeSpotsSummary(guests []Guest) SpotsSummary {
	var sum SpotsSummary
	for _, g := range guests {
		invited := g.Adults + g.Children + g.Babies
		switch g.Status {
		case StatusInvited:
			sum.Total += invited
		case StatusConfirmed:
			sum.Total += invited
			reserved := g.EffectiveAdults() + g.EffectiveChildren() + g.EffectiveBabies()
			sum.Reserved += reserved
			sum.Available += invited - reserved
		case StatusDeclined:
			sum.Declined += invited
			sum.Available += invited
		}
	}
	return sum
}
