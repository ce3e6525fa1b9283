package pricing

import "github.com/weckerleben/bday-guests/internal/domain/guest"

// ComputeCosts applies the price list to a guest list's effective
// headcounts. Fixed items bill quantity 1; per-head items bill the matching
// aggregate count. The breakdown preserves price-list order. Pure.
func ComputeCosts(guests []guest.Guest, pricing *Pricing) Breakdown {
	breakdown := Breakdown{Items: []LineItem{}}
	if pricing == nil {
		return breakdown
	}

	stats := guest.ComputeStats(guests)
	for _, item := range pricing.Items {
		line := LineItem{Name: item.Name, UnitPrice: item.Price}
		switch item.Type {
		case TypeFixed:
			line.Quantity = 1
			line.Total = item.Price
		case TypePerPerson:
			switch item.PersonType {
			case PersonAdult:
				line.Quantity = stats.TotalAdults
			case PersonChild:
				line.Quantity = stats.TotalChildren
			case PersonBaby:
				line.Quantity = stats.TotalBabies
			}
			line.Total = int64(line.Quantity) * item.Price
		}
		breakdown.Items = append(breakdown.Items, line)
		breakdown.Total += line.Total
	}
	return breakdown
}

// SplitTotal allocates a cost total between the two payers. The first payer
// always covers the fixed contribution, even when the total falls short of
// it; the second payer covers what remains.
func SplitTotal(total, contribution int64) Split {
	remainder := total - contribution
	if remainder < 0 {
		remainder = 0
	}
	return Split{PayerOne: contribution, PayerTwo: remainder}
}

// DefaultPricing returns the four legacy budget lines. It backs the
// migration of pre-itemized pricing documents.
func DefaultPricing() *Pricing {
	return &Pricing{Items: []Item{
		{ID: "1", Name: "Adult combo", Price: 33000, Type: TypePerPerson, PersonType: PersonAdult},
		{ID: "2", Name: "Child combo", Price: 39000, Type: TypePerPerson, PersonType: PersonChild},
		{ID: "3", Name: "Venue rental", Price: 2700000, Type: TypeFixed},
		{ID: "4", Name: "Sweet table", Price: 485000, Type: TypeFixed},
	}}
}
