package guest

// Status represents the invitation state of a guest family.
type Status string

const (
	StatusInvited   Status = "invited"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
)

// BaseGuest is a roster entry: the invited headcount of one family.
// Counts are fixed at creation and never mutated afterwards.
type BaseGuest struct {
	ID         string `json:"id"`
	FamilyName string `json:"familyName"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Babies     int    `json:"babies"`
}

// StatusEntry is a ledger record keyed by guest id. Confirmed counts are
// pointers: nil means the count was never recorded and the invited count
// applies.
type StatusEntry struct {
	ID                string `json:"id"`
	Status            Status `json:"status"`
	ConfirmedAdults   *int   `json:"confirmedAdults,omitempty"`
	ConfirmedChildren *int   `json:"confirmedChildren,omitempty"`
	ConfirmedBabies   *int   `json:"confirmedBabies,omitempty"`
}

// Guest is the merged working view of one roster entry: invited counts plus
// the current ledger state.
type Guest struct {
	BaseGuest
	Status            Status `json:"status"`
	ConfirmedAdults   *int   `json:"confirmedAdults,omitempty"`
	ConfirmedChildren *int   `json:"confirmedChildren,omitempty"`
	ConfirmedBabies   *int   `json:"confirmedBabies,omitempty"`
}

// EffectiveAdults returns the adult headcount this guest contributes: the
// confirmed count when the guest is confirmed and a count was recorded,
// otherwise the invited count.
func (g Guest) EffectiveAdults() int {
	if g.Status == StatusConfirmed && g.ConfirmedAdults != nil {
		return *g.ConfirmedAdults
	}
	return g.Adults
}

// EffectiveChildren returns the child headcount this guest contributes.
func (g Guest) EffectiveChildren() int {
	if g.Status == StatusConfirmed && g.ConfirmedChildren != nil {
		return *g.ConfirmedChildren
	}
	return g.Children
}

// EffectiveBabies returns the baby headcount this guest contributes.
func (g Guest) EffectiveBabies() int {
	if g.Status == StatusConfirmed && g.ConfirmedBabies != nil {
		return *g.ConfirmedBabies
	}
	return g.Babies
}

// Stats aggregates effective headcounts over a guest list.
type Stats struct {
	TotalAdults   int `json:"totalAdults"`
	TotalChildren int `json:"totalChildren"`
	TotalBabies   int `json:"totalBabies"`
	TotalGuests   int `json:"totalGuests"`
}

// AvailableSpots counts seats freed by declines and partial confirmations,
// per category. Babies have no capacity limit and are not tracked here.
type AvailableSpots struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// SpotsSummary is the all-category seat accounting shown on the summary
// view. Unlike AvailableSpots it includes babies.
type SpotsSummary struct {
	Total     int `json:"totalSpots"`
	Reserved  int `json:"reservedSpots"`
	Available int `json:"availableSpots"`
	Declined  int `json:"declinedSpots"`
}
