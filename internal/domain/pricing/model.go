package pricing

// ItemType distinguishes flat fees from per-head line items.
type ItemType string

const (
	TypeFixed     ItemType = "fixed"
	TypePerPerson ItemType = "perPerson"
)

// PersonType selects which headcount a per-head item is billed against.
type PersonType string

const (
	PersonAdult PersonType = "adult"
	PersonChild PersonType = "child"
	PersonBaby  PersonType = "baby"
)

// Item is one priced line of the event budget. Price is an integer count of
// the smallest currency unit. PersonType is set iff Type is perPerson.
type Item struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Price      int64      `json:"price"`
	Type       ItemType   `json:"type"`
	PersonType PersonType `json:"personType,omitempty"`
}

// Pricing is the ordered price list. Order is display and report order
// only; totals do not depend on it.
type Pricing struct {
	Items []Item `json:"items"`
}

// LineItem is one computed row of a cost breakdown.
type LineItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
}

// Breakdown is an itemized cost report in price-list order.
type Breakdown struct {
	Items []LineItem `json:"items"`
	Total int64      `json:"total"`
}

// Split divides a total between the two payers: the first absorbs a fixed
// contribution, the second the remainder.
type Split struct {
	PayerOne int64 `json:"payerOne"`
	PayerTwo int64 `json:"payerTwo"`
}
