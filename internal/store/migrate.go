package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/weckerleben/bday-guests/internal/domain/guest"
	"github.com/weckerleben/bday-guests/internal/domain/pricing"
)

// legacyGuest is the pre-split document shape: fully merged guests instead
// of a separate status ledger.
type legacyGuest struct {
	guest.BaseGuest
	Status            guest.Status `json:"status"`
	ConfirmedAdults   *int         `json:"confirmedAdults"`
	ConfirmedChildren *int         `json:"confirmedChildren"`
	ConfirmedBabies   *int         `json:"confirmedBabies"`
}

type rawDocument struct {
	GuestStatuses    []guest.StatusEntry `json:"guestStatuses"`
	Guests           []legacyGuest       `json:"guests"`
	AdditionalGuests []guest.BaseGuest   `json:"additionalGuests"`
	Pricing          json.RawMessage     `json:"pricing"`
	LastUpdated      int64               `json:"lastUpdated"`
}

type legacyPricing struct {
	AdultComboPrice int64 `json:"adultComboPrice"`
	ChildComboPrice int64 `json:"childComboPrice"`
	Rent            int64 `json:"rent"`
	SweetTable      int64 `json:"sweetTable"`
}

// DecodeDocument parses a persisted or remote document, upgrading the two
// known legacy shapes on the way in:
//
//   - a "guests" list of fully merged guests is reduced to status ledger
//     entries when no "guestStatuses" field is present;
//   - a flat pricing object is itemized into the four default budget
//     lines, keeping any legacy prices that were set.
//
// Unknown or missing fields decode to their zero values.
func DecodeDocument(data []byte) (Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("parsing document: %w", err)
	}

	doc := Document{
		GuestStatuses:    raw.GuestStatuses,
		AdditionalGuests: raw.AdditionalGuests,
		LastUpdated:      raw.LastUpdated,
	}

	if doc.GuestStatuses == nil && len(raw.Guests) > 0 {
		doc.GuestStatuses = make([]guest.StatusEntry, 0, len(raw.Guests))
		for _, lg := range raw.Guests {
			doc.GuestStatuses = append(doc.GuestStatuses, guest.StatusEntry{
				ID:                lg.ID,
				Status:            lg.Status,
				ConfirmedAdults:   lg.ConfirmedAdults,
				ConfirmedChildren: lg.ConfirmedChildren,
				ConfirmedBabies:   lg.ConfirmedBabies,
			})
		}
	}

	doc.Pricing = decodePricing(raw.Pricing)
	return doc, nil
}

func decodePricing(raw json.RawMessage) *pricing.Pricing {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil
	}

	if _, ok := probe["items"]; ok {
		var p pricing.Pricing
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil
		}
		return &p
	}

	if _, ok := probe["adultComboPrice"]; !ok {
		return nil
	}

	var legacy legacyPricing
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil
	}

	migrated := pricing.DefaultPricing()
	overrides := []int64{legacy.AdultComboPrice, legacy.ChildComboPrice, legacy.Rent, legacy.SweetTable}
	for i, price := range overrides {
		if price > 0 {
			migrated.Items[i].Price = price
		}
	}
	return migrated
}
