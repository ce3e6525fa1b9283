package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weckerleben/bday-guests/internal/domain/guest"
	"github.com/weckerleben/bday-guests/internal/domain/pricing"
)

func intPtr(n int) *int {
	return &n
}

func TestComputeCosts(t *testing.T) {
	priceList := &pricing.Pricing{Items: []pricing.Item{
		{ID: "1", Name: "Venue rental", Price: 2700000, Type: pricing.TypeFixed},
		{ID: "2", Name: "Adult combo", Price: 33000, Type: pricing.TypePerPerson, PersonType: pricing.PersonAdult},
	}}
	guests := []guest.Guest{
		{BaseGuest: guest.BaseGuest{ID: "1", Adults: 3}, Status: guest.StatusInvited},
		{
			BaseGuest:       guest.BaseGuest{ID: "2", Adults: 3},
			Status:          guest.StatusConfirmed,
			ConfirmedAdults: intPtr(2),
		},
	}

	breakdown := pricing.ComputeCosts(guests, priceList)
	require.Len(t, breakdown.Items, 2)
	require.Equal(t, int64(2700000), breakdown.Items[0].Total)
	require.Equal(t, 1, breakdown.Items[0].Quantity)
	require.Equal(t, 5, breakdown.Items[1].Quantity)
	require.Equal(t, int64(165000), breakdown.Items[1].Total)
	require.Equal(t, int64(2865000), breakdown.Total)
}

func TestComputeCosts_Additive(t *testing.T) {
	priceList := &pricing.Pricing{Items: []pricing.Item{
		{ID: "1", Name: "Adult combo", Price: 33000, Type: pricing.TypePerPerson, PersonType: pricing.PersonAdult},
		{ID: "2", Name: "Child combo", Price: 39000, Type: pricing.TypePerPerson, PersonType: pricing.PersonChild},
		{ID: "3", Name: "Baby kit", Price: 5000, Type: pricing.TypePerPerson, PersonType: pricing.PersonBaby},
		{ID: "4", Name: "Sweet table", Price: 485000, Type: pricing.TypeFixed},
	}}
	guests := []guest.Guest{
		{BaseGuest: guest.BaseGuest{ID: "1", Adults: 2, Children: 3, Babies: 1}, Status: guest.StatusInvited},
	}

	breakdown := pricing.ComputeCosts(guests, priceList)
	var sum int64
	for _, line := range breakdown.Items {
		sum += line.Total
	}
	require.Equal(t, sum, breakdown.Total)
}

func TestComputeCosts_FixedOnlyIgnoresGuests(t *testing.T) {
	priceList := &pricing.Pricing{Items: []pricing.Item{
		{ID: "1", Name: "Venue rental", Price: 500, Type: pricing.TypeFixed},
	}}

	require.Equal(t, int64(500), pricing.ComputeCosts(nil, priceList).Total)
	guests := []guest.Guest{{BaseGuest: guest.BaseGuest{ID: "1", Adults: 10}, Status: guest.StatusInvited}}
	require.Equal(t, int64(500), pricing.ComputeCosts(guests, priceList).Total)
}

func TestComputeCosts_Degenerate(t *testing.T) {
	perHead := &pricing.Pricing{Items: []pricing.Item{
		{ID: "1", Name: "Adult combo", Price: 33000, Type: pricing.TypePerPerson, PersonType: pricing.PersonAdult},
	}}

	// Empty guest list: per-head lines are present with quantity zero.
	breakdown := pricing.ComputeCosts(nil, perHead)
	require.Len(t, breakdown.Items, 1)
	require.Equal(t, 0, breakdown.Items[0].Quantity)
	require.Equal(t, int64(0), breakdown.Total)

	// Empty price list.
	breakdown = pricing.ComputeCosts(nil, &pricing.Pricing{})
	require.Empty(t, breakdown.Items)
	require.Equal(t, int64(0), breakdown.Total)

	// No price list configured at all.
	breakdown = pricing.ComputeCosts(nil, nil)
	require.Empty(t, breakdown.Items)
	require.Equal(t, int64(0), breakdown.Total)
}

func TestSplitTotal(t *testing.T) {
	split := pricing.SplitTotal(5000000, 3000000)
	require.Equal(t, int64(3000000), split.PayerOne)
	require.Equal(t, int64(2000000), split.PayerTwo)
}

func TestSplitTotal_ShortfallKeepsFirstPayerFixed(t *testing.T) {
	split := pricing.SplitTotal(1000000, 3000000)
	require.Equal(t, int64(3000000), split.PayerOne)
	require.Equal(t, int64(0), split.PayerTwo)
}

func TestDefaultPricing(t *testing.T) {
	p := pricing.DefaultPricing()
	require.Len(t, p.Items, 4)
	require.Equal(t, pricing.TypePerPerson, p.Items[0].Type)
	require.Equal(t, pricing.PersonAdult, p.Items[0].PersonType)
	require.Equal(t, pricing.TypeFixed, p.Items[2].Type)
}
