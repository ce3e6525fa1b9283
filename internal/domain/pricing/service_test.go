package pricing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/weckerleben/bday-guests/internal/domain/pricing"
	"github.com/weckerleben/bday-guests/internal/store/mocks"
)

func TestPricingService_Put(t *testing.T) {
	ctx := context.Background()

	st := &mocks.PricingStore{}
	st.On("SavePricing", ctx, mock.Anything).Return(nil)
	rep := &mocks.Replicator{}
	rep.On("Replicate").Return()

	svc := pricing.NewService(st, rep, nil)
	saved, err := svc.Put(ctx, pricing.Pricing{Items: []pricing.Item{
		{Name: "Adult combo", Price: 33000, Type: pricing.TypePerPerson, PersonType: pricing.PersonAdult},
		{Name: "Venue rental", Price: 2700000, Type: pricing.TypeFixed, PersonType: pricing.PersonAdult},
	}})
	require.NoError(t, err)
	require.Len(t, saved.Items, 2)
	// Items get ids assigned; fixed items drop any person type.
	require.NotEmpty(t, saved.Items[0].ID)
	require.Empty(t, saved.Items[1].PersonType)
	rep.AssertCalled(t, "Replicate")
}

func TestPricingService_PutValidation(t *testing.T) {
	ctx := context.Background()
	svc := pricing.NewService(&mocks.PricingStore{}, nil, nil)

	cases := map[string]pricing.Item{
		"no name":        {Name: " ", Price: 100, Type: pricing.TypeFixed},
		"negative price": {Name: "X", Price: -1, Type: pricing.TypeFixed},
		"no person type": {Name: "X", Price: 100, Type: pricing.TypePerPerson},
		"unknown type":   {Name: "X", Price: 100, Type: "hourly"},
	}
	for name, item := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Put(ctx, pricing.Pricing{Items: []pricing.Item{item}})
			require.ErrorIs(t, err, pricing.ErrInvalidItem)
		})
	}
}

func TestPricingService_Get(t *testing.T) {
	ctx := context.Background()

	st := &mocks.PricingStore{}
	st.On("Pricing", ctx).Return((*pricing.Pricing)(nil), nil)

	svc := pricing.NewService(st, nil, nil)
	p, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, p)
}
