package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/weckerleben/bday-guests/internal/domain/guest"
	"github.com/weckerleben/bday-guests/internal/domain/pricing"
)

// GuestStore is a mock for guest.Store.
type GuestStore struct {
	mock.Mock
}

func (m *GuestStore) GuestStatuses(ctx context.Context) ([]guest.StatusEntry, error) {
	args := m.Called(ctx)
	if entries, ok := args.Get(0).([]guest.StatusEntry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GuestStore) SaveGuestStatuses(ctx context.Context, entries []guest.StatusEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *GuestStore) AdditionalGuests(ctx context.Context) ([]guest.BaseGuest, error) {
	args := m.Called(ctx)
	if guests, ok := args.Get(0).([]guest.BaseGuest); ok {
		return guests, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GuestStore) SaveAdditionalGuests(ctx context.Context, guests []guest.BaseGuest) error {
	args := m.Called(ctx, guests)
	return args.Error(0)
}

func (m *GuestStore) SaveGuestData(ctx context.Context, entries []guest.StatusEntry, guests []guest.BaseGuest) error {
	args := m.Called(ctx, entries, guests)
	return args.Error(0)
}

// PricingStore is a mock for pricing.Store.
type PricingStore struct {
	mock.Mock
}

func (m *PricingStore) Pricing(ctx context.Context) (*pricing.Pricing, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).(*pricing.Pricing); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PricingStore) SavePricing(ctx context.Context, p *pricing.Pricing) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// Replicator is a mock for the fire-and-forget replication trigger.
type Replicator struct {
	mock.Mock
}

func (m *Replicator) Replicate() {
	m.Called()
}
