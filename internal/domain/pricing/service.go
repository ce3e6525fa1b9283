package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Service handles price-list configuration. Pricing persists independently
// of guest data.
type Service struct {
	store      Store
	replicator Replicator
	logger     *slog.Logger
}

// NewService creates a new pricing service. replicator may be nil when
// remote sync is not configured.
func NewService(store Store, replicator Replicator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, replicator: replicator, logger: logger}
}

// Get returns the configured price list, or nil when none has been set.
func (s *Service) Get(ctx context.Context) (*Pricing, error) {
	pricing, err := s.store.Pricing(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading pricing: %w", err)
	}
	return pricing, nil
}

// Put replaces the whole price list. Items without an id get one assigned.
func (s *Service) Put(ctx context.Context, pricing Pricing) (*Pricing, error) {
	for i := range pricing.Items {
		item := &pricing.Items[i]
		if strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("%w: item %d has no name", ErrInvalidItem, i)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("%w: %s has a negative price", ErrInvalidItem, item.Name)
		}
		switch item.Type {
		case TypeFixed:
			item.PersonType = ""
		case TypePerPerson:
			switch item.PersonType {
			case PersonAdult, PersonChild, PersonBaby:
			default:
				return nil, fmt.Errorf("%w: %s needs a person type", ErrInvalidItem, item.Name)
			}
		default:
			return nil, fmt.Errorf("%w: %s has unknown type %q", ErrInvalidItem, item.Name, item.Type)
		}
		if strings.TrimSpace(item.ID) == "" {
			item.ID = uuid.NewString()
		}
	}

	if err := s.store.SavePricing(ctx, &pricing); err != nil {
		return nil, fmt.Errorf("saving pricing: %w", err)
	}
	if s.replicator != nil {
		s.replicator.Replicate()
	}

	s.logger.Info("pricing updated", "items", len(pricing.Items))
	return &pricing, nil
}
