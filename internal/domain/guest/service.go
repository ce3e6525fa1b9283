package guest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Service handles guest roster and status operations. The base roster is
// loaded once and never mutated; all state lives in the store. Mutations
// are applied to the local store synchronously and then handed to the
// replicator as a fire-and-forget push.
type Service struct {
	base       []BaseGuest
	store      Store
	replicator Replicator
	logger     *slog.Logger
}

// NewService creates a new guest service. replicator may be nil when remote
// sync is not configured.
func NewService(base []BaseGuest, store Store, replicator Replicator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		base:       base,
		store:      store,
		replicator: replicator,
		logger:     logger,
	}
}

// BaseIDs returns the set of base roster ids. Entries in it can never be
// removed.
func (s *Service) BaseIDs() map[string]bool {
	ids := make(map[string]bool, len(s.base))
	for _, bg := range s.base {
		ids[bg.ID] = true
	}
	return ids
}

// List returns the merged working guest list in roster order.
func (s *Service) List(ctx context.Context) ([]Guest, error) {
	additional, ledger, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return Merge(s.base, additional, ledger), nil
}

// Get returns the merged view of a single guest.
func (s *Service) Get(ctx context.Context, id string) (*Guest, error) {
	guests, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range guests {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, ErrGuestNotFound
}

// ConfirmRequest carries the attendee counts of a confirmation.
type ConfirmRequest struct {
	Adults   int
	Children int
	Babies   int
}

// Confirm records a (possibly partial) confirmation for a guest. Each count
// must stay within the invited count for its category and at least one must
// be positive. Re-confirming an already confirmed guest updates the counts.
// Declined guests must be reinvited first.
func (s *Service) Confirm(ctx context.Context, id string, req ConfirmRequest) (*Guest, error) {
	additional, ledger, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	g := findGuest(Merge(s.base, additional, ledger), id)
	if g == nil {
		return nil, ErrGuestNotFound
	}
	if g.Status == StatusDeclined {
		return nil, fmt.Errorf("%w: %s has declined; reinvite before confirming", ErrInvalidInput, g.FamilyName)
	}
	if req.Adults < 0 || req.Children < 0 || req.Babies < 0 {
		return nil, fmt.Errorf("%w: confirmed counts cannot be negative", ErrInvalidInput)
	}
	if req.Adults == 0 && req.Children == 0 && req.Babies == 0 {
		return nil, fmt.Errorf("%w: at least one attendee must be confirmed", ErrInvalidInput)
	}
	if req.Adults > g.Adults || req.Children > g.Children || req.Babies > g.Babies {
		return nil, fmt.Errorf("%w: confirmed counts cannot exceed invited counts (%d/%d/%d)",
			ErrInvalidInput, g.Adults, g.Children, g.Babies)
	}

	adults, children, babies := req.Adults, req.Children, req.Babies
	ledger = upsertEntry(ledger, StatusEntry{
		ID:                id,
		Status:            StatusConfirmed,
		ConfirmedAdults:   &adults,
		ConfirmedChildren: &children,
		ConfirmedBabies:   &babies,
	})
	if err := s.saveLedger(ctx, ledger, additional); err != nil {
		return nil, err
	}

	s.logger.Info("guest confirmed", "id", id, "adults", adults, "children", children, "babies", babies)
	return s.Get(ctx, id)
}

// Decline marks an invited or confirmed guest as declined. Stale confirmed
// counts may remain on the ledger entry; they are ignored for any guest
// that is not confirmed.
func (s *Service) Decline(ctx context.Context, id string) (*Guest, error) {
	return s.transition(ctx, id, StatusDeclined, func(current Status) error {
		if current == StatusDeclined {
			return fmt.Errorf("%w: guest already declined", ErrInvalidInput)
		}
		return nil
	}, false)
}

// Reinvite moves a declined guest back to invited. It is the only way out
// of the declined state.
func (s *Service) Reinvite(ctx context.Context, id string) (*Guest, error) {
	return s.transition(ctx, id, StatusInvited, func(current Status) error {
		if current != StatusDeclined {
			return fmt.Errorf("%w: only declined guests can be reinvited", ErrInvalidInput)
		}
		return nil
	}, false)
}

// CancelConfirmation reverts a confirmed guest to invited and clears the
// confirmed counts, so the guest again contributes its full invited counts.
func (s *Service) CancelConfirmation(ctx context.Context, id string) (*Guest, error) {
	return s.transition(ctx, id, StatusInvited, func(current Status) error {
		if current != StatusConfirmed {
			return fmt.Errorf("%w: guest has no confirmation to cancel", ErrInvalidInput)
		}
		return nil
	}, true)
}

// AddFamilyRequest describes a new family to admit into freed spots.
type AddFamilyRequest struct {
	FamilyName string
	Adults     int
	Children   int
	Babies     int
}

// AddFamily admits a new family into the additional roster. The requested
// adults and children must fit into the currently available spots; babies
// are unconstrained. The new guest starts as invited and immediately holds
// the seats it was granted.
func (s *Service) AddFamily(ctx context.Context, req AddFamilyRequest) (*Guest, error) {
	if strings.TrimSpace(req.FamilyName) == "" {
		return nil, fmt.Errorf("%w: family name is required", ErrInvalidInput)
	}
	if req.Adults < 0 || req.Children < 0 || req.Babies < 0 {
		return nil, fmt.Errorf("%w: headcounts cannot be negative", ErrInvalidInput)
	}

	additional, ledger, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	spots := ComputeAvailableSpots(Merge(s.base, additional, ledger))
	if req.Adults > spots.Adults {
		return nil, fmt.Errorf("%w: not enough adult spots available (available %d, requested %d)",
			ErrInvalidInput, spots.Adults, req.Adults)
	}
	if req.Children > spots.Children {
		return nil, fmt.Errorf("%w: not enough child spots available (available %d, requested %d)",
			ErrInvalidInput, spots.Children, req.Children)
	}

	bg := BaseGuest{
		ID:         uuid.NewString(),
		FamilyName: strings.TrimSpace(req.FamilyName),
		Adults:     req.Adults,
		Children:   req.Children,
		Babies:     req.Babies,
	}
	additional = append(additional, bg)
	if err := s.store.SaveAdditionalGuests(ctx, additional); err != nil {
		return nil, fmt.Errorf("saving roster: %w", err)
	}
	s.triggerReplicate()

	s.logger.Info("family added", "id", bg.ID, "family", bg.FamilyName)
	return &Guest{BaseGuest: bg, Status: StatusInvited}, nil
}

// Remove deletes an additional guest together with its ledger entry in a
// single store write. Base roster entries cannot be removed.
func (s *Service) Remove(ctx context.Context, id string) error {
	if s.BaseIDs()[id] {
		return ErrBaseGuest
	}

	additional, ledger, err := s.load(ctx)
	if err != nil {
		return err
	}

	found := false
	kept := additional[:0]
	for _, bg := range additional {
		if bg.ID == id {
			found = true
			continue
		}
		kept = append(kept, bg)
	}
	if !found {
		return ErrGuestNotFound
	}

	keptLedger := make([]StatusEntry, 0, len(ledger))
	for _, entry := range ledger {
		if entry.ID != id {
			keptLedger = append(keptLedger, entry)
		}
	}

	if err := s.store.SaveGuestData(ctx, s.prune(keptLedger, kept), kept); err != nil {
		return fmt.Errorf("saving guest data: %w", err)
	}
	s.triggerReplicate()

	s.logger.Info("guest removed", "id", id)
	return nil
}

func (s *Service) transition(ctx context.Context, id string, to Status, check func(Status) error, clearCounts bool) (*Guest, error) {
	additional, ledger, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	g := findGuest(Merge(s.base, additional, ledger), id)
	if g == nil {
		return nil, ErrGuestNotFound
	}
	if err := check(g.Status); err != nil {
		return nil, err
	}

	entry := StatusEntry{
		ID:                id,
		Status:            to,
		ConfirmedAdults:   g.ConfirmedAdults,
		ConfirmedChildren: g.ConfirmedChildren,
		ConfirmedBabies:   g.ConfirmedBabies,
	}
	if clearCounts {
		entry.ConfirmedAdults = nil
		entry.ConfirmedChildren = nil
		entry.ConfirmedBabies = nil
	}
	ledger = upsertEntry(ledger, entry)
	if err := s.saveLedger(ctx, ledger, additional); err != nil {
		return nil, err
	}

	s.logger.Info("guest status changed", "id", id, "status", to)
	return s.Get(ctx, id)
}

func (s *Service) load(ctx context.Context) ([]BaseGuest, []StatusEntry, error) {
	additional, err := s.store.AdditionalGuests(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading additional guests: %w", err)
	}
	ledger, err := s.store.GuestStatuses(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading guest statuses: %w", err)
	}
	return additional, ledger, nil
}

func (s *Service) saveLedger(ctx context.Context, ledger []StatusEntry, additional []BaseGuest) error {
	if err := s.store.SaveGuestStatuses(ctx, s.prune(ledger, additional)); err != nil {
		return fmt.Errorf("saving guest statuses: %w", err)
	}
	s.triggerReplicate()
	return nil
}

// prune drops ledger entries whose guest id is no longer in the roster.
// Dangling entries are harmless at merge time but get cleaned up on the
// next full save.
func (s *Service) prune(ledger []StatusEntry, additional []BaseGuest) []StatusEntry {
	ids := s.BaseIDs()
	for _, bg := range additional {
		ids[bg.ID] = true
	}
	kept := make([]StatusEntry, 0, len(ledger))
	for _, entry := range ledger {
		if ids[entry.ID] {
			kept = append(kept, entry)
		}
	}
	return kept
}

func (s *Service) triggerReplicate() {
	if s.replicator != nil {
		s.replicator.Replicate()
	}
}

func findGuest(guests []Guest, id string) *Guest {
	for i := range guests {
		if guests[i].ID == id {
			return &guests[i]
		}
	}
	return nil
}

func upsertEntry(ledger []StatusEntry, entry StatusEntry) []StatusEntry {
	for i := range ledger {
		if ledger[i].ID == entry.ID {
			ledger[i] = entry
			return ledger
		}
	}
	return append(ledger, entry)
}
