package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/weckerleben/bday-guests/internal/domain/guest"
	"github.com/weckerleben/bday-guests/internal/domain/pricing"
)

// Store keeps the whole document in memory behind a RWMutex and rewrites
// one JSON file per mutation. There are no partial updates: every write
// replaces a complete value, so a crashed process can at worst lose the
// last write, never corrupt the document.
type Store struct {
	mu     sync.RWMutex
	path   string
	doc    Document
	logger *slog.Logger
}

// New opens the document store at path, loading and migrating an existing
// file when present.
func New(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("loading data file: %w", err)
	}
	s.doc = doc
	logger.Info("local document loaded",
		"path", path,
		"statuses", len(doc.GuestStatuses),
		"additional", len(doc.AdditionalGuests))
	return s, nil
}

// GuestStatuses returns the status ledger.
func (s *Store) GuestStatuses(ctx context.Context) ([]guest.StatusEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.doc.GuestStatuses), nil
}

// SaveGuestStatuses replaces the status ledger.
func (s *Store) SaveGuestStatuses(ctx context.Context, entries []guest.StatusEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.GuestStatuses = cloneEntries(entries)
	s.doc.LastUpdated = nowMillis()
	return s.persist()
}

// AdditionalGuests returns the dynamically added roster entries.
func (s *Store) AdditionalGuests(ctx context.Context) ([]guest.BaseGuest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]guest.BaseGuest(nil), s.doc.AdditionalGuests...), nil
}

// SaveAdditionalGuests replaces the additional roster.
func (s *Store) SaveAdditionalGuests(ctx context.Context, guests []guest.BaseGuest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.AdditionalGuests = append([]guest.BaseGuest(nil), guests...)
	s.doc.LastUpdated = nowMillis()
	return s.persist()
}

// SaveGuestData replaces the ledger and the additional roster in one
// write. Guest removal needs both to change together.
func (s *Store) SaveGuestData(ctx context.Context, entries []guest.StatusEntry, guests []guest.BaseGuest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.GuestStatuses = cloneEntries(entries)
	s.doc.AdditionalGuests = append([]guest.BaseGuest(nil), guests...)
	s.doc.LastUpdated = nowMillis()
	return s.persist()
}

// Pricing returns the configured price list, nil when unset.
func (s *Store) Pricing(ctx context.Context) (*pricing.Pricing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePricing(s.doc.Pricing), nil
}

// SavePricing replaces the price list.
func (s *Store) SavePricing(ctx context.Context, p *pricing.Pricing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Pricing = clonePricing(p)
	s.doc.LastUpdated = nowMillis()
	return s.persist()
}

// Snapshot returns a deep copy of the current document for replication.
func (s *Store) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Apply replaces the whole document with an accepted remote copy.
func (s *Store) Apply(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	return s.persist()
}

// LastUpdated returns the document's logical timestamp in epoch millis.
func (s *Store) LastUpdated() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.LastUpdated
}

// ExportJSON renders the user-triggered snapshot dump.
func (s *Store) ExportJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	export := Export{
		GuestStatuses:    cloneEntries(s.doc.GuestStatuses),
		AdditionalGuests: append([]guest.BaseGuest(nil), s.doc.AdditionalGuests...),
		Pricing:          clonePricing(s.doc.Pricing),
		ExportedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if export.GuestStatuses == nil {
		export.GuestStatuses = []guest.StatusEntry{}
	}
	if export.AdditionalGuests == nil {
		export.AdditionalGuests = []guest.BaseGuest{}
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling export: %w", err)
	}
	return data, nil
}

// persist writes the document atomically via a temp file and rename.
// Callers must hold the write lock.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".document-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing data file: %w", err)
	}
	return nil
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
