package remote

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/weckerleben/bday-guests/internal/store"
)

// Event marks a stage of a replication attempt. Listeners drive UI sync
// indicators; the coordinator itself never depends on them.
type Event string

const (
	EventStarted   Event = "started"
	EventSucceeded Event = "succeeded"
	EventFailed    Event = "failed"
)

// Status is the inspectable sync state.
type Status struct {
	Configured bool   `json:"configured"`
	InProgress bool   `json:"inProgress"`
	LastSynced int64  `json:"lastSynced"`
	LastError  string `json:"lastError,omitempty"`
}

// Config tunes the coordinator.
type Config struct {
	// SyncInterval is the minimum gap between automatic pulls.
	SyncInterval time.Duration
	// CheckInterval is how often Run wakes up to test the gap.
	CheckInterval time.Duration
	// OnEvent, when set, receives replication lifecycle events.
	OnEvent func(Event)
}

// Coordinator owns the replication state: the single-flight guard, the
// last-applied timestamp and the last error. Local state stays
// authoritative; a failed replication is reported and left for the next
// natural trigger, never retried in a loop and never rolled back.
type Coordinator struct {
	store  *store.Store
	client *Client
	cfg    Config
	logger *slog.Logger

	mu         sync.Mutex
	inProgress bool
	lastSynced int64
	lastErr    error
}

// NewCoordinator creates a sync coordinator over a local store and a blob
// store client.
func NewCoordinator(st *store.Store, client *Client, cfg Config, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SyncInterval <= 0 {
		cfg.SyncInterval = time.Minute
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = time.Minute
	}
	return &Coordinator{store: st, client: client, cfg: cfg, logger: logger}
}

// IsConfigured reports whether remote sync credentials are present.
func (c *Coordinator) IsConfigured() bool {
	return c.client.IsConfigured()
}

// Replicate pushes the current document to the remote store in the
// background. It returns immediately; when a push is already in flight the
// call is dropped (the running push will carry a fresher snapshot than the
// one that triggered it would have).
func (c *Coordinator) Replicate() {
	if !c.client.IsConfigured() {
		return
	}

	c.mu.Lock()
	if c.inProgress {
		c.mu.Unlock()
		return
	}
	c.inProgress = true
	c.mu.Unlock()
	c.emit(EventStarted)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		err := c.push(ctx)

		c.mu.Lock()
		c.inProgress = false
		c.lastErr = err
		if err == nil {
			c.lastSynced = time.Now().UnixMilli()
		}
		c.mu.Unlock()

		if err != nil {
			c.logger.Error("background replication failed", "error", err)
			c.emit(EventFailed)
			return
		}
		c.emit(EventSucceeded)
	}()
}

// PushLocal synchronously pushes the current document to the remote store.
func (c *Coordinator) PushLocal(ctx context.Context) error {
	if !c.client.IsConfigured() {
		return ErrNotConfigured
	}

	c.emit(EventStarted)
	err := c.push(ctx)

	c.mu.Lock()
	c.lastErr = err
	if err == nil {
		c.lastSynced = time.Now().UnixMilli()
	}
	c.mu.Unlock()

	if err != nil {
		c.emit(EventFailed)
		return err
	}
	c.emit(EventSucceeded)
	return nil
}

// PullRemote fetches the remote document and applies it when it is newer
// than the last applied copy, or unconditionally when force is set (fresh
// process start). A remote copy that is not newer is not an error.
func (c *Coordinator) PullRemote(ctx context.Context, force bool) error {
	if !c.client.IsConfigured() {
		return ErrNotConfigured
	}

	doc, err := c.client.Load(ctx)
	if err != nil {
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		c.emit(EventFailed)
		return err
	}

	c.mu.Lock()
	lastSynced := c.lastSynced
	c.mu.Unlock()

	if !force && doc.LastUpdated <= lastSynced {
		// Nothing newer; remember the attempt so Run does not hammer
		// the remote store.
		c.mu.Lock()
		c.lastSynced = time.Now().UnixMilli()
		c.lastErr = nil
		c.mu.Unlock()
		return nil
	}

	if err := c.store.Apply(doc); err != nil {
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		c.emit(EventFailed)
		return err
	}

	c.mu.Lock()
	c.lastSynced = doc.LastUpdated
	c.lastErr = nil
	c.mu.Unlock()
	c.emit(EventSucceeded)

	c.logger.Info("remote document applied", "lastUpdated", doc.LastUpdated)
	return nil
}

// Run pulls from the remote store periodically until ctx is canceled.
func (c *Coordinator) Run(ctx context.Context) {
	if !c.client.IsConfigured() {
		return
	}

	ticker := time.NewTicker(c.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			elapsed := time.Since(time.UnixMilli(c.lastSynced))
			c.mu.Unlock()
			if elapsed < c.cfg.SyncInterval {
				continue
			}
			if err := c.PullRemote(ctx, false); err != nil {
				c.logger.Warn("periodic sync failed", "error", err)
			}
		}
	}
}

// Status returns the current sync state.
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := Status{
		Configured: c.client.IsConfigured(),
		InProgress: c.inProgress,
		LastSynced: c.lastSynced,
	}
	if c.lastErr != nil {
		st.LastError = c.lastErr.Error()
	}
	return st
}

func (c *Coordinator) push(ctx context.Context) error {
	return c.client.Save(ctx, c.store.Snapshot())
}

func (c *Coordinator) emit(event Event) {
	if c.cfg.OnEvent != nil {
		c.cfg.OnEvent(event)
	}
}
