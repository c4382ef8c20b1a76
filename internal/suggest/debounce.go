// Package suggest implements debounced, best-effort autocomplete lookups.
package suggest

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// FetchFunc loads suggestion options for a partial query
type FetchFunc func(ctx context.Context, query string) ([]string, error)

// DeliverFunc receives the options of a completed fetch. The token is the
// monotonically increasing id of that fetch; deliveries arrive in token
// order because stale results are dropped before delivery.
type DeliverFunc func(token uint64, options []string)

// Debouncer coalesces rapid input changes into a single suggestion fetch
// after a quiet interval. Each fired fetch is keyed with a monotonically
// increasing token; results whose token is no longer the latest are
// discarded, so a slow older response can never overwrite a newer one.
// Fetch errors degrade to an empty option list and are never surfaced.
type Debouncer struct {
	interval time.Duration
	fetch    FetchFunc
	deliver  DeliverFunc
	logger   *zap.Logger

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64 // latest issued token
}

// NewDebouncer creates a debouncer firing fetch after interval of quiet
func NewDebouncer(interval time.Duration, fetch FetchFunc, deliver DeliverFunc, logger *zap.Logger) *Debouncer {
	return &Debouncer{
		interval: interval,
		fetch:    fetch,
		deliver:  deliver,
		logger:   logger,
	}
}

// Input registers an input change. Any pending fetch is superseded. An
// empty or whitespace-only text clears the option list immediately with no
// network call.
func (d *Debouncer) Input(text string) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if strings.TrimSpace(text) == "" {
		d.seq++
		token := d.seq
		d.mu.Unlock()
		d.deliver(token, nil)
		return
	}

	d.timer = time.AfterFunc(d.interval, func() {
		d.run(text)
	})
	d.mu.Unlock()
}

// Stop cancels any pending fetch timer. In-flight fetches are not
// interrupted; their results are simply dropped as stale once a newer
// input arrives.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) run(text string) {
	d.mu.Lock()
	d.seq++
	token := d.seq
	d.mu.Unlock()

	options, err := d.fetch(context.Background(), text)
	if err != nil {
		// Suggestions are best-effort
		d.logger.Debug("suggestion fetch failed", zap.String("query", text), zap.Error(err))
		options = nil
	}

	d.mu.Lock()
	stale := token != d.seq
	d.mu.Unlock()
	if stale {
		return
	}

	d.deliver(token, options)
}
