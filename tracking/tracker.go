// Package tracking keeps a delivery's courier location and status current by
// polling the delivery service at a fixed interval.
package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/bprathamesh20/food-delivery/models"
)

const DefaultPollInterval = 15 * time.Second

// Fetcher retrieves a delivery's tracking history, oldest first.
type Fetcher interface {
	Tracking(ctx context.Context, deliveryID int64) ([]models.TrackingSample, error)
}

type Options struct {
	// PollInterval defaults to DefaultPollInterval when zero or negative.
	PollInterval time.Duration
	// AutoStart begins polling from the constructor, or as soon as the
	// delivery id becomes known.
	AutoStart bool

	// Callbacks fire at most once per successful non-empty fetch, never
	// concurrently with each other, and never after Stop.
	OnLocationUpdate func(models.AgentLocation)
	OnStatusUpdate   func(models.DeliveryStatus)
	OnError          func(error)
}

func DefaultOptions() Options {
	return Options{PollInterval: DefaultPollInterval, AutoStart: true}
}

// State is where the engine sits in its lifecycle. Idle and Stopped both
// have no timer; they differ only in whether a delivery id is known.
type State int

const (
	Idle State = iota
	Polling
	Stopped
)

// Tracker polls tracking history on a fixed-interval timer. Ticks are
// skipped while a fetch is in flight, and every fetch carries a monotonic
// sequence so a slow response that lands after a newer one is discarded
// rather than regressing the displayed state.
type Tracker struct {
	fetcher Fetcher
	opts    Options

	mu         sync.Mutex
	deliveryID int64
	running    bool
	wantStart  bool
	stopc      chan struct{}
	inFlight   bool
	seq        uint64
	applied    uint64
	loading    bool
	location   *models.AgentLocation
	status     models.DeliveryStatus
	lastErr    error
}

// New builds a tracker for deliveryID; zero means the id is not known yet
// and polling waits for SetDeliveryID.
func New(fetcher Fetcher, deliveryID int64, opts Options) *Tracker {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	t := &Tracker{fetcher: fetcher, opts: opts, deliveryID: deliveryID}
	if opts.AutoStart {
		t.Start()
	}
	return t
}

// Start performs an immediate fetch and schedules repeats. It is a no-op
// while already polling. Without a delivery id it only records the intent;
// polling begins when the id arrives.
func (t *Tracker) Start() {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	if t.deliveryID == 0 {
		t.wantStart = true
		t.mu.Unlock()
		return
	}
	t.running = true
	t.wantStart = false
	stopc := make(chan struct{})
	t.stopc = stopc
	interval := t.opts.PollInterval
	t.mu.Unlock()

	go t.loop(stopc, interval)
}

func (t *Tracker) loop(stopc chan struct{}, interval time.Duration) {
	t.fetch(false)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stopc:
			return
		case <-ticker.C:
			t.fetch(false)
		}
	}
}

// Stop cancels the timer. Safe to call repeatedly and before any Start;
// a fetch already in flight resolves but its result is discarded.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.wantStart = false
	if !t.running {
		return
	}
	t.running = false
	close(t.stopc)
	t.stopc = nil
}

// SetDeliveryID supplies or changes the tracked delivery. A pending
// auto-start takes effect once a real id is known; results of fetches
// against the old id are discarded.
func (t *Tracker) SetDeliveryID(id int64) {
	t.mu.Lock()
	if id == t.deliveryID {
		t.mu.Unlock()
		return
	}
	t.deliveryID = id
	start := t.wantStart && id != 0 && !t.running
	t.mu.Unlock()

	if start {
		t.Start()
	}
}

// Refresh performs one immediate out-of-band fetch, independent of the
// schedule, raising the loading flag for its duration. It is a no-op when
// no delivery id is known or a fetch is already in flight.
func (t *Tracker) Refresh() {
	t.fetch(true)
}

func (t *Tracker) fetch(manual bool) {
	t.mu.Lock()
	id := t.deliveryID
	if id == 0 || t.inFlight {
		t.mu.Unlock()
		return
	}
	t.inFlight = true
	t.seq++
	seq := t.seq
	if manual {
		t.loading = true
	}
	interval := t.opts.PollInterval
	t.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), interval)
	samples, err := t.fetcher.Tracking(ctx, id)
	cancel()

	t.mu.Lock()
	t.inFlight = false
	if manual {
		t.loading = false
	}
	// A scheduled fetch that resolves after teardown, or any fetch whose
	// target changed underneath it, is dead: no state change, no callbacks.
	if (!manual && !t.running) || id != t.deliveryID {
		t.mu.Unlock()
		return
	}

	if err != nil {
		// Failures never clear previously known location or status; the
		// next tick retries naturally.
		t.lastErr = err
		onError := t.opts.OnError
		t.mu.Unlock()
		if onError != nil {
			onError(err)
		}
		return
	}

	t.lastErr = nil
	if len(samples) == 0 || seq <= t.applied {
		t.mu.Unlock()
		return
	}
	t.applied = seq

	last := samples[len(samples)-1]
	location := models.AgentLocation{
		Latitude:  last.Latitude,
		Longitude: last.Longitude,
		Timestamp: last.Timestamp,
		Status:    last.StatusUpdate,
	}
	t.location = &location
	t.status = last.StatusUpdate
	onLocation := t.opts.OnLocationUpdate
	onStatus := t.opts.OnStatusUpdate
	t.mu.Unlock()

	if onLocation != nil {
		onLocation(location)
	}
	if onStatus != nil {
		onStatus(location.Status)
	}
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case t.running:
		return Polling
	case t.deliveryID == 0:
		return Idle
	default:
		return Stopped
	}
}

func (t *Tracker) Polling() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Tracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Location is the last derived courier position, nil before the first
// successful non-empty fetch.
func (t *Tracker) Location() *models.AgentLocation {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.location == nil {
		return nil
	}
	l := *t.location
	return &l
}

func (t *Tracker) Status() models.DeliveryStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Err is the most recent fetch failure, cleared by the next success.
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}
