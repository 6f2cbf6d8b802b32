package tracking

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

const locationRemark = "Agent location update"

// GeolocationError wraps a positioning failure. The tracking toggle reverts
// and the last known position is left as it was.
type GeolocationError struct {
	Err error
}

func (e *GeolocationError) Error() string {
	return fmt.Sprintf("geolocation: %v", e.Err)
}

func (e *GeolocationError) Unwrap() error {
	return e.Err
}

// Position is one GPS fix.
type Position struct {
	Latitude  float64
	Longitude float64
}

// LocationSource is the device positioning feed. Watch delivers fixes to fn
// until the returned cancel runs; feed failures go to errFn.
type LocationSource interface {
	Watch(fn func(Position), errFn func(error)) (cancel func(), err error)
	Current() (Position, error)
}

// Reporter pushes courier positions to the delivery service.
type Reporter interface {
	UpdateAgentLocation(ctx context.Context, latitude, longitude float64) error
	UpdateDeliveryLocation(ctx context.Context, deliveryID int64, latitude, longitude float64, remarks string) error
}

// Watcher owns the one live location subscription an agent may have.
// Every fix updates the agent's position and, when an active delivery is
// set, that delivery's tracking history too.
type Watcher struct {
	source   LocationSource
	reporter Reporter

	mu             sync.Mutex
	cancel         func()
	activeDelivery int64
	current        *Position
	onError        func(error)
}

func NewWatcher(source LocationSource, reporter Reporter) *Watcher {
	return &Watcher{source: source, reporter: reporter}
}

func (w *Watcher) OnError(fn func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = fn
}

// SetActiveDelivery names the delivery whose tracking history receives the
// fixes; zero means agent-position updates only.
func (w *Watcher) SetActiveDelivery(deliveryID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.activeDelivery = deliveryID
}

// Start subscribes to the location source. An existing subscription is
// cancelled first; there is never more than one live feed.
func (w *Watcher) Start() error {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()
	if cancel != nil {
		cancel()
	}

	newCancel, err := w.source.Watch(w.handleFix, w.handleSourceError)
	if err != nil {
		return &GeolocationError{Err: err}
	}

	w.mu.Lock()
	w.cancel = newCancel
	w.mu.Unlock()
	return nil
}

// Stop cancels the subscription. Safe to call repeatedly.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (w *Watcher) Tracking() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancel != nil
}

// Current is the last fix seen, nil before the first one.
func (w *Watcher) Current() *Position {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil {
		return nil
	}
	p := *w.current
	return &p
}

// ReportOnce takes a single fix and reports it immediately, without a
// subscription.
func (w *Watcher) ReportOnce(ctx context.Context) (Position, error) {
	position, err := w.source.Current()
	if err != nil {
		return Position{}, &GeolocationError{Err: err}
	}
	w.mu.Lock()
	p := position
	w.current = &p
	w.mu.Unlock()
	w.report(ctx, position)
	return position, nil
}

func (w *Watcher) handleFix(position Position) {
	w.mu.Lock()
	p := position
	w.current = &p
	w.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	w.report(ctx, position)
}

func (w *Watcher) report(ctx context.Context, position Position) {
	if err := w.reporter.UpdateAgentLocation(ctx, position.Latitude, position.Longitude); err != nil {
		log.Println("Failed to update agent location:", err)
	}
	w.mu.Lock()
	deliveryID := w.activeDelivery
	w.mu.Unlock()
	if deliveryID != 0 {
		if err := w.reporter.UpdateDeliveryLocation(ctx, deliveryID, position.Latitude, position.Longitude, locationRemark); err != nil {
			log.Println("Failed to update delivery location:", err)
		}
	}
}

// handleSourceError tears the subscription down and reverts the tracking
// toggle; the last known position stays.
func (w *Watcher) handleSourceError(err error) {
	w.Stop()
	w.mu.Lock()
	onError := w.onError
	w.mu.Unlock()
	if onError != nil {
		onError(&GeolocationError{Err: err})
	}
}

// TickerSource emits a fixed position at a steady cadence. It stands in for
// a GPS feed on terminals that have none.
type TickerSource struct {
	Position Position
	Interval time.Duration
}

func (s *TickerSource) Watch(fn func(Position), _ func(error)) (func(), error) {
	interval := s.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	stopc := make(chan struct{})
	go func() {
		fn(s.Position)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stopc:
				return
			case <-ticker.C:
				fn(s.Position)
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() { close(stopc) })
	}, nil
}

func (s *TickerSource) Current() (Position, error) {
	return s.Position, nil
}
