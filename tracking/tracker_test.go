package tracking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bprathamesh20/food-delivery/models"
)

type stubFetcher struct {
	mu      sync.Mutex
	samples []models.TrackingSample
	err     error
	calls   int
}

func (f *stubFetcher) Tracking(ctx context.Context, deliveryID int64) ([]models.TrackingSample, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.TrackingSample, len(f.samples))
	copy(out, f.samples)
	return out, nil
}

func (f *stubFetcher) set(samples []models.TrackingSample, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.samples = samples
	f.err = err
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func sampleHistory() []models.TrackingSample {
	return []models.TrackingSample{
		{ID: 1, DeliveryID: 5, Latitude: 1, Longitude: 1, StatusUpdate: models.DeliveryPickedUp, Timestamp: "2026-09-01T10:00:00"},
		{ID: 2, DeliveryID: 5, Latitude: 2, Longitude: 2, StatusUpdate: models.DeliveryInTransit, Timestamp: "2026-09-01T10:05:00"},
	}
}

type callbackLog struct {
	mu        sync.Mutex
	locations []models.AgentLocation
	statuses  []models.DeliveryStatus
	errors    []error
}

func (l *callbackLog) options() Options {
	return Options{
		PollInterval: time.Hour,
		OnLocationUpdate: func(loc models.AgentLocation) {
			l.mu.Lock()
			defer l.mu.Unlock()
			l.locations = append(l.locations, loc)
		},
		OnStatusUpdate: func(s models.DeliveryStatus) {
			l.mu.Lock()
			defer l.mu.Unlock()
			l.statuses = append(l.statuses, s)
		},
		OnError: func(err error) {
			l.mu.Lock()
			defer l.mu.Unlock()
			l.errors = append(l.errors, err)
		},
	}
}

func (l *callbackLog) snapshot() ([]models.AgentLocation, []models.DeliveryStatus, []error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.AgentLocation(nil), l.locations...),
		append([]models.DeliveryStatus(nil), l.statuses...),
		append([]error(nil), l.errors...)
}

func TestTrackerDerivesStateFromLastSample(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.set(sampleHistory(), nil)
	log := &callbackLog{}

	tracker := New(fetcher, 5, log.options())
	tracker.Refresh()

	locations, statuses, errs := log.snapshot()
	require.Len(t, locations, 1, "one non-empty fetch fires one location callback")
	require.Len(t, statuses, 1)
	assert.Empty(t, errs)

	assert.Equal(t, models.AgentLocation{
		Latitude:  2,
		Longitude: 2,
		Timestamp: "2026-09-01T10:05:00",
		Status:    models.DeliveryInTransit,
	}, locations[0])
	assert.Equal(t, models.DeliveryInTransit, statuses[0])

	require.NotNil(t, tracker.Location())
	assert.Equal(t, 2.0, tracker.Location().Latitude)
	assert.Equal(t, models.DeliveryInTransit, tracker.Status())
	assert.NoError(t, tracker.Err())
}

func TestTrackerEmptyHistoryFiresNoCallbacks(t *testing.T) {
	fetcher := &stubFetcher{}
	log := &callbackLog{}

	tracker := New(fetcher, 5, log.options())
	tracker.Refresh()

	locations, statuses, errs := log.snapshot()
	assert.Empty(t, locations)
	assert.Empty(t, statuses)
	assert.Empty(t, errs)
	assert.Nil(t, tracker.Location())
	assert.Equal(t, models.DeliveryStatus(""), tracker.Status())
}

func TestTrackerErrorPreservesLastKnownState(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.set(sampleHistory(), nil)
	log := &callbackLog{}

	tracker := New(fetcher, 5, log.options())
	tracker.Refresh()
	require.NotNil(t, tracker.Location())

	boom := errors.New("gateway timeout")
	fetcher.set(nil, boom)
	tracker.Refresh()

	_, _, errs := log.snapshot()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, tracker.Err(), boom)
	require.NotNil(t, tracker.Location(), "a failed poll keeps the last samples on screen")
	assert.Equal(t, models.DeliveryInTransit, tracker.Status())

	// The next success clears the error.
	fetcher.set(sampleHistory(), nil)
	tracker.Refresh()
	assert.NoError(t, tracker.Err())
}

func TestTrackerWithoutDeliveryIDIsIdle(t *testing.T) {
	fetcher := &stubFetcher{}
	log := &callbackLog{}

	tracker := New(fetcher, 0, log.options())
	assert.Equal(t, Idle, tracker.State())

	tracker.Refresh()
	assert.Zero(t, fetcher.callCount(), "no fetch without a delivery id")
}

func TestTrackerAutoStartWaitsForDeliveryID(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.set(sampleHistory(), nil)
	opts := DefaultOptions()
	opts.PollInterval = 10 * time.Millisecond

	tracker := New(fetcher, 0, opts)
	defer tracker.Stop()
	assert.False(t, tracker.Polling())

	tracker.SetDeliveryID(5)
	require.Eventually(t, func() bool { return fetcher.callCount() > 0 },
		time.Second, time.Millisecond, "polling begins once the id arrives")
	assert.True(t, tracker.Polling())
}

func TestTrackerStartPollsAndStopQuiesces(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.set(sampleHistory(), nil)
	log := &callbackLog{}
	opts := log.options()
	opts.PollInterval = 10 * time.Millisecond

	tracker := New(fetcher, 5, opts)
	tracker.Start()
	assert.Equal(t, Polling, tracker.State())

	require.Eventually(t, func() bool { return fetcher.callCount() >= 2 },
		time.Second, time.Millisecond)

	tracker.Stop()
	assert.Equal(t, Stopped, tracker.State())
	tracker.Stop() // repeat is safe

	time.Sleep(20 * time.Millisecond) // let any in-flight fetch resolve
	settled := fetcher.callCount()
	locations, _, _ := log.snapshot()
	settledCallbacks := len(locations)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, fetcher.callCount(), "no fetches after Stop")
	locations, _, _ = log.snapshot()
	assert.Equal(t, settledCallbacks, len(locations), "no callbacks after Stop")
}

func TestTrackerStartIsIdempotent(t *testing.T) {
	fetcher := &stubFetcher{}
	opts := Options{PollInterval: time.Hour}

	tracker := New(fetcher, 5, opts)
	tracker.Start()
	tracker.Start()
	defer tracker.Stop()

	require.Eventually(t, func() bool { return fetcher.callCount() >= 1 },
		time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, fetcher.callCount(), "a second Start must not add a second loop")
}

func TestTrackerDiscardsResultAfterIDChange(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.set(sampleHistory(), nil)
	log := &callbackLog{}

	tracker := New(fetcher, 5, log.options())
	tracker.Refresh()
	first := tracker.Location()
	require.NotNil(t, first)

	// Switching deliveries drops whatever the old id produced next.
	tracker.SetDeliveryID(6)
	fetcher.set([]models.TrackingSample{
		{ID: 9, DeliveryID: 6, Latitude: 8, Longitude: 8, StatusUpdate: models.DeliveryAssigned, Timestamp: "2026-09-01T11:00:00"},
	}, nil)
	tracker.Refresh()

	require.NotNil(t, tracker.Location())
	assert.Equal(t, 8.0, tracker.Location().Latitude)
	assert.Equal(t, models.DeliveryAssigned, tracker.Status())
}
