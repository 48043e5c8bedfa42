package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventstaff/hospitality-hub/internal/api/metrics"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// Dispatcher routes auth events to a fixed set of workers using consistent
// hashing on the email, so attempts for one account are written in order.
type Dispatcher struct {
	workers []chan ports.AuthEventInput
	service ports.AuditService
	log     zerolog.Logger
	wg      sync.WaitGroup

	// mu guards closed against the channel close in Stop.
	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuthEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuthEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an event to the worker responsible for its email. It never
// blocks the login path: when the worker is saturated, or the dispatcher has
// been stopped, the event is dropped.
func (d *Dispatcher) Enqueue(event ports.AuthEventInput) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.AuditDroppedTotal.Inc()
		d.log.Warn().
			Str("email", event.Email).
			Str("outcome", string(event.Outcome)).
			Msg("audit dispatcher stopped, event dropped")
		return
	}

	idx := d.shardIndex(event.Email)
	select {
	case d.workers[idx] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.AuditDroppedTotal.Inc()
		d.log.Warn().
			Str("email", event.Email).
			Str("outcome", string(event.Outcome)).
			Msg("audit queue full, event dropped")
	}
}

// Stop closes the worker channels and waits for queued events to drain.
// Events enqueued after Stop are dropped. Stop is safe to call more than once.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(email)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuthEventInput) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(label).Dec()
			d.write(ctx, id, event)
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, id int, event ports.AuthEventInput) {
	start := time.Now()
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	if err := d.service.Record(wctx, event); err != nil {
		d.log.Error().Err(err).
			Str("email", event.Email).
			Str("outcome", string(event.Outcome)).
			Int("worker_id", id).
			Msg("auth event write failed")
	}
	metrics.AuditWriteDuration.Observe(time.Since(start).Seconds())
}
