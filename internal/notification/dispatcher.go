package notification

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/dentalcare-app/clinic-api/internal/models"
)

// Sink persists notification records. Satisfied by the clinic store.
type Sink interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
}

// Dispatcher delivers lifecycle events to the notification feed on a
// background worker. Emission is fire-and-forget: a full queue drops
// the event, and a failed write only logs, so a notification can never
// fail the transition that produced it.
type Dispatcher struct {
	sink  Sink
	queue chan Event
	now   func() time.Time
	wg    sync.WaitGroup
}

func NewDispatcher(sink Sink, now func() time.Time) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
		now:   now,
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		for _, n := range ev.records(d.now()) {
			n := n
			if err := d.sink.CreateNotification(context.Background(), &n); err != nil {
				log.Println("notification error:", err)
			}
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Println("notification queue full, dropping event")
	}
}

// Close stops the worker after draining queued events.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	close(d.queue)
	d.wg.Wait()
}
