// internal/facet/dispatcher.go
package facet

import (
	"runtime"
	"sync"

	"github.com/eventrix/eventrix-backend/internal/filter"
)

// dispatcher delivers criteria to a callback on its own goroutine, in FIFO
// order. Enqueue never blocks on the callback.
type dispatcher struct {
	mu         sync.Mutex
	queue      []filter.Criteria
	closed     bool
	delivering bool
	loop       uint64
	wake       chan struct{}
	done       chan struct{}
	deliver    func(filter.Criteria)
}

func newDispatcher(deliver func(filter.Criteria)) *dispatcher {
	d := &dispatcher{
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		deliver: deliver,
	}
	go d.run()
	return d
}

func (d *dispatcher) enqueue(c filter.Criteria) {
	d.mu.Lock()
	if d.closed || d.deliver == nil {
		d.mu.Unlock()
		return
	}
	d.queue = append(d.queue, c)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *dispatcher) run() {
	defer close(d.done)
	d.mu.Lock()
	d.loop = goroutineID()
	d.mu.Unlock()
	for {
		d.mu.Lock()
		batch := d.queue
		d.queue = nil
		closed := d.closed
		d.mu.Unlock()

		if len(batch) > 0 {
			d.setDelivering(true)
			for _, c := range batch {
				d.deliver(c)
			}
			d.setDelivering(false)
		}
		if closed && len(batch) == 0 {
			return
		}
		if len(batch) == 0 {
			<-d.wake
		}
	}
}

func (d *dispatcher) setDelivering(v bool) {
	d.mu.Lock()
	d.delivering = v
	d.mu.Unlock()
}

// close stops accepting criteria and waits until the queue is drained. From
// inside the callback it cannot wait for itself: it returns at once and the
// dispatcher drains the rest once the callback returns.
func (d *dispatcher) close() {
	d.mu.Lock()
	reentrant := d.delivering && goroutineID() == d.loop
	already := d.closed
	d.closed = true
	d.mu.Unlock()

	if !already {
		select {
		case d.wake <- struct{}{}:
		default:
		}
	}
	if !reentrant {
		<-d.done
	}
}

// goroutineID reads the current goroutine's number from its stack header.
func goroutineID() uint64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	var id uint64
	for _, b := range buf[len("goroutine "):] {
		if b < '0' || b > '9' {
			break
		}
		id = id*10 + uint64(b-'0')
	}
	return id
}
