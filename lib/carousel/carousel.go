package carousel

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrEmpty      = errors.New("carousel must have at least one item")
	ErrOutOfRange = errors.New("carousel index out of range")
	ErrStopped    = errors.New("carousel stopped")
)

type ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func newTimeTicker(d time.Duration) ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Carousel cycles a zero-based index through a fixed number of items.
// A mounted carousel owns exactly one repeating timer; Stop releases it.
// Listeners are invoked with the carousel locked and must not call back into it.
type Carousel struct {
	mu        sync.Mutex
	size      int
	interval  time.Duration
	index     int
	listeners []func(index int)
	started   bool
	stopped   bool
	stopOnce  sync.Once
	stopCh    chan struct{}
	done      chan struct{}
	newTicker func(d time.Duration) ticker
}

func New(size int, interval time.Duration) (*Carousel, error) {
	if size <= 0 {
		return nil, ErrEmpty
	}
	return &Carousel{
		size:      size,
		interval:  interval,
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
		newTicker: newTimeTicker,
	}, nil
}

func (c *Carousel) Size() int {
	return c.size
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Subscribe registers fn to receive every index change.
func (c *Carousel) Subscribe(fn func(index int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Start launches the timer. Interval <= 0 means manual selection only.
// The carousel stops on the returned func, on Stop, or when ctx is done.
func (c *Carousel) Start(ctx context.Context) (stop func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started || c.stopped {
		return c.Stop
	}
	c.started = true
	if c.interval <= 0 {
		close(c.done)
		go func() {
			select {
			case <-ctx.Done():
				c.Stop()
			case <-c.stopCh:
			}
		}()
		return c.Stop
	}
	t := c.newTicker(c.interval)
	go c.run(ctx, t)
	return c.Stop
}

func (c *Carousel) run(ctx context.Context, t ticker) {
	defer close(c.done)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			c.markStopped()
			return
		case <-c.stopCh:
			return
		case <-t.C():
			c.advance()
		}
	}
}

func (c *Carousel) advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.index = (c.index + 1) % c.size
	c.notify()
}

// Select jumps to index without touching the timer cadence.
func (c *Carousel) Select(index int) error {
	if index < 0 || index >= c.size {
		return errors.Wrapf(ErrOutOfRange, "index %d of %d", index, c.size)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return ErrStopped
	}
	c.index = index
	c.notify()
	return nil
}

// Stop cancels the timer and waits for it to be released. Safe to call many times.
func (c *Carousel) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.stopped = true
		started := c.started
		c.mu.Unlock()
		close(c.stopCh)
		if started {
			<-c.done
		}
	})
}

func (c *Carousel) markStopped() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()
}

func (c *Carousel) notify() {
	for _, fn := range c.listeners {
		fn(c.index)
	}
}
