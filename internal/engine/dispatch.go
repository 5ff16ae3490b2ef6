package engine

import (
	"context"
	"sync"
	"time"

	"github.com/junyong1111/cs-slack-bot/internal/logger"
)

// SendFunc delivers one outbound message to a channel. Implemented by
// the transport layer.
type SendFunc func(ctx context.Context, channel string, msg Message)

// Dispatcher serializes inputs per user: every user gets a dedicated
// worker goroutine draining a bounded queue, so inputs for one user
// are handled strictly in arrival order while different users proceed
// concurrently.
type Dispatcher struct {
	engine *Engine
	send   SendFunc
	cfg    Config
	log    *logger.Logger

	mu     sync.Mutex
	queues map[string]chan Input
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher delivering replies through send.
func NewDispatcher(e *Engine, send SendFunc, cfg Config, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.NewNop()
	}
	return &Dispatcher{
		engine: e,
		send:   send,
		cfg:    cfg,
		log:    log,
		queues: make(map[string]chan Input),
	}
}

// Enqueue hands an input to its user's worker, creating the worker on
// first contact. Returns false if the dispatcher is closed or the
// user's queue is full; the input is dropped in either case.
func (d *Dispatcher) Enqueue(in Input) bool {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return false
	}
	ch, ok := d.queues[in.User()]
	if !ok {
		ch = make(chan Input, d.cfg.QueueSize)
		d.queues[in.User()] = ch
		d.wg.Add(1)
		go d.worker(ch)
	}
	d.mu.Unlock()

	select {
	case ch <- in:
		return true
	default:
		d.log.Warn("input queue full, dropping input", "user", in.User())
		return false
	}
}

func (d *Dispatcher) worker(ch chan Input) {
	defer d.wg.Done()
	for in := range ch {
		msgs := d.engine.Handle(context.Background(), in)
		d.deliver(in.ChannelID(), msgs)
	}
}

// deliver sends the messages in order, pacing chunks so the platform
// renders them sequentially.
func (d *Dispatcher) deliver(channel string, msgs []Message) {
	for i, m := range msgs {
		if i > 0 && d.cfg.ChunkDelay > 0 {
			time.Sleep(d.cfg.ChunkDelay)
		}
		d.send(context.Background(), channel, m)
	}
}

// Close stops accepting inputs and waits for every worker to drain its
// queue.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.queues {
		close(ch)
	}
	d.mu.Unlock()
	d.wg.Wait()
}
