package broadcast

import (
	"context"
	"time"

	"github.com/mpapenbr/f1stats-go/log"
)

//nolint:lll // url
// see https://betterprogramming.pub/how-to-broadcast-messages-in-go-using-channels-b68f42bdf32e

type BroadcastServer[T any] interface {
	Subscribe() <-chan T
	CancelSubscription(<-chan T)
	Close()
}

// Stats counts the messages handled by a broadcast server
type Stats struct {
	Received int
	Sent     int
	Skipped  int
}

type broadcastServer[T any] struct {
	name           string
	source         <-chan T
	listeners      []chan T
	addListener    chan chan T
	removeListener chan (<-chan T)
	ctx            context.Context
	cancel         context.CancelFunc
	sendTimeout    time.Duration
	stats          Stats
	l              *log.Logger
}

type Option[T any] func(*broadcastServer[T])

// WithSendTimeout sets how long a slow listener may block a message
// before it is skipped for this listener.
func WithSendTimeout[T any](d time.Duration) Option[T] {
	return func(b *broadcastServer[T]) {
		b.sendTimeout = d
	}
}

func WithLogger[T any](l *log.Logger) Option[T] {
	return func(b *broadcastServer[T]) {
		b.l = l
	}
}

// NewBroadcastServer distributes every message read from source to all
// subscribers until Close is called or source is closed.
//
//nolint:whitespace // false positive
func NewBroadcastServer[T any](
	name string,
	source <-chan T,
	opts ...Option[T],
) BroadcastServer[T] {
	ctx, cancel := context.WithCancel(context.Background())
	b := &broadcastServer[T]{
		name:           name,
		source:         source,
		addListener:    make(chan chan T),
		removeListener: make(chan (<-chan T)),
		ctx:            ctx,
		cancel:         cancel,
		sendTimeout:    50 * time.Millisecond,
		l:              log.Default().Named("broadcast"),
	}
	for _, opt := range opts {
		opt(b)
	}
	go b.serve()
	return b
}

// Subscribe returns a channel receiving all messages published after the call.
// The channel is closed when the server stops.
func (b *broadcastServer[T]) Subscribe() <-chan T {
	ch := make(chan T, 1)
	select {
	case b.addListener <- ch:
	case <-b.ctx.Done():
		close(ch)
	}
	return ch
}

func (b *broadcastServer[T]) CancelSubscription(ch <-chan T) {
	select {
	case b.removeListener <- ch:
	case <-b.ctx.Done():
	}
}

func (b *broadcastServer[T]) Close() {
	b.cancel()
}

//nolint:cyclop // select loop
func (b *broadcastServer[T]) serve() {
	defer func() {
		b.l.Info("Closing listeners",
			log.String("name", b.name),
			log.Int("rcv", b.stats.Received),
			log.Int("snd", b.stats.Sent),
			log.Int("skip", b.stats.Skipped))
		for _, listener := range b.listeners {
			close(listener)
		}
		b.listeners = nil
		b.cancel()
	}()
	for {
		select {
		case <-b.ctx.Done():
			return
		case ch := <-b.addListener:
			b.listeners = append(b.listeners, ch)
		case ch := <-b.removeListener:
			for i, listener := range b.listeners {
				if listener == ch {
					b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
					close(listener)
					b.l.Debug("removed listener",
						log.String("name", b.name), log.Int("len", len(b.listeners)))
					break
				}
			}
		case msg, ok := <-b.source:
			if !ok {
				return
			}
			b.stats.Received++
			for _, listener := range b.listeners {
				select {
				case listener <- msg:
					b.stats.Sent++
				case <-time.After(b.sendTimeout):
					b.stats.Skipped++
				}
			}
		}
	}
}
