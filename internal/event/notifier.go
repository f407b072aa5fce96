package event

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Errors returned by notifier operations.
var (
	// ErrNilListener indicates a nil listener was passed to Subscribe.
	ErrNilListener = errors.New("nil listener")

	// ErrSubscriptionNotFound indicates the subscription is not registered.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// Subscription represents a registered listener.
type Subscription struct {
	id        string
	listener  Listener
	cancelled atomic.Bool
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Cancel permanently stops delivery to this subscription.
func (s *Subscription) Cancel() {
	s.cancelled.Store(true)
}

// IsActive returns true if the subscription can receive edits.
func (s *Subscription) IsActive() bool {
	return !s.cancelled.Load()
}

// Notifier delivers edit notifications synchronously to a closed set of
// registered listeners. Delivery happens in the caller's goroutine and
// completes before Publish returns; there is no queue and no background work.
// Listeners are invoked in registration order, but callers must not rely on
// that ordering.
type Notifier struct {
	mu   sync.RWMutex
	subs []*Subscription

	// Stats
	published atomic.Uint64
	delivered atomic.Uint64
	panicked  atomic.Uint64

	panicHandler PanicHandler
}

// PanicHandler is called when a listener panics during delivery.
type PanicHandler func(edit Edit, recovered any)

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithPanicHandler sets the handler invoked when a listener panics.
func WithPanicHandler(h PanicHandler) NotifierOption {
	return func(n *Notifier) {
		n.panicHandler = h
	}
}

// NewNotifier creates a new notifier with no listeners.
func NewNotifier(opts ...NotifierOption) *Notifier {
	n := &Notifier{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Subscribe registers a listener and returns its subscription.
func (n *Notifier) Subscribe(l Listener) (*Subscription, error) {
	if l == nil {
		return nil, ErrNilListener
	}

	sub := &Subscription{
		id:       uuid.New().String(),
		listener: l,
	}

	n.mu.Lock()
	n.subs = append(n.subs, sub)
	n.mu.Unlock()

	return sub, nil
}

// SubscribeFunc is a convenience method for subscribing with a function.
func (n *Notifier) SubscribeFunc(fn ListenerFunc) (*Subscription, error) {
	return n.Subscribe(fn)
}

// Unsubscribe cancels and removes a subscription.
func (n *Notifier) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	sub.Cancel()

	n.mu.Lock()
	defer n.mu.Unlock()

	for i, s := range n.subs {
		if s == sub {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers an edit to every active listener. Each listener runs to
// completion before the next one is invoked; a listener panic is recovered
// and counted so one faulty listener cannot take down the editing session.
func (n *Notifier) Publish(e Edit) {
	n.mu.RLock()
	subs := make([]*Subscription, len(n.subs))
	copy(subs, n.subs)
	n.mu.RUnlock()

	n.published.Add(1)

	for _, sub := range subs {
		if !sub.IsActive() {
			continue
		}
		n.deliver(sub.listener, e)
	}
}

func (n *Notifier) deliver(l Listener, e Edit) {
	defer func() {
		if r := recover(); r != nil {
			n.panicked.Add(1)
			if n.panicHandler != nil {
				n.panicHandler(e, r)
			}
		}
	}()

	l.HandleEdit(e)
	n.delivered.Add(1)
}

// ListenerCount returns the number of active subscriptions.
func (n *Notifier) ListenerCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	count := 0
	for _, s := range n.subs {
		if s.IsActive() {
			count++
		}
	}
	return count
}

// Stats contains notifier delivery statistics.
type Stats struct {
	// Published is the total number of edits published.
	Published uint64

	// Delivered is the number of successful listener invocations.
	Delivered uint64

	// Panicked is the number of listener panics recovered.
	Panicked uint64

	// ActiveListeners is the current number of active subscriptions.
	ActiveListeners int
}

// Stats returns current delivery statistics.
func (n *Notifier) Stats() Stats {
	return Stats{
		Published:       n.published.Load(),
		Delivered:       n.delivered.Load(),
		Panicked:        n.panicked.Load(),
		ActiveListeners: n.ListenerCount(),
	}
}
