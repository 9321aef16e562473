package identity

import "sync"

// Observable is a typed publish/subscribe cell holding a current value.
// Each subscriber gets its own delivery goroutine and an unbounded FIFO
// queue, so subscribers observe every published value exactly once, in
// publish order, without a slow callback stalling the publisher or the
// other subscribers. The initial value is delivered asynchronously right
// after Subscribe returns.
type Observable[T any] struct {
	mu      sync.Mutex
	current T
	subs    map[int]*subscriber[T]
	nextID  int
}

type subscriber[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []T
	closed bool
}

func newSubscriber[T any]() *subscriber[T] {
	s := &subscriber[T]{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *subscriber[T]) push(v T) {
	s.mu.Lock()
	if !s.closed {
		s.queue = append(s.queue, v)
		s.cond.Signal()
	}
	s.mu.Unlock()
}

func (s *subscriber[T]) close() {
	s.mu.Lock()
	s.closed = true
	s.cond.Signal()
	s.mu.Unlock()
}

// run delivers queued values to fn until the subscriber is closed.
func (s *subscriber[T]) run(fn func(T)) {
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		if s.closed {
			s.mu.Unlock()
			return
		}
		v := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		fn(v)
	}
}

// NewObservable creates an observable with the given starting value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		current: initial,
		subs:    make(map[int]*subscriber[T]),
	}
}

// Current returns the latest published value synchronously.
func (o *Observable[T]) Current() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Publish records v as current and enqueues it to every subscriber.
func (o *Observable[T]) Publish(v T) {
	o.mu.Lock()
	o.current = v
	for _, s := range o.subs {
		s.push(v)
	}
	o.mu.Unlock()
}

// Subscribe registers fn and returns an unsubscribe function. fn first
// receives the value current at subscription time, then every later
// publish, always on the subscriber's own goroutine. Unsubscribing stops
// delivery; values already consumed are not replayed elsewhere.
func (o *Observable[T]) Subscribe(fn func(T)) func() {
	sub := newSubscriber[T]()

	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs[id] = sub
	sub.push(o.current)
	o.mu.Unlock()

	go sub.run(fn)

	return func() {
		o.mu.Lock()
		delete(o.subs, id)
		o.mu.Unlock()
		sub.close()
	}
}
