package session

import (
	"github.com/sasha-s/go-deadlock"
)

// topic fans values out to subscribers. A subscriber that is not keeping up
// misses values instead of holding up the publisher.
type topic[T any] struct {
	subscribers map[chan T]struct{}
	mutex       deadlock.Mutex
}

func newTopic[T any]() *topic[T] {
	return &topic[T]{
		subscribers: make(map[chan T]struct{}),
	}
}

func (t *topic[T]) empty() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return len(t.subscribers) == 0
}

func (t *topic[T]) publish(value T) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for subscriber := range t.subscribers {
		select {
		case subscriber <- value:
		default:
		}
	}
}

func (t *topic[T]) subscribe() chan T {
	channel := make(chan T, 1)
	t.mutex.Lock()
	t.subscribers[channel] = struct{}{}
	t.mutex.Unlock()
	return channel
}

func (t *topic[T]) unsubscribe(channel chan T) {
	t.mutex.Lock()
	delete(t.subscribers, channel)
	t.mutex.Unlock()
}

// Watcher receives a snapshot after each tick that Run simulates.
type Watcher struct {
	channel chan Snapshot
	topic   *topic[Snapshot]
}

func (s *Session) Watch() *Watcher {
	return &Watcher{
		channel: s.watchers.subscribe(),
		topic:   s.watchers,
	}
}

func (w *Watcher) Recv() <-chan Snapshot {
	return w.channel
}

func (w *Watcher) Done() {
	w.topic.unsubscribe(w.channel)
}
