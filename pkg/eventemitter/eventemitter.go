package eventemitter

import "sync"

// EventEmitter delivers messages of a single type to every subscriber.
// Delivery is synchronous: Emit returns once all callbacks have run.
// The zero value is ready to use.
type EventEmitter[T any] struct {
	mutex       sync.RWMutex
	subscribers []func(T)
}

func (eventEmitter *EventEmitter[T]) Emit(message T) {
	eventEmitter.mutex.RLock()
	subscribers := make([]func(T), len(eventEmitter.subscribers))
	copy(subscribers, eventEmitter.subscribers)
	eventEmitter.mutex.RUnlock()

	for _, callback := range subscribers {
		callback(message)
	}
}

func (eventEmitter *EventEmitter[T]) Subscribe(callback func(T)) {
	if callback == nil {
		panic("Callback is nil")
	}
	eventEmitter.mutex.Lock()
	eventEmitter.subscribers = append(eventEmitter.subscribers, callback)
	eventEmitter.mutex.Unlock()
}

func (eventEmitter *EventEmitter[T]) Subscribers() int {
	eventEmitter.mutex.RLock()
	defer eventEmitter.mutex.RUnlock()
	return len(eventEmitter.subscribers)
}
