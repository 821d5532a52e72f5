package overlay

const TopicClick = "click"

// ClickEvent is a pointer interaction in screen cells.
type ClickEvent struct {
	X int
	Y int
}

type EventBusEventCallback func(data interface{})

type subscriber struct {
	id       int
	callback EventBusEventCallback
}

// EventBus fans a published event out to every subscriber of its topic, in
// subscription order. It is not safe for concurrent use; publish and
// subscribe from the UI goroutine only.
type EventBus struct {
	subscribers map[string][]subscriber
	nextID      int
}

func (bus *EventBus) Publish(name string, data interface{}) {
	// Callbacks may unsubscribe while we iterate.
	subs := append([]subscriber(nil), bus.subscribers[name]...)
	for _, s := range subs {
		s.callback(data)
	}
}

// Subscribe registers callback for name and returns the function that removes
// it again.
func (bus *EventBus) Subscribe(name string, callback EventBusEventCallback) func() {
	bus.nextID++
	id := bus.nextID
	bus.subscribers[name] = append(bus.subscribers[name], subscriber{id: id, callback: callback})

	return func() {
		subs := bus.subscribers[name]
		for i, s := range subs {
			if s.id == id {
				bus.subscribers[name] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

func (bus *EventBus) SubscriberCount(name string) int {
	return len(bus.subscribers[name])
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]subscriber),
	}
}
