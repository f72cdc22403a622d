// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event carries what happened to the canvas. Fields not relevant to Type are
// left zero.
type Event struct {
	Type    EventType
	Strokes int    // размер истории после события
	Path    string // файл экспорта
	Err     error
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for every type in types.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe removes listener from eventType. Listener must be comparable;
// ListenerFunc values cannot be unsubscribed.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
