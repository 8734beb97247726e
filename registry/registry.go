//Package registry keeps track of attached devices and broadcasts their
//lifecycle and errors over a kelindar/event dispatcher.
package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/DerLukas15/ws2812bang"
	"github.com/kelindar/event"
)

//Entry is an active device.
type Entry struct {
	Name  string
	Info  ws2812bang.DeviceInfo
	Since time.Time
}

//Registry implements ws2812bang.Reporter for any number of named devices.
//Subscribers are called asynchronously.
type Registry struct {
	dispatcher *event.Dispatcher
	now        func() time.Time

	mu     sync.RWMutex
	active map[string]Entry
	errors map[string]int
}

//New creates an empty registry.
func New() *Registry {
	return &Registry{
		dispatcher: event.NewDispatcher(),
		now:        time.Now,
		active:     make(map[string]Entry),
		errors:     make(map[string]int),
	}
}

//Reporter returns the ws2812bang.Reporter for the device called name.
func (r *Registry) Reporter(name string) ws2812bang.Reporter {
	return &reporter{registry: r, name: name}
}

//Active returns all attached devices sorted by name.
func (r *Registry) Active() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.active))
	for _, e := range r.active {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

//Lookup returns the entry of an attached device.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.active[name]
	return e, ok
}

//Errors returns how many errors the device called name reported.
func (r *Registry) Errors(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.errors[name]
}

//OnAttached subscribes to AttachedEvent. Returns an unsubscribe function.
func (r *Registry) OnAttached(handler func(AttachedEvent)) func() {
	return event.Subscribe(r.dispatcher, handler)
}

//OnDetached subscribes to DetachedEvent. Returns an unsubscribe function.
func (r *Registry) OnDetached(handler func(DetachedEvent)) func() {
	return event.Subscribe(r.dispatcher, handler)
}

//OnError subscribes to ErrorEvent. Returns an unsubscribe function.
func (r *Registry) OnError(handler func(ErrorEvent)) func() {
	return event.Subscribe(r.dispatcher, handler)
}

type reporter struct {
	registry *Registry
	name     string
}

func (rp *reporter) Attached(info ws2812bang.DeviceInfo) {
	r := rp.registry
	now := r.now()
	r.mu.Lock()
	r.active[rp.name] = Entry{Name: rp.name, Info: info, Since: now}
	r.mu.Unlock()
	event.Publish(r.dispatcher, AttachedEvent{Name: rp.name, Info: info, Timestamp: now})
}

func (rp *reporter) Detached(info ws2812bang.DeviceInfo) {
	r := rp.registry
	r.mu.Lock()
	delete(r.active, rp.name)
	r.mu.Unlock()
	event.Publish(r.dispatcher, DetachedEvent{Name: rp.name, Info: info, Timestamp: r.now()})
}

func (rp *reporter) Error(kind ws2812bang.ErrorKind, msg string) {
	r := rp.registry
	r.mu.Lock()
	r.errors[rp.name]++
	r.mu.Unlock()
	event.Publish(r.dispatcher, ErrorEvent{Name: rp.name, Kind: kind, Message: msg, Timestamp: r.now()})
}
