package registry

import (
	"time"

	"github.com/DerLukas15/ws2812bang"
)

//Event type constants for kelindar/event.
const (
	TypeAttached uint32 = iota + 1
	TypeDetached
	TypeError
)

//AttachedEvent is published when a device attached successfully.
type AttachedEvent struct {
	Name      string
	Info      ws2812bang.DeviceInfo
	Timestamp time.Time
}

//Type returns the event type identifier for AttachedEvent.
func (e AttachedEvent) Type() uint32 { return TypeAttached }

//DetachedEvent is published when a device released its pin.
type DetachedEvent struct {
	Name      string
	Info      ws2812bang.DeviceInfo
	Timestamp time.Time
}

//Type returns the event type identifier for DetachedEvent.
func (e DetachedEvent) Type() uint32 { return TypeDetached }

//ErrorEvent carries an error reported by a device.
type ErrorEvent struct {
	Name      string
	Kind      ws2812bang.ErrorKind
	Message   string
	Timestamp time.Time
}

//Type returns the event type identifier for ErrorEvent.
func (e ErrorEvent) Type() uint32 { return TypeError }
