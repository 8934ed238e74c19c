package eui

import "go.uber.org/zap"

// UIEventType defines the kind of event emitted by range bars.
type UIEventType int

const (
	EventRangeChanging UIEventType = iota
	EventRangeChanged
)

func (t UIEventType) String() string {
	if t == EventRangeChanging {
		return "changing"
	}
	return "changed"
}

// UIEvent describes a selection update of a range bar.
type UIEvent struct {
	Item *RangeBar
	Type UIEventType
	Min  float32
	Max  float32
}

// EventHandler provides both channel and callback based event delivery.
// The channel holds eventQueueSize events; readers that fall further behind
// lose events, which are counted and logged at debug level. Handle always
// sees every event.
type EventHandler struct {
	Events chan UIEvent
	Handle func(UIEvent)
	Logger *zap.SugaredLogger

	dropped int
}

const eventQueueSize = 8

// Emit delivers the event through the channel and callback if present. A
// full channel drops the event rather than blocking the UI loop.
func (h *EventHandler) Emit(ev UIEvent) {
	if h == nil {
		return
	}
	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
			h.dropped++
			if h.Logger != nil {
				h.Logger.Debugw("Event queue full, dropping event",
					"type", ev.Type, "min", ev.Min, "max", ev.Max, "dropped", h.dropped)
			}
		}
	}
	if h.Handle != nil {
		h.Handle(ev)
	}
}

// Dropped counts events the channel had no room for.
func (h *EventHandler) Dropped() int { return h.dropped }

func newHandler() *EventHandler {
	return &EventHandler{Events: make(chan UIEvent, eventQueueSize)}
}
