package sim

import "github.com/mgrbr/vexsoc/soc"

// Register offsets within an event block.
const (
	evStatus  = 0x0 // raw source levels, read-only
	evPending = 0x4 // latched sources, write 1 to clear
	evEnable  = 0x8 // gates which pending sources assert the line

	// EventSize is the size of an event block on the bus.
	EventSize = 0xc
)

// Event models a peripheral's event block. Triggered sources latch into the
// pending register and, while enabled, assert the peripheral's fast
// interrupt line on the hart. Clearing happens by acknowledging the event,
// never by the hart's interrupt interface.
type Event struct {
	hart *Hart
	line int

	status  uint32
	pending uint32
	enable  uint32
}

func NewEvent(hart *Hart, line int) *Event {
	return &Event{hart: hart, line: line}
}

// Trigger latches the given source bits and raises the line if any of them
// is enabled.
func (e *Event) Trigger(bits uint32) {
	e.status |= bits
	e.pending |= bits
	e.update()
}

// Release deasserts the raw level of the given sources. Latched pending bits
// stay set until acknowledged.
func (e *Event) Release(bits uint32) {
	e.status &^= bits
}

func (e *Event) Load(off uint32) uint32 {
	switch off {
	case evStatus:
		return e.status
	case evPending:
		return e.pending
	case evEnable:
		return e.enable
	}
	return 0
}

func (e *Event) Store(off uint32, v uint32) {
	switch off {
	case evPending:
		e.pending &^= v
	case evEnable:
		e.enable = v
	}
	e.update()
}

func (e *Event) Size() uint32 { return EventSize }

func (e *Event) update() {
	if e.pending&e.enable != 0 {
		e.hart.RaiseFirq(e.line)
	} else {
		e.hart.ClearFirq(e.line)
	}
}

func firqBit(line int) uint32 {
	return 1 << (soc.FirqOffset + line)
}
