// The timer driver operates the LiteX timer0 core, a 32 bit down counter
// with one shot and periodic modes.
package timer

import (
	"github.com/mgrbr/vexsoc/drivers"
	"github.com/mgrbr/vexsoc/irq"
	"github.com/mgrbr/vexsoc/soc"
)

// Register offsets relative to soc.Timer0Base.
const (
	load        = 0x00
	reload      = 0x04
	en          = 0x08
	updateValue = 0x0c
	value       = 0x10
	ev          = 0x14
)

// EventZero fires when the counter reaches zero.
const EventZero = 1 << 0

type Timer struct {
	bus drivers.Bus
}

func New(bus drivers.Bus) *Timer {
	return &Timer{bus: bus}
}

// Line returns the timer's fast interrupt line.
func (t *Timer) Line() irq.Line { return irq.Line(soc.Timer0Interrupt) }

func (t *Timer) reg(off uint32) uint32 { return soc.Timer0Base + off }

// StartOneShot arms the timer to fire once after ticks cycles.
func (t *Timer) StartOneShot(ticks uint32) {
	t.Stop()
	t.bus.Store32(t.reg(load), ticks)
	t.bus.Store32(t.reg(reload), 0)
	t.bus.Store32(t.reg(en), 1)
}

// StartPeriodic arms the timer to fire every ticks cycles.
func (t *Timer) StartPeriodic(ticks uint32) {
	t.Stop()
	t.bus.Store32(t.reg(load), ticks)
	t.bus.Store32(t.reg(reload), ticks)
	t.bus.Store32(t.reg(en), 1)
}

func (t *Timer) Stop() {
	t.bus.Store32(t.reg(en), 0)
}

// Value latches and returns the current counter. The counter keeps running,
// the latch only makes the racing read consistent.
func (t *Timer) Value() uint32 {
	t.bus.Store32(t.reg(updateValue), 1)
	return t.bus.Load32(t.reg(value))
}

// EnableEvents gates the given event sources onto the timer's interrupt
// line. The line itself still needs to be unmasked, see irq.Controller.
func (t *Timer) EnableEvents(events uint32) {
	t.bus.Store32(t.reg(ev+drivers.EvEnable), events)
}

// Pending returns the latched event sources.
func (t *Timer) Pending() uint32 {
	return t.bus.Load32(t.reg(ev + drivers.EvPending))
}

// Ack clears the given latched event sources.
func (t *Timer) Ack(events uint32) {
	t.bus.Store32(t.reg(ev+drivers.EvPending), events)
}
