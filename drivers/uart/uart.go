// The uart driver talks to the LiteX uart core. It is the SoC's serial
// console, typically crossed over to the host through the board's debug
// bridge.
//
// Reads and writes spin on the fifo status registers. Blocking writes are
// acceptable here because the transmit fifo drains at line rate; for bulk
// transfers use the rx event and the interrupt mask instead of busy waiting.
package uart

import (
	"github.com/mgrbr/vexsoc/drivers"
	"github.com/mgrbr/vexsoc/irq"
	"github.com/mgrbr/vexsoc/soc"
)

// Register offsets relative to soc.UartBase.
const (
	rxtx    = 0x00
	txfull  = 0x04
	rxempty = 0x08
	ev      = 0x0c
	txempty = 0x18
	rxfull  = 0x1c
)

// Event sources of the uart's event block.
const (
	EventTx = 1 << 0
	EventRx = 1 << 1
)

type UART struct {
	bus drivers.Bus
}

func New(bus drivers.Bus) *UART {
	return &UART{bus: bus}
}

// Line returns the uart's fast interrupt line.
func (u *UART) Line() irq.Line { return irq.Line(soc.UartInterrupt) }

func (u *UART) reg(off uint32) uint32 { return soc.UartBase + off }

// WriteByte blocks until there is room in the transmit fifo.
func (u *UART) WriteByte(b byte) error {
	for u.bus.Load32(u.reg(txfull)) != 0 {
	}
	u.bus.Store32(u.reg(rxtx), uint32(b))
	return nil
}

func (u *UART) Write(p []byte) (n int, err error) {
	for _, b := range p {
		u.WriteByte(b)
		n++
	}
	return
}

func (u *UART) WriteString(s string) (n int, err error) {
	for i := 0; i < len(s); i++ {
		u.WriteByte(s[i])
		n++
	}
	return
}

// Buffered reports whether the receive fifo holds at least one byte.
func (u *UART) Buffered() bool {
	return u.bus.Load32(u.reg(rxempty)) == 0
}

// ReadByte blocks until a byte is received.
func (u *UART) ReadByte() (byte, error) {
	for !u.Buffered() {
	}
	return byte(u.bus.Load32(u.reg(rxtx))), nil
}

// Read blocks until at least one byte is received, then drains the receive
// fifo into p without blocking again.
func (u *UART) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, _ := u.ReadByte()
	p[n] = b
	n++
	for n < len(p) && u.Buffered() {
		p[n] = byte(u.bus.Load32(u.reg(rxtx)))
		n++
	}
	return
}

// EnableEvents gates the given event sources onto the uart's interrupt
// line. The line itself still needs to be unmasked, see irq.Controller.
func (u *UART) EnableEvents(events uint32) {
	u.bus.Store32(u.reg(ev+drivers.EvEnable), events)
}

// Pending returns the latched event sources.
func (u *UART) Pending() uint32 {
	return u.bus.Load32(u.reg(ev + drivers.EvPending))
}

// Ack clears the given latched event sources, deasserting the interrupt
// line if none are left.
func (u *UART) Ack(events uint32) {
	u.bus.Store32(u.reg(ev+drivers.EvPending), events)
}
