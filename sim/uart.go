package sim

import "io"

// UART register offsets, matching the LiteX uart core.
const (
	uartRxtx    = 0x00
	uartTxfull  = 0x04
	uartRxempty = 0x08
	uartEv      = 0x0c
	uartTxempty = 0x18
	uartRxfull  = 0x1c

	uartSize = 0x20
)

// UART event sources.
const (
	UartEventTx = 1 << 0
	UartEventRx = 1 << 1
)

const uartFifoDepth = 16

// UART models the LiteX uart register block. Transmitted bytes go to w,
// received bytes are fed in with Recv.
type UART struct {
	ev *Event
	w  io.Writer
	rx []byte
}

func NewUART(hart *Hart, line int, w io.Writer) *UART {
	if w == nil {
		w = io.Discard
	}
	return &UART{ev: NewEvent(hart, line), w: w}
}

// Recv queues p on the receive fifo and latches the rx event. Bytes beyond
// the fifo depth are dropped, like on the hardware fifo.
func (u *UART) Recv(p []byte) {
	free := uartFifoDepth - len(u.rx)
	if len(p) > free {
		p = p[:free]
	}
	u.rx = append(u.rx, p...)
	if len(p) > 0 {
		u.ev.Trigger(UartEventRx)
	}
}

func (u *UART) Load(off uint32) uint32 {
	switch off {
	case uartRxtx:
		if len(u.rx) == 0 {
			return 0
		}
		b := u.rx[0]
		u.rx = u.rx[1:]
		if len(u.rx) == 0 {
			u.ev.Release(UartEventRx)
		}
		return uint32(b)
	case uartTxfull:
		return 0 // transmit completes instantly
	case uartRxempty:
		return boolReg(len(u.rx) == 0)
	case uartTxempty:
		return 1
	case uartRxfull:
		return boolReg(len(u.rx) >= uartFifoDepth)
	}
	if off >= uartEv && off < uartEv+EventSize {
		return u.ev.Load(off - uartEv)
	}
	return 0
}

func (u *UART) Store(off uint32, v uint32) {
	switch {
	case off == uartRxtx:
		u.w.Write([]byte{byte(v)})
		u.ev.Trigger(UartEventTx)
	case off >= uartEv && off < uartEv+EventSize:
		u.ev.Store(off-uartEv, v)
	}
}

func (u *UART) Size() uint32 { return uartSize }

func boolReg(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
