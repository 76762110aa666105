package sim_test

import (
	"bytes"
	"testing"

	"github.com/mgrbr/vexsoc/csr"
	"github.com/mgrbr/vexsoc/sim"
	"github.com/mgrbr/vexsoc/soc"
)

func TestHartSetClear(t *testing.T) {
	hart := sim.NewHart(0)

	hart.Write(csr.Mscratch, 0xf0f0)
	hart.Set(csr.Mscratch, 0x0f00)
	if got := hart.Read(csr.Mscratch); got != 0xfff0 {
		t.Errorf("Set: mscratch = %#x, want 0xfff0", got)
	}
	hart.Clear(csr.Mscratch, 0x00f0)
	if got := hart.Read(csr.Mscratch); got != 0xff00 {
		t.Errorf("Clear: mscratch = %#x, want 0xff00", got)
	}
}

func TestHartFirq(t *testing.T) {
	hart := sim.NewHart(0)

	hart.RaiseFirq(2)
	if got := hart.Read(csr.Mip); got != 1<<(soc.FirqOffset+2) {
		t.Errorf("mip = %#08x", got)
	}
	if hart.PendingTrap() {
		t.Error("trap pending while masked")
	}
	hart.Set(csr.Mie, 1<<(soc.FirqOffset+2))
	hart.Set(csr.Mstatus, csr.StatusMIE)
	if !hart.PendingTrap() {
		t.Error("no trap pending while enabled and unmasked")
	}
	hart.ClearFirq(2)
	if hart.PendingTrap() {
		t.Error("trap pending after line deasserted")
	}
}

func TestBusDispatch(t *testing.T) {
	hart := sim.NewHart(0)
	bus := new(sim.Bus)
	bus.Map(soc.UartBase, sim.NewUART(hart, soc.UartInterrupt, nil))
	bus.Map(soc.Timer0Base, sim.NewTimer(hart, soc.Timer0Interrupt))

	bus.Store32(soc.Timer0Base+0x00, 42) // load
	if got := bus.Load32(soc.Timer0Base + 0x00); got != 42 {
		t.Errorf("timer load = %d, want 42", got)
	}
	if got := bus.Load32(soc.UartBase + 0x08); got != 1 { // rxempty
		t.Errorf("uart rxempty = %d, want 1", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("unmapped access did not panic")
		}
	}()
	bus.Load32(0xdead_0000)
}

func TestEventLatching(t *testing.T) {
	hart := sim.NewHart(0)
	ev := sim.NewEvent(hart, 0)

	ev.Trigger(0b10)
	if got := ev.Load(0x4); got != 0b10 {
		t.Fatalf("pending = %#b, want 0b10", got)
	}
	// Disabled events never assert the line.
	if got := hart.Read(csr.Mip); got != 0 {
		t.Errorf("mip = %#08x with event disabled", got)
	}

	ev.Store(0x8, 0b10) // enable
	if got := hart.Read(csr.Mip); got != 1<<soc.FirqOffset {
		t.Errorf("mip = %#08x, want line 0 raised", got)
	}

	// Pending latches beyond the raw level.
	ev.Release(0b10)
	if got := ev.Load(0x4); got != 0b10 {
		t.Errorf("pending = %#b after release, want 0b10", got)
	}

	// Write 1 to clear acknowledges and deasserts.
	ev.Store(0x4, 0b10)
	if got := ev.Load(0x4); got != 0 {
		t.Errorf("pending = %#b after ack, want 0", got)
	}
	if got := hart.Read(csr.Mip); got != 0 {
		t.Errorf("mip = %#08x after ack, want 0", got)
	}
}

func TestUARTModel(t *testing.T) {
	hart := sim.NewHart(0)
	var tx bytes.Buffer
	uart := sim.NewUART(hart, soc.UartInterrupt, &tx)

	for _, b := range []byte("ok") {
		uart.Store(0x00, uint32(b))
	}
	if tx.String() != "ok" {
		t.Errorf("tx = %q, want %q", tx.String(), "ok")
	}

	uart.Recv([]byte{0x55})
	if got := uart.Load(0x08); got != 0 { // rxempty
		t.Fatal("rxempty set with a byte queued")
	}
	if got := uart.Load(0x00); got != 0x55 {
		t.Errorf("rxtx = %#x, want 0x55", got)
	}
	if got := uart.Load(0x08); got != 1 {
		t.Error("rxempty clear after fifo drained")
	}
}

func TestTimerModel(t *testing.T) {
	hart := sim.NewHart(0)
	timer := sim.NewTimer(hart, soc.Timer0Interrupt)
	timer.Store(0x1c, sim.TimerEventZero) // ev_enable

	timer.Store(0x00, 3) // load
	timer.Store(0x08, 1) // en
	timer.Tick(2)
	if got := hart.Read(csr.Mip); got != 0 {
		t.Errorf("timer fired early, mip = %#08x", got)
	}
	timer.Tick(1)
	if got := hart.Read(csr.Mip); got != 1<<(soc.FirqOffset+soc.Timer0Interrupt) {
		t.Errorf("timer did not fire, mip = %#08x", got)
	}

	// One shot: no refire after acknowledge.
	timer.Store(0x18, sim.TimerEventZero) // ev_pending ack
	timer.Tick(16)
	if got := hart.Read(csr.Mip); got != 0 {
		t.Errorf("one shot refired, mip = %#08x", got)
	}
}
