package uart_test

import (
	"bytes"
	"testing"

	"github.com/mgrbr/vexsoc/drivers/uart"
	"github.com/mgrbr/vexsoc/irq"
	"github.com/mgrbr/vexsoc/sim"
	"github.com/mgrbr/vexsoc/soc"
)

func testUART(tx *bytes.Buffer) (*uart.UART, *sim.UART, *irq.Controller, *sim.Hart) {
	hart := sim.NewHart(0)
	bus := new(sim.Bus)
	model := sim.NewUART(hart, soc.UartInterrupt, tx)
	bus.Map(soc.UartBase, model)
	return uart.New(bus), model, irq.NewController(hart), hart
}

func TestWrite(t *testing.T) {
	var tx bytes.Buffer
	u, _, _, _ := testUART(&tx)

	n, err := u.WriteString("hello vexsoc\n")
	if err != nil || n != 13 {
		t.Fatalf("WriteString = %d, %v", n, err)
	}
	if got := tx.String(); got != "hello vexsoc\n" {
		t.Errorf("tx = %q", got)
	}
}

func TestRead(t *testing.T) {
	u, model, _, _ := testUART(nil)

	model.Recv([]byte("abc"))
	if !u.Buffered() {
		t.Fatal("Buffered() = false with bytes queued")
	}

	buf := make([]byte, 8)
	n, err := u.Read(buf)
	if err != nil || n != 3 {
		t.Fatalf("Read = %d, %v", n, err)
	}
	if got := string(buf[:n]); got != "abc" {
		t.Errorf("Read = %q, want %q", got, "abc")
	}
	if u.Buffered() {
		t.Error("Buffered() = true after drain")
	}
}

func TestRxInterrupt(t *testing.T) {
	u, model, ctrl, hart := testUART(nil)

	u.EnableEvents(uart.EventRx)
	ctrl.Enable(u.Line())
	ctrl.SetEnabled(true)

	if hart.PendingTrap() {
		t.Fatal("trap pending before any event")
	}

	model.Recv([]byte{'x'})
	if got := ctrl.Pending(); got&u.Line().Mask() == 0 {
		t.Fatalf("uart line not pending, Pending() = %#b", got)
	}
	if !hart.PendingTrap() {
		t.Fatal("no trap with rx event enabled and unmasked")
	}
	if got := u.Pending(); got != uart.EventRx {
		t.Errorf("event pending = %#b, want rx", got)
	}

	// Handler: drain the fifo, then acknowledge.
	if b, _ := u.ReadByte(); b != 'x' {
		t.Errorf("ReadByte = %q", b)
	}
	u.Ack(uart.EventRx)
	if got := ctrl.Pending(); got&u.Line().Mask() != 0 {
		t.Errorf("uart line still pending after ack, Pending() = %#b", got)
	}
}

func TestMaskGatesLine(t *testing.T) {
	u, model, ctrl, hart := testUART(nil)

	u.EnableEvents(uart.EventRx)
	ctrl.SetEnabled(true)
	model.Recv([]byte{'x'})

	// Pending is visible, but a masked line must not trap.
	if got := ctrl.Pending(); got&u.Line().Mask() == 0 {
		t.Fatal("uart line not pending")
	}
	if hart.PendingTrap() {
		t.Error("trap pending with line masked")
	}
	ctrl.Enable(u.Line())
	if !hart.PendingTrap() {
		t.Error("no trap after unmasking")
	}
}
