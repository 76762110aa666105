package timer_test

import (
	"testing"

	"github.com/mgrbr/vexsoc/drivers/timer"
	"github.com/mgrbr/vexsoc/irq"
	"github.com/mgrbr/vexsoc/sim"
	"github.com/mgrbr/vexsoc/soc"
)

func testTimer() (*timer.Timer, *sim.Timer, *irq.Controller, *sim.Hart) {
	hart := sim.NewHart(0)
	bus := new(sim.Bus)
	model := sim.NewTimer(hart, soc.Timer0Interrupt)
	bus.Map(soc.Timer0Base, model)
	return timer.New(bus), model, irq.NewController(hart), hart
}

func TestOneShot(t *testing.T) {
	tm, model, ctrl, _ := testTimer()

	tm.EnableEvents(timer.EventZero)
	tm.StartOneShot(10)

	model.Tick(9)
	if got := ctrl.Pending(); got&tm.Line().Mask() != 0 {
		t.Fatal("timer fired early")
	}
	if got := tm.Value(); got != 1 {
		t.Errorf("Value() = %d, want 1", got)
	}

	model.Tick(1)
	if got := ctrl.Pending(); got&tm.Line().Mask() == 0 {
		t.Fatal("timer did not fire")
	}

	tm.Ack(timer.EventZero)
	model.Tick(100)
	if got := tm.Pending(); got != 0 {
		t.Errorf("one shot refired, pending = %#b", got)
	}
}

func TestPeriodic(t *testing.T) {
	tm, model, ctrl, hart := testTimer()

	tm.EnableEvents(timer.EventZero)
	ctrl.Enable(tm.Line())
	ctrl.SetEnabled(true)
	tm.StartPeriodic(4)

	fired := 0
	for cycle := 0; cycle < 12; cycle++ {
		model.Tick(1)
		if hart.PendingTrap() {
			fired++
			tm.Ack(timer.EventZero)
		}
	}
	if fired != 2 {
		t.Errorf("fired %d times in 12 cycles with period 4, want 2", fired)
	}

	tm.Stop()
	model.Tick(100)
	if tm.Pending() != 0 {
		t.Error("stopped timer fired")
	}
}
