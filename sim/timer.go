package sim

// Timer register offsets, matching the LiteX timer core.
const (
	timerLoad        = 0x00
	timerReload      = 0x04
	timerEn          = 0x08
	timerUpdateValue = 0x0c
	timerValue       = 0x10
	timerEv          = 0x14

	timerSize = 0x20
)

// TimerEventZero fires when the counter reaches zero.
const TimerEventZero = 1 << 0

// Timer models the LiteX timer0 register block. The counter only advances
// when the simulation clock is stepped with Tick.
type Timer struct {
	ev *Event

	load    uint32
	reload  uint32
	en      bool
	counter uint32
	value   uint32 // counter as latched by update_value
}

func NewTimer(hart *Hart, line int) *Timer {
	return &Timer{ev: NewEvent(hart, line)}
}

// Tick advances the simulation clock by n cycles.
func (t *Timer) Tick(n uint32) {
	for ; t.en && n > 0; n-- {
		if t.counter == 0 {
			t.counter = t.reload
			continue
		}
		t.counter--
		if t.counter == 0 {
			t.ev.Trigger(TimerEventZero)
		}
	}
}

func (t *Timer) Load(off uint32) uint32 {
	switch off {
	case timerLoad:
		return t.load
	case timerReload:
		return t.reload
	case timerEn:
		return boolReg(t.en)
	case timerValue:
		return t.value
	}
	if off >= timerEv && off < timerEv+EventSize {
		return t.ev.Load(off - timerEv)
	}
	return 0
}

func (t *Timer) Store(off uint32, v uint32) {
	switch {
	case off == timerLoad:
		t.load = v
	case off == timerReload:
		t.reload = v
	case off == timerEn:
		en := v&1 != 0
		if en && !t.en {
			t.counter = t.load
		}
		t.en = en
	case off == timerUpdateValue:
		t.value = t.counter
	case off >= timerEv && off < timerEv+EventSize:
		t.ev.Store(off-timerEv, v)
	}
}

func (t *Timer) Size() uint32 { return timerSize }
