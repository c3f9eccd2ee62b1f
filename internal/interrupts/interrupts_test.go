package interrupts

import "testing"

func TestRequestClear(t *testing.T) {
	s := NewService()
	s.Request(TimerFlag)
	if s.Flag&(1<<TimerFlag) == 0 {
		t.Fatal("expected Timer flag bit to be set after Request")
	}
	s.Clear(TimerFlag)
	if s.Flag&(1<<TimerFlag) != 0 {
		t.Fatal("expected Timer flag bit to be clear after Clear")
	}
}

func TestHighestPriority(t *testing.T) {
	s := NewService()
	s.Enable = 0x1F
	s.Request(JoypadFlag)
	s.Request(VBlankFlag)
	s.Request(TimerFlag)

	flag, vector, ok := s.Highest()
	if !ok {
		t.Fatal("expected a pending interrupt")
	}
	if flag != VBlankFlag || vector != VBlankVector {
		t.Fatalf("Highest() = (%d, %#x), want V-blank (%d, %#x)", flag, vector, VBlankFlag, VBlankVector)
	}
}

func TestHighest_RespectsEnableMask(t *testing.T) {
	s := NewService()
	s.Enable = 1 << TimerFlag // only Timer enabled
	s.Request(VBlankFlag)
	s.Request(TimerFlag)

	flag, _, ok := s.Highest()
	if !ok || flag != TimerFlag {
		t.Fatalf("Highest() = (%d, ok=%v), want Timer even though V-blank is higher priority but disabled", flag, ok)
	}
}

func TestPending(t *testing.T) {
	s := NewService()
	if s.Pending() {
		t.Fatal("expected no pending interrupts on a fresh Service")
	}
	s.Enable = 1 << SerialFlag
	s.Request(SerialFlag)
	if !s.Pending() {
		t.Fatal("expected Pending() to be true once an enabled interrupt is requested")
	}
}
