package utils

import (
	"testing"
	"time"
)

func TestDeltaTimer(t *testing.T) {
	var d DeltaTimer
	if dt := d.Next(); dt != 0 {
		t.Errorf("first delta should be zero, got %s", dt)
	}

	d.Set(time.Now().Add(-50 * time.Millisecond))
	if dt := d.Next(); dt < 50*time.Millisecond {
		t.Errorf("delta should be at least 50ms, got %s", dt)
	}
}
