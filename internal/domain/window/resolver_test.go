package window

import "testing"

func TestFixedStart(t *testing.T) {
	w := FixedStart{}.Resolve(120, 30)
	if w.Start != 0 || w.Duration != 30 {
		t.Fatalf("unexpected window: %+v", w)
	}
}

func TestFixedStart_ClampsToSource(t *testing.T) {
	w := FixedStart{}.Resolve(18, 30)
	if w.Duration != 18 {
		t.Fatalf("window must not outrun the source, got %+v", w)
	}
}

func TestFixedStart_Deterministic(t *testing.T) {
	a := FixedStart{}.Resolve(42, 20)
	b := FixedStart{}.Resolve(42, 20)
	if a != b {
		t.Fatalf("resolver must be deterministic: %+v vs %+v", a, b)
	}
}
