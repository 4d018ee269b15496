package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatal(err)
	}

	if d != 1 {
		t.Fatalf("MaxAbsDiff = %v, want 1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireSliceRelEqualLargeValues(t *testing.T) {
	// 1e12 vs 1e12*(1+1e-13) is within 1e-12 relative tolerance.
	RequireSliceRelEqual(t, []float64{1e12 * (1 + 1e-13)}, []float64{1e12}, 1e-12)
}
