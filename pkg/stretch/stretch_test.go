package stretch

import (
	"math"
	"testing"
)

// TestBoundsPercentiles verifies the linear-interpolation percentiles
// against a grid with known values
func TestBoundsPercentiles(t *testing.T) {
	// 10x10 grid holding the values 0..99
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(i)
	}

	vmin, vmax, err := Bounds(data, 1, 99)
	if err != nil {
		t.Fatalf("Bounds failed: %v", err)
	}

	if math.Abs(vmin-0.99) > 1e-9 {
		t.Errorf("Expected 1st percentile 0.99, got %v", vmin)
	}
	if math.Abs(vmax-98.01) > 1e-9 {
		t.Errorf("Expected 99th percentile 98.01, got %v", vmax)
	}
}

// TestBoundsFractionalRank verifies interpolation at a rank that falls
// between two samples, pinning the p*(n-1) rank convention
func TestBoundsFractionalRank(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	vmin, vmax, err := Bounds(data, 25, 75)
	if err != nil {
		t.Fatalf("Bounds failed: %v", err)
	}

	// rank 0.25*3 = 0.75 between 1 and 2, rank 0.75*3 = 2.25 between 3 and 4
	if math.Abs(vmin-1.75) > 1e-9 {
		t.Errorf("Expected 25th percentile 1.75, got %v", vmin)
	}
	if math.Abs(vmax-3.25) > 1e-9 {
		t.Errorf("Expected 75th percentile 3.25, got %v", vmax)
	}
}

// TestBoundsSingleValue verifies that a one-pixel grid yields that pixel
// as both bounds
func TestBoundsSingleValue(t *testing.T) {
	vmin, vmax, err := Bounds([]float64{42}, 1, 99)
	if err != nil {
		t.Fatalf("Bounds failed: %v", err)
	}
	if vmin != 42 || vmax != 42 {
		t.Errorf("Expected bounds (42, 42), got (%v, %v)", vmin, vmax)
	}
}

// TestBoundsOrdering verifies that the low bound never exceeds the high
// bound for an ordered percentile window
func TestBoundsOrdering(t *testing.T) {
	data := []float64{42.5, -3, 17, 0, 8.25, 100, -50, 3}

	vmin, vmax, err := Bounds(data, 1, 99)
	if err != nil {
		t.Fatalf("Bounds failed: %v", err)
	}

	if vmin > vmax {
		t.Errorf("Expected vmin <= vmax, got vmin=%v vmax=%v", vmin, vmax)
	}
}

// TestBoundsUnsortedInput verifies that input order does not affect the
// computed percentiles
func TestBoundsUnsortedInput(t *testing.T) {
	ordered := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	shuffled := []float64{7, 2, 9, 0, 5, 3, 8, 1, 6, 4}

	vmin1, vmax1, err := Bounds(ordered, 10, 90)
	if err != nil {
		t.Fatalf("Bounds on ordered input failed: %v", err)
	}
	vmin2, vmax2, err := Bounds(shuffled, 10, 90)
	if err != nil {
		t.Fatalf("Bounds on shuffled input failed: %v", err)
	}

	if vmin1 != vmin2 || vmax1 != vmax2 {
		t.Errorf("Expected identical bounds, got (%v, %v) and (%v, %v)",
			vmin1, vmax1, vmin2, vmax2)
	}
}

// TestBoundsEmpty verifies that an empty grid is rejected
func TestBoundsEmpty(t *testing.T) {
	if _, _, err := Bounds(nil, 1, 99); err == nil {
		t.Error("Expected error for empty input, got nil")
	}
}

// TestBoundsInvalidWindow verifies that a reversed percentile window is
// rejected
func TestBoundsInvalidWindow(t *testing.T) {
	data := []float64{1, 2, 3}

	if _, _, err := Bounds(data, 99, 1); err == nil {
		t.Error("Expected error for reversed window, got nil")
	}
	if _, _, err := Bounds(data, -1, 99); err == nil {
		t.Error("Expected error for negative percentile, got nil")
	}
	if _, _, err := Bounds(data, 1, 101); err == nil {
		t.Error("Expected error for percentile above 100, got nil")
	}
}

// TestGrayClamping verifies that values outside the display window are
// clamped to the ends of the grayscale ramp
func TestGrayClamping(t *testing.T) {
	data := []float64{-100, 0, 5, 10, 200, 5}
	img := Gray(data, 3, 2, 0, 10)

	if got := img.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("Expected value below vmin to render 0, got %d", got)
	}
	if got := img.GrayAt(1, 0).Y; got != 0 {
		t.Errorf("Expected value at vmin to render 0, got %d", got)
	}
	if got := img.GrayAt(0, 1).Y; got != 255 {
		t.Errorf("Expected value at vmax to render 255, got %d", got)
	}
	if got := img.GrayAt(1, 1).Y; got != 255 {
		t.Errorf("Expected value above vmax to render 255, got %d", got)
	}
	if got := img.GrayAt(2, 0).Y; got != 128 {
		t.Errorf("Expected midpoint value to render 128, got %d", got)
	}
}

// TestGrayShape verifies the raster dimensions match the grid shape
func TestGrayShape(t *testing.T) {
	data := make([]float64, 15)
	img := Gray(data, 5, 3, 0, 1)

	bounds := img.Bounds()
	if bounds.Dx() != 5 || bounds.Dy() != 3 {
		t.Errorf("Expected 5x3 raster, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

// TestGrayDegenerateWindow verifies that a flat grid renders mid-gray
// instead of dividing by a zero-width window
func TestGrayDegenerateWindow(t *testing.T) {
	data := []float64{7, 7, 7, 7}
	img := Gray(data, 2, 2, 7, 7)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := img.GrayAt(x, y).Y; got != 128 {
				t.Errorf("Expected mid-gray 128 at (%d,%d), got %d", x, y, got)
			}
		}
	}
}

// TestGrayInvalidValues verifies that NaN pixels render at the black end
// rather than corrupting the raster
func TestGrayInvalidValues(t *testing.T) {
	data := []float64{math.NaN(), 5, 10, 0}
	img := Gray(data, 2, 2, 0, 10)

	if got := img.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("Expected NaN pixel to render 0, got %d", got)
	}
}

// TestColorbar verifies the legend ramp runs white at the top to black
// at the bottom and is monotonic in between
func TestColorbar(t *testing.T) {
	img := Colorbar(4, 64)

	if got := img.GrayAt(0, 0).Y; got != 255 {
		t.Errorf("Expected white at the top of the colorbar, got %d", got)
	}
	if got := img.GrayAt(0, 63).Y; got != 0 {
		t.Errorf("Expected black at the bottom of the colorbar, got %d", got)
	}

	for y := 1; y < 64; y++ {
		if img.GrayAt(0, y).Y > img.GrayAt(0, y-1).Y {
			t.Fatalf("Colorbar not monotonic at row %d", y)
		}
	}
}
