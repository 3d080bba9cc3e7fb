// Package stretch computes percentile display bounds for a pixel grid
// and rasterizes the grid to a contrast-stretched grayscale image.
package stretch

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// ErrEmpty indicates that display bounds were requested for a grid
// without any pixel values.
var ErrEmpty = errors.New("stretch: no pixel values")

// Bounds returns the lo-th and hi-th percentile of data, with lo and hi
// given in percent (e.g. 1 and 99). The p-th percentile interpolates
// linearly between the sorted samples at fractional rank p*(n-1), so
// for the values 0..99 the 1st percentile is 0.99 and the 99th is
// 98.01. Invalid values present in the grid take part as-is.
func Bounds(data []float64, lo, hi float64) (vmin, vmax float64, err error) {
	if len(data) == 0 {
		return 0, 0, ErrEmpty
	}
	if lo < 0 || hi > 100 || lo > hi {
		return 0, 0, fmt.Errorf("stretch: invalid percentile window [%g, %g]", lo, hi)
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0], sorted[0], nil
	}

	// Interpolating the sorted samples at their integer ranks turns the
	// fractional-rank lookup into a piecewise-linear prediction.
	ranks := make([]float64, len(sorted))
	for i := range ranks {
		ranks[i] = float64(i)
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(ranks, sorted); err != nil {
		return 0, 0, fmt.Errorf("stretch: %w", err)
	}

	top := float64(len(sorted) - 1)
	vmin = pl.Predict(lo / 100 * top)
	vmax = pl.Predict(hi / 100 * top)
	return vmin, vmax, nil
}

// Gray rasterizes a row-major float64 grid of the given shape into an
// 8-bit grayscale image. Values at or below vmin map to black, values
// at or above vmax to white, and values between to the linear ramp.
// A degenerate window (vmax == vmin) renders mid-gray.
func Gray(data []float64, width, height int, vmin, vmax float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))

	if vmax <= vmin {
		for i := range img.Pix {
			img.Pix[i] = 128
		}
		return img
	}

	scale := 255 / (vmax - vmin)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := data[y*width+x]
			var g uint8
			switch {
			case math.IsNaN(v) || v <= vmin:
				g = 0
			case v >= vmax:
				g = 255
			default:
				g = uint8(math.Round(scale * (v - vmin)))
			}
			img.SetGray(x, y, color.Gray{Y: g})
		}
	}
	return img
}

// Colorbar renders the grayscale ramp used by Gray as a vertical strip,
// white (the vmax end) at the top and black at the bottom.
func Colorbar(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	if height < 2 {
		for i := range img.Pix {
			img.Pix[i] = 255
		}
		return img
	}
	for y := 0; y < height; y++ {
		g := uint8(math.Round(255 * float64(height-1-y) / float64(height-1)))
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: g})
		}
	}
	return img
}
