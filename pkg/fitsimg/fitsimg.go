// Package fitsimg loads a single image from a FITS file for display.
// It selects the active header-data unit, exposes the unit's header
// cards in their stored order, and converts the pixel payload to a
// flat float64 grid with BZERO/BSCALE applied.
package fitsimg

import (
	"errors"
	"fmt"
	"os"

	"github.com/astrogo/fitsio"
)

// MarkerKey is the header key written into the primary unit by camera
// software that stores the real image in the first extension unit.
// When present, the viewer reads unit 1 instead of unit 0.
const MarkerKey = "COMPRESSED_IMAGE"

// ErrNoData indicates that the selected unit carries no 2-D image payload.
var ErrNoData = errors.New("fitsimg: unit has no image data")

// Entry is one header card of the active unit. Value keeps the card's
// dynamic scalar type (string, int, float64 or bool) as parsed from the
// file.
type Entry struct {
	// Key is the card keyword, e.g. "EXPTIME"
	Key string

	// Value is the card value with its original scalar type
	Value any
}

// Unit is the active data unit of an opened FITS file: its header
// entries in stored order and its pixel grid as float64 values in
// row-major order (Data[y*Width+x]).
type Unit struct {
	// Entries holds every header card of the unit, in file order
	Entries []Entry

	// Data is the pixel grid, widened to float64 with BZERO/BSCALE applied
	Data []float64

	// Width is the number of columns (NAXIS1)
	Width int

	// Height is the number of rows (NAXIS2)
	Height int
}

// Load opens the FITS file at path and returns its active data unit.
//
// The active unit is chosen by a fixed two-branch rule: if the first
// unit's header contains MarkerKey the active unit is the second unit,
// otherwise it is the first. No other unit is ever inspected.
func Load(path string) (*Unit, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer r.Close()

	f, err := fitsio.Open(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	if len(f.HDUs()) == 0 {
		return nil, fmt.Errorf("reading %s: file has no data units", path)
	}

	idx := activeIndex(f.HDU(0).Header())
	if idx >= len(f.HDUs()) {
		return nil, fmt.Errorf("reading %s: %s set in primary header but file has no extension unit", path, MarkerKey)
	}

	hdu := f.HDU(idx)
	img, ok := hdu.(fitsio.Image)
	if !ok {
		return nil, fmt.Errorf("unit %d of %s: %w", idx, path, ErrNoData)
	}

	unit, err := readUnit(img)
	if err != nil {
		return nil, fmt.Errorf("unit %d of %s: %w", idx, path, err)
	}
	return unit, nil
}

// activeIndex applies the two-branch selection rule to the header of
// the first unit.
func activeIndex(primary *fitsio.Header) int {
	if primary.Get(MarkerKey) != nil {
		return 1
	}
	return 0
}

// readUnit extracts the header entries and pixel grid of one image unit.
func readUnit(img fitsio.Image) (*Unit, error) {
	hdr := img.Header()

	axes := hdr.Axes()
	if len(axes) != 2 {
		return nil, fmt.Errorf("expected a 2-D image, got %d axes: %w", len(axes), ErrNoData)
	}
	width, height := axes[0], axes[1]
	if width <= 0 || height <= 0 {
		return nil, ErrNoData
	}

	data, err := readPixels(img, hdr, width*height)
	if err != nil {
		return nil, err
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("pixel count %d does not match %dx%d grid", len(data), width, height)
	}

	return &Unit{
		Entries: entries(hdr),
		Data:    data,
		Width:   width,
		Height:  height,
	}, nil
}

// entries collects every header card in its stored order.
func entries(hdr *fitsio.Header) []Entry {
	keys := hdr.Keys()
	out := make([]Entry, 0, len(keys))
	for _, key := range keys {
		card := hdr.Get(key)
		if card == nil {
			continue
		}
		out = append(out, Entry{Key: key, Value: card.Value})
	}
	return out
}

// readPixels reads the raw payload with the slice type matching BITPIX
// and widens it to float64, applying the linear scaling
// physical = BZERO + BSCALE*stored from the header. The destination
// slice must be allocated up front: Read sets the length of the
// caller's slice and cannot grow a nil one.
func readPixels(img fitsio.Image, hdr *fitsio.Header, n int) ([]float64, error) {
	bzero := headerFloat(hdr, "BZERO", 0)
	bscale := headerFloat(hdr, "BSCALE", 1)
	if bscale == 0 {
		bscale = 1
	}

	switch bitpix := hdr.Bitpix(); bitpix {
	case 8:
		raw := make([]int8, n)
		if err := img.Read(&raw); err != nil {
			return nil, err
		}
		return widen(raw, bzero, bscale), nil
	case 16:
		raw := make([]int16, n)
		if err := img.Read(&raw); err != nil {
			return nil, err
		}
		return widen(raw, bzero, bscale), nil
	case 32:
		raw := make([]int32, n)
		if err := img.Read(&raw); err != nil {
			return nil, err
		}
		return widen(raw, bzero, bscale), nil
	case 64:
		raw := make([]int64, n)
		if err := img.Read(&raw); err != nil {
			return nil, err
		}
		return widen(raw, bzero, bscale), nil
	case -32:
		raw := make([]float32, n)
		if err := img.Read(&raw); err != nil {
			return nil, err
		}
		return widen(raw, bzero, bscale), nil
	case -64:
		raw := make([]float64, n)
		if err := img.Read(&raw); err != nil {
			return nil, err
		}
		return widen(raw, bzero, bscale), nil
	default:
		return nil, fmt.Errorf("unsupported BITPIX %d", bitpix)
	}
}

// widen converts a typed pixel slice to float64 with linear scaling.
func widen[T int8 | int16 | int32 | int64 | float32 | float64](raw []T, bzero, bscale float64) []float64 {
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = bzero + bscale*float64(v)
	}
	return out
}

// headerFloat reads a numeric card value, tolerating the integer and
// floating representations FITS writers use interchangeably.
func headerFloat(hdr *fitsio.Header, key string, def float64) float64 {
	card := hdr.Get(key)
	if card == nil {
		return def
	}
	switch v := card.Value.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		return def
	}
}
