package stencil

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(10, 5)
	if pm.Width() != 10 || pm.Height() != 5 {
		t.Errorf("dimensions = %dx%d, want 10x5", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 10*5*4 {
		t.Errorf("data length = %d, want %d", len(pm.Data()), 10*5*4)
	}
}

func TestFromData(t *testing.T) {
	data := make([]uint8, 4*3*4)
	pm, err := FromData(4, 3, data)
	if err != nil {
		t.Fatalf("FromData() = %v, want nil", err)
	}

	// No copy: writes through the pixmap land in the caller's buffer.
	pm.SetPixel(0, 0, color.NRGBA{R: 7, A: 255})
	if data[0] != 7 || data[3] != 255 {
		t.Errorf("caller buffer = (%d, ..., %d), want (7, ..., 255)", data[0], data[3])
	}
}

func TestFromData_Validation(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		data    []uint8
		wantErr error
	}{
		{"nil data", 4, 4, nil, ErrEmptyBuffer},
		{"zero width", 0, 4, make([]uint8, 16), ErrInvalidDimensions},
		{"negative height", 4, -2, make([]uint8, 16), ErrInvalidDimensions},
		{"length mismatch", 2, 2, make([]uint8, 15), ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromData(tt.width, tt.height, tt.data); !errors.Is(err, tt.wantErr) {
				t.Errorf("FromData(%d, %d, [%d]uint8) error = %v, want %v",
					tt.width, tt.height, len(tt.data), err, tt.wantErr)
			}
		})
	}
}

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	want := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	pm.SetPixel(5, 5, want)

	if got := pm.GetPixel(5, 5); got != want {
		t.Errorf("GetPixel(5, 5) = %v, want %v", got, want)
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(color.NRGBA{R: 9, G: 9, B: 9, A: 9})

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, color.NRGBA{R: 255, A: 255})
		if got := pm.GetPixel(c.x, c.y); got != (color.NRGBA{}) {
			t.Errorf("GetPixel(%d, %d) = %v, want zero color", c.x, c.y, got)
		}
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

func TestPixmap_Clone(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 1, color.NRGBA{R: 50, A: 255})

	cl := pm.Clone()
	cl.SetPixel(1, 1, color.NRGBA{R: 200, A: 255})

	if got := pm.GetPixel(1, 1).R; got != 50 {
		t.Errorf("clone write leaked into original: R = %d, want 50", got)
	}
}

func TestFromImage_NRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	src.SetNRGBA(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	pm := FromImage(src)
	if got := pm.GetPixel(0, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("GetPixel(0, 0) = %v, want (10, 20, 30, 40)", got)
	}
	if got := pm.GetPixel(2, 1); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("GetPixel(2, 1) = %v, want (200, 100, 50, 255)", got)
	}
}

func TestFromImage_GenericPath(t *testing.T) {
	// A Gray image takes the At() fallback.
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(1, 0, color.Gray{Y: 77})

	pm := FromImage(src)
	want := color.NRGBA{R: 77, G: 77, B: 77, A: 255}
	if got := pm.GetPixel(1, 0); got != want {
		t.Errorf("GetPixel(1, 0) = %v, want %v", got, want)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	// Source bounds need not start at the origin.
	src := image.NewNRGBA(image.Rect(5, 7, 8, 9))
	src.SetNRGBA(5, 7, color.NRGBA{R: 123, A: 255})

	pm := FromImage(src)
	if pm.Width() != 3 || pm.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(0, 0).R; got != 123 {
		t.Errorf("GetPixel(0, 0).R = %d, want 123", got)
	}
}

func TestPixmap_ImageInterface(t *testing.T) {
	pm := NewPixmap(6, 4)
	pm.SetPixel(2, 3, color.NRGBA{R: 11, G: 22, B: 33, A: 255})

	if got, want := pm.Bounds(), image.Rect(0, 0, 6, 4); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if pm.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBAModel")
	}

	r, g, b, a := pm.At(2, 3).RGBA()
	wr, wg, wb, wa := color.NRGBA{R: 11, G: 22, B: 33, A: 255}.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("At(2, 3).RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
			r, g, b, a, wr, wg, wb, wa)
	}
}

func TestPixmap_ToImageRoundTrip(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.SetPixel(3, 2, color.NRGBA{R: 40, G: 80, B: 120, A: 200})

	back := FromImage(pm.ToImage())
	d1, d2 := pm.Data(), back.Data()
	for i := range d1 {
		if d1[i] != d2[i] {
			t.Fatalf("round trip differs at index %d: got %d, want %d", i, d2[i], d1[i])
		}
	}
}
