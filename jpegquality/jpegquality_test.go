package jpegquality

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func encodeJPEG(t *testing.T, width, height, quality int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, color.RGBA{uint8(x * 255 / width), uint8(y * 255 / height), 120, 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		t.Fatalf("failed to encode JPEG: %v", err)
	}
	return buf.Bytes()
}

func TestQuality(t *testing.T) {
	for _, q := range []int{30, 50, 60, 75, 85, 90, 95, 100} {
		t.Run(fmt.Sprintf("q%d", q), func(t *testing.T) {
			qr, err := NewWithBytes(encodeJPEG(t, 64, 48, q))
			if err != nil {
				t.Fatalf("NewWithBytes() error = %v", err)
			}
			if got := qr.Quality(); got != q {
				t.Errorf("Quality() = %d, want %d", got, q)
			}
		})
	}
}

func TestQuality_PictureSizes(t *testing.T) {
	for _, size := range []image.Point{{1, 1}, {17, 3}, {300, 200}} {
		qr, err := NewWithBytes(encodeJPEG(t, size.X, size.Y, 80))
		if err != nil {
			t.Fatalf("%v: NewWithBytes() error = %v", size, err)
		}
		if got := qr.Quality(); got != 80 {
			t.Errorf("%v: Quality() = %d, want 80", size, got)
		}
	}
}

func TestNew_RewindsReader(t *testing.T) {
	reader := bytes.NewReader(encodeJPEG(t, 16, 16, 70))

	first, err := New(reader)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	second, err := New(reader)
	if err != nil {
		t.Fatalf("second New() error = %v", err)
	}
	if first.Quality() != second.Quality() {
		t.Errorf("Quality() differs between reads: %d and %d", first.Quality(), second.Quality())
	}
}

func TestNew_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"text", []byte("not a jpeg image"), ErrInvalidJPEG},
		{"empty", nil, ErrInvalidJPEG},
		{"truncated marker", []byte{0xff, 0xd8, 0xff}, ErrInvalidJPEG},
		{"no tables", []byte{0xff, 0xd8, 0xff, 0xd9}, ErrInvalidJPEG},
		{"short segment", []byte{0xff, 0xd8, 0xff, 0xdb, 0x00, 0x01}, ErrShortSegment},
		{"short table data", []byte{0xff, 0xd8, 0xff, 0xdb, 0x00, 0x43, 0x00, 0x01}, ErrShortDQT},
		{"partial table", append([]byte{0xff, 0xd8, 0xff, 0xdb, 0x00, 0x0a, 0x00}, make([]byte, 7)...), ErrWrongTable},
		{"empty table", []byte{0xff, 0xd8, 0xff, 0xdb, 0x00, 0x02}, ErrShortDQT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithBytes(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewWithBytes() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReadMarker(t *testing.T) {
	jr := &jpegReader{rs: bytes.NewReader([]byte{0xff, 0xd8, 0xff, 0xff, 0xe0, 0x12, 0xff, 0x00, 0xff, 0xdb})}
	for _, want := range []uint16{markerSOI, 0xffe0, markerDQT, 0} {
		if got := jr.readMarker(); got != want {
			t.Errorf("readMarker() = %#x, want %#x", got, want)
		}
	}
}
