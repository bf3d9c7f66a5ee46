package images

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"

	"rtdoc/jpegquality"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img
}

func encodeWith(t *testing.T, img image.Image, f imaging.Format) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, f); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestInspect(t *testing.T) {
	img := testImage(7, 5)
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"png", encodeWith(t, img, imaging.PNG), FormatPNG},
		{"jpeg", encodeWith(t, img, imaging.JPEG), FormatJPEG},
		{"gif", encodeWith(t, img, imaging.GIF), FormatGIF},
		{"bmp", encodeWith(t, img, imaging.BMP), FormatBMP},
		{"svg", testSVG, FormatSVG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Inspect(tt.data)
			if err != nil {
				t.Fatalf("Inspect() error = %v", err)
			}
			if info.Format != tt.want {
				t.Errorf("Format = %s, want %s", info.Format, tt.want)
			}
			if tt.want != FormatSVG && (info.Width != 7 || info.Height != 5) {
				t.Errorf("size = %dx%d, want 7x5", info.Width, info.Height)
			}
		})
	}
}

func TestInspectRejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("definitely not a picture")} {
		if _, err := Inspect(data); !errors.Is(err, ErrUnsupported) {
			t.Errorf("Inspect(%q) error = %v, want ErrUnsupported", data, err)
		}
	}
}

func TestNormalizePassesPNGThrough(t *testing.T) {
	data := encodeWith(t, testImage(4, 4), imaging.PNG)
	pic, err := Normalize(data, Options{})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if pic.Converted || !bytes.Equal(pic.Data, data) {
		t.Error("png must not be converted")
	}
}

func TestNormalizeConvertsBMP(t *testing.T) {
	data := encodeWith(t, testImage(30, 20), imaging.BMP)

	pic, err := Normalize(data, Options{MaxSize: 15})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if pic.Format != FormatPNG || !pic.Converted {
		t.Fatalf("Normalize() = %s converted=%v", pic.Format, pic.Converted)
	}
	img, err := png.Decode(bytes.NewReader(pic.Data))
	if err != nil {
		t.Fatalf("result is not png: %v", err)
	}
	if img.Bounds().Dx() != 15 || img.Bounds().Dy() != 10 {
		t.Errorf("size = %v, want 15x10", img.Bounds())
	}

	jpg, err := Normalize(data, Options{PreferJPEG: true, JPEGQuality: 80})
	if err != nil {
		t.Fatalf("Normalize(jpeg) error = %v", err)
	}
	if jpg.Format != FormatJPEG || !bytes.Equal(jpg.Data[2:4], []byte{0xFF, 0xE0}) {
		t.Errorf("expected jpeg with JFIF header, got %s", jpg.Format)
	}
}

func TestNormalizeOptimizesJPEG(t *testing.T) {
	img := testImage(32, 32)
	tests := []struct {
		name   string
		stored int
		opts   Options
		want   int
	}{
		{"above requested", 95, Options{Optimize: true, JPEGQuality: 60}, 60},
		{"below requested", 50, Options{Optimize: true, JPEGQuality: 80}, 50},
		{"optimization off", 95, Options{JPEGQuality: 60}, 95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(tt.stored)); err != nil {
				t.Fatal(err)
			}
			pic, err := Normalize(buf.Bytes(), tt.opts)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			jr, err := jpegquality.NewWithBytes(pic.Data)
			if err != nil {
				t.Fatalf("unable to detect quality: %v", err)
			}
			if got := jr.Quality(); got != tt.want {
				t.Errorf("quality = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizeRasterizesSVG(t *testing.T) {
	pic, err := Normalize(testSVG, Options{})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if pic.Format != FormatPNG || pic.Width != 100 || pic.Height != 50 {
		t.Errorf("Normalize() = %+v", pic.Info)
	}
}
