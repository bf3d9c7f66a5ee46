package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"rtdoc/jpegquality"
)

// Format is detected picture format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWEBP Format = "webp"
	FormatSVG  Format = "svg"
)

// Native reports formats which can be embedded without conversion.
func (f Format) Native() bool {
	return f == FormatPNG || f == FormatJPEG
}

// Ext returns file extension used for packaged media.
func (f Format) Ext() string {
	return string(f)
}

// MIME returns content type of the format.
func (f Format) MIME() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/" + string(f)
}

var ErrUnsupported = errors.New("unsupported picture format")

// Info describes picture data.
type Info struct {
	Format Format
	Width  int // pixels
	Height int // pixels
}

// Inspect detects picture format and pixel size without full decoding.
func Inspect(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, fmt.Errorf("empty picture data: %w", ErrUnsupported)
	}
	if isSVG(data) {
		w, h, err := SVGSize(data)
		if err != nil {
			return Info{}, fmt.Errorf("unable to read svg: %w", err)
		}
		return Info{Format: FormatSVG, Width: w, Height: h}, nil
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return Info{}, ErrUnsupported
	}
	var f Format
	switch kind.Extension {
	case "png":
		f = FormatPNG
	case "jpg":
		f = FormatJPEG
	case "gif":
		f = FormatGIF
	case "bmp":
		f = FormatBMP
	case "tif":
		f = FormatTIFF
	case "webp":
		f = FormatWEBP
	default:
		return Info{}, fmt.Errorf("%s: %w", kind.MIME.Value, ErrUnsupported)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("unable to decode %s picture: %w", f, err)
	}
	return Info{Format: f, Width: cfg.Width, Height: cfg.Height}, nil
}

func isSVG(data []byte) bool {
	head := data[:min(len(data), 1024)]
	return bytes.Contains(head, []byte("<svg"))
}

// Options control picture normalization.
type Options struct {
	// MaxSize limits larger pixel dimension of converted pictures, 0 means
	// no limit.
	MaxSize int
	// PreferJPEG encodes converted opaque pictures as JPEG instead of PNG.
	PreferJPEG  bool
	JPEGQuality int
	// Optimize re-encodes JPEG pictures stored with quality above
	// JPEGQuality.
	Optimize bool
}

// Picture is picture data in a format the emitters can embed.
type Picture struct {
	Info
	Data      []byte
	Converted bool
}

// Normalize returns picture in PNG or JPEG form. Native pictures are passed
// through (JPEG gets JFIF header with 96 dpi when it is missing), other
// raster formats are decoded and re-encoded, SVG is rasterized.
func Normalize(data []byte, opts Options) (*Picture, error) {
	info, err := Inspect(data)
	if err != nil {
		return nil, err
	}

	switch info.Format {
	case FormatPNG:
		return &Picture{Info: info, Data: data}, nil
	case FormatJPEG:
		if opts.Optimize && opts.JPEGQuality > 0 {
			if pic, err := recompress(data, info, opts); err != nil || pic != nil {
				return pic, err
			}
		}
		out, added, err := EnsureJFIFAPP0(data, DpiPxPerInch, 96, 96)
		if err != nil {
			return nil, err
		}
		return &Picture{Info: info, Data: out, Converted: added}, nil
	}

	var img image.Image
	if info.Format == FormatSVG {
		img, err = RasterizeSVGToImage(data, 0, 0, opts.MaxSize)
	} else {
		img, err = imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	}
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s picture: %w", info.Format, err)
	}
	if opts.MaxSize > 0 && (img.Bounds().Dx() > opts.MaxSize || img.Bounds().Dy() > opts.MaxSize) {
		img = imaging.Fit(img, opts.MaxSize, opts.MaxSize, imaging.Lanczos)
	}
	return encode(img, opts)
}

// recompress returns nil picture when detected quality is already at or
// below requested one, or when it cannot be detected.
func recompress(data []byte, info Info, opts Options) (*Picture, error) {
	jr, err := jpegquality.NewWithBytes(data)
	if err != nil || jr.Quality() <= opts.JPEGQuality {
		return nil, nil
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s picture: %w", info.Format, err)
	}
	out, err := EncodeJPEGWithDPI(img, opts.JPEGQuality, DpiPxPerInch, 96, 96)
	if err != nil {
		return nil, fmt.Errorf("unable to encode jpeg: %w", err)
	}
	b := img.Bounds()
	return &Picture{Info: Info{Format: FormatJPEG, Width: b.Dx(), Height: b.Dy()}, Data: out, Converted: true}, nil
}

func encode(img image.Image, opts Options) (*Picture, error) {
	b := img.Bounds()
	pic := &Picture{Info: Info{Width: b.Dx(), Height: b.Dy()}, Converted: true}

	if opts.PreferJPEG && opaque(img) {
		quality := opts.JPEGQuality
		if quality <= 0 {
			quality = 85
		}
		data, err := EncodeJPEGWithDPI(img, quality, DpiPxPerInch, 96, 96)
		if err != nil {
			return nil, fmt.Errorf("unable to encode jpeg: %w", err)
		}
		pic.Format, pic.Data = FormatJPEG, data
		return pic, nil
	}

	if IsGrayscale(img) && opaque(img) {
		gray := image.NewGray(b)
		draw.Draw(gray, b, img, b.Min, draw.Src)
		img = gray
	}
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, fmt.Errorf("unable to encode png: %w", err)
	}
	pic.Format, pic.Data = FormatPNG, buf.Bytes()
	return pic, nil
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return true
}
