// Package jpegquality estimates the quality level a JPEG picture was encoded
// with by comparing its luminance quantization table against the scaled
// standard table.
package jpegquality

import (
	"bytes"
	"errors"
	"io"
)

var (
	ErrInvalidJPEG  = errors.New("invalid JPEG header")
	ErrWrongTable   = errors.New("wrong size for quantization table")
	ErrShortSegment = errors.New("short segment length")
	ErrShortDQT     = errors.New("section DQT is too short")
)

// Qualitier reports estimated quality, 1 to 100.
type Qualitier interface {
	Quality() int
}

const (
	markerSOI = 0xffd8
	markerEOI = 0xffd9
	markerSOS = 0xffda
	markerDQT = 0xffdb
)

// Standard luminance table (ITU T.81 Annex K), entry order is irrelevant
// since only sums are compared.
var baseLuminance = [64]int{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// scaledSums[q] is the sum of the standard luminance table scaled for
// quality q the way libjpeg does it.
var scaledSums = func() (sums [101]int) {
	for q := 1; q <= 100; q++ {
		scale := 200 - 2*q
		if q < 50 {
			scale = 5000 / q
		}
		for _, b := range baseLuminance {
			sums[q] += min(max((b*scale+50)/100, 1), 255)
		}
	}
	return
}()

type jpegReader struct {
	rs io.ReadSeeker
	q  int
}

// New reads rs from the beginning up to the first quantization table.
func New(rs io.ReadSeeker) (Qualitier, error) {
	jr := &jpegReader{rs: rs}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	sign := make([]byte, 2)
	if _, err := io.ReadFull(rs, sign); err != nil || sign[0] != 0xff || sign[1] != 0xd8 {
		return nil, ErrInvalidJPEG
	}

	q, err := jr.readQuality()
	if err != nil {
		return nil, err
	}
	jr.q = q
	return jr, nil
}

func NewWithBytes(data []byte) (Qualitier, error) {
	return New(bytes.NewReader(data))
}

func (jr *jpegReader) Quality() int {
	return jr.q
}

// readMarker skips to the next marker, returns 0 when input ends.
func (jr *jpegReader) readMarker() uint16 {
	b := make([]byte, 1)
	for {
		if _, err := io.ReadFull(jr.rs, b); err != nil {
			return 0
		}
		if b[0] != 0xff {
			continue
		}
		// fill bytes
		for b[0] == 0xff {
			if _, err := io.ReadFull(jr.rs, b); err != nil {
				return 0
			}
		}
		if b[0] != 0 {
			return 0xff00 | uint16(b[0])
		}
	}
}

func (jr *jpegReader) readQuality() (int, error) {
	for {
		switch mark := jr.readMarker(); mark {
		case 0, markerEOI, markerSOS:
			return 0, ErrInvalidJPEG
		case markerSOI:
			continue
		case markerDQT:
			length, err := jr.segmentLength()
			if err != nil {
				return 0, err
			}
			chunk := make([]byte, length)
			if _, err := io.ReadFull(jr.rs, chunk); err != nil {
				return 0, ErrShortDQT
			}
			return estimate(chunk)
		default:
			length, err := jr.segmentLength()
			if err != nil {
				return 0, err
			}
			if _, err := jr.rs.Seek(int64(length), io.SeekCurrent); err != nil {
				return 0, err
			}
		}
	}
}

// segmentLength returns length of segment payload.
func (jr *jpegReader) segmentLength() (int, error) {
	buf := make([]byte, 2)
	if _, err := io.ReadFull(jr.rs, buf); err != nil {
		return 0, ErrShortSegment
	}
	length := int(buf[0])<<8 | int(buf[1])
	if length < 2 {
		return 0, ErrShortSegment
	}
	return length - 2, nil
}

// estimate picks luminance table (id 0) from DQT payload, falling back to
// the first table, and finds the closest standard quality.
func estimate(chunk []byte) (int, error) {
	sum := -1
	for len(chunk) > 0 {
		precision, id := chunk[0]>>4, chunk[0]&0x0f
		size := 64
		if precision != 0 {
			size = 128
		}
		if len(chunk) < 1+size {
			return 0, ErrWrongTable
		}
		table := chunk[1 : 1+size]
		chunk = chunk[1+size:]
		if sum >= 0 && id != 0 {
			continue
		}

		sum = 0
		for i := range 64 {
			if precision != 0 {
				sum += int(table[2*i])<<8 | int(table[2*i+1])
			} else {
				sum += int(table[i])
			}
		}
		if id == 0 {
			break
		}
	}
	if sum < 0 {
		return 0, ErrShortDQT
	}

	best, diff := 100, -1
	for q := 100; q >= 1; q-- {
		d := scaledSums[q] - sum
		if d < 0 {
			d = -d
		}
		if diff < 0 || d < diff {
			best, diff = q, d
		}
	}
	return best, nil
}
