// Package rgb10 converts 8-bit-per-channel RGB images to the SMPTE 2110-20
// "Linear RGB" sample layout: three 10-bit samples per pixel, packed back to
// back with no padding between samples or pixels.
//
// Each 8-bit channel value c is scaled to a 10-bit sample c*4, so samples are
// always multiples of 4 in [0,1020]; the format intentionally does not
// synthesize the extra two bits of precision. Samples are appended in R, G, B
// order for every pixel in row-major order, MSB-first within each sample, and
// the last byte of the stream is zero-padded in its trailing bits. The packed
// stream carries no header or dimensions; consumers must know the image size
// independently.
package rgb10

import (
	"fmt"
	"image"

	"github.com/videotools/rgb10/internal/bitpack"
)

const (
	// BitsPerSample is the width in bits of one packed color sample.
	BitsPerSample = 10

	// BitsPerPixel is the width in bits of one packed pixel (R, G and B
	// samples, no padding).
	BitsPerPixel = 3 * BitsPerSample
)

// PackedSize returns the byte length of the packed representation of an image
// with the given dimensions. Zero-area dimensions yield 0.
func PackedSize(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return bitpack.ByteCount(uint(width) * uint(height) * BitsPerPixel)
}

// ChannelValueError reports a channel value outside the 8-bit range. It can
// only occur for values handed directly to Packer.AppendPixel; values
// extracted from an image.Image are 8-bit by construction.
type ChannelValueError struct {
	Channel string
	Value   int
}

func (e *ChannelValueError) Error() string {
	return fmt.Sprintf("rgb10: %s channel value %d is outside the range [0,255]", e.Channel, e.Value)
}

// A Packer accumulates pixels into a packed 10-bit RGB bitstream. The zero
// value is an empty packer ready for use; Reset allows reusing the underlying
// buffer across conversions.
type Packer struct {
	acc bitpack.Appender
}

// AppendPixel scales the three 8-bit channel values to 10 bits and appends
// them to the stream. It fails with a *ChannelValueError if any value falls
// outside [0,255]; nothing is appended in that case.
func (p *Packer) AppendPixel(r, g, b int) error {
	if r < 0 || r > 255 {
		return &ChannelValueError{Channel: "red", Value: r}
	}
	if g < 0 || g > 255 {
		return &ChannelValueError{Channel: "green", Value: g}
	}
	if b < 0 || b > 255 {
		return &ChannelValueError{Channel: "blue", Value: b}
	}
	p.acc.Append(uint64(r)<<2, BitsPerSample)
	p.acc.Append(uint64(g)<<2, BitsPerSample)
	p.acc.Append(uint64(b)<<2, BitsPerSample)
	return nil
}

// AppendImage appends every pixel of img in row-major order.
func (p *Packer) AppendImage(img image.Image) error {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if err := p.AppendPixel(int(r>>8), int(g>>8), int(b>>8)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Bytes returns the packed stream accumulated so far, with the trailing bits
// of the last byte zeroed. The returned slice aliases the packer and is only
// valid until the next append or Reset.
func (p *Packer) Bytes() []byte { return p.acc.Bytes() }

// Len returns the length in bytes of the packed stream accumulated so far.
func (p *Packer) Len() int { return p.acc.Len() }

// Reset empties the packer, retaining its buffer for reuse.
func (p *Packer) Reset() { p.acc.Reset() }

// Pack returns the packed 10-bit RGB representation of img.
func Pack(img image.Image) ([]byte, error) {
	p := new(Packer)
	if err := p.AppendImage(img); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}
