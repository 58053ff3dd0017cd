package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"

	"github.com/videotools/rgb10"
	"github.com/videotools/rgb10/internal/bitpack"
	"github.com/videotools/rgb10/internal/test"
)

func captureStdout(t *testing.T, f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	result := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		defer func() {
			result <- buf.String()
			close(result)
		}()
		for {
			n, err := io.Copy(&buf, r)
			if n == 0 && err == nil {
				// write pipe has been closed.
				return
			}
			if err != nil && err != io.EOF {
				log.Println("Error piping stdout:", err)
				return
			}
		}
	}()

	f()

	test.Close(t, w)
	os.Stdout = old
	out := <-result

	return out
}

func diffOutput(t *testing.T, want, got string) {
	t.Helper()
	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A: difflib.SplitLines(want),
		B: difflib.SplitLines(got),
	})
	assert.NoError(t, err)
	if len(out) != 0 {
		t.Errorf("unexpected command output:\n%s", out)
	}
}

func writeTestPNG(t *testing.T, p string, img image.Image) {
	f, err := os.Create(p)
	assert.NoError(t, err)
	assert.NoError(t, png.Encode(f, img))
	test.Close(t, f)
}

func TestConvert(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
		img.SetNRGBA(0, 0, color.NRGBA{A: 255})
		img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

		input := path.Join(dir, "input.png")
		output := path.Join(dir, "output.rgb10")
		writeTestPNG(t, input, img)

		out := captureStdout(t, func() {
			convertCommand(convertFlags{}, input, output)
		})

		diffOutput(t, "Input image size is 2x1.\nOutput image size is 8 bytes.\n", out)

		data, err := os.ReadFile(output)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x03, 0xFC, 0xFF, 0x3F, 0xC0}, data)

		// The temporary file must have been renamed away.
		entries, err := os.ReadDir(dir)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestConvertResize(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: uint8(32 * x), G: uint8(32 * y), A: 255})
			}
		}

		input := path.Join(dir, "input.png")
		output := path.Join(dir, "output.rgb10")
		writeTestPNG(t, input, img)

		out := captureStdout(t, func() {
			convertCommand(convertFlags{Width: 2, Height: 2}, input, output)
		})

		diffOutput(t, "Input image size is 2x2.\nOutput image size is 15 bytes.\n", out)

		data, err := os.ReadFile(output)
		assert.NoError(t, err)
		assert.Len(t, data, rgb10.PackedSize(2, 2))
	})
}

func TestConvertGrayscale(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

		input := path.Join(dir, "input.png")
		output := path.Join(dir, "output.rgb10")
		writeTestPNG(t, input, img)

		captureStdout(t, func() {
			convertCommand(convertFlags{Grayscale: true}, input, output)
		})

		data, err := os.ReadFile(output)
		assert.NoError(t, err)
		assert.Len(t, data, rgb10.PackedSize(1, 1))

		// A grayscale pixel packs three identical samples.
		r := bitpack.Uint(data, 0, rgb10.BitsPerSample)
		g := bitpack.Uint(data, 10, rgb10.BitsPerSample)
		b := bitpack.Uint(data, 20, rgb10.BitsPerSample)
		assert.Equal(t, r, g)
		assert.Equal(t, g, b)
		assert.NotEqual(t, uint64(1020), r)
	})
}
