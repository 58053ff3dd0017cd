package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/gift"
	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/videotools/rgb10"
	"github.com/videotools/rgb10/internal/debug"
)

type convertFlags struct {
	_         struct{} `help:"Convert an image file to packed 10-bit linear RGB"`
	Width     int      `flag:"--width" help:"Resize the image to this width before packing (0 keeps the source width)" default:"0"`
	Height    int      `flag:"--height" help:"Resize the image to this height before packing (0 keeps the source height)" default:"0"`
	Grayscale bool     `flag:"--grayscale" help:"Convert the image to grayscale before packing" default:"false"`
	Debug     bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
}

func convertCommand(flags convertFlags, input, output string) {
	debug.Toggle(flags.Debug)

	img, format, err := rgb10.Open(input)
	if err != nil {
		fatalf("Could not read input image: %s", err)
	}
	debug.Format("decoded %s as %s", input, format)

	img = preprocess(img, flags)

	bounds := img.Bounds()
	fmt.Printf("Input image size is %dx%d.\n", bounds.Dx(), bounds.Dy())

	data, err := rgb10.Pack(img)
	if err != nil {
		fatalf("Could not pack image: %s", err)
	}

	if err := writeFile(output, data); err != nil {
		fatalf("Could not write output file: %s", err)
	}

	fmt.Printf("Output image size is %d bytes.\n", len(data))
}

func preprocess(img image.Image, flags convertFlags) image.Image {
	if flags.Width > 0 || flags.Height > 0 {
		img = resize.Resize(uint(flags.Width), uint(flags.Height), img, resize.Lanczos3)
		size := img.Bounds().Size()
		debug.Format("resized to %dx%d", size.X, size.Y)
	}
	if flags.Grayscale {
		g := gift.New(gift.Grayscale())
		dst := image.NewNRGBA(g.Bounds(img.Bounds()))
		g.Draw(dst, img)
		img = dst
		debug.Format("converted to grayscale")
	}
	return img
}

// writeFile writes data to a uniquely named temporary file in the destination
// directory and renames it into place, so a failed run never leaves a partial
// output file behind.
func writeFile(output string, data []byte) error {
	dir, base := filepath.Split(output)
	tmp := filepath.Join(dir, base+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, data, 0666); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, output); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
