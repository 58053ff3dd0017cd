// Command rgb10 converts 8-bit RGB images to the packed 10-bit linear RGB
// format used by SMPTE 2110-20 video streams.
//
// The convert command decodes an image file, optionally resizes or grayscales
// it, and writes the packed bitstream to the output file:
//
//	rgb10 convert input.png output.rgb10
//
// The info command prints the dimensions of an image and the size its packed
// representation would have, without converting anything.
package main

import (
	"fmt"
	"os"
	"strings"

	color "github.com/logrusorgru/aurora/v3"
	"github.com/segmentio/cli"
)

func main() {
	cli.Exec(cli.CommandSet{
		"convert": cli.Command(convertCommand),
		"info":    cli.Command(infoCommand),
	})
}

func perrorf(format string, args ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, color.Red(format).String(), args...)
}

func fatalf(format string, args ...interface{}) {
	perrorf(format, args...)
	os.Exit(1)
}
