package main

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/encoding/json"

	"github.com/videotools/rgb10"
)

type infoFlags struct {
	_    struct{} `help:"Print the dimensions and packed size of an image file"`
	JSON bool     `flag:"--json" help:"Output as JSON instead of a table" default:"false"`
}

type imageInfo struct {
	File       string `json:"file"`
	Format     string `json:"format"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Pixels     int    `json:"pixels"`
	PackedSize int    `json:"packedSize"`
}

func infoCommand(flags infoFlags, path string) {
	info, err := readImageInfo(path)
	if err != nil {
		fatalf("Could not read input image: %s", err)
	}

	if flags.JSON {
		b, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			fatalf("Could not encode image info: %s", err)
		}
		fmt.Println(string(b))
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"File", "Format", "Width", "Height", "Pixels", "Packed Size"})
	table.Append([]string{
		info.File,
		info.Format,
		strconv.Itoa(info.Width),
		strconv.Itoa(info.Height),
		strconv.Itoa(info.Pixels),
		strconv.Itoa(info.PackedSize),
	})
	table.Render()
}

// readImageInfo reads just enough of the file to determine its format and
// dimensions, without decoding the pixel data.
func readImageInfo(path string) (imageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return imageInfo{}, err
	}
	defer f.Close()

	config, format, err := image.DecodeConfig(f)
	if err != nil {
		return imageInfo{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	return imageInfo{
		File:       path,
		Format:     format,
		Width:      config.Width,
		Height:     config.Height,
		Pixels:     config.Width * config.Height,
		PackedSize: rgb10.PackedSize(config.Width, config.Height),
	}, nil
}
