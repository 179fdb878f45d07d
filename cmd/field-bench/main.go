// field-bench steps the particle scene headlessly against a synthetic scroll script.
package main

import (
	"flag"
	"fmt"
	"os"

	json "github.com/bytedance/sonic"

	"github.com/lixenwraith/particle-field/parameter"
)

var (
	count    = flag.Int("count", parameter.FieldDefaultCount, "Number of particles")
	frames   = flag.Int("frames", 600, "Frames to simulate")
	seed     = flag.Int64("seed", 1, "Random seed")
	pattern  = flag.String("scroll", "pingpong", "Scroll pattern: down|up|pingpong|none")
	gifPath  = flag.String("gif", "", "Write rendered frames to this GIF file")
	gifEvery = flag.Int("gif-every", 2, "Record every nth frame into the GIF")
	width    = flag.Int("width", parameter.GIFDefaultWidth, "GIF width in pixels")
	height   = flag.Int("height", parameter.GIFDefaultHeight, "GIF height in pixels")
)

func main() {
	flag.Parse()

	rep, gs, err := runBench(benchOptions{
		Count:    *count,
		Frames:   *frames,
		Seed:     *seed,
		Scroll:   *pattern,
		GIF:      *gifPath != "",
		GIFEvery: *gifEvery,
		Width:    *width,
		Height:   *height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "field-bench: %v\n", err)
		os.Exit(1)
	}

	if gs != nil {
		if err := writeGIF(*gifPath, gs.Encode); err != nil {
			fmt.Fprintf(os.Stderr, "field-bench: %v\n", err)
			os.Exit(1)
		}
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "field-bench: encode report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
