package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/milk9111/slopescroller/levels"
	"github.com/milk9111/slopescroller/physics"
)

func main() {
	glyphs := flag.String("glyphs", "", "only print these bricks (default all)")
	base := flag.String("base", "top", "edge heights are measured from: top, bottom, left or right")
	art := flag.Bool("art", true, "draw the mask")
	flag.Parse()

	b, err := parseBase(*base)
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	palette := levels.NewPalette(nil)
	for _, brick := range palette.Bricks() {
		if *glyphs != "" && !strings.ContainsRune(*glyphs, brick.Glyph) {
			continue
		}
		writeBrick(out, brick, b, *art)
	}
}

func parseBase(s string) (physics.BaseLevel, error) {
	switch s {
	case "top":
		return physics.FromTop, nil
	case "bottom":
		return physics.FromBottom, nil
	case "left":
		return physics.FromLeft, nil
	case "right":
		return physics.FromRight, nil
	}
	return 0, fmt.Errorf("unknown base %q", s)
}

func writeBrick(w io.Writer, brick *levels.Brick, base physics.BaseLevel, art bool) {
	m := brick.Mask
	kind := "solid"
	if !brick.Solid {
		kind = "one-way"
	}
	fmt.Fprintf(w, "%q %s angle=%d %s %dx%d digest=%016x\n", brick.Glyph, brick.Name, brick.Angle, kind, m.Width(), m.Height(), m.Digest())

	n := m.Width()
	if base == physics.FromLeft || base == physics.FromRight {
		n = m.Height()
	}
	heights := make([]string, n)
	for i := range heights {
		heights[i] = fmt.Sprint(m.HeightAt(i, base))
	}
	fmt.Fprintf(w, "  %s: %s\n", base, strings.Join(heights, " "))

	if !art {
		return
	}
	for y := 0; y < m.Height(); y++ {
		var row strings.Builder
		for x := 0; x < m.Width(); x++ {
			if m.Solid(x, y) {
				row.WriteByte('#')
			} else {
				row.WriteByte('.')
			}
		}
		fmt.Fprintf(w, "  %s\n", row.String())
	}
	fmt.Fprintln(w)
}
