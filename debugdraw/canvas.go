package debugdraw

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Canvas draws physics debug output onto an ebiten image.
type Canvas struct {
	screen *ebiten.Image
}

func NewCanvas(screen *ebiten.Image) *Canvas {
	return &Canvas{screen: screen}
}

func (c *Canvas) Size() (int, int) {
	b := c.screen.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect fills the inclusive pixel rectangle.
func (c *Canvas) FillRect(x1, y1, x2, y2 int, clr color.Color) {
	ebitenutil.DrawRect(c.screen, float64(x1), float64(y1), float64(x2-x1+1), float64(y2-y1+1), clr)
}
