package debugdraw

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slopescroller/levels"
	"github.com/milk9111/slopescroller/physics"
	"golang.org/x/image/colornames"
)

// Renderer draws the collision masks of a stage and the actors on it.
// Mask images are built once per distinct mask.
type Renderer struct {
	images  map[*physics.CollisionMask]*ebiten.Image
	visible *physics.ObstacleMap
}

func NewRenderer() *Renderer {
	return &Renderer{
		images:  make(map[*physics.CollisionMask]*ebiten.Image),
		visible: physics.NewObstacleMap(),
	}
}

// View is the world rectangle shown on screen around camera.
func View(screen *ebiten.Image, camera cp.Vector) cp.BB {
	b := screen.Bounds()
	return cp.NewBBForExtents(camera, float64(b.Dx())/2, float64(b.Dy())/2)
}

func origin(screen *ebiten.Image, camera cp.Vector) (float64, float64) {
	b := screen.Bounds()
	return math.Floor(camera.X) - float64(b.Dx()/2), math.Floor(camera.Y) - float64(b.Dy()/2)
}

func (r *Renderer) DrawStage(screen *ebiten.Image, stage *levels.Stage, camera cp.Vector) {
	stage.FillMap(r.visible, View(screen, camera))
	ox, oy := origin(screen, camera)
	for _, o := range r.visible.Obstacles() {
		if !o.HasHeightMap() {
			continue
		}
		img := r.maskImage(o.Mask())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(o.Position().X-ox, o.Position().Y-oy)
		op.ColorScale.ScaleWithColor(obstacleColor(o))
		screen.DrawImage(img, op)
	}
}

func obstacleColor(o *physics.Obstacle) color.Color {
	if !o.IsSolid() {
		return colornames.Lightskyblue
	}
	return colornames.Sandybrown
}

func (r *Renderer) maskImage(m *physics.CollisionMask) *ebiten.Image {
	if img, ok := r.images[m]; ok {
		return img
	}
	w, h := m.Width(), m.Height()
	pix := make([]byte, 4*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.Solid(x, y) {
				i := 4 * (y*w + x)
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xff, 0xff, 0xff, 0xff
			}
		}
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(pix)
	r.images[m] = img
	return img
}

// DrawActor draws the actor's sensors and a dot at its centre.
func (r *Renderer) DrawActor(screen *ebiten.Image, a *physics.Actor, camera cp.Vector, body color.Color) {
	canvas := NewCanvas(screen)
	a.RenderSensors(canvas, camera)

	ox, oy := origin(screen, camera)
	x := math.Floor(a.Position().X) - ox
	y := math.Floor(a.Position().Y) - oy
	ebitenutil.DrawRect(screen, x-2, y-2, 5, 5, body)
}

// DrawHUD prints the actor's motion state in the top-left corner.
func DrawHUD(screen *ebiten.Image, a *physics.Actor, extra string) {
	text := fmt.Sprintf("State: %s\nMode: %s  Angle: %d\nGsp: %.1f  Xsp: %.1f  Ysp: %.1f\nAir: %v  Lock: %.2f",
		a.State(), a.MovMode(), a.Angle(),
		a.Gsp(), a.Xsp(), a.Ysp(),
		a.IsInTheAir(), a.HorizontalLock(),
	)
	if extra != "" {
		text += "\n" + extra
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}
