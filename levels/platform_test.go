package levels

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slopescroller/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformPath(t *testing.T) {
	e := Entity{Type: EntityPlatform, X: 100, Y: 200, Props: map[string]any{
		"width":   2,
		"rx":      40,
		"ry":      10,
		"speed_x": math.Pi,
		"speed_y": math.Pi,
	}}
	p, err := platformFromEntity(e, physics.NewMaskCache())
	require.NoError(t, err)

	cases := []struct {
		name string
		t    float64
		want cp.Vector
	}{
		{name: "start", t: 0, want: cp.Vector{X: 140, Y: 200}},
		{name: "quarter", t: 0.5, want: cp.Vector{X: 100, Y: 210}},
		{name: "half", t: 1, want: cp.Vector{X: 60, Y: 200}},
		{name: "three_quarters", t: 1.5, want: cp.Vector{X: 100, Y: 190}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, p.At(c.t))
		})
	}

	assert.Equal(t, cp.Vector{X: 140, Y: 200}, p.Obstacle().Position())
	assert.Equal(t, 64, p.Obstacle().Width())
	assert.True(t, p.Obstacle().IsSolid())

	delta := p.Advance(0.5)
	assert.Equal(t, cp.Vector{X: -40, Y: 10}, delta)
	assert.Equal(t, delta, p.Delta())
	assert.Equal(t, cp.Vector{X: 100, Y: 210}, p.Obstacle().Position())
}

func TestPlatformCloud(t *testing.T) {
	p, err := platformFromEntity(Entity{Type: EntityPlatform, Props: map[string]any{"cloud": true}}, physics.NewMaskCache())
	require.NoError(t, err)
	assert.False(t, p.Obstacle().IsSolid())
	assert.Equal(t, cloudThickness, p.Obstacle().Height())
	assert.Equal(t, 96, p.Obstacle().Width())
}

func TestPlatformInvalid(t *testing.T) {
	cases := []struct {
		name  string
		props map[string]any
	}{
		{name: "zero_width", props: map[string]any{"width": 0}},
		{name: "bad_speed", props: map[string]any{"speed_x": "fast"}},
		{name: "bad_cloud", props: map[string]any{"cloud": 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := platformFromEntity(Entity{Type: EntityPlatform, Props: c.props}, physics.NewMaskCache())
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}
