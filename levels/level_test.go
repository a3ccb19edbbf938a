package levels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"halfpipe", "hills"}, Names())
}

func TestLoadLevelFromFS(t *testing.T) {
	lvl, err := LoadLevelFromFS("hills")
	require.NoError(t, err)
	assert.Equal(t, "hills", lvl.Name)
	assert.Equal(t, 60, lvl.Columns())
	assert.Equal(t, 14, lvl.RowCount())
	require.Len(t, lvl.Entities, 3)
	assert.Equal(t, EntitySpawn, lvl.Entities[0].Type)

	again, err := LoadLevelFromFS("hills.yaml")
	require.NoError(t, err)
	assert.Equal(t, lvl, again)

	_, err = LoadLevelFromFS("nowhere")
	assert.Error(t, err)
}

func TestParseLevelInvalid(t *testing.T) {
	cases := []struct {
		name   string
		yaml   string
		layout bool
	}{
		{
			name:   "no_tiles",
			yaml:   "name: x\nentities:\n  - {type: spawn}\n",
			layout: true,
		},
		{
			name:   "ragged",
			yaml:   "tiles: ['###', '##']\nentities:\n  - {type: spawn}\n",
			layout: true,
		},
		{
			name:   "no_spawn",
			yaml:   "tiles: ['###']\n",
			layout: true,
		},
		{
			name:   "two_spawns",
			yaml:   "tiles: ['###']\nentities:\n  - {type: spawn}\n  - {type: spawn}\n",
			layout: true,
		},
		{
			name:   "unknown_entity",
			yaml:   "tiles: ['###']\nentities:\n  - {type: spawn}\n  - {type: ring}\n",
			layout: true,
		},
		{
			name: "bad_yaml",
			yaml: "tiles: [\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(c.yaml))
			require.Error(t, err)
			assert.Equal(t, c.layout, errors.Is(err, ErrInvalidLayout))
		})
	}
}

func TestEntityProps(t *testing.T) {
	e := Entity{Type: "loop", Props: map[string]any{
		"radius": 64,
		"gap":    12.5,
		"name":   "big",
		"cloud":  true,
	}}

	cases := []struct {
		name    string
		key     string
		want    float64
		wantErr bool
	}{
		{name: "int", key: "radius", want: 64},
		{name: "float", key: "gap", want: 12.5},
		{name: "missing", key: "segments", want: 7},
		{name: "string", key: "name", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := e.Float(c.key, 7)
			if c.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLayout)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	b, err := e.Bool("cloud", false)
	require.NoError(t, err)
	assert.True(t, b)
	b, err = e.Bool("missing", true)
	require.NoError(t, err)
	assert.True(t, b)
	_, err = e.Bool("radius", false)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}
