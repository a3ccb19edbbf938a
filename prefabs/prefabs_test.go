package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/milk9111/slopescroller/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"charge", "neon", "surge"}, Names())
}

func TestCleanPrefabPath(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare", in: "surge", want: "surge.yaml"},
		{name: "extension", in: "surge.yaml", want: "surge.yaml"},
		{name: "yml", in: "surge.yml", want: "surge.yml"},
		{name: "prefixed", in: "prefabs/neon", want: "neon.yaml"},
		{name: "empty", in: "", want: ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, cleanPrefabPath(c.in))
		})
	}
}

func TestLoadCharacterSpec(t *testing.T) {
	surge, err := LoadCharacterSpec("surge")
	require.NoError(t, err)
	assert.Equal(t, "surge", surge.Name)
	assert.Equal(t, neutralMultipliers(), surge.Multipliers)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xd2, B: 0x1f, A: 0xff}, surge.BodyColor())

	neon, err := LoadCharacterSpec("neon")
	require.NoError(t, err)
	assert.Equal(t, 1.25, neon.Multipliers.Acc)
	assert.Equal(t, 1.0, neon.Multipliers.Grv, "omitted multipliers stay neutral")
}

func TestLoadCharacterSpecUnknown(t *testing.T) {
	_, err := LoadCharacterSpec("tails")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCharacter)
}

func TestCharacterTuning(t *testing.T) {
	base := physics.DefaultTuning()

	surge, err := LoadCharacterSpec("surge")
	require.NoError(t, err)
	assert.Equal(t, base, surge.Tuning(base))

	charge, err := LoadCharacterSpec("charge")
	require.NoError(t, err)
	got := charge.Tuning(base)
	assert.InDelta(t, base.Acc*0.8, got.Acc, 1e-12)
	assert.InDelta(t, base.TopSpeed*1.15, got.TopSpeed, 1e-12)
	assert.InDelta(t, base.RollThreshold*0.9, got.RollThreshold, 1e-12)
	assert.Equal(t, base.Frc, got.Frc, "constants without a multiplier are untouched")
	assert.Equal(t, base.Air, got.Air)
}

func TestBodyColorDefault(t *testing.T) {
	spec := &CharacterSpec{}
	assert.Equal(t, color.White, spec.BodyColor())
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.Color
		wantErr bool
	}{
		{name: "rgb", in: `"#102030"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{name: "rgba", in: `"10203040"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{name: "short", in: `"#fff"`, wantErr: true},
		{name: "not_hex", in: `"#zz0000"`, wantErr: true},
		{name: "sequence", in: `[1, 2, 3]`, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Color)
		})
	}
}

func TestParseCharacterSpecDefaultsName(t *testing.T) {
	spec, err := parseCharacterSpec("custom.yaml", []byte("multiplier:\n  jmp: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "custom", spec.Name)
	assert.Equal(t, 2.0, spec.Multipliers.Jmp)
	assert.Equal(t, 1.0, spec.Multipliers.Acc)

	_, err = parseCharacterSpec("broken", []byte("multiplier: [\n"))
	assert.Error(t, err)
}

func TestRoster(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := NewRoster(zap.New(core))

	a, err := r.Get("neon")
	require.NoError(t, err)
	b, err := r.Get("neon.yaml")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 1, logs.FilterMessage("character loaded").Len())

	_, err = r.Get("nobody")
	assert.ErrorIs(t, err, ErrUnknownCharacter)
	assert.Equal(t, 1, r.Len())
}

func TestRosterReloadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: surge\nmultiplier:\n  topspeed: 2\n"), 0o644))

	r := NewRoster(nil)
	before, err := r.Get("surge")
	require.NoError(t, err)

	after, err := r.ReloadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, after.Multipliers.TopSpeed)

	cached, err := r.Get("surge")
	require.NoError(t, err)
	assert.Same(t, after, cached)
	assert.NotSame(t, before, cached)

	_, err = r.ReloadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestWatcherReportsSpecFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	spec := filepath.Join(dir, "neon.yaml")
	require.NoError(t, os.WriteFile(spec, []byte("name: neon\n"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, spec, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for spec file")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestSpecChanged(t *testing.T) {
	cases := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write_yaml", fsnotify.Event{Name: "prefabs/neon.yaml", Op: fsnotify.Write}, true},
		{"create_yml", fsnotify.Event{Name: "prefabs/neon.YML", Op: fsnotify.Create}, true},
		{"rename_yaml", fsnotify.Event{Name: "prefabs/neon.yaml", Op: fsnotify.Rename}, true},
		{"chmod_yaml", fsnotify.Event{Name: "prefabs/neon.yaml", Op: fsnotify.Chmod}, false},
		{"remove_yaml", fsnotify.Event{Name: "prefabs/neon.yaml", Op: fsnotify.Remove}, false},
		{"write_other", fsnotify.Event{Name: "prefabs/neon.yaml~", Op: fsnotify.Write}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, specChanged(c.ev))
		})
	}
}

func TestDebouncer(t *testing.T) {
	d := newDebouncer(100 * time.Millisecond)
	t0 := time.Unix(100, 0)

	assert.True(t, d.allow("a.yaml", t0))
	assert.False(t, d.allow("a.yaml", t0.Add(50*time.Millisecond)))
	assert.True(t, d.allow("b.yaml", t0.Add(50*time.Millisecond)))
	assert.True(t, d.allow("a.yaml", t0.Add(150*time.Millisecond)))
	assert.False(t, d.allow("a.yaml", t0.Add(200*time.Millisecond)))
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
