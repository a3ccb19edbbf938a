package physics

import (
	"encoding/binary"
	"image"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// CollisionMask is the per-pixel solidity of a brick or object image with
// its four height maps precomputed. Masks are immutable and may be shared
// by any number of obstacles.
type CollisionMask struct {
	width  int
	height int
	solid  []bool

	fromTop    []int
	fromBottom []int
	fromLeft   []int
	fromRight  []int

	digest uint64
}

// NewCollisionMask builds a mask from img: a pixel is solid when its alpha
// is non-zero. Returns nil for a nil or empty image.
func NewCollisionMask(img image.Image) *CollisionMask {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	solid := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			solid[y*w+x] = a != 0
		}
	}
	return newCollisionMask(w, h, solid)
}

// ParseCollisionMask builds a mask from text rows where '#' marks a solid
// pixel. All rows must have the same length.
func ParseCollisionMask(rows ...string) *CollisionMask {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	w, h := len(rows[0]), len(rows)
	solid := make([]bool, w*h)
	for y, row := range rows {
		if len(row) != w {
			panic("physics: ragged collision mask rows")
		}
		for x := 0; x < w; x++ {
			solid[y*w+x] = row[x] == '#'
		}
	}
	return newCollisionMask(w, h, solid)
}

func newCollisionMask(w, h int, solid []bool) *CollisionMask {
	m := &CollisionMask{
		width:      w,
		height:     h,
		solid:      solid,
		fromTop:    make([]int, w),
		fromBottom: make([]int, w),
		fromLeft:   make([]int, h),
		fromRight:  make([]int, h),
	}
	for x := 0; x < w; x++ {
		m.fromTop[x] = h
		for y := 0; y < h; y++ {
			if solid[y*w+x] {
				m.fromTop[x] = y
				break
			}
		}
		m.fromBottom[x] = h
		for y := h - 1; y >= 0; y-- {
			if solid[y*w+x] {
				m.fromBottom[x] = h - 1 - y
				break
			}
		}
	}
	for y := 0; y < h; y++ {
		m.fromLeft[y] = w
		for x := 0; x < w; x++ {
			if solid[y*w+x] {
				m.fromLeft[y] = x
				break
			}
		}
		m.fromRight[y] = w
		for x := w - 1; x >= 0; x-- {
			if solid[y*w+x] {
				m.fromRight[y] = w - 1 - x
				break
			}
		}
	}
	m.digest = digestMask(w, h, solid)
	return m
}

func digestMask(w, h int, solid []bool) uint64 {
	buf := make([]byte, 8, 8+(len(solid)+7)/8)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(w))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(h))
	var acc byte
	for i, s := range solid {
		if s {
			acc |= 1 << (i % 8)
		}
		if i%8 == 7 {
			buf = append(buf, acc)
			acc = 0
		}
	}
	if len(solid)%8 != 0 {
		buf = append(buf, acc)
	}
	return xxhash.Sum64(buf)
}

func (m *CollisionMask) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

func (m *CollisionMask) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

// Digest is a content hash of the mask.
func (m *CollisionMask) Digest() uint64 {
	if m == nil {
		return 0
	}
	return m.digest
}

// Solid reports whether the local pixel (x, y) is solid. Out of range
// pixels are not solid.
func (m *CollisionMask) Solid(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.solid[y*m.width+x]
}

// HeightAt returns the distance, measured from the base edge inward, to the
// first solid pixel on the line perpendicular to that edge at pos. When the
// line has no solid pixel the full extent is returned. pos is clipped to
// the edge.
func (m *CollisionMask) HeightAt(pos int, base BaseLevel) int {
	if m == nil {
		return 0
	}
	switch base {
	case FromTop:
		return m.fromTop[clip(pos, m.width)]
	case FromBottom:
		return m.fromBottom[clip(pos, m.width)]
	case FromLeft:
		return m.fromLeft[clip(pos, m.height)]
	case FromRight:
		return m.fromRight[clip(pos, m.height)]
	}
	return 0
}

func (m *CollisionMask) equal(other *CollisionMask) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i := range m.solid {
		if m.solid[i] != other.solid[i] {
			return false
		}
	}
	return true
}

func clip(pos, n int) int {
	if pos < 0 {
		return 0
	}
	if pos >= n {
		return n - 1
	}
	return pos
}

// MaskCache interns collision masks by content so identical tiles share a
// single set of height maps.
type MaskCache struct {
	mu    sync.Mutex
	masks map[uint64][]*CollisionMask
}

func NewMaskCache() *MaskCache {
	return &MaskCache{masks: make(map[uint64][]*CollisionMask)}
}

// Intern returns a cached mask equal to m, or stores and returns m.
func (c *MaskCache) Intern(m *CollisionMask) *CollisionMask {
	if c == nil || m == nil {
		return m
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.masks == nil {
		c.masks = make(map[uint64][]*CollisionMask)
	}
	for _, cached := range c.masks[m.digest] {
		if cached.equal(m) {
			return cached
		}
	}
	c.masks[m.digest] = append(c.masks[m.digest], m)
	return m
}

// FromImage builds the mask of img and interns it.
func (c *MaskCache) FromImage(img image.Image) *CollisionMask {
	return c.Intern(NewCollisionMask(img))
}

// Len is the number of distinct masks held.
func (c *MaskCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, bucket := range c.masks {
		n += len(bucket)
	}
	return n
}
