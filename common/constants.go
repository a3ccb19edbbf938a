package common

const (
	// TicksPerSecond is the fixed simulation rate.
	TicksPerSecond = 60
	// TickDuration is one fixed step in seconds.
	TickDuration = 1.0 / TicksPerSecond

	// TileSize is the edge of a level brick in pixels.
	TileSize = 32

	BaseWidth  = 640
	BaseHeight = 360
)
