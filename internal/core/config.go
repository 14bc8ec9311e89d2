package core

// RuntimeConfig contains configuration passed to frontends at initialization.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters (terminal) or pixels (window)
	ScreenH   int   // Screen height in characters (terminal) or pixels (window)
	FrameRate int   // Render/poll frames per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   30,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}
