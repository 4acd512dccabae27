package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagShape        = flag.String("shape", "", "Shape to build (cube, box, quad, plane, icosphere)")
	flagSize         = flag.Float64("size", 0, "Edge length for cube, plane, and quad")
	flagFlip         = flag.Bool("flip", false, "Mirror the quad's texture coordinates and winding")
	flagRadius       = flag.Float64("radius", 0, "Icosphere radius")
	flagSubdivisions = flag.Int("subdivisions", -1, "Icosphere subdivision level")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via
// --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagShape != "" {
		cfg.Shape.Kind = *flagShape
	}
	if *flagSize > 0 {
		cfg.Shape.Size = float32(*flagSize)
		cfg.Shape.Width = float32(*flagSize)
		cfg.Shape.Height = float32(*flagSize)
	}
	if *flagFlip {
		cfg.Shape.Flip = true
	}
	if *flagRadius > 0 {
		cfg.Shape.Radius = float32(*flagRadius)
	}
	if *flagSubdivisions >= 0 {
		cfg.Shape.Subdivisions = *flagSubdivisions
	}
}
