// Package config handles meshtool configuration loading and
// management.
package config

// Config holds all meshtool settings.
type Config struct {
	Shape   ShapeConfig   `yaml:"shape"`
	Logging LoggingConfig `yaml:"logging"`
}

// ShapeConfig selects a primitive and its parameters. Only the fields
// relevant to the selected kind are used.
type ShapeConfig struct {
	// Kind is one of: cube, box, quad, plane, icosphere.
	Kind string `yaml:"kind"`

	// Size is the edge length for cube and plane, and applies to both
	// quad axes when width/height are unset.
	Size float32 `yaml:"size"`

	// XLength, YLength, ZLength are the box edge lengths.
	XLength float32 `yaml:"x_length"`
	YLength float32 `yaml:"y_length"`
	ZLength float32 `yaml:"z_length"`

	// Width and Height size the quad.
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	// Flip mirrors the quad's texture coordinates and winding.
	Flip bool `yaml:"flip"`

	// Radius and Subdivisions configure the icosphere.
	Radius       float32 `yaml:"radius"`
	Subdivisions int     `yaml:"subdivisions"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Shape: ShapeConfig{
			Kind:         "cube",
			Size:         1,
			XLength:      2,
			YLength:      1,
			ZLength:      1,
			Width:        1,
			Height:       1,
			Radius:       1,
			Subdivisions: 5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
