package conffile

// File is the root of a frame configuration file.
type File struct {
	Version string          `yaml:"version" toml:"version"`
	Frames  []string        `yaml:"frames,omitempty,flow" toml:"frames,omitempty"`
	Static  []GeometryEntry `yaml:"static,omitempty" toml:"static,omitempty"`
	Dynamic []DynamicEntry  `yaml:"dynamic,omitempty" toml:"dynamic,omitempty"`
	Example []GeometryEntry `yaml:"example,omitempty" toml:"example,omitempty"`
}

// GeometryEntry describes a static or example transform.
type GeometryEntry struct {
	From        string    `yaml:"from" toml:"from"`
	To          string    `yaml:"to" toml:"to"`
	Translation []float64 `yaml:"translation,omitempty,flow" toml:"translation,omitempty"`
	Rotation    Rotation  `yaml:"rotation,omitempty,flow" toml:"rotation,omitempty"`
}

// DynamicEntry describes a transform supplied at runtime by Producer.
type DynamicEntry struct {
	From     string `yaml:"from" toml:"from"`
	To       string `yaml:"to" toml:"to"`
	Producer string `yaml:"producer" toml:"producer"`
}

// Rotation is a quaternion stored as [w, x, y, z]. In files it may also be
// written as an axis/angle mapping, which is converted on load.
type Rotation []float64

// axisAngle is the mapping form of a Rotation.
type axisAngle struct {
	Axis  []float64 `yaml:"axis" toml:"axis"`
	Angle *float64  `yaml:"angle" toml:"angle"`
}
