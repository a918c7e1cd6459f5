package app

import "flag"

// Flags holds the command-line options shared by the viewer binary.
type Flags struct {
	ConfigPath string
	Model      string
	Seed       uint
	Scale      int
	SPS        int
}

// NewFlags returns the default option set.
func NewFlags() *Flags {
	return &Flags{
		Scale: 8,
		SPS:   120,
	}
}

// Bind registers the options on the provided flag set.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "path to a YAML run config (embedded defaults when empty)")
	fs.StringVar(&f.Model, "model", f.Model, "model override: overlapping or tiled")
	fs.UintVar(&f.Seed, "seed", f.Seed, "seed override (0 keeps the config seed)")
	fs.IntVar(&f.Scale, "scale", f.Scale, "integer pixel zoom")
	fs.IntVar(&f.SPS, "sps", f.SPS, "solver steps per second")
}
