package cli

import "harness/internal/config"

// Flags holds command-line flags
type Flags struct {
	Filter     string
	FailFast   bool
	NoColor    bool
	NameWidth  int
	Verbose    bool
	ConfigFile string
	EnvFile    string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:     f.Filter,
		FailFast:   f.FailFast,
		NoColor:    f.NoColor,
		NameWidth:  f.NameWidth,
		Verbose:    f.Verbose,
		ConfigFile: f.ConfigFile,
		EnvFile:    f.EnvFile,
	}
}
