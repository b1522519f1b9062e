package config

// Config represents the visualizer configuration
type Config struct {
	LogLevel  string     `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"` // json or text
	LogFile   string     `yaml:"log_file"`   // empty discards logs while the TUI runs
	Defaults  Parameters `yaml:"defaults"`
	Domain    Domain     `yaml:"domain"`
	Theme     string     `yaml:"theme"` // dark or light
}

// Parameters are the slider values the visualizer starts with
type Parameters struct {
	A     float64 `yaml:"a"`
	N     float64 `yaml:"n"`
	Alpha float64 `yaml:"alpha"`
	K     float64 `yaml:"k"`
}

// Domain is the capital range the curves are sampled over
type Domain struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Defaults:  Parameters{A: 10, N: 10, Alpha: 0.3, K: 10},
		Domain:    Domain{Min: 1, Max: 20, Step: 0.2},
		Theme:     "dark",
	}
}
