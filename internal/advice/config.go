package advice

// Config tunes advice generation.
type Config struct {
	// MaxCourses caps how many ranked results are shown to the model.
	MaxCourses  int
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the settings used by the CLI and the API.
func DefaultConfig() Config {
	return Config{
		MaxCourses:  5,
		MaxTokens:   800,
		Temperature: 0.4,
	}
}
