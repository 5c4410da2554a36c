package logger

var (
	FlagVerboseCount int  // -V, -VV
	FlagQuiet        bool // --quiet/-q
	FlagJSON         bool // --json, for CI
)

// ConfigureLoggerFromFlags applies the global flags, keeping the current writer.
func ConfigureLoggerFromFlags() {
	level := "info"
	switch {
	case FlagQuiet:
		level = "error"
	case FlagVerboseCount > 0:
		level = "debug"
	}

	Configure(Options{
		Level: level,
		JSON:  FlagJSON,
		Color: !FlagJSON,
		Out:   Out(),
	})
}
