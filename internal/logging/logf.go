package logging

// Debugf, Infof, Warnf and Errorf log a formatted message at the named
// level through the package-level logger. Logf is a plain info-level
// line for call sites (mostly tests) that don't care about severity.
func Debugf(format string, args ...any) {
	l := get()
	l.Debug().Msgf(format, args...)
}

func Infof(format string, args ...any) {
	l := get()
	l.Info().Msgf(format, args...)
}

func Warnf(format string, args ...any) {
	l := get()
	l.Warn().Msgf(format, args...)
}

func Errorf(format string, args ...any) {
	l := get()
	l.Error().Msgf(format, args...)
}

func Logf(format string, args ...any) {
	l := get()
	l.Info().Msgf(format, args...)
}
