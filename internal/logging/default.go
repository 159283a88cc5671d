package logging

var logger *LeveledLogger

// SetLogger sets the package logger read by GetLogger.
func SetLogger(l *LeveledLogger) {
	logger = l
}

func GetLogger() *LeveledLogger {
	if logger == nil {
		panic("Trying to get nil logger!")
	}
	return logger
}
