package logger

// Logger defines the logging interface shared by every component.
// Arguments are concatenated the way fmt.Sprint does.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
