package core

// Logger is any leveled logging service.
// args may carry errors or extra context values; implementations decide
// how to report them.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
