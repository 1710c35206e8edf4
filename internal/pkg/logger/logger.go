// Package logger provides the leveled logger shared by processors, services and binaries.
package logger

// Logger is a leveled logger taking fmt.Sprint style arguments.
// Fatal exits the process and Panic panics after logging.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
