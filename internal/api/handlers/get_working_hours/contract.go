package get_working_hours

type Logger interface {
	Info(format string, v ...interface{})
}
