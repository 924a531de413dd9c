package get_services

type Logger interface {
	Info(format string, v ...interface{})
}
