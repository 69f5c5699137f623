package log

import "github.com/sirupsen/logrus"

// Logger is the minimal logging facade used throughout the module.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger backed by logrus at info level.
func New() Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// NewDebug returns a Logger backed by logrus with debug output
// enabled.
func NewDebug() Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	l.SetLevel(logrus.DebugLevel)
	return l
}
