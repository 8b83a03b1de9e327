package hlc

// Logger receives diagnostics from a Clock and from the envelope helpers.
// Field and Err return a derived logger carrying the extra context.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	Field(key string, value interface{}) Logger
	Err(err error) Logger
}

// NullLogger discards everything, it is the default for new clocks.
type NullLogger struct{}

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Debugf(string, ...interface{}) {}
func (l *NullLogger) Infof(string, ...interface{})  {}
func (l *NullLogger) Warnf(string, ...interface{})  {}
func (l *NullLogger) Errorf(string, ...interface{}) {}

func (l *NullLogger) Field(string, interface{}) Logger { return l }
func (l *NullLogger) Err(error) Logger                 { return l }

var _ Logger = (*NullLogger)(nil)
