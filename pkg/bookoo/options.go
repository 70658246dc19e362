package bookoo

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DecodeOptions configures decoding.
type DecodeOptions struct {
	// Logger receives soft-failure warnings and unknown-format debug
	// messages. Nil discards them.
	Logger logrus.FieldLogger
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

func (opts DecodeOptions) logger() logrus.FieldLogger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return discard
}
