package multimap

import log "github.com/sirupsen/logrus"

type options struct {
	logger *log.Entry
}

type Option func(*options)

// WithLogger sets the entry used for bucket lifecycle debug logs.
func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: log.WithFields(log.Fields{"component": "multimap"}),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
