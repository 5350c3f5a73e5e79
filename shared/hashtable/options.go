package hashtable

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// Option configures a HashTable.
type Option func(*options)

// WithLogger makes the table report growth through logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
