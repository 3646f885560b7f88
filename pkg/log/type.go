package log

import "go.uber.org/zap"

// ZapConfig holds configuration for the zap logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

// zapLogger implements Logger on top of zap.SugaredLogger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}
