package kit

import "go.uber.org/zap"

// NewLogger builds a production logger tagged with the service name.
// Unrecognized level strings fall back to info.
func NewLogger(service, level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{"service": service}

	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}

	l, _ := cfg.Build()
	return l
}
