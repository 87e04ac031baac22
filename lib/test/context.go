package test

import (
	"context"
	"testing"

	"github.com/outofforest/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Context returns new context with logger recording all the entries.
func Context(t *testing.T) (context.Context, *observer.ObservedLogs) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	core, logs := observer.New(zap.DebugLevel)
	return logger.WithLogger(ctx, zap.New(core)), logs
}
