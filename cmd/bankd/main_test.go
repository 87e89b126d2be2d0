package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/JoeShih716/go-bank-records/internal/config"
)

func TestLogFailure_FlushesBufferedEntries(t *testing.T) {
	var buf bytes.Buffer
	ws := &zapcore.BufferedWriteSyncer{WS: zapcore.AddSync(&buf)}
	t.Cleanup(func() { _ = ws.Stop() })
	log := zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), ws, zap.InfoLevel))

	logFailure(log, errors.New("listen tcp: address in use"))

	assert.Contains(t, buf.String(), "bankd stopped")
	assert.Contains(t, buf.String(), "address in use")
}

func TestRun_ReturnsListenError(t *testing.T) {
	cfg := &config.Config{
		GRPC:  config.GRPCConfig{Addr: "127.0.0.1:-1"},
		Store: config.StoreConfig{Driver: config.StoreMemory},
	}
	err := run(cfg, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
