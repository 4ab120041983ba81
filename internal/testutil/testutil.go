package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"omibyte.io/cordic/peripheral/cordic"
	"omibyte.io/cordic/sim"
)

func Logger(t testing.TB) *zap.Logger {
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	return l
}

func Context(t testing.TB) context.Context {
	ctx := context.Background()
	ctx, cf := context.WithCancel(ctx)
	t.Cleanup(cf)
	ctx = logctx.NewContext(ctx, Logger(t))
	return ctx
}

// NewDevice returns a simulated device logging to the development logger.
func NewDevice(t testing.TB) *sim.Device {
	return sim.New(Logger(t))
}

// NewCORDIC returns a driver with its clock enabled, running on a fresh
// simulated device.
func NewCORDIC[T cordic.Word](t testing.TB) (*cordic.CORDIC[T], *sim.Device) {
	dev := NewDevice(t)
	c := cordic.New[T](dev)
	c.EnableClock()
	return c, dev
}
