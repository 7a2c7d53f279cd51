package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	SetupTestLogger()

	original := logrus.StandardLogger().Out
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(original) })

	return buf
}

func TestCorrelationID_RoundTrip(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_IncludesCorrelationID(t *testing.T) {
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("mensagem")

	assert.Contains(t, buf.String(), id)
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{"month": "2025-04", "irrelevante": "x"}).Info("filtrado")

	out := buf.String()
	assert.Contains(t, out, "month=2025-04")
	assert.NotContains(t, out, "irrelevante")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithFields(Fields{"irrelevante": "x"}).Info("completo")

	assert.Contains(t, buf.String(), "irrelevante=x")
}

func TestConfigure_InvalidLevel(t *testing.T) {
	level := Configure("barulhento")
	assert.Equal(t, logrus.InfoLevel, level)

	level = Configure("debug")
	assert.Equal(t, logrus.DebugLevel, level)
}
