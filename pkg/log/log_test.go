package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })
	SetupTestLogger()
	return &buf
}

func TestConfigure(t *testing.T) {
	level, err := Configure("warn")
	assert.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, level)
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	level, err = Configure("barulhento")
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, level)
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{
		"collection":  "leads",
		"document_id": "abc",
		"remote_addr": "127.0.0.1",
	}).Info("mensagem")

	out := buf.String()
	assert.Contains(t, out, "collection=leads")
	assert.Contains(t, out, "document_id=abc")
	assert.NotContains(t, out, "remote_addr")
}

func TestWithField_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithField("remote_addr", "127.0.0.1").Info("mensagem")

	assert.Contains(t, buf.String(), "remote_addr=127.0.0.1")
}

func TestCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	ForContext(ctx).Info("mensagem")
	assert.Contains(t, buf.String(), "correlation_id="+id)
}
