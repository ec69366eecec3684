package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLogger() (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.JSONFormatter{})
	return New(base), buf
}

func TestWithFields_DevelopmentKeepsSyncFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	logger, buf := captureLogger()

	logger.WithFields(Fields{
		"account_id":  "acc-1",
		"chunk_type":  "structure",
		"remote_addr": "10.0.0.1",
	}).Info("chunk")

	out := buf.String()
	assert.Contains(t, out, `"account_id":"acc-1"`)
	assert.Contains(t, out, `"chunk_type":"structure"`)
	assert.NotContains(t, out, "remote_addr")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	logger, buf := captureLogger()

	logger.WithField("remote_addr", "10.0.0.1").Info("req")

	assert.Contains(t, buf.String(), `"remote_addr":"10.0.0.1"`)
}

func TestCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	ctx, id := ContextWithCorrelationID(context.Background(), "abc")
	assert.Equal(t, "abc", id)
	assert.Equal(t, "abc", GetCorrelationID(ctx))

	_, generated := ContextWithCorrelationID(context.Background(), "")
	assert.NotEmpty(t, generated)

	assert.Empty(t, GetCorrelationID(context.Background()))

	logger, buf := captureLogger()
	logger.WithContext(ctx).Info("ok")
	assert.Contains(t, buf.String(), `"correlation_id":"abc"`)
}
