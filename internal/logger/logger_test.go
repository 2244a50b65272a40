package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestFromContextAddsRequestAndUser(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { Init("test") })

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "user-1")
	CtxInfo(ctx, "hello")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"user_id":"user-1"`)
	assert.Contains(t, out, `"msg":"hello"`)
}

func TestGormLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { Init("test") })

	gl := NewGormLogger("production", 10*time.Millisecond)
	sql := func() (string, int64) { return "SELECT 1", 1 }

	gl.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found must not be logged as an error")

	gl.Trace(context.Background(), time.Now(), sql, errors.New("boom"))
	assert.Contains(t, buf.String(), "database query failed")

	buf.Reset()
	gl.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
	assert.Contains(t, buf.String(), "slow database query")

	buf.Reset()
	gl.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), sql, errors.New("boom"))
	assert.Empty(t, buf.String())
}
