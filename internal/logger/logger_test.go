package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLogger_CapturesMessages(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("probing %s", "rover-1")
	l.Info("check done")
	l.Warn("slow response")
	l.Error("spawn failed: %v", "no such file")

	assert.Len(t, l.Messages, 4)
	assert.Equal(t, "probing rover-1", l.Messages[0].Message)
	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.Equal(t, "error", l.Messages[3].Level)
	assert.Equal(t, "spawn failed: no such file", l.Messages[3].Message)
}

func TestBufferLogger_HasLevel(t *testing.T) {
	l := NewBufferLogger()
	l.Warn("heads up")

	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("error"))
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("one")
	l.Info("two")
	l.Clear()

	assert.Empty(t, l.Messages)
}

func TestNoop_DiscardsEverything(t *testing.T) {
	l := Noop()

	// Must not panic or block
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Info("routed")

	assert.Len(t, buf.Messages, 1)
	assert.Equal(t, "routed", buf.Messages[0].Message)
}
