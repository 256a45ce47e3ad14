package gcview

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLogger(&out, &errOut, "view", false)

	l.Debugf("hidden %d", 1)
	l.Infof("loaded %d layers", 120)
	l.Warnf("slow frame")
	l.Errorf("lost context")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[view] INFO: loaded 120 layers")
	assert.Contains(t, errOut.String(), "[view] WARN: slow frame")
	assert.Contains(t, errOut.String(), "[view] ERROR: lost context")

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 2)
	assert.Contains(t, out.String(), "[view] DEBUG: shown 2")
}

func TestDefaultLoggerWith(t *testing.T) {
	var out bytes.Buffer
	base := NewLogger(&out, &out, "", true)
	base.Infof("plain")
	assert.Contains(t, out.String(), "INFO: plain")
	assert.NotContains(t, out.String(), "[")

	child := base.With("glfw").With("input")
	child.Debugf("key")
	assert.Contains(t, out.String(), "[glfw input] DEBUG: key")
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.SetDebug(true)
	assert.False(t, l.DebugEnabled())
	l.Errorf("ignored %v", nil)
}
