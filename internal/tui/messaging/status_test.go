package messaging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusManager_Lifecycle(t *testing.T) {
	sm := NewStatusManager()
	assert.False(t, sm.HasMessage())
	assert.Equal(t, "", sm.RenderMessage(0))

	sm.SetMessage("Renamed a.txt", MessageSuccess)
	msg, msgType, ok := sm.GetMessage()
	assert.True(t, ok)
	assert.Equal(t, "Renamed a.txt", msg)
	assert.Equal(t, MessageSuccess, msgType)
	assert.Contains(t, sm.RenderMessage(0), "Renamed a.txt")

	sm.ClearMessage()
	assert.False(t, sm.HasMessage())
	assert.Equal(t, time.Duration(0), sm.Since())
}

func TestStatusManager_SetError(t *testing.T) {
	sm := NewStatusManager()
	sm.SetError("Open docs", errors.New("permission denied"))

	msg, msgType, ok := sm.GetMessage()
	assert.True(t, ok)
	assert.Equal(t, "Open docs failed: permission denied", msg)
	assert.Equal(t, MessageError, msgType)
}

func TestStatusManager_Since(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	sm := &StatusManagerImpl{now: func() time.Time { return now }}

	sm.SetMessage("hello", MessageInfo)
	now = start.Add(2 * time.Second)
	assert.Equal(t, 2*time.Second, sm.Since())
}
