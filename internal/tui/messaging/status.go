package messaging

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/fmgr/internal/tui/theme"
)

// MessageType represents different message types for status display
type MessageType int

// Message type constants
const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// StatusManager manages the status line under the row list
type StatusManager interface {
	SetMessage(message string, msgType MessageType)
	SetError(action string, err error)
	ClearMessage()
	GetMessage() (string, MessageType, bool)
	HasMessage() bool
	Since() time.Duration
	RenderMessage(width int) string
}

// StatusManagerImpl implements the StatusManager interface
type StatusManagerImpl struct {
	statusMessage string
	messageType   MessageType
	messageTimer  time.Time
	now           func() time.Time
}

// NewStatusManager creates a new status manager instance
func NewStatusManager() StatusManager {
	return &StatusManagerImpl{
		messageType: MessageInfo,
		now:         time.Now,
	}
}

// SetMessage sets a status message with type
func (sm *StatusManagerImpl) SetMessage(message string, msgType MessageType) {
	sm.statusMessage = message
	sm.messageType = msgType
	sm.messageTimer = sm.now()

	logrus.Debugf("StatusManager: message='%s', type=%d", message, msgType)
}

// SetError shows a failed action
func (sm *StatusManagerImpl) SetError(action string, err error) {
	sm.SetMessage(fmt.Sprintf("%s failed: %v", action, err), MessageError)
}

// ClearMessage clears the status message
func (sm *StatusManagerImpl) ClearMessage() {
	sm.statusMessage = ""
}

// GetMessage returns the current message, type, and whether a message exists
func (sm *StatusManagerImpl) GetMessage() (string, MessageType, bool) {
	return sm.statusMessage, sm.messageType, sm.statusMessage != ""
}

// HasMessage returns whether there is currently a status message
func (sm *StatusManagerImpl) HasMessage() bool {
	return sm.statusMessage != ""
}

// Since returns how long the current message has been shown
func (sm *StatusManagerImpl) Since() time.Duration {
	if !sm.HasMessage() {
		return 0
	}
	return sm.now().Sub(sm.messageTimer)
}

// RenderMessage renders the current status message, clipped to width when positive
func (sm *StatusManagerImpl) RenderMessage(width int) string {
	if !sm.HasMessage() {
		return ""
	}

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetMessageColor(int(sm.messageType)))).
		Bold(true)
	if width > 0 {
		messageStyle = messageStyle.MaxWidth(width)
	}

	icon := theme.GetMessageIcon(int(sm.messageType))
	return messageStyle.Render(fmt.Sprintf("%s %s", icon, sm.statusMessage))
}
