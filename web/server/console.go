package server

import (
	"fmt"
	"log"
	"time"

	"github.com/embeddr/raytracer-go/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by sending messages to a console channel
// in addition to the server log
type WebLogger struct {
	connID      string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific viewer connection
func NewWebLogger(connID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		connID:      connID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to the server log
	log.Printf("[%s] %s", wl.connID, message)

	// Send to the viewer console if the channel has room (never block a
	// render pass on a slow client)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		}:
		default:
		}
	}
}
