package discord

import (
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandTime atomic.Int64 // unix nanos
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandTime.Store(time.Now().UnixNano())
}

// Health summarizes the gateway connection and command traffic
func (b *Bot) Health() HealthStatus {
	connected := b.Session != nil && b.Session.DataReady

	status := "healthy"
	if !connected {
		status = "degraded"
	}

	var last time.Time
	if ns := lastCommandTime.Load(); ns != 0 {
		last = time.Unix(0, ns)
	}

	return HealthStatus{
		Status:           status,
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		LastCommandTime:  last,
	}
}
