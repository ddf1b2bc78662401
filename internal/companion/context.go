// Package companion is the boundary to the external text-generation service.
// The engine pushes a small context summary in; replies come back as plain
// strings. Any failure on the external side degrades to a deterministic local
// fallback, so callers never observe an error.
package companion

import "fmt"

// Role of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Context is the engine-state summary consumed by the text service.
type Context struct {
	UserName        string
	ProgressPercent int
	Completed       int
	Total           int
}

// BuildContext is a pure transformation of engine state; no side effects.
func BuildContext(progressPercent, completed, total int, userName string) Context {
	if progressPercent < 0 {
		progressPercent = 0
	}
	if progressPercent > 100 {
		progressPercent = 100
	}
	if userName == "" {
		userName = "traveler"
	}
	return Context{
		UserName:        userName,
		ProgressPercent: progressPercent,
		Completed:       completed,
		Total:           total,
	}
}

// SystemPrompt renders the context as the system instruction for the external
// call.
func (c Context) SystemPrompt() string {
	return fmt.Sprintf(
		"You are Ember, a warm, concise companion inside a habit-tracking game. "+
			"The player is %s. Today they have completed %d of %d habits (%d%% of the day's progress). "+
			"Encourage without lecturing, reference their actual progress, and keep replies under three sentences.",
		c.UserName, c.Completed, c.Total, c.ProgressPercent)
}
