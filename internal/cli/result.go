package cli

import "github.com/thenoetrevino/shsenroll/internal/cli/styles"

// MessageResult is the outcome of a command that only acknowledges an action
type MessageResult struct {
	ID      string `json:"id,omitempty"`
	Action  string `json:"action"`
	Message string `json:"message"`
}

// GetID implements IDGetter for quiet mode output
func (r *MessageResult) GetID() string {
	return r.ID
}

// Human implements HumanRenderer
func (r *MessageResult) Human() string {
	if r.Action == ActionCancelled {
		return styles.SubtitleStyle.Render(r.Message)
	}
	return styles.SuccessStyle.Render("✓") + " " + r.Message
}

// Actions reported by MessageResult
const (
	ActionDeleted   = "deleted"
	ActionDropped   = "dropped"
	ActionUpdated   = "updated"
	ActionCancelled = "cancelled"
)

// Cancelled reports that the user declined a confirmation
func Cancelled(id string) *MessageResult {
	return &MessageResult{ID: id, Action: ActionCancelled, Message: "Cancelled"}
}
