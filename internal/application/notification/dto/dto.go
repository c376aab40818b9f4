// Package dto defines the response shapes of the notification API.
package dto

// NotificationResponse includes both the raw message and, when the message
// contains markup, the sanitized HTML rendering for display.
type NotificationResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	MessageHTML string `json:"message_html,omitempty"`
	Severity    string `json:"severity"`
	Read        bool   `json:"read"`
	CreatedAt   string `json:"created_at"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
