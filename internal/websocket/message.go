package websocket

import "fmt"

// Message is a realtime change notification. It names the table and the
// action but carries no row payload; subscribers react by refetching.
type Message struct {
	Type   string `json:"type"`
	Table  string `json:"table"`
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
	UserID string `json:"user_id,omitempty"`
}

// NewMessage creates a Message with the Type field derived from table and action.
func NewMessage(table, action, id string) Message {
	return Message{
		Type:   fmt.Sprintf("%s_%s", table, action),
		Table:  table,
		Action: action,
		ID:     id,
	}
}

// Subscription is a client-declared filter over change notifications: one
// table, one event (or "*" for all), and optionally a user id for rows that
// are user-scoped. A client holding no subscriptions receives everything.
type Subscription struct {
	Table  string `json:"table"`
	Event  string `json:"event"`
	UserID string `json:"user_id,omitempty"`
}

// Matches reports whether msg passes the subscription's filter.
func (s Subscription) Matches(msg Message) bool {
	if s.Table != msg.Table {
		return false
	}
	if s.Event != "" && s.Event != "*" && s.Event != msg.Action {
		return false
	}
	if s.UserID != "" && msg.UserID != "" && s.UserID != msg.UserID {
		return false
	}
	return true
}
