package model

import "time"

// Presentation templates selectable for the public preview page.
const (
	TemplateColorful   = "Colorful"
	TemplateMinimalist = "Minimalist"
)

// ValidTemplate reports whether name is a known presentation template.
func ValidTemplate(name string) bool {
	return name == TemplateColorful || name == TemplateMinimalist
}

// UserSettings holds the per-tenant preview configuration: the presentation
// template and the WhatsApp number customers check out to.
type UserSettings struct {
	UserID         string    `json:"user_id"`
	Template       string    `json:"template"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	UpdatedAt      time.Time `json:"updated_at"`
}
