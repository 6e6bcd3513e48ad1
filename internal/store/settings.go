package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/masagus/menuku/internal/model"
)

type SettingsStore struct {
	db *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the settings row for the given user, or nil when none exists.
func (s *SettingsStore) Get(userID string) (*model.UserSettings, error) {
	var us model.UserSettings
	err := s.db.QueryRow(
		`SELECT user_id, template, whatsapp_number, updated_at FROM user_settings WHERE user_id = ?`,
		userID,
	).Scan(&us.UserID, &us.Template, &us.WhatsAppNumber, &us.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings for %q: %w", userID, err)
	}
	return &us, nil
}

// UpdateTemplate stores the presentation template choice for the user.
func (s *SettingsStore) UpdateTemplate(userID, template string) error {
	_, err := s.db.Exec(
		`INSERT INTO user_settings (user_id, template, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET template = excluded.template, updated_at = excluded.updated_at`,
		userID, template, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update template for %q: %w", userID, err)
	}
	return nil
}

// UpdateWhatsApp stores the checkout destination number for the user.
func (s *SettingsStore) UpdateWhatsApp(userID, number string) error {
	_, err := s.db.Exec(
		`INSERT INTO user_settings (user_id, whatsapp_number, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET whatsapp_number = excluded.whatsapp_number, updated_at = excluded.updated_at`,
		userID, number, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update whatsapp number for %q: %w", userID, err)
	}
	return nil
}
