package store

import (
	"testing"

	"github.com/masagus/menuku/internal/database"
	"github.com/masagus/menuku/internal/model"
)

const seededUser = "user_unique_id_123"

func setupSettingsTestDB(t *testing.T) *SettingsStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSettingsStore(db)
}

func TestSettingsSeedRow(t *testing.T) {
	ss := setupSettingsTestDB(t)

	settings, err := ss.Get(seededUser)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings == nil {
		t.Fatal("expected seeded settings row")
	}
	if settings.Template != model.TemplateColorful {
		t.Errorf("template = %q, want %q", settings.Template, model.TemplateColorful)
	}
	if settings.WhatsAppNumber != "082229081327" {
		t.Errorf("whatsapp_number = %q", settings.WhatsAppNumber)
	}
}

func TestSettingsUnknownUser(t *testing.T) {
	ss := setupSettingsTestDB(t)

	settings, err := ss.Get("nobody")
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings != nil {
		t.Error("expected nil for unknown user")
	}
}

func TestUpdateTemplate(t *testing.T) {
	ss := setupSettingsTestDB(t)

	if err := ss.UpdateTemplate(seededUser, model.TemplateMinimalist); err != nil {
		t.Fatalf("update template: %v", err)
	}

	settings, err := ss.Get(seededUser)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings.Template != model.TemplateMinimalist {
		t.Errorf("template = %q, want %q", settings.Template, model.TemplateMinimalist)
	}
	if settings.WhatsAppNumber != "082229081327" {
		t.Errorf("template update must not touch the number, got %q", settings.WhatsAppNumber)
	}
}

func TestUpdateWhatsApp(t *testing.T) {
	ss := setupSettingsTestDB(t)

	if err := ss.UpdateWhatsApp(seededUser, "081234567890"); err != nil {
		t.Fatalf("update whatsapp: %v", err)
	}

	settings, err := ss.Get(seededUser)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings.WhatsAppNumber != "081234567890" {
		t.Errorf("whatsapp_number = %q, want %q", settings.WhatsAppNumber, "081234567890")
	}
	if settings.Template != model.TemplateColorful {
		t.Errorf("number update must not touch the template, got %q", settings.Template)
	}
}

func TestUpdateCreatesRowForNewUser(t *testing.T) {
	ss := setupSettingsTestDB(t)

	if err := ss.UpdateTemplate("new-user", model.TemplateMinimalist); err != nil {
		t.Fatalf("update template: %v", err)
	}

	settings, err := ss.Get("new-user")
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings == nil {
		t.Fatal("expected row created by upsert")
	}
	if settings.Template != model.TemplateMinimalist {
		t.Errorf("template = %q, want %q", settings.Template, model.TemplateMinimalist)
	}
}
