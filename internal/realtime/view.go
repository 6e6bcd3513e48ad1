// Package realtime keeps a client-side copy of the menu consistent with the
// server. The view holds two state layers: the committed state from the last
// successful fetch, and a pending overlay of locally-applied edits that have
// not been confirmed. The overlay wins until the next successful fetch
// replaces everything — a change notification arriving mid-edit discards
// unsaved local state by design (last fetch wins).
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/masagus/menuku/internal/model"
)

// Table names used in change notifications.
const (
	TableMenuItems    = "menu_items"
	TableUserSettings = "user_settings"
)

// Fetcher loads current server state. Implementations wrap whatever
// transport the client uses to reach the service.
type Fetcher interface {
	FetchMenu(ctx context.Context) ([]model.MenuItem, error)
	FetchSettings(ctx context.Context, userID string) (*model.UserSettings, error)
}

// MenuView is the reconciled menu state for one tenant.
type MenuView struct {
	fetcher Fetcher
	userID  string
	logger  *slog.Logger

	mu         sync.Mutex
	committed  []model.MenuItem
	pending    []model.MenuItem
	hasPending bool
	settings   model.UserSettings
}

func NewMenuView(fetcher Fetcher, userID string, logger *slog.Logger) *MenuView {
	return &MenuView{
		fetcher: fetcher,
		userID:  userID,
		logger:  logger,
	}
}

// Refresh re-fetches the entire menu and settings, retrying transient
// failures with exponential backoff. On success the committed state is
// replaced and any pending overlay is dropped. Notifications carry no delta
// payload, so this is always a full fetch, never an incremental merge.
func (v *MenuView) Refresh(ctx context.Context) error {
	var items []model.MenuItem
	var settings *model.UserSettings

	backoff := retry.WithMaxRetries(3, retry.NewExponential(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		items, err = v.fetcher.FetchMenu(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		settings, err = v.fetcher.FetchSettings(ctx, v.userID)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.committed = items
	v.pending = nil
	v.hasPending = false
	if settings != nil {
		v.settings = *settings
	}
	v.mu.Unlock()
	return nil
}

// OnChange handles a change notification for the given table. Settings
// changes refresh only the settings row; any menu change triggers a full
// refresh. Failures are logged and leave the view on its prior state — the
// next notification or manual refresh catches up.
func (v *MenuView) OnChange(ctx context.Context, table string) {
	if table == TableUserSettings {
		settings, err := v.fetcher.FetchSettings(ctx, v.userID)
		if err != nil {
			v.logger.Warn("refetch settings", "error", err)
			return
		}
		if settings != nil {
			v.mu.Lock()
			v.settings = *settings
			v.mu.Unlock()
		}
		return
	}

	if err := v.Refresh(ctx); err != nil {
		v.logger.Warn("refetch menu", "table", table, "error", err)
	}
}

// ApplyLocal applies an optimistic edit on top of the currently visible
// items. The result becomes the pending overlay; it is shown until the next
// successful fetch overwrites it.
func (v *MenuView) ApplyLocal(edit func(items []model.MenuItem) []model.MenuItem) {
	v.mu.Lock()
	defer v.mu.Unlock()

	base := v.committed
	if v.hasPending {
		base = v.pending
	}
	snapshot := make([]model.MenuItem, len(base))
	copy(snapshot, base)

	v.pending = edit(snapshot)
	v.hasPending = true
}

// Items returns the currently visible item list: the pending overlay when
// local edits exist, the committed state otherwise.
func (v *MenuView) Items() []model.MenuItem {
	v.mu.Lock()
	defer v.mu.Unlock()

	src := v.committed
	if v.hasPending {
		src = v.pending
	}
	out := make([]model.MenuItem, len(src))
	copy(out, src)
	return out
}

// HasPending reports whether unconfirmed local edits are being shown.
func (v *MenuView) HasPending() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.hasPending
}

// Settings returns the last-fetched settings for the view's tenant.
func (v *MenuView) Settings() model.UserSettings {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.settings
}
