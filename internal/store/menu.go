package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/masagus/menuku/internal/model"
)

// MenuStore persists menu items. Storage columns keep the backend's native
// casing (Harga, Deskripsi, Kategori, foto_url, "order"); all mapping to the
// domain model happens here.
type MenuStore struct {
	db *sql.DB
}

func NewMenuStore(db *sql.DB) *MenuStore {
	return &MenuStore{db: db}
}

const menuCols = `id, name, Harga, Deskripsi, Kategori, foto_url, "order", created_at`

func scanMenuItem(scanner interface{ Scan(...any) error }) (*model.MenuItem, error) {
	var m model.MenuItem
	err := scanner.Scan(
		&m.ID, &m.Name, &m.Price, &m.Description, &m.Category,
		&m.ImageURL, &m.Position, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all menu items in display order.
func (s *MenuStore) List() ([]model.MenuItem, error) {
	rows, err := s.db.Query(`SELECT ` + menuCols + ` FROM menu_items ORDER BY "order" ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *MenuStore) GetByID(id string) (*model.MenuItem, error) {
	row := s.db.QueryRow(`SELECT `+menuCols+` FROM menu_items WHERE id = ?`, id)
	item, err := scanMenuItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

// Create inserts a new item at the end of the list. The id is assigned here;
// the position is one past the current maximum.
func (s *MenuStore) Create(name string, price int64, description, category, imageURL string) (*model.MenuItem, error) {
	var maxPos int
	err := s.db.QueryRow(`SELECT COALESCE(MAX("order"), -1) FROM menu_items`).Scan(&maxPos)
	if err != nil {
		return nil, fmt.Errorf("query max order: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO menu_items (id, name, Harga, Deskripsi, Kategori, foto_url, "order") VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, name, price, description, category, imageURL, maxPos+1,
	)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}

	return s.GetByID(id)
}

func (s *MenuStore) Update(id, name string, price int64, description, category, imageURL string) (*model.MenuItem, error) {
	_, err := s.db.Exec(
		`UPDATE menu_items SET name = ?, Harga = ?, Deskripsi = ?, Kategori = ?, foto_url = ? WHERE id = ?`,
		name, price, description, category, imageURL, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return s.GetByID(id)
}

func (s *MenuStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}

// UpdateDisplayOrder persists position i for the item at ids[i]. Updates are
// issued one row at a time in list order and the first failure is returned
// as-is; rows already written stay written. Callers are expected to refetch
// after an error rather than assume a consistent order.
func (s *MenuStore) UpdateDisplayOrder(ids []string) error {
	stmt, err := s.db.Prepare(`UPDATE menu_items SET "order" = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("prepare stmt: %w", err)
	}
	defer stmt.Close()

	for i, id := range ids {
		if _, err := stmt.Exec(i, id); err != nil {
			return fmt.Errorf("update order for item %s: %w", id, err)
		}
	}
	return nil
}

// Stats returns the item count and the summed catalog price, for the
// dashboard overview.
func (s *MenuStore) Stats() (count int, totalValue int64, err error) {
	err = s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(Harga), 0) FROM menu_items`).Scan(&count, &totalValue)
	if err != nil {
		return 0, 0, fmt.Errorf("menu stats: %w", err)
	}
	return count, totalValue, nil
}
