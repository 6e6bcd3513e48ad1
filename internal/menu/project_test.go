package menu

import (
	"reflect"
	"testing"

	"github.com/masagus/menuku/internal/model"
)

func sampleItems() []model.MenuItem {
	return []model.MenuItem{
		{ID: "1", Name: "Kopi Susu Aren", Description: "Kopi dengan gula aren", Category: "Minuman"},
		{ID: "2", Name: "Nasi Goreng", Description: "Pedas level 1-5", Category: "Makanan"},
		{ID: "3", Name: "Es Teh", Description: "Manis atau tawar", Category: "Minuman"},
		{ID: "4", Name: "Brownies", Description: "Cokelat premium", Category: "Dessert"},
	}
}

func ids(items []model.MenuItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestProjectNoFilters(t *testing.T) {
	items := sampleItems()

	for _, filter := range []string{"", AllCategories} {
		got := Project(items, "", filter)
		if !reflect.DeepEqual(ids(got), []string{"1", "2", "3", "4"}) {
			t.Errorf("Project(items, %q, %q) changed order or membership: %v", "", filter, ids(got))
		}
	}
}

func TestProjectIdempotent(t *testing.T) {
	items := sampleItems()

	once := Project(items, "kopi", "Minuman")
	twice := Project(once, "kopi", "Minuman")
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second projection differs: %v vs %v", ids(once), ids(twice))
	}
}

func TestProjectCategoryExactMatch(t *testing.T) {
	items := sampleItems()

	got := Project(items, "", "Minuman")
	if !reflect.DeepEqual(ids(got), []string{"1", "3"}) {
		t.Errorf("category filter = %v, want [1 3]", ids(got))
	}

	// Case-sensitive: lowercase does not match
	if got := Project(items, "", "minuman"); len(got) != 0 {
		t.Errorf("lowercase category matched %d items, want 0", len(got))
	}
}

func TestProjectSearchNameOrDescription(t *testing.T) {
	items := sampleItems()

	// Matches name, case-insensitively
	got := Project(items, "KOPI", "")
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Errorf("search KOPI = %v, want [1]", ids(got))
	}

	// Matches description only
	got = Project(items, "tawar", "")
	if !reflect.DeepEqual(ids(got), []string{"3"}) {
		t.Errorf("search tawar = %v, want [3]", ids(got))
	}
}

func TestProjectFiltersCompose(t *testing.T) {
	items := sampleItems()

	got := Project(items, "manis", "Minuman")
	if !reflect.DeepEqual(ids(got), []string{"3"}) {
		t.Errorf("composed filters = %v, want [3]", ids(got))
	}

	// Search hit outside the category yields nothing
	if got := Project(items, "brownies", "Minuman"); len(got) != 0 {
		t.Errorf("expected empty result, got %v", ids(got))
	}
}

func TestProjectEmptyInput(t *testing.T) {
	got := Project(nil, "anything", "Makanan")
	if len(got) != 0 {
		t.Errorf("expected empty projection, got %d items", len(got))
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	got := Categories(sampleItems())
	want := []string{AllCategories, "Minuman", "Makanan", "Dessert"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories = %v, want %v", got, want)
	}
}

func TestCategoriesEmpty(t *testing.T) {
	got := Categories(nil)
	if !reflect.DeepEqual(got, []string{AllCategories}) {
		t.Errorf("Categories(nil) = %v, want just the sentinel", got)
	}
}
