package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sic15/foodgram-project-react/internal/db"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/repos"
	"github.com/sic15/foodgram-project-react/internal/types"
)

func newSeeder(t *testing.T) (*Seeder, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrapping sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	log := logger.NewNop()
	return NewSeeder(gdb, log, repos.NewIngredientRepo(gdb, log), repos.NewTagRepo(gdb, log)), gdb
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadIngredientsCSV(t *testing.T) {
	seeder, gdb := newSeeder(t)
	path := writeFile(t, "ingredients.csv", "beet,g\nmilk,ml\nbeet,kg\n")

	if err := seeder.LoadIngredientsCSV(context.Background(), path); err != nil {
		t.Fatalf("load: %v", err)
	}

	var count int64
	gdb.Model(&types.Ingredient{}).Count(&count)
	if count != 3 {
		t.Fatalf("ingredient rows: got=%d want=3", count)
	}

	// Reloading the same file is a no-op, not a failure.
	if err := seeder.LoadIngredientsCSV(context.Background(), path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	gdb.Model(&types.Ingredient{}).Count(&count)
	if count != 3 {
		t.Fatalf("ingredient rows after reload: got=%d want=3", count)
	}
}

func TestLoadIngredientsCSVRejectsUnknownUnit(t *testing.T) {
	seeder, gdb := newSeeder(t)
	path := writeFile(t, "ingredients.csv", "beet,g\nmystery,handful\n")

	if err := seeder.LoadIngredientsCSV(context.Background(), path); err == nil {
		t.Fatalf("expected an error for an unknown unit")
	}
	// Nothing is written when the file is rejected.
	var count int64
	gdb.Model(&types.Ingredient{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected file persisted %d rows", count)
	}
}

func TestLoadTagsYAML(t *testing.T) {
	seeder, gdb := newSeeder(t)
	path := writeFile(t, "tags.yaml", `tags:
  - name: Завтрак
    color: "#E26C2D"
  - name: Dinner
    color: "#49B64E"
`)

	if err := seeder.LoadTagsYAML(context.Background(), path); err != nil {
		t.Fatalf("load: %v", err)
	}

	var tags []types.Tag
	if err := gdb.Order("slug").Find(&tags).Error; err != nil {
		t.Fatalf("fetching tags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("tag rows: got=%d want=2", len(tags))
	}
	if tags[0].Slug != "dinner" || tags[1].Slug != "zavtrak" {
		t.Fatalf("unexpected slugs: %q %q", tags[0].Slug, tags[1].Slug)
	}

	// Reloading updates in place, keyed by slug.
	repainted := writeFile(t, "tags.yaml", `tags:
  - name: Dinner
    color: "#000000"
`)
	if err := seeder.LoadTagsYAML(context.Background(), repainted); err != nil {
		t.Fatalf("reload: %v", err)
	}
	var dinner types.Tag
	if err := gdb.Where("slug = ?", "dinner").First(&dinner).Error; err != nil {
		t.Fatalf("fetching dinner: %v", err)
	}
	if dinner.Color != "#000000" {
		t.Fatalf("color after reload: got=%q", dinner.Color)
	}
	var count int64
	gdb.Model(&types.Tag{}).Count(&count)
	if count != 2 {
		t.Fatalf("tag rows after reload: got=%d want=2", count)
	}
}

func TestLoadTagsYAMLRejectsEmptySlug(t *testing.T) {
	seeder, _ := newSeeder(t)
	path := writeFile(t, "tags.yaml", `tags:
  - name: "!!!"
    color: "#FFFFFF"
`)
	if err := seeder.LoadTagsYAML(context.Background(), path); err == nil {
		t.Fatalf("expected an error for a name with no sluggable characters")
	}
}
