// Package seed loads the static reference data: the ingredient catalog from a
// csv file of "name,measurement_unit" rows and the tag catalog from a yaml
// file. Both loads are idempotent upserts.
package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/platform/slugify"
	"github.com/sic15/foodgram-project-react/internal/repos"
	"github.com/sic15/foodgram-project-react/internal/types"
)

type Seeder struct {
	db             *gorm.DB
	log            *logger.Logger
	ingredientRepo repos.IngredientRepo
	tagRepo        repos.TagRepo
}

func NewSeeder(db *gorm.DB, log *logger.Logger, ingredientRepo repos.IngredientRepo, tagRepo repos.TagRepo) *Seeder {
	seedLog := log.With("component", "Seeder")
	return &Seeder{db: db, log: seedLog, ingredientRepo: ingredientRepo, tagRepo: tagRepo}
}

func (s *Seeder) LoadIngredientsCSV(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening ingredients csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	var ingredients []*types.Ingredient
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading ingredients csv: %w", err)
		}
		name, unit := record[0], record[1]
		if !types.ValidMeasurementUnit(unit) {
			return fmt.Errorf("ingredient %q: unknown measurement unit %q", name, unit)
		}
		ingredients = append(ingredients, &types.Ingredient{Name: name, MeasurementUnit: unit})
	}

	if err := s.ingredientRepo.Upsert(ctx, nil, ingredients); err != nil {
		return fmt.Errorf("upserting ingredients: %w", err)
	}
	s.log.Info("Ingredient catalog seeded", "count", len(ingredients), "path", path)
	return nil
}

type tagSeedFile struct {
	Tags []struct {
		Name  string `yaml:"name"`
		Color string `yaml:"color"`
	} `yaml:"tags"`
}

// LoadTagsYAML seeds the tag catalog. Slugs are derived from names here, not
// read from the file.
func (s *Seeder) LoadTagsYAML(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("opening tags yaml: %w", err)
	}
	var parsed tagSeedFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parsing tags yaml: %w", err)
	}

	tags := make([]*types.Tag, 0, len(parsed.Tags))
	for _, entry := range parsed.Tags {
		slug := slugify.Slug(entry.Name)
		if slug == "" {
			return fmt.Errorf("tag %q produces an empty slug", entry.Name)
		}
		tags = append(tags, &types.Tag{Name: entry.Name, Color: entry.Color, Slug: slug})
	}

	if err := s.tagRepo.Upsert(ctx, nil, tags); err != nil {
		return fmt.Errorf("upserting tags: %w", err)
	}
	s.log.Info("Tag catalog seeded", "count", len(tags), "path", path)
	return nil
}
