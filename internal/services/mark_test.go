package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/types"
)

func (te *testEnv) seedRecipe(t *testing.T, author *types.User) *types.RecipeView {
	t.Helper()
	tag := te.seedTag(t, "dish-"+uuid.NewString()[:8])
	beet := te.seedIngredient(t, "beet-"+uuid.NewString()[:8], types.UnitGram)
	view, err := te.recipes.Create(ctxAs(author.ID), validInput(tag, map[*types.Ingredient]int{beet: 100}))
	if err != nil {
		t.Fatalf("seeding recipe: %v", err)
	}
	return view
}

func TestAddMarkTwiceRejectsSecond(t *testing.T) {
	for _, kind := range []types.MarkKind{types.MarkFavorite, types.MarkCart} {
		t.Run(string(kind), func(t *testing.T) {
			te := newTestEnv(t)
			author := te.seedUser(t, "alice")
			fan := te.seedUser(t, "bob")
			recipe := te.seedRecipe(t, author)

			minimal, err := te.marks.Add(ctxAs(fan.ID), recipe.ID, kind)
			if err != nil {
				t.Fatalf("first add: %v", err)
			}
			if minimal.ID != recipe.ID || minimal.Name != recipe.Name {
				t.Fatalf("unexpected minimal view: %+v", minimal)
			}

			_, err = te.marks.Add(ctxAs(fan.ID), recipe.ID, kind)
			apiErr, ok := apierr.As(err)
			if !ok || apiErr.Code != apierr.CodeAlreadyExists {
				t.Fatalf("second add: expected already-exists, got %v", err)
			}

			var count int64
			te.db.Model(&types.UserRecipeMark{}).
				Where("user_id = ? AND recipe_id = ? AND kind = ?", fan.ID, recipe.ID, kind).
				Count(&count)
			if count != 1 {
				t.Fatalf("mark rows: got=%d want=1", count)
			}
		})
	}
}

func TestRemoveMarkThenReAdd(t *testing.T) {
	te := newTestEnv(t)
	author := te.seedUser(t, "alice")
	fan := te.seedUser(t, "bob")
	recipe := te.seedRecipe(t, author)

	if _, err := te.marks.Add(ctxAs(fan.ID), recipe.ID, types.MarkFavorite); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := te.marks.Remove(ctxAs(fan.ID), recipe.ID, types.MarkFavorite); err != nil {
		t.Fatalf("remove: %v", err)
	}
	// After removal the mark can be set again.
	if _, err := te.marks.Add(ctxAs(fan.ID), recipe.ID, types.MarkFavorite); err != nil {
		t.Fatalf("re-add: %v", err)
	}
}

func TestRemoveAbsentMarkRejected(t *testing.T) {
	te := newTestEnv(t)
	author := te.seedUser(t, "alice")
	fan := te.seedUser(t, "bob")
	recipe := te.seedRecipe(t, author)

	err := te.marks.Remove(ctxAs(fan.ID), recipe.ID, types.MarkCart)
	apiErr, ok := apierr.As(err)
	if !ok || apiErr.Code != apierr.CodeBadRequest {
		t.Fatalf("expected rejection with errors payload, got %v", err)
	}
}

func TestMarkKindsAreIndependent(t *testing.T) {
	te := newTestEnv(t)
	author := te.seedUser(t, "alice")
	fan := te.seedUser(t, "bob")
	recipe := te.seedRecipe(t, author)

	if _, err := te.marks.Add(ctxAs(fan.ID), recipe.ID, types.MarkFavorite); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	// The same pair can also go into the cart.
	if _, err := te.marks.Add(ctxAs(fan.ID), recipe.ID, types.MarkCart); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	// Removing one kind leaves the other.
	if err := te.marks.Remove(ctxAs(fan.ID), recipe.ID, types.MarkFavorite); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}
	view, err := te.recipes.Get(ctxAs(fan.ID), recipe.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.IsFavorited || !view.IsInShoppingCart {
		t.Fatalf("flags after partial removal: favorited=%v cart=%v", view.IsFavorited, view.IsInShoppingCart)
	}
}

func TestAddMarkOnMissingRecipe(t *testing.T) {
	te := newTestEnv(t)
	fan := te.seedUser(t, "bob")

	_, err := te.marks.Add(ctxAs(fan.ID), uuid.New(), types.MarkFavorite)
	apiErr, ok := apierr.As(err)
	if !ok || apiErr.Code != apierr.CodeBadRequest {
		t.Fatalf("expected bad request for missing recipe, got %v", err)
	}

	err = te.marks.Remove(ctxAs(fan.ID), uuid.New(), types.MarkFavorite)
	if apiErr, ok := apierr.As(err); !ok || apiErr.Code != apierr.CodeNotFound {
		t.Fatalf("expected not found on remove, got %v", err)
	}
}
