package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/types"
)

func TestTagCatalog(t *testing.T) {
	te := newTestEnv(t)
	dinner := te.seedTag(t, "Dinner")
	te.seedTag(t, "Breakfast")

	view, err := te.tags.Get(context.Background(), dinner.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Slug != "dinner" || view.Color != dinner.Color {
		t.Fatalf("unexpected tag view: %+v", view)
	}

	views, err := te.tags.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("tag list: got=%d want=2", len(views))
	}

	_, err = te.tags.Get(context.Background(), uuid.New())
	if apiErr, ok := apierr.As(err); !ok || apiErr.Code != apierr.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestIngredientSearchIsCaseInsensitivePrefixless(t *testing.T) {
	te := newTestEnv(t)
	te.seedIngredient(t, "Sea salt", types.UnitGram)
	te.seedIngredient(t, "salted butter", types.UnitGram)
	te.seedIngredient(t, "sugar", types.UnitGram)

	views, err := te.ingredients.List(context.Background(), "SALT")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("substring search: got=%d want=2", len(views))
	}

	all, err := te.ingredients.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("full list: got=%d want=3", len(all))
	}
}

func TestUserViewsCarrySubscriptionFlag(t *testing.T) {
	te := newTestEnv(t)
	author := te.seedUser(t, "alice")
	follower := te.seedUser(t, "bob")
	if _, err := te.subscriptions.Subscribe(ctxAs(follower.ID), author.ID, 0); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	view, err := te.users.Get(ctxAs(follower.ID), author.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !view.IsSubscribed {
		t.Fatalf("follower must see is_subscribed=true")
	}

	// The author does not follow anyone.
	reverse, err := te.users.Get(ctxAs(author.ID), follower.ID)
	if err != nil {
		t.Fatalf("reverse get: %v", err)
	}
	if reverse.IsSubscribed {
		t.Fatalf("subscription flag leaked in the reverse direction")
	}

	me, err := te.users.GetMe(ctxAs(follower.ID))
	if err != nil {
		t.Fatalf("get me: %v", err)
	}
	if me.ID != follower.ID || me.IsSubscribed {
		t.Fatalf("unexpected me view: %+v", me)
	}
}

func TestGetMissingUser(t *testing.T) {
	te := newTestEnv(t)
	viewer := te.seedUser(t, "bob")

	_, err := te.users.Get(ctxAs(viewer.ID), uuid.New())
	if apiErr, ok := apierr.As(err); !ok || apiErr.Code != apierr.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
