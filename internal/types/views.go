package types

import "github.com/google/uuid"

// Read projections. These are the denormalized API output shapes; they are
// assembled by the services, never persisted.

type UserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsSubscribed bool      `json:"is_subscribed"`
}

// IngredientAmountView joins an ingredient with its amount in one recipe:
// name and unit come from the catalog row, amount from the join row.
type IngredientAmountView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
	Amount          int       `json:"amount"`
}

type TagView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Slug  string    `json:"slug"`
}

type RecipeView struct {
	ID               uuid.UUID              `json:"id"`
	Author           UserView               `json:"author"`
	Tags             []TagView              `json:"tags"`
	Ingredients      []IngredientAmountView `json:"ingredients"`
	Name             string                 `json:"name"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
	Image            string                 `json:"image"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
}

// RecipeMinimalView is the short shape returned by the favorite/cart toggles
// and embedded in subscription previews.
type RecipeMinimalView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CookingTime int       `json:"cooking_time"`
	Image       string    `json:"image"`
}

type SubscriptionView struct {
	ID           uuid.UUID           `json:"id"`
	Email        string              `json:"email"`
	Username     string              `json:"username"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	IsSubscribed bool                `json:"is_subscribed"`
	Recipes      []RecipeMinimalView `json:"recipes"`
	RecipesCount int64               `json:"recipes_count"`
}

func (t *Tag) View() TagView {
	return TagView{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

func (u *User) View(isSubscribed bool) UserView {
	return UserView{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}

func (r *Recipe) MinimalView() RecipeMinimalView {
	return RecipeMinimalView{ID: r.ID, Name: r.Name, CookingTime: r.CookingTime, Image: r.Image}
}
