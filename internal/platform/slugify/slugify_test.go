package slugify

import "testing"

func TestSlug(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Breakfast", want: "breakfast"},
		{name: "spaces", in: "Slow Cooking", want: "slow-cooking"},
		{name: "underscores", in: "slow_cooking", want: "slow-cooking"},
		{name: "cyrillic", in: "Завтрак", want: "zavtrak"},
		{name: "cyrillic_multichar", in: "Щи", want: "shchi"},
		{name: "cyrillic_phrase", in: "Быстрый ужин", want: "bystryj-uzhin"},
		{name: "diacritics", in: "Entrée", want: "entree"},
		{name: "punctuation", in: "Dinner!!!", want: "dinner"},
		{name: "collapse_dashes", in: "a  -  b", want: "a-b"},
		{name: "trim_dashes", in: "--vegan--", want: "vegan"},
		{name: "emoji_dropped", in: "🍕 Pizza", want: "pizza"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Slug(tc.in)
			if got != tc.want {
				t.Fatalf("Slug(%q)=%q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
