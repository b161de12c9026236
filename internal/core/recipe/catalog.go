package recipe

import (
	"strings"

	"smart-shopping/internal/core/shopping"
)

// Recipe is a catalog entry with its ingredient list ready for consolidation.
type Recipe struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Servings        int                      `json:"servings"`
	PrepTimeMinutes int                      `json:"prepTime"`
	Difficulty      string                   `json:"difficulty"`
	Source          string                   `json:"source"`
	Tags            []string                 `json:"tags"`
	Ingredients     []shopping.RawIngredient `json:"ingredients"`
}

func qty(v float64) *float64 { return &v }

func ing(name string, quantity float64, unit string) shopping.RawIngredient {
	return shopping.RawIngredient{Name: name, Quantity: qty(quantity), Unit: unit}
}

// catalog is the built-in recipe collection served by Search.
var catalog = []Recipe{
	{
		ID: "pates-carbonara", Name: "Pâtes à la carbonara",
		Servings: 4, PrepTimeMinutes: 20, Difficulty: "Facile",
		Source: "catalog", Tags: []string{"pâtes", "classique"},
		Ingredients: []shopping.RawIngredient{
			ing("spaghetti", 400, "g"),
			ing("lardons fumés", 200, "g"),
			ing("œufs", 3, "unité"),
			ing("parmesan râpé", 100, "g"),
		},
	},
	{
		ID: "riz-pilaf-legumes", Name: "Riz pilaf aux légumes",
		Servings: 4, PrepTimeMinutes: 30, Difficulty: "Facile",
		Source: "catalog", Tags: []string{"riz", "légumes"},
		Ingredients: []shopping.RawIngredient{
			ing("riz basmati", 300, "g"),
			ing("bouillon de volaille", 600, "ml"),
			ing("carotte", 1, "unité"),
			ing("petits pois", 100, "g"),
		},
	},
	{
		ID: "wrap-poulet-caesar", Name: "Wrap au poulet caesar",
		Servings: 4, PrepTimeMinutes: 25, Difficulty: "Facile",
		Source: "catalog", Tags: []string{"wraps", "poulet"},
		Ingredients: []shopping.RawIngredient{
			ing("tortillas de blé", 4, "unité"),
			ing("blanc de poulet", 300, "g"),
			ing("salade iceberg", 1, "unité"),
			ing("tomates cerises", 150, "g"),
			ing("parmesan", 50, "g"),
			ing("sauce césar", 4, "cuillère à soupe"),
		},
	},
	{
		ID: "wrap-vegetarien-avocat", Name: "Wrap végétarien à l'avocat",
		Servings: 4, PrepTimeMinutes: 15, Difficulty: "Facile",
		Source: "catalog", Tags: []string{"wraps", "végétarien"},
		Ingredients: []shopping.RawIngredient{
			ing("wraps complets", 4, "unité"),
			ing("avocat", 2, "unité"),
			ing("feta", 100, "g"),
			ing("concombre", 1, "unité"),
			ing("tomates", 2, "unité"),
			ing("houmous", 100, "g"),
		},
	},
	{
		ID: "wrap-saumon-fume", Name: "Wrap saumon fumé",
		Servings: 4, PrepTimeMinutes: 15, Difficulty: "Facile",
		Source: "catalog", Tags: []string{"wraps", "poisson"},
		Ingredients: []shopping.RawIngredient{
			ing("tortillas", 4, "unité"),
			ing("saumon fumé", 120, "g"),
			ing("fromage frais", 100, "g"),
			ing("roquette", 50, "g"),
			ing("concombre", 1, "unité"),
			ing("aneth", 5, "g"),
		},
	},
	{
		ID: "burger-classique-boeuf", Name: "Burger classique au bœuf",
		Servings: 4, PrepTimeMinutes: 30, Difficulty: "Facile",
		Source: "catalog", Tags: []string{"burger", "bœuf"},
		Ingredients: []shopping.RawIngredient{
			ing("pains à burger", 4, "unité"),
			ing("steaks hachés", 4, "unité"),
			ing("cheddar", 4, "tranche"),
			ing("salade", 4, "unité"),
			ing("tomate", 1, "unité"),
			ing("oignon", 1, "unité"),
			ing("sauce burger", 4, "cuillère à soupe"),
		},
	},
	{
		ID: "burger-poulet-grille", Name: "Burger de poulet grillé",
		Servings: 4, PrepTimeMinutes: 30, Difficulty: "Facile",
		Source: "catalog", Tags: []string{"burger", "poulet"},
		Ingredients: []shopping.RawIngredient{
			ing("pains briochés", 4, "unité"),
			ing("blanc de poulet", 4, "unité"),
			ing("avocat", 1, "unité"),
			ing("roquette", 50, "g"),
			ing("tomates", 2, "unité"),
			ing("mayo", 3, "cuillère à soupe"),
		},
	},
	{
		ID: "salade-quinoa-legumes", Name: "Salade de quinoa aux légumes",
		Servings: 4, PrepTimeMinutes: 20, Difficulty: "Facile",
		Source: "catalog", Tags: []string{"salade", "végétarien"},
		Ingredients: []shopping.RawIngredient{
			ing("quinoa", 200, "g"),
			ing("tomates cerises", 250, "g"),
			ing("concombre", 1, "unité"),
			ing("feta", 150, "g"),
			ing("avocat", 1, "unité"),
			ing("menthe fraîche", 10, "g"),
		},
	},
	{
		ID: "salade-chevre-chaud", Name: "Salade de chèvre chaud",
		Servings: 4, PrepTimeMinutes: 20, Difficulty: "Facile",
		Source: "catalog", Tags: []string{"salade", "fromage"},
		Ingredients: []shopping.RawIngredient{
			ing("mesclun", 150, "g"),
			ing("crottin de chèvre", 2, "unité"),
			ing("pain de mie", 4, "tranche"),
			ing("noix", 50, "g"),
			ing("miel", 2, "cuillère à soupe"),
			ing("vinaigrette", 3, "cuillère à soupe"),
		},
	},
	{
		ID: "tarte-tomate-moutarde", Name: "Tarte à la tomate et moutarde",
		Servings: 4, PrepTimeMinutes: 40, Difficulty: "Facile",
		Source: "catalog", Tags: []string{"tarte", "tomates"},
		Ingredients: []shopping.RawIngredient{
			ing("pâte feuilletée", 1, "unité"),
			ing("tomates", 4, "unité"),
			ing("moutarde", 2, "cuillère à soupe"),
			ing("gruyère râpé", 150, "g"),
			ing("huile d'olive", 1, "cuillère à soupe"),
		},
	},
	{
		ID: "gratin-pommes-de-terre", Name: "Gratin de pommes de terre",
		Servings: 4, PrepTimeMinutes: 60, Difficulty: "Facile",
		Source: "catalog", Tags: []string{"gratin", "pommes de terre"},
		Ingredients: []shopping.RawIngredient{
			ing("pommes de terre", 1.2, "kg"),
			ing("crème fraîche", 200, "ml"),
			ing("gruyère", 150, "g"),
			ing("ail", 2, "gousse"),
			ing("muscade", 1, "pincée"),
		},
	},
	{
		ID: "salade-caprese", Name: "Salade caprese",
		Servings: 2, PrepTimeMinutes: 10, Difficulty: "Facile",
		Source: "catalog", Tags: []string{"salade", "italien"},
		Ingredients: []shopping.RawIngredient{
			ing("tomates cerises", 200, "g"),
			ing("mozzarella", 125, "g"),
			ing("basilic", 10, "g"),
			ing("huile d'olive", 2, "cuillère à soupe"),
		},
	},
}

// Catalog returns a copy of the full built-in recipe list.
func Catalog() []Recipe {
	out := make([]Recipe, len(catalog))
	copy(out, catalog)
	return out
}

// matches reports whether the recipe matches the folded query, comparing
// accent-insensitively against name, tags and ingredient names.
func (r Recipe) matches(folded string) bool {
	if folded == "" {
		return true
	}
	if strings.Contains(foldText(r.Name), folded) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(foldText(tag), folded) {
			return true
		}
	}
	for _, item := range r.Ingredients {
		if strings.Contains(foldText(item.Name), folded) {
			return true
		}
	}
	return false
}
