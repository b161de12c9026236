package shopping

// RawIngredient is an ingredient exactly as a recipe supplies it: either a
// free-text line ("400g de pâtes") or a structured triple. Quantity and unit
// may be absent.
type RawIngredient struct {
	Text     string   `json:"text,omitempty"`
	Name     string   `json:"name,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
}

// ParsedIngredient is the structured form of a raw ingredient, tagged with
// the recipe it came from. Quantity is non-negative; Unit is a vocabulary
// token or UnitUnknown.
type ParsedIngredient struct {
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	SourceRecipe string  `json:"source_recipe"`
}

// Recipe is a named list of raw ingredients, as produced by the recipe
// discovery collaborator.
type Recipe struct {
	Name        string          `json:"name"`
	Ingredients []RawIngredient `json:"ingredients"`
}

// Contribution records one recipe's share of a consolidated item. Counted is
// false when the entry's unit family is incompatible with the item's unit and
// the quantity was therefore kept out of the numeric total.
type Contribution struct {
	RecipeName       string  `json:"recipe_name"`
	OriginalQuantity float64 `json:"original_quantity"`
	OriginalUnit     string  `json:"original_unit"`
	Counted          bool    `json:"counted"`
}

// ConsolidatedItem is one line of the consolidated shopping list.
type ConsolidatedItem struct {
	DisplayName         string         `json:"display_name"`
	TotalQuantity       float64        `json:"total_quantity"`
	Unit                string         `json:"unit"`
	ContributingRecipes []Contribution `json:"contributing_recipes"`
	IsConsolidated      bool           `json:"is_consolidated"`
}

// ConsolidatedList is the consolidation result plus summary statistics.
type ConsolidatedList struct {
	Items                  []ConsolidatedItem `json:"items"`
	TotalItems             int                `json:"total_items"`
	ConsolidatedItemsCount int                `json:"consolidated_items_count"`
	RecipeCount            int                `json:"recipe_count"`
}
