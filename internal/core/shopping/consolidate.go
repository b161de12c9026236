package shopping

import (
	"fmt"
	"strings"

	"smart-shopping/internal/pkg/common"
)

// Consolidate merges the ingredient lists of the given recipes into one
// shopping list. Entries whose canonical keys match are grouped; quantities
// are summed in the group's canonical unit. The call is pure: it holds no
// state between invocations and only reads the immutable lookup tables, so
// concurrent calls need no coordination.
//
// The only failure mode is a caller contract violation: a recipe without a
// name or without an ingredients field. Malformed ingredient lines never fail
// the call; they degrade per Parse.
func Consolidate(recipes []Recipe) (*ConsolidatedList, error) {
	for i, recipe := range recipes {
		if strings.TrimSpace(recipe.Name) == "" {
			return nil, common.NewValidationError(fmt.Sprintf("recipe %d: missing name", i))
		}
		if recipe.Ingredients == nil {
			return nil, common.NewValidationError(fmt.Sprintf("recipe %d (%s): missing ingredients", i, recipe.Name))
		}
	}

	// groups in insertion order of first occurrence
	order := make([]string, 0, len(recipes)*4)
	groups := make(map[string]*ConsolidatedItem)
	recipeNames := make(map[string]struct{})

	for _, recipe := range recipes {
		for _, raw := range recipe.Ingredients {
			parsed := Parse(raw, recipe.Name)
			key := Canonicalize(parsed.Name)

			item, ok := groups[key]
			if !ok {
				item = &ConsolidatedItem{
					DisplayName: parsed.Name,
					// the first entry establishes the dominant unit family
					Unit: CanonicalUnit(parsed.Unit),
				}
				groups[key] = item
				order = append(order, key)
			}

			converted, compatible := Convert(parsed.Quantity, parsed.Unit, item.Unit)
			if compatible {
				item.TotalQuantity += converted
			}
			// incompatible entries stay visible in provenance but are kept
			// out of the numeric total
			item.ContributingRecipes = append(item.ContributingRecipes, Contribution{
				RecipeName:       parsed.SourceRecipe,
				OriginalQuantity: parsed.Quantity,
				OriginalUnit:     parsed.Unit,
				Counted:          compatible,
			})
			recipeNames[recipe.Name] = struct{}{}
		}
	}

	list := &ConsolidatedList{
		Items:       make([]ConsolidatedItem, 0, len(order)),
		RecipeCount: len(recipeNames),
	}
	for _, key := range order {
		item := groups[key]
		item.IsConsolidated = len(item.ContributingRecipes) > 1
		if item.IsConsolidated {
			list.ConsolidatedItemsCount++
		}
		list.Items = append(list.Items, *item)
	}
	list.TotalItems = len(list.Items)

	return list, nil
}
