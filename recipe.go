package slate

import "github.com/df-mc/dragonfly/server/item"

// Recipe turns input items into a result on a crafting grid.
type Recipe interface {
	// Result returns the stack produced by the recipe.
	Result() item.Stack
}

// ShapedRecipe is a recipe whose inputs must match a fixed grid layout.
type ShapedRecipe interface {
	Recipe

	// Dimensions returns the width and height of the input grid.
	Dimensions() (width, height int)

	// Ingredient returns the stack required at the given grid cell. The
	// second return is false for empty cells.
	Ingredient(x, y int) (item.Stack, bool)
}

// ShapelessRecipe is a recipe whose inputs may be arranged freely.
type ShapelessRecipe interface {
	Recipe

	// Ingredients returns the required input stacks.
	Ingredients() []item.Stack
}

// RecipeRegistry holds the recipes known to the runtime.
type RecipeRegistry interface {
	// Register adds a recipe.
	Register(r Recipe) error

	// Recipes returns all registered recipes.
	Recipes() []Recipe

	// FindByResult returns the recipes producing an item comparable to
	// result, ignoring the count.
	FindByResult(result item.Stack) []Recipe

	// Remove deletes a recipe and reports whether it was registered.
	Remove(r Recipe) bool
}

// ShapedRecipeBuilder assembles a ShapedRecipe. Obtain one through
// CreateBuilder.
type ShapedRecipeBuilder interface {
	ResettableBuilder[ShapedRecipeBuilder]

	// Dimensions sets the grid size. Width and height must be between 1
	// and 3.
	Dimensions(width, height int) ShapedRecipeBuilder

	// Ingredient sets the stack required at a grid cell.
	Ingredient(x, y int, stack item.Stack) ShapedRecipeBuilder

	// Result sets the produced stack.
	Result(stack item.Stack) ShapedRecipeBuilder

	// Build creates the recipe. It fails when the result is missing or a
	// cell lies outside the grid.
	Build() (ShapedRecipe, error)
}

// ShapelessRecipeBuilder assembles a ShapelessRecipe. Obtain one through
// CreateBuilder.
type ShapelessRecipeBuilder interface {
	ResettableBuilder[ShapelessRecipeBuilder]

	// Ingredients appends required input stacks. At least one is needed
	// to build.
	Ingredients(stacks ...item.Stack) ShapelessRecipeBuilder

	// Result sets the produced stack.
	Result(stack item.Stack) ShapelessRecipeBuilder

	// Build creates the recipe. It fails when the result or all
	// ingredients are missing.
	Build() (ShapelessRecipe, error)
}
