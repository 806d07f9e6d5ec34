package main

import "strings"

// IngredientProperties carries the dietary flags for one ingredient.
// Restriction flags (vegetarian, vegan, kosher, halal) default to true
// and are cleared when a disqualifying category matches.
type IngredientProperties struct {
	IsMeat             bool     `json:"is_meat"`
	IsPoultry          bool     `json:"is_poultry"`
	IsFish             bool     `json:"is_fish"`
	IsSeafood          bool     `json:"is_seafood"`
	IsDairy            bool     `json:"is_dairy"`
	IsEgg              bool     `json:"is_egg"`
	IsGlutenContaining bool     `json:"is_gluten_containing"`
	IsNut              bool     `json:"is_nut"`
	IsSoy              bool     `json:"is_soy"`
	IsVegetarian       bool     `json:"is_vegetarian"`
	IsVegan            bool     `json:"is_vegan"`
	IsKosher           bool     `json:"is_kosher"`
	IsHalal            bool     `json:"is_halal"`
	Allergens          []string `json:"allergens"`
}

// NodeProperties flattens the flags into a map for parameterized Cypher.
func (p IngredientProperties) NodeProperties() map[string]any {
	allergens := p.Allergens
	if allergens == nil {
		allergens = []string{}
	}
	return map[string]any{
		"is_meat":              p.IsMeat,
		"is_poultry":           p.IsPoultry,
		"is_fish":              p.IsFish,
		"is_seafood":           p.IsSeafood,
		"is_dairy":             p.IsDairy,
		"is_egg":               p.IsEgg,
		"is_gluten_containing": p.IsGlutenContaining,
		"is_nut":               p.IsNut,
		"is_soy":               p.IsSoy,
		"is_vegetarian":        p.IsVegetarian,
		"is_vegan":             p.IsVegan,
		"is_kosher":            p.IsKosher,
		"is_halal":             p.IsHalal,
		"allergens":            allergens,
	}
}

// IngredientClassifier assigns dietary properties by keyword matching.
// It is stateless after construction and safe for concurrent use.
type IngredientClassifier struct {
	meat      map[string]struct{}
	poultry   map[string]struct{}
	fish      map[string]struct{}
	seafood   map[string]struct{}
	dairy     map[string]struct{}
	egg       map[string]struct{}
	gluten    map[string]struct{}
	nut       map[string]struct{}
	soy       map[string]struct{}
	pork      map[string]struct{}
	shellfish map[string]struct{}
}

func NewIngredientClassifier() *IngredientClassifier {
	return &IngredientClassifier{
		meat:      BuildMeatKeywords(),
		poultry:   BuildPoultryKeywords(),
		fish:      BuildFishKeywords(),
		seafood:   BuildSeafoodKeywords(),
		dairy:     BuildDairyKeywords(),
		egg:       BuildEggKeywords(),
		gluten:    BuildGlutenKeywords(),
		nut:       BuildNutKeywords(),
		soy:       BuildSoyKeywords(),
		pork:      BuildPorkKeywords(),
		shellfish: BuildShellfishKeywords(),
	}
}

func matchesAny(name string, keywords map[string]struct{}) bool {
	for keyword := range keywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

// Classify returns the dietary properties for one ingredient name. The
// function is pure; equal inputs always yield equal results.
func (c *IngredientClassifier) Classify(ingredient string) IngredientProperties {
	name := strings.ToLower(strings.TrimSpace(ingredient))

	props := IngredientProperties{
		IsVegetarian: true,
		IsVegan:      true,
		IsKosher:     true,
		IsHalal:      true,
	}

	props.IsMeat = matchesAny(name, c.meat)
	if matchesAny(name, c.poultry) {
		props.IsPoultry = true
		props.IsMeat = true
	}
	props.IsFish = matchesAny(name, c.fish)
	props.IsSeafood = matchesAny(name, c.seafood)
	props.IsDairy = matchesAny(name, c.dairy)
	props.IsEgg = matchesAny(name, c.egg)
	props.IsGlutenContaining = matchesAny(name, c.gluten)
	props.IsNut = matchesAny(name, c.nut)
	props.IsSoy = matchesAny(name, c.soy)

	if matchesAny(name, c.pork) {
		props.IsKosher = false
		props.IsHalal = false
	}
	if matchesAny(name, c.shellfish) {
		props.IsKosher = false
	}

	if props.IsMeat || props.IsPoultry || props.IsFish || props.IsSeafood {
		props.IsVegetarian = false
		props.IsVegan = false
	}
	if props.IsDairy || props.IsEgg {
		props.IsVegan = false
	}

	if props.IsDairy {
		props.Allergens = append(props.Allergens, "dairy")
	}
	if props.IsEgg {
		props.Allergens = append(props.Allergens, "egg")
	}
	if props.IsGlutenContaining {
		props.Allergens = append(props.Allergens, "gluten")
	}
	if props.IsNut {
		props.Allergens = append(props.Allergens, "nuts")
	}
	if props.IsSoy {
		props.Allergens = append(props.Allergens, "soy")
	}
	if props.IsFish {
		props.Allergens = append(props.Allergens, "fish")
	}
	if props.IsSeafood {
		props.Allergens = append(props.Allergens, "shellfish")
	}

	return props
}

// ClassifyBatch classifies each name once, keyed by the raw input.
func (c *IngredientClassifier) ClassifyBatch(ingredients []string) map[string]IngredientProperties {
	out := make(map[string]IngredientProperties, len(ingredients))
	for _, ingredient := range ingredients {
		if _, ok := out[ingredient]; ok {
			continue
		}
		out[ingredient] = c.Classify(ingredient)
	}
	return out
}
