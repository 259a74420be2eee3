package domain

import (
	"strconv"
	"strings"
)

// ItemType classifies a candidate item and selects which detail
// struct is populated on it
type ItemType string

const (
	ItemTypeFood     ItemType = "food"
	ItemTypeBeverage ItemType = "beverage"
	ItemTypeWine     ItemType = "wine"
)

// Valid reports whether t is one of the known item types
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeFood, ItemTypeBeverage, ItemTypeWine:
		return true
	}
	return false
}

// Priority returns the display ordering weight for the type.
// Wine categories are surfaced first, then beverages, then food;
// anything unrecognized sorts last.
func (t ItemType) Priority() int {
	switch t {
	case ItemTypeWine:
		return 0
	case ItemTypeBeverage:
		return 1
	case ItemTypeFood:
		return 2
	default:
		return 3
	}
}

// CandidateItem is one extracted, not-yet-committed menu entry.
// Name, Category and Type are always present; exactly one of the
// detail pointers matching Type may be set, the others are nil.
type CandidateItem struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Type         ItemType `json:"itemType"`
	Price        float64  `json:"price,omitempty"`
	Description  string   `json:"description,omitempty"`
	Confidence   int      `json:"confidence"` // extraction confidence 0-100
	OriginalText string   `json:"originalText,omitempty"`

	Food     *FoodDetails     `json:"food,omitempty"`
	Beverage *BeverageDetails `json:"beverage,omitempty"`
	Wine     *WineDetails     `json:"wine,omitempty"`
}

// FoodDetails carries the food-specific optional fields
type FoodDetails struct {
	Ingredients    []string `json:"ingredients,omitempty"`
	CookingMethods []string `json:"cookingMethods,omitempty"`
	Allergens      []string `json:"allergens,omitempty"`
	IsVegetarian   bool     `json:"isVegetarian,omitempty"`
	IsVegan        bool     `json:"isVegan,omitempty"`
	IsGlutenFree   bool     `json:"isGlutenFree,omitempty"`
	IsDairyFree    bool     `json:"isDairyFree,omitempty"`
	IsSpicy        bool     `json:"isSpicy,omitempty"`
}

// BeverageDetails carries the beverage-specific optional fields
type BeverageDetails struct {
	SpiritType          string   `json:"spiritType,omitempty"`
	BeerStyle           string   `json:"beerStyle,omitempty"`
	CocktailIngredients []string `json:"cocktailIngredients,omitempty"`
	AlcoholContent      string   `json:"alcoholContent,omitempty"`
	ServingStyle        string   `json:"servingStyle,omitempty"`
	Temperature         string   `json:"temperature,omitempty"`
	IsNonAlcoholic      bool     `json:"isNonAlcoholic,omitempty"`
}

// WineDetails carries the wine-specific optional fields
type WineDetails struct {
	Vintage        string          `json:"vintage,omitempty"`
	Producer       string          `json:"producer,omitempty"`
	Region         string          `json:"region,omitempty"`
	GrapeVariety   []string        `json:"grapeVariety,omitempty"`
	WineColor      string          `json:"wineColor,omitempty"`
	ServingOptions []ServingOption `json:"servingOptions,omitempty"`
}

// ServingOption is a wine pour size with its price
type ServingOption struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// ParsePrice converts a price string from the extraction service into
// a float. Currency symbols and whitespace are stripped first. An
// unparsable value coerces to 0 rather than failing: the extraction
// output is noisy and a bad price is cheaper to fix in the editor
// than to lose the whole item over.
func ParsePrice(s string) float64 {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimLeft(cleaned, "$£€¥ ")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}
