package extraction

import (
	"encoding/json"
	"strings"

	"github.com/menucraft/backend/internal/domain"
)

// Wire types for the extraction service response. Field values are
// heterogeneous: prices arrive as numbers or strings depending on how
// the document was parsed, and the type-specific fields are flattened
// onto each item.
type parseResponse struct {
	MenuName        string     `json:"menuName"`
	Items           []wireItem `json:"items"`
	TotalItemsFound int        `json:"totalItemsFound"`
	ProcessingNotes []string   `json:"processingNotes"`
}

type wireItem struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	ItemType     string          `json:"itemType"`
	Price        json.RawMessage `json:"price"`
	Description  string          `json:"description"`
	Confidence   int             `json:"confidence"`
	OriginalText string          `json:"originalText"`

	// food fields
	Ingredients    []string `json:"ingredients"`
	CookingMethods []string `json:"cookingMethods"`
	Allergens      []string `json:"allergens"`
	IsVegetarian   bool     `json:"isVegetarian"`
	IsVegan        bool     `json:"isVegan"`
	IsGlutenFree   bool     `json:"isGlutenFree"`
	IsDairyFree    bool     `json:"isDairyFree"`
	IsSpicy        bool     `json:"isSpicy"`

	// beverage fields
	SpiritType          string   `json:"spiritType"`
	BeerStyle           string   `json:"beerStyle"`
	CocktailIngredients []string `json:"cocktailIngredients"`
	AlcoholContent      string   `json:"alcoholContent"`
	ServingStyle        string   `json:"servingStyle"`
	Temperature         string   `json:"temperature"`
	IsNonAlcoholic      bool     `json:"isNonAlcoholic"`

	// wine fields
	Vintage        string           `json:"vintage"`
	Producer       string           `json:"producer"`
	Region         string           `json:"region"`
	GrapeVariety   []string         `json:"grapeVariety"`
	WineColor      string           `json:"wineColor"`
	ServingOptions []wireServingOpt `json:"servingOptions"`
}

type wireServingOpt struct {
	Size  string          `json:"size"`
	Price json.RawMessage `json:"price"`
}

// MapToParseResult converts the wire response into the domain model.
// Items missing a name or category are dropped; the extraction output
// is best-effort and a row without its required fields cannot be
// edited meaningfully. TotalItemsFound is recomputed so it always
// equals the kept item count.
func MapToParseResult(resp *parseResponse) *domain.ParseResult {
	items := make([]domain.CandidateItem, 0, len(resp.Items))
	for _, wi := range resp.Items {
		if strings.TrimSpace(wi.Name) == "" || strings.TrimSpace(wi.Category) == "" {
			continue
		}
		items = append(items, mapItem(wi))
	}

	return &domain.ParseResult{
		MenuName:        resp.MenuName,
		Items:           items,
		TotalItemsFound: len(items),
		ProcessingNotes: resp.ProcessingNotes,
	}
}

// mapItem converts one wire item into the tagged-union domain item,
// populating only the detail struct matching its type
func mapItem(wi wireItem) domain.CandidateItem {
	itemType := domain.ItemType(wi.ItemType)
	if !itemType.Valid() {
		itemType = domain.ItemTypeFood
	}

	item := domain.CandidateItem{
		Name:         wi.Name,
		Category:     wi.Category,
		Type:         itemType,
		Price:        decodePrice(wi.Price),
		Description:  wi.Description,
		Confidence:   clampConfidence(wi.Confidence),
		OriginalText: wi.OriginalText,
	}

	switch itemType {
	case domain.ItemTypeFood:
		item.Food = &domain.FoodDetails{
			Ingredients:    wi.Ingredients,
			CookingMethods: wi.CookingMethods,
			Allergens:      wi.Allergens,
			IsVegetarian:   wi.IsVegetarian,
			IsVegan:        wi.IsVegan,
			IsGlutenFree:   wi.IsGlutenFree,
			IsDairyFree:    wi.IsDairyFree,
			IsSpicy:        wi.IsSpicy,
		}
	case domain.ItemTypeBeverage:
		item.Beverage = &domain.BeverageDetails{
			SpiritType:          wi.SpiritType,
			BeerStyle:           wi.BeerStyle,
			CocktailIngredients: wi.CocktailIngredients,
			AlcoholContent:      wi.AlcoholContent,
			ServingStyle:        wi.ServingStyle,
			Temperature:         wi.Temperature,
			IsNonAlcoholic:      wi.IsNonAlcoholic,
		}
	case domain.ItemTypeWine:
		opts := make([]domain.ServingOption, 0, len(wi.ServingOptions))
		for _, o := range wi.ServingOptions {
			opts = append(opts, domain.ServingOption{
				Size:  o.Size,
				Price: decodePrice(o.Price),
			})
		}
		item.Wine = &domain.WineDetails{
			Vintage:        wi.Vintage,
			Producer:       wi.Producer,
			Region:         wi.Region,
			GrapeVariety:   wi.GrapeVariety,
			WineColor:      wi.WineColor,
			ServingOptions: opts,
		}
	}

	return item
}

// decodePrice handles the number-or-string price encoding. Anything
// unparsable coerces to 0 rather than failing the whole parse.
func decodePrice(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		if num < 0 {
			return 0
		}
		return num
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return domain.ParsePrice(str)
	}

	return 0
}

// clampConfidence bounds a confidence score to 0-100
func clampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
