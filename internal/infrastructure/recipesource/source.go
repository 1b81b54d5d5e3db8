package recipesource

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mealwise/mws/internal/domain/models"
)

// Source searches the upstream recipe catalog. Implementations must be safe
// for concurrent use.
type Source interface {
	Search(ctx context.Context, params SearchParams) ([]*models.Recipe, error)
	GetByID(ctx context.Context, id int) (*models.Recipe, error)
	Quota() QuotaStatus
}

// SearchParams are the supported recipe search filters.
type SearchParams struct {
	Query        string
	Cuisine      string
	Diets        []string
	Intolerances []string
	Type         string
	MaxReadyTime int
	Number       int
	Offset       int
}

// QuotaStatus reports upstream API quota consumption.
type QuotaStatus struct {
	Used        int       `json:"used"`
	Remaining   float64   `json:"remaining"`
	Total       int       `json:"total"`
	LastUpdated time.Time `json:"lastUpdated"`
	Demo        bool      `json:"isDemo,omitempty"`
}

// dietMap translates internal restriction names to the upstream diet filter.
var dietMap = map[string]string{
	"vegetarian":  "vegetarian",
	"vegan":       "vegan",
	"gluten-free": "gluten free",
	"dairy-free":  "dairy free",
}

// intoleranceMap translates internal restriction names to upstream
// intolerance filters.
var intoleranceMap = map[string]string{
	"dairy-free":  "dairy",
	"gluten-free": "gluten",
	"nut-free":    "tree nut,peanut",
}

// ParamsFromPreferences derives search filters from planning preferences.
// Restrictions the upstream API does not understand are dropped.
func ParamsFromPreferences(prefs models.Preferences) SearchParams {
	params := SearchParams{
		Cuisine:      strings.Join(prefs.CuisinePreferences, ","),
		MaxReadyTime: prefs.MaxPrepTimeMinutes,
		Number:       24,
	}
	for _, r := range prefs.DietaryRestrictions {
		if d, ok := dietMap[r]; ok {
			params.Diets = append(params.Diets, d)
		}
		if i, ok := intoleranceMap[r]; ok {
			params.Intolerances = append(params.Intolerances, i)
		}
	}
	return params
}

// queryValues renders the params as upstream query parameters. Empty values
// are omitted.
func (p SearchParams) queryValues() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("query", p.Query)
	set("cuisine", p.Cuisine)
	set("diet", strings.Join(p.Diets, ","))
	set("intolerances", strings.Join(p.Intolerances, ","))
	set("type", p.Type)
	if p.MaxReadyTime > 0 {
		v.Set("maxReadyTime", strconv.Itoa(p.MaxReadyTime))
	}
	number := p.Number
	if number <= 0 {
		number = 12
	}
	v.Set("number", strconv.Itoa(number))
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	v.Set("addRecipeInformation", "true")
	v.Set("addRecipeNutrition", "true")
	v.Set("fillIngredients", "true")
	return v
}

// canonical returns a stable string form of the params, used as a cache key
// component.
func (p SearchParams) canonical() string {
	v := p.queryValues()
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v.Get(k))
		b.WriteByte('&')
	}
	return b.String()
}
