package recommender

import (
	"sort"
	"strings"

	"github.com/ronak1998bacancy/E-commerce/catalog"
	"github.com/ronak1998bacancy/E-commerce/models"
)

const (
	textWeight   = 0.5
	ratingWeight = 0.3
	priceWeight  = 0.2

	topN = 4
)

// Recommendation is a scored candidate product.
type Recommendation struct {
	ID        int            `json:"id"`
	Product   models.Product `json:"product"`
	TextScore float64        `json:"textScore"`
	Score     float64        `json:"score"`
}

// Engine ranks catalog products against a selected product.
type Engine struct {
	store *catalog.Store
}

func New(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// Recommend returns the top products similar to the selected one, scoped to
// one category and a maximum budget. When category is empty or "All" the
// selected product's own category is used. The selected product itself is
// excluded. Returns an empty slice when no candidate matches.
func (e *Engine) Recommend(selected catalog.Item, category string, maxBudget float64) []Recommendation {
	if category == "" || category == "All" {
		category = selected.Product.Category
	}

	candidates := e.store.Filter(catalog.Filter{Category: category, MaxBudget: maxBudget})

	filtered := candidates[:0]
	for _, c := range candidates {
		if strings.EqualFold(c.Product.Name, selected.Product.Name) {
			continue
		}
		filtered = append(filtered, c)
	}
	if len(filtered) == 0 {
		return []Recommendation{}
	}

	// The selected product's text goes last so candidate indexes line up.
	docs := make([]string, 0, len(filtered)+1)
	for _, c := range filtered {
		docs = append(docs, c.Product.CombinedText())
	}
	docs = append(docs, selected.Product.CombinedText())

	vectors := Vectorize(docs)
	selectedVec := vectors[len(vectors)-1]
	maxPrice := e.store.MaxPrice()

	recs := make([]Recommendation, 0, len(filtered))
	for i, c := range filtered {
		textScore := CosineSimilarity(selectedVec, vectors[i])
		recs = append(recs, Recommendation{
			ID:        c.ID,
			Product:   c.Product,
			TextScore: textScore,
			Score:     blendScore(c.Product, maxBudget, maxPrice, textScore),
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs
}

// blendScore mixes text similarity with normalized rating and closeness of
// the price to half the budget. Price distance is normalized by the catalog
// max price so the component stays in a comparable range.
func blendScore(p models.Product, maxBudget, maxPrice, textScore float64) float64 {
	priceScore := 1.0
	if maxPrice > 0 {
		budgetMid := maxBudget / 2
		diff := p.Price - budgetMid
		if diff < 0 {
			diff = -diff
		}
		priceScore = 1 - diff/maxPrice
	}

	ratingScore := p.Rating / 5

	return textWeight*textScore + ratingWeight*ratingScore + priceWeight*priceScore
}
