package recommender

import (
	"math"
	"testing"

	"github.com/ronak1998bacancy/E-commerce/catalog"
	"github.com/ronak1998bacancy/E-commerce/models"
)

type fixedLoader []models.Product

func (l fixedLoader) Load() ([]models.Product, error) {
	return l, nil
}

func newEngine(t *testing.T, products []models.Product) (*Engine, *catalog.Store) {
	t.Helper()
	store := catalog.NewStore(fixedLoader(products))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return New(store), store
}

func TestRecommendExcludesSelf(t *testing.T) {
	engine, store := newEngine(t, []models.Product{
		{Name: "Wireless Headphones", Price: 80, Category: "Electronics", Description: "wireless headphones", Rating: 4.5},
		{Name: "Wired Headphones", Price: 120, Category: "Electronics", Description: "wired headphones", Rating: 4.7},
		{Name: "Earbuds", Price: 50, Category: "Electronics", Description: "wireless earbuds", Rating: 4.2},
	})

	selected, _ := store.Get(0)
	recs := engine.Recommend(selected, "All", 500)

	if len(recs) == 0 {
		t.Fatal("no recommendations returned")
	}
	for _, rec := range recs {
		if rec.Product.Name == selected.Product.Name {
			t.Errorf("recommendations include the selected product %q", rec.Product.Name)
		}
	}
}

func TestRecommendStaysInCategory(t *testing.T) {
	engine, store := newEngine(t, []models.Product{
		{Name: "Wireless Headphones", Price: 80, Category: "Electronics", Description: "wireless headphones", Rating: 4.5},
		{Name: "Earbuds", Price: 50, Category: "Electronics", Description: "wireless earbuds", Rating: 4.2},
		{Name: "Headphone Stand", Price: 20, Category: "Accessories", Description: "stand for headphones", Rating: 4.0},
	})

	selected, _ := store.Get(0)

	// "All" falls back to the selected product's own category.
	for _, category := range []string{"All", "", "Electronics"} {
		recs := engine.Recommend(selected, category, 500)
		for _, rec := range recs {
			if rec.Product.Category != "Electronics" {
				t.Errorf("category %q: got recommendation from %q", category, rec.Product.Category)
			}
		}
	}
}

func TestRecommendHonorsBudget(t *testing.T) {
	engine, store := newEngine(t, []models.Product{
		{Name: "Wireless Headphones", Price: 80, Category: "Electronics", Description: "wireless headphones", Rating: 4.5},
		{Name: "Earbuds", Price: 50, Category: "Electronics", Description: "wireless earbuds", Rating: 4.2},
		{Name: "Studio Headphones", Price: 300, Category: "Electronics", Description: "studio wired headphones", Rating: 4.8},
	})

	selected, _ := store.Get(0)
	recs := engine.Recommend(selected, "All", 100)

	for _, rec := range recs {
		if rec.Product.Price > 100 {
			t.Errorf("recommendation %q priced %v over budget 100", rec.Product.Name, rec.Product.Price)
		}
	}
}

func TestRecommendTopFour(t *testing.T) {
	products := []models.Product{
		{Name: "Selected", Price: 50, Category: "Electronics", Description: "wireless gadget", Rating: 4.0},
	}
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		products = append(products, models.Product{
			Name: "Gadget " + name, Price: 40, Category: "Electronics",
			Description: "wireless gadget", Rating: 4.0,
		})
	}

	engine, store := newEngine(t, products)
	selected, _ := store.Get(0)

	recs := engine.Recommend(selected, "All", 500)
	if len(recs) != 4 {
		t.Errorf("got %d recommendations, want 4", len(recs))
	}
}

func TestRecommendEmptyCandidates(t *testing.T) {
	engine, store := newEngine(t, []models.Product{
		{Name: "Lonely Product", Price: 50, Category: "Electronics", Description: "the only one", Rating: 4.0},
	})

	selected, _ := store.Get(0)
	recs := engine.Recommend(selected, "All", 500)

	if recs == nil || len(recs) != 0 {
		t.Errorf("got %v, want empty non-nil slice", recs)
	}
}

func TestScoreMonotonicInRating(t *testing.T) {
	engine, store := newEngine(t, []models.Product{
		{Name: "Selected", Price: 50, Category: "Electronics", Description: "wireless gadget", Rating: 4.0},
		{Name: "Low Rated", Price: 50, Category: "Electronics", Description: "wireless gadget", Rating: 3.0},
		{Name: "High Rated", Price: 50, Category: "Electronics", Description: "wireless gadget", Rating: 5.0},
	})

	selected, _ := store.Get(0)
	recs := engine.Recommend(selected, "All", 100)

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Product.Name != "High Rated" {
		t.Errorf("top recommendation = %q, want High Rated", recs[0].Product.Name)
	}
	if recs[0].Score <= recs[1].Score {
		t.Errorf("higher rating scored %v <= %v", recs[0].Score, recs[1].Score)
	}
}

func TestScoreDecreasesWithPriceDistance(t *testing.T) {
	// Budget 100 centers the price component on 50.
	engine, store := newEngine(t, []models.Product{
		{Name: "Selected", Price: 50, Category: "Electronics", Description: "wireless gadget", Rating: 4.0},
		{Name: "Near Mid", Price: 55, Category: "Electronics", Description: "wireless gadget", Rating: 4.0},
		{Name: "Far From Mid", Price: 95, Category: "Electronics", Description: "wireless gadget", Rating: 4.0},
	})

	selected, _ := store.Get(0)
	recs := engine.Recommend(selected, "All", 100)

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Product.Name != "Near Mid" {
		t.Errorf("top recommendation = %q, want Near Mid", recs[0].Product.Name)
	}
}

func TestBlendScoreWeights(t *testing.T) {
	p := models.Product{Price: 50, Rating: 5}

	// Perfect text match, max rating, price exactly at budget/2.
	got := blendScore(p, 100, 200, 1.0)
	want := 0.5*1.0 + 0.3*1.0 + 0.2*1.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("blendScore() = %v, want %v", got, want)
	}

	// Zero max price leaves the price component at its neutral value.
	got = blendScore(p, 100, 0, 0)
	want = 0.3*1.0 + 0.2*1.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("blendScore() with zero max price = %v, want %v", got, want)
	}
}
