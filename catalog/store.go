package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/montanaflynn/stats"

	"github.com/ronak1998bacancy/E-commerce/models"
)

// Item is a product together with its catalog index. The index is the only
// product identity and is stable until the next reload.
type Item struct {
	ID      int            `json:"id"`
	Product models.Product `json:"product"`
}

// Filter selects a subset of the catalog. An empty or "All" category matches
// every category; Query is matched case-insensitively against name and
// description.
type Filter struct {
	Category  string
	MaxBudget float64
	Query     string
}

// Store holds the in-memory product list. Products are read-only between
// reloads; Reload swaps the whole slice under the lock.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	loader   Loader
}

func NewStore(loader Loader) *Store {
	return &Store{loader: loader}
}

// Load runs the configured loader, validates every record and swaps the
// catalog in. The previous catalog is kept on error.
func (s *Store) Load() error {
	products, err := s.loader.Load()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	if err := validateProducts(products); err != nil {
		return err
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return nil
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Get returns the product at a catalog index.
func (s *Store) Get(id int) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id < 0 || id >= len(s.products) {
		return Item{}, false
	}
	return Item{ID: id, Product: s.products[id]}, true
}

// Categories returns the sorted set of distinct categories.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool, len(s.products))
	var categories []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// Filter returns the items matching f, in catalog order.
func (s *Store) Filter(f Filter) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(f.Query))

	items := []Item{}
	for i, p := range s.products {
		if f.Category != "" && f.Category != "All" && p.Category != f.Category {
			continue
		}
		if p.Price > f.MaxBudget {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		items = append(items, Item{ID: i, Product: p})
	}
	return items
}

// MaxPrice returns the highest price in the whole catalog, 0 when empty.
func (s *Store) MaxPrice() float64 {
	max, err := stats.Max(s.prices())
	if err != nil {
		return 0
	}
	return max
}

// MeanPrice returns the average price across the catalog, 0 when empty.
func (s *Store) MeanPrice() float64 {
	mean, err := stats.Mean(s.prices())
	if err != nil {
		return 0
	}
	return mean
}

func (s *Store) prices() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prices := make([]float64, len(s.products))
	for i, p := range s.products {
		prices[i] = p.Price
	}
	return prices
}

// Page slices items down to one page and reports the page count. The page
// number is clamped into [1, totalPages].
func Page(items []Item, page, perPage int) ([]Item, int, int) {
	if perPage <= 0 {
		perPage = 10
	}

	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], page, totalPages
}
