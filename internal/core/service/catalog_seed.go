package service

import "github.com/formalshoes/store-api/internal/core/domain"

const seedCategory = "formal-shoes"

// sampleCatalog returns the default storefront inventory used to seed an
// empty catalog collection.
func sampleCatalog() []domain.Product {
	return []domain.Product{
		{
			Title:       "Oxford Classic",
			Description: "Handcrafted leather oxford with cap toe",
			Brand:       "Eleganza",
			Price:       149.99,
			Category:    seedCategory,
			Images: []string{
				"https://images.unsplash.com/photo-1520975916090-3105956dac38?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1544441893-675973e31985?q=80&w=1600&auto=format&fit=crop",
			},
			Rating:  4.7,
			InStock: true,
			Colors:  []string{"Black", "Brown"},
			Sizes:   []int{6, 7, 8, 9, 10, 11, 12},
		},
		{
			Title:       "Derby Modern",
			Description: "Sleek derby with cushioned insole for all-day comfort",
			Brand:       "UrbanGent",
			Price:       129.00,
			Category:    seedCategory,
			Images: []string{
				"https://images.unsplash.com/photo-1528701800489-20be3c2ea4e1?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1519741497674-611481863552?q=80&w=1600&auto=format&fit=crop",
			},
			Rating:  4.6,
			InStock: true,
			Colors:  []string{"Tan", "Black"},
			Sizes:   []int{6, 7, 8, 9, 10, 11, 12},
		},
		{
			Title:       "Monk Strap Elite",
			Description: "Double monk strap in premium full-grain leather",
			Brand:       "Monarch",
			Price:       179.50,
			Category:    seedCategory,
			Images: []string{
				"https://images.unsplash.com/photo-1605733512920-0f3c45a3d3b8?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1535046128895-5d09e52971d8?q=80&w=1600&auto=format&fit=crop",
			},
			Rating:  4.8,
			InStock: true,
			Colors:  []string{"Brown"},
			Sizes:   []int{6, 7, 8, 9, 10, 11, 12},
		},
		{
			Title:       "Wholecut Prestige",
			Description: "Single-piece leather wholecut for a seamless silhouette",
			Brand:       "Aristocrat",
			Price:       199.00,
			Category:    seedCategory,
			Images: []string{
				"https://images.unsplash.com/photo-1521579873432-524e5b81f7ae?q=80&w=1600&auto=format&fit=crop",
			},
			Rating:  4.9,
			InStock: true,
			Colors:  []string{"Black"},
			Sizes:   []int{6, 7, 8, 9, 10, 11, 12},
		},
		{
			Title:       "Wingtip Heritage",
			Description: "Classic brogue wingtip with hand-stitched detailing",
			Brand:       "Heritage",
			Price:       159.00,
			Category:    seedCategory,
			Images: []string{
				"https://images.unsplash.com/photo-1614252369475-531eba34b280?q=80&w=1600&auto=format&fit=crop",
			},
			Rating:  4.5,
			InStock: true,
			Colors:  []string{"Brown", "Tan"},
			Sizes:   []int{6, 7, 8, 9, 10, 11, 12},
		},
	}
}
