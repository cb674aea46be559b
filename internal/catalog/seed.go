package catalog

func strPtr(s string) *string { return &s }

// seedProducts is the fixed boutique collection. The store is populated from
// this once at startup and serves it read-only afterwards.
func seedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Elegant Evening Dress",
			Price:         "299.99",
			OriginalPrice: strPtr("429.99"),
			Category:      "dresses",
			ImageURL:      "https://images.unsplash.com/photo-1595777457583-95e059d581b8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			OnSale:        true,
			Description:   "Premium evening dress perfect for special occasions",
		},
		{
			ID:          "2",
			Name:        "Designer Silk Blouse",
			Price:       "179.99",
			Category:    "tops",
			ImageURL:    "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "Luxurious silk blouse with elegant design",
		},
		{
			ID:          "3",
			Name:        "Premium Denim Jeans",
			Price:       "149.99",
			Category:    "bottoms",
			ImageURL:    "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "High-quality denim jeans with perfect fit",
		},
		{
			ID:            "4",
			Name:          "Luxury Leather Handbag",
			Price:         "399.99",
			OriginalPrice: strPtr("499.99"),
			Category:      "accessories",
			ImageURL:      "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			OnSale:        true,
			Description:   "Premium leather handbag with timeless design",
		},
		{
			ID:          "5",
			Name:        "Designer High Heels",
			Price:       "229.99",
			Category:    "shoes",
			ImageURL:    "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "Elegant high heels for sophisticated style",
		},
		{
			ID:          "6",
			Name:        "Cashmere Sweater",
			Price:       "259.99",
			Category:    "tops",
			ImageURL:    "https://images.unsplash.com/photo-1576566588028-4147f3842f27?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "Soft cashmere sweater for ultimate comfort",
		},
		{
			ID:          "7",
			Name:        "Premium Leather Jacket",
			Price:       "449.99",
			Category:    "outerwear",
			ImageURL:    "https://images.unsplash.com/photo-1520975954732-35dd22299614?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "Classic leather jacket with modern appeal",
		},
		{
			ID:            "8",
			Name:          "Designer Watch",
			Price:         "799.99",
			OriginalPrice: strPtr("939.99"),
			Category:      "accessories",
			ImageURL:      "https://images.unsplash.com/photo-1523275335684-37898b6baf30?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			OnSale:        true,
			Description:   "Luxury designer watch with precise movement",
		},
		{
			ID:          "9",
			Name:        "Luxury Silk Scarf",
			Price:       "89.99",
			Category:    "accessories",
			ImageURL:    "https://images.unsplash.com/photo-1601924994987-69e26d50dc26?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "Elegant silk scarf with artistic pattern",
		},
		{
			ID:          "10",
			Name:        "Classic Trench Coat",
			Price:       "349.99",
			Category:    "outerwear",
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "Timeless trench coat for any season",
		},
		{
			ID:          "11",
			Name:        "Statement Necklace",
			Price:       "159.99",
			Category:    "accessories",
			ImageURL:    "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "Bold statement necklace for special occasions",
		},
		{
			ID:          "12",
			Name:        "Designer Sneakers",
			Price:       "329.99",
			Category:    "shoes",
			ImageURL:    "https://images.unsplash.com/photo-1549298916-b41d501d3772?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "Premium designer sneakers for casual luxury",
		},
	}
}
