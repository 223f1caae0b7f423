package storage

import (
	"time"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/domain"
)

var seedTime = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

// SeedProducts returns the canonical sample catalog used to initialize an
// empty store. Callers get a fresh slice on every call.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "iPhone 15 Pro",
			Description: "El último iPhone con tecnología avanzada y cámara pro",
			Price:       1199,
			Category:    "Electrónicos",
			Stock:       15,
			ImageURL:    "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400",
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          "2",
			Name:        "MacBook Air M3",
			Description: "Laptop ultraligera con chip M3 para máximo rendimiento",
			Price:       1499,
			Category:    "Electrónicos",
			Stock:       8,
			ImageURL:    "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400",
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          "3",
			Name:        "Camiseta Premium",
			Description: "Camiseta de algodón orgánico, cómoda y duradera",
			Price:       29.99,
			Category:    "Ropa",
			Stock:       25,
			ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          "4",
			Name:        "Sofá Moderno",
			Description: "Sofá de 3 plazas con diseño contemporáneo",
			Price:       899,
			Category:    "Hogar",
			Stock:       5,
			ImageURL:    "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=400",
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          "5",
			Name:        "Zapatillas Running",
			Description: "Zapatillas deportivas para correr con tecnología de amortiguación",
			Price:       149.99,
			Category:    "Deportes",
			Stock:       0,
			ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          "6",
			Name:        "El Arte de la Guerra",
			Description: "Libro clásico de estrategia militar y empresarial",
			Price:       19.99,
			Category:    "Libros",
			Stock:       12,
			ImageURL:    "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
	}
}
