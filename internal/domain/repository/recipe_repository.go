package repository

import "github.com/dapurgempita/gempita-api/internal/domain/entity"

// RecipeRepository port persistensi untuk resep + item bahan.
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	GetByID(id string) (*entity.Recipe, error)
	Update(recipe *entity.Recipe) error
	List(limit, offset int) ([]*entity.Recipe, error)
	Delete(id string) error
}

// ProductionRepository port persistensi untuk catatan produksi.
type ProductionRepository interface {
	Create(production *entity.Production) error
	GetByID(id string) (*entity.Production, error)
	List(limit, offset int) ([]*entity.Production, error)
}
