package repository

import "github.com/dapurgempita/gempita-api/internal/domain/entity"

// UserRepository port persistensi untuk User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
}
