package usecase

import (
	"context"
	"time"

	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

// UserUseCase manajemen user oleh admin (role dan status).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase membangun use case user.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List listing user.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return uc.userRepo.List(limit, offset)
}

// Update mengubah nama/role/status user. Field kosong dibiarkan.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.Status != "" {
		user.Status = in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
