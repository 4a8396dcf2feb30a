package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/oticavisao/otica-api/internal/domain"
	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/domain/repository"
)

// LocationUseCase casos de uso para locais de estoque (loja/depósito).
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase constrói o caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create cria um local.
func (uc *LocationUseCase) Create(name, typ, address string) (*entity.Location, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if typ != entity.LocationTypeLoja && typ != entity.LocationTypeDeposito {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	location := &entity.Location{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      typ,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetByID obtém um local por ID.
func (uc *LocationUseCase) GetByID(id string) (*entity.Location, error) {
	return uc.repo.GetByID(id)
}

// List lista todos os locais (a ótica tem poucos; sem paginação).
func (uc *LocationUseCase) List() ([]*entity.Location, error) {
	return uc.repo.List()
}
