package repository

import "github.com/oticavisao/otica-api/internal/domain/entity"

// LocationRepository é a porta de persistência de locais de estoque.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List() ([]*entity.Location, error)
	Update(location *entity.Location) error
}
