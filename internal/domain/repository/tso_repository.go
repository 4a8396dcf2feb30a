package repository

import "github.com/oticavisao/otica-api/internal/domain/entity"

// TSORepository é a porta de persistência de receitas (TSO).
type TSORepository interface {
	Create(tso *entity.TSO) error
	GetByID(id string) (*entity.TSO, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.TSO, error)
}
