package repository

import "github.com/oticavisao/otica-api/internal/domain/entity"

// SaleRepository é a porta de persistência de vendas (venda + itens).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	UpdateStatus(id string, status entity.SaleStatus) error
	List(limit, offset int) ([]*entity.Sale, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.Sale, error)
}
