package repository

import "github.com/oticavisao/otica-api/internal/domain/entity"

// MovementFilter filtra a listagem do histórico de movimentos.
type MovementFilter struct {
	ProductID  string
	LocationID string
	Type       entity.MovementType
	Limit      int
	Offset     int
}

// StockMovementRepository é a porta do livro de movimentos (append-only:
// só inserção e leitura, nunca update ou delete).
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	List(filter MovementFilter) ([]*entity.StockMovement, error)
}
