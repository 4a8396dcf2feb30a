package inventory

import (
	"github.com/oticavisao/otica-api/internal/application/dto"
	"github.com/oticavisao/otica-api/internal/domain"
	"github.com/oticavisao/otica-api/internal/domain/entity"
	domaininv "github.com/oticavisao/otica-api/internal/domain/inventory"
	"github.com/oticavisao/otica-api/internal/domain/repository"
)

// StockQueryUseCase consultas read-only de estoque: snapshots com status,
// histórico de movimentos, alertas e limiares.
type StockQueryUseCase struct {
	stockRepo   repository.StockRepository
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
}

// NewStockQueryUseCase constrói o caso de uso.
func NewStockQueryUseCase(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, movRepo: movRepo, productRepo: productRepo}
}

// ListStock lista snapshots (opcionalmente filtrados por local) com o status
// derivado pelo classificador.
func (uc *StockQueryUseCase) ListStock(locationID string, limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.stockRepo.List(locationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toStockResponse(s))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListMovements lista o histórico do livro de movimentos.
func (uc *StockQueryUseCase) ListMovements(filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			LocationID:    m.LocationID,
			Type:          string(m.Type),
			Quantity:      m.Quantity,
			UnitCost:      m.UnitCost,
			TotalCost:     m.TotalCost,
			Reason:        m.Reason,
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// ListAlerts devolve as linhas fora da faixa normal (esgotado, baixo ou
// excedente), enriquecidas com SKU e nome do produto.
func (uc *StockQueryUseCase) ListAlerts() ([]dto.StockAlertDTO, error) {
	snapshots, err := uc.stockRepo.ListAll()
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.StockAlertDTO, 0)
	for _, s := range snapshots {
		status := domaininv.ClassifySnapshot(*s)
		if status == domaininv.StatusNormal {
			continue
		}
		alert := dto.StockAlertDTO{
			ProductID:  s.ProductID,
			LocationID: s.LocationID,
			Quantity:   s.Quantity,
			MinStock:   s.MinStock,
			MaxStock:   s.MaxStock,
			Status:     string(status),
		}
		if p, err := uc.productRepo.GetByID(s.ProductID); err == nil && p != nil {
			alert.SKU = p.SKU
			alert.Name = p.Name
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

// UpdateThresholds define os limiares de alerta de uma linha (produto+local).
func (uc *StockQueryUseCase) UpdateThresholds(in dto.UpdateThresholdsRequest) error {
	if in.ProductID == "" || in.LocationID == "" {
		return domain.ErrInvalidInput
	}
	if in.MinStock.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.MaxStock != nil && in.MaxStock.LessThanOrEqual(in.MinStock) {
		return domain.ErrInvalidInput
	}
	return uc.stockRepo.UpdateThresholds(in.ProductID, in.LocationID, in.MinStock, in.MaxStock)
}

func toStockResponse(s *entity.Stock) dto.StockResponse {
	return dto.StockResponse{
		ProductID:   s.ProductID,
		LocationID:  s.LocationID,
		Quantity:    s.Quantity,
		AverageCost: s.AverageCost,
		MinStock:    s.MinStock,
		MaxStock:    s.MaxStock,
		Status:      string(domaininv.ClassifySnapshot(*s)),
		UpdatedAt:   s.UpdatedAt,
	}
}
