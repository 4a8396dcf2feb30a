package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oticavisao/otica-api/internal/application/dto"
	"github.com/oticavisao/otica-api/internal/application/inventory"
	"github.com/oticavisao/otica-api/internal/domain"
	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/domain/repository"
)

// SaleUseCase casos de uso de venda. Criar uma venda baixa o estoque (OUT) e
// cancelar devolve os itens (RETURN), sempre na mesma transação que persiste
// a venda ou a mudança de status.
type SaleUseCase struct {
	txRunner     inventory.TxRunner
	movementUC   *inventory.RegisterMovementUseCase
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	clientRepo   repository.ClientRepository
	locationRepo repository.LocationRepository
}

// NewSaleUseCase constrói o caso de uso de vendas.
func NewSaleUseCase(
	txRunner inventory.TxRunner,
	movementUC *inventory.RegisterMovementUseCase,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	locationRepo repository.LocationRepository,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		movementUC:   movementUC,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		clientRepo:   clientRepo,
		locationRepo: locationRepo,
	}
}

func validPaymentMethod(m string) bool {
	switch m {
	case entity.PaymentDinheiro, entity.PaymentCartao, entity.PaymentPix, entity.PaymentCrediario:
		return true
	}
	return false
}

// Create cria a venda com status pendente: congela o preço de cada item,
// calcula os totais e baixa o estoque na mesma transação. Se qualquer item
// não tiver saldo, nada é gravado.
func (uc *SaleUseCase) Create(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ClientID == "" || in.LocationID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !validPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		ClientID:      in.ClientID,
		LocationID:    in.LocationID,
		UserID:        userID,
		Status:        entity.SaleStatusPendente,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	subtotal := decimal.Zero
	discount := decimal.Zero
	for _, item := range in.Items {
		if !item.Quantity.IsInteger() || item.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidQuantity
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		lineGross := item.Quantity.Mul(product.Price)
		if item.Discount.IsNegative() || item.Discount.GreaterThan(lineGross) {
			return nil, domain.ErrInvalidInput
		}
		sale.Items = append(sale.Items, entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			Discount:  item.Discount,
			Total:     lineGross.Sub(item.Discount),
		})
		subtotal = subtotal.Add(lineGross)
		discount = discount.Add(item.Discount)
	}
	sale.Subtotal = subtotal
	sale.Discount = discount
	sale.Total = subtotal.Sub(discount)

	err = uc.txRunner.RunSale(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range sale.Items {
			err := uc.movementUC.RegisterOutInTx(
				movRepo, stockRepo,
				item.ProductID, sale.LocationID, userID,
				item.Quantity, "venda "+sale.ID, now, sale.ID,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// UpdateStatus muda o status da venda seguindo a tabela de transições
// (pendente→pago→entregue; pendente/pago→cancelado). Cancelar devolve os
// itens ao estoque na mesma transação.
func (uc *SaleUseCase) UpdateStatus(ctx context.Context, id, userID string, target entity.SaleStatus) (*dto.SaleResponse, error) {
	if !target.Valid() {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if !sale.Status.CanTransition(target) {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	err = uc.txRunner.RunSale(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
	) error {
		if target == entity.SaleStatusCancelado {
			for _, item := range sale.Items {
				err := uc.movementUC.RegisterReturnInTx(
					movRepo, stockRepo,
					item.ProductID, sale.LocationID, userID,
					item.Quantity, "cancelamento da venda "+sale.ID, now, sale.ID,
				)
				if err != nil {
					return err
				}
			}
		}
		return saleRepo.UpdateStatus(id, target)
	})
	if err != nil {
		return nil, err
	}
	sale.Status = target
	sale.UpdatedAt = now
	return toSaleResponse(sale), nil
}

// GetByID obtém uma venda com itens.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List lista vendas; com clientID filtra pelo cliente.
func (uc *SaleUseCase) List(clientID string, limit, offset int) (*dto.SaleListResponse, error) {
	var (
		list []*entity.Sale
		err  error
	)
	if clientID != "" {
		list, err = uc.saleRepo.ListByClient(clientID, limit, offset)
	} else {
		list, err = uc.saleRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
			Total:     it.Total,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		ClientID:      s.ClientID,
		LocationID:    s.LocationID,
		UserID:        s.UserID,
		Status:        string(s.Status),
		Items:         items,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
