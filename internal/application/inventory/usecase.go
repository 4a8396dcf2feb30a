package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oticavisao/otica-api/internal/domain"
	"github.com/oticavisao/otica-api/internal/domain/entity"
	domaininv "github.com/oticavisao/otica-api/internal/domain/inventory"
	"github.com/oticavisao/otica-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimentos de estoque de forma transacional
// (in/out/adjustment/transfer/return) com bloqueio de linha (SELECT FOR UPDATE)
// e Commit/Rollback. O cálculo em si é delegado ao motor puro de domínio.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// MovementInput entrada para registrar um movimento de estoque.
// Para in/out/adjustment/return: ProductID, LocationID, Type, Quantity;
// UnitCost obrigatório em in. Para transfer: FromLocationID e ToLocationID.
// Reason é obrigatório em out, adjustment e transfer.
type MovementInput struct {
	UserID         string
	ProductID      string
	LocationID     string
	FromLocationID string
	ToLocationID   string
	Type           entity.MovementType
	Quantity       decimal.Decimal
	UnitCost       *decimal.Decimal
	Reason         string
}

// RegisterMovement valida a entrada, abre a transação, bloqueia o snapshot,
// aplica o movimento via motor de domínio e grava snapshot + registro do livro.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) error {
	// Validações de chamador: tipo fechado, campos e motivo obrigatórios.
	// O motor não revalida essas condições.
	if !input.Type.Valid() {
		return domain.ErrInvalidInput
	}
	if input.Type.RequiresReason() && input.Reason == "" {
		return domain.ErrInvalidInput
	}
	switch input.Type {
	case entity.MovementTypeTransfer:
		if input.ProductID == "" || input.FromLocationID == "" || input.ToLocationID == "" {
			return domain.ErrInvalidInput
		}
		if input.FromLocationID == input.ToLocationID {
			return domain.ErrInvalidInput
		}
	default:
		if input.ProductID == "" || input.LocationID == "" {
			return domain.ErrInvalidInput
		}
		if input.Type == entity.MovementTypeIn && (input.UnitCost == nil || input.UnitCost.IsNegative()) {
			return domain.ErrInvalidInput
		}
	}

	// Produto e local(is) precisam existir.
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if input.Type == entity.MovementTypeTransfer {
		from, _ := uc.locationRepo.GetByID(input.FromLocationID)
		to, _ := uc.locationRepo.GetByID(input.ToLocationID)
		if from == nil || to == nil {
			return domain.ErrNotFound
		}
	} else {
		loc, _ := uc.locationRepo.GetByID(input.LocationID)
		if loc == nil {
			return domain.ErrNotFound
		}
	}

	now := time.Now()
	txID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		if input.Type == entity.MovementTypeTransfer {
			return uc.doTransfer(movRepo, stockRepo, input, now, txID)
		}
		return uc.doSingleLocation(movRepo, stockRepo, input, now, txID)
	})
}

// doSingleLocation trata in, out, adjustment e return: bloqueia a linha,
// valida contra o estoque atual, aplica e grava.
func (uc *RegisterMovementUseCase) doSingleLocation(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	input MovementInput,
	now time.Time, txID string,
) error {
	stock, err := stockRepo.GetForUpdate(input.ProductID, input.LocationID)
	if err != nil {
		return err
	}
	if err := domaininv.ValidateMovement(input.Type, input.Quantity, stock.Quantity); err != nil {
		return err
	}

	next := domaininv.ApplyMovement(*stock, input.Type, input.Quantity, input.UnitCost, now)
	if err := stockRepo.Upsert(&next); err != nil {
		return err
	}

	// Custo do registro: entradas usam o custo informado; saídas saem ao
	// custo médio vigente; ajuste registra ao custo médio atual.
	unitCost := stock.AverageCost
	if input.UnitCost != nil {
		unitCost = *input.UnitCost
	}
	qty := input.Quantity
	if input.Type == entity.MovementTypeOut {
		qty = input.Quantity.Neg()
	}
	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		ProductID:     input.ProductID,
		LocationID:    input.LocationID,
		Type:          input.Type,
		Quantity:      qty,
		UnitCost:      unitCost,
		TotalCost:     qty.Mul(unitCost),
		Reason:        input.Reason,
		CreatedAt:     now,
		CreatedBy:     input.UserID,
	}
	return movRepo.Create(mov)
}

// doTransfer debita a origem e credita o destino na mesma transação, gravando
// dois registros com o mesmo TransactionID. O crédito entra no destino ao
// custo médio da origem, reponderando o custo médio do destino.
func (uc *RegisterMovementUseCase) doTransfer(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	input MovementInput,
	now time.Time, txID string,
) error {
	origin, err := stockRepo.GetForUpdate(input.ProductID, input.FromLocationID)
	if err != nil {
		return err
	}
	if err := domaininv.ValidateMovement(input.Type, input.Quantity, origin.Quantity); err != nil {
		return err
	}
	if origin.Quantity.LessThan(input.Quantity) {
		return domain.ErrInsufficientStock
	}
	dest, err := stockRepo.GetForUpdate(input.ProductID, input.ToLocationID)
	if err != nil {
		return err
	}

	unitCost := origin.AverageCost

	newOrigin := domaininv.ApplyMovement(*origin, entity.MovementTypeTransfer, input.Quantity, nil, now)
	newDest := domaininv.ApplyMovement(*dest, entity.MovementTypeIn, input.Quantity, &unitCost, now)

	if err := stockRepo.Upsert(&newOrigin); err != nil {
		return err
	}
	if err := stockRepo.Upsert(&newDest); err != nil {
		return err
	}

	outMov := &entity.StockMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		ProductID:     input.ProductID,
		LocationID:    input.FromLocationID,
		Type:          entity.MovementTypeTransfer,
		Quantity:      input.Quantity.Neg(),
		UnitCost:      unitCost,
		TotalCost:     input.Quantity.Neg().Mul(unitCost),
		Reason:        input.Reason,
		CreatedAt:     now,
		CreatedBy:     input.UserID,
	}
	if err := movRepo.Create(outMov); err != nil {
		return err
	}
	inMov := &entity.StockMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		ProductID:     input.ProductID,
		LocationID:    input.ToLocationID,
		Type:          entity.MovementTypeTransfer,
		Quantity:      input.Quantity,
		UnitCost:      unitCost,
		TotalCost:     input.Quantity.Mul(unitCost),
		Reason:        input.Reason,
		CreatedAt:     now,
		CreatedBy:     input.UserID,
	}
	return movRepo.Create(inMov)
}

// RegisterOutInTx executa uma saída usando os repositórios da transação do
// chamador (integração venda-estoque). transactionID costuma ser o ID da venda.
func (uc *RegisterMovementUseCase) RegisterOutInTx(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	productID, locationID, userID string,
	quantity decimal.Decimal,
	reason string,
	now time.Time,
	transactionID string,
) error {
	stock, err := stockRepo.GetForUpdate(productID, locationID)
	if err != nil {
		return err
	}
	if err := domaininv.ValidateMovement(entity.MovementTypeOut, quantity, stock.Quantity); err != nil {
		return err
	}
	next := domaininv.ApplyMovement(*stock, entity.MovementTypeOut, quantity, nil, now)
	if err := stockRepo.Upsert(&next); err != nil {
		return err
	}
	unitCost := stock.AverageCost
	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		TransactionID: transactionID,
		ProductID:     productID,
		LocationID:    locationID,
		Type:          entity.MovementTypeOut,
		Quantity:      quantity.Neg(),
		UnitCost:      unitCost,
		TotalCost:     quantity.Neg().Mul(unitCost),
		Reason:        reason,
		CreatedAt:     now,
		CreatedBy:     userID,
	}
	return movRepo.Create(mov)
}

// RegisterReturnInTx executa uma devolução na transação do chamador
// (cancelamento de venda devolve os itens ao estoque, ao custo médio vigente).
func (uc *RegisterMovementUseCase) RegisterReturnInTx(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	productID, locationID, userID string,
	quantity decimal.Decimal,
	reason string,
	now time.Time,
	transactionID string,
) error {
	stock, err := stockRepo.GetForUpdate(productID, locationID)
	if err != nil {
		return err
	}
	if err := domaininv.ValidateMovement(entity.MovementTypeReturn, quantity, stock.Quantity); err != nil {
		return err
	}
	next := domaininv.ApplyMovement(*stock, entity.MovementTypeReturn, quantity, nil, now)
	if err := stockRepo.Upsert(&next); err != nil {
		return err
	}
	unitCost := stock.AverageCost
	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		TransactionID: transactionID,
		ProductID:     productID,
		LocationID:    locationID,
		Type:          entity.MovementTypeReturn,
		Quantity:      quantity,
		UnitCost:      unitCost,
		TotalCost:     quantity.Mul(unitCost),
		Reason:        reason,
		CreatedAt:     now,
		CreatedBy:     userID,
	}
	return movRepo.Create(mov)
}
