package inventory

import (
	"context"

	"github.com/oticavisao/otica-api/internal/application/dto"
	"github.com/oticavisao/otica-api/internal/domain/entity"
)

// RegisterMovementFromRequest adapta o request HTTP ao caso de uso
// RegisterMovement(ctx, MovementInput). Usar nos handlers que já têm userID.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, userID string, in dto.RegisterMovementRequest) error {
	input := MovementInput{
		UserID:         userID,
		ProductID:      in.ProductID,
		LocationID:     in.LocationID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Type:           entity.MovementType(in.Type),
		Quantity:       in.Quantity,
		UnitCost:       in.UnitCost,
		Reason:         in.Reason,
	}
	return uc.RegisterMovement(ctx, input)
}

// AdjustFromRequest adapta o request de ajuste absoluto: a quantidade enviada
// passa a ser o novo nível de estoque.
func (uc *RegisterMovementUseCase) AdjustFromRequest(ctx context.Context, userID string, in dto.AdjustStockRequest) error {
	input := MovementInput{
		UserID:     userID,
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Type:       entity.MovementTypeAdjustment,
		Quantity:   in.NewQuantity,
		Reason:     in.Reason,
	}
	return uc.RegisterMovement(ctx, input)
}
