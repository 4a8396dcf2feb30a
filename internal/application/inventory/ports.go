package inventory

import (
	"context"

	"github.com/oticavisao/otica-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante que ler snapshot → aplicar
// movimento → gravar seja uma unidade atômica por (produto, local).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error) error

	// RunSale abre uma transação com os repositórios de venda e estoque
	// (criação e cancelamento de venda movimentam estoque junto).
	RunSale(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
