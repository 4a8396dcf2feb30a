package repository

import "github.com/oticavisao/otica-api/internal/domain/entity"

// ClientRepository é a porta de persistência de clientes.
// Search recebe o termo já normalizado (minúsculas, sem acentos).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByCPF(cpf string) (*entity.Client, error)
	Update(client *entity.Client) error
	List(limit, offset int) ([]*entity.Client, error)
	Search(term string, limit, offset int) ([]*entity.Client, error)
	Delete(id string) error
}
