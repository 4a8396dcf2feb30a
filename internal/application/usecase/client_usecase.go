package usecase

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/oticavisao/otica-api/internal/application/dto"
	"github.com/oticavisao/otica-api/internal/domain"
	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/domain/repository"
	"github.com/oticavisao/otica-api/pkg/docbr"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ClientUseCase casos de uso CRUD e busca de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create cadastra um cliente. Valida CPF (dígitos verificadores) e email,
// e rejeita CPF duplicado.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := docbr.ValidateCPF(in.CPF); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Email != "" && !emailRegexp.MatchString(in.Email) {
		return nil, domain.ErrInvalidInput
	}
	cpf := docbr.NormalizeCPF(in.CPF)
	existing, _ := uc.repo.GetByCPF(cpf)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CPF:       cpf,
		Email:     in.Email,
		Phone:     in.Phone,
		BirthDate: in.BirthDate,
		Address:   in.Address,
		City:      in.City,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtém um cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// Update atualiza um cliente. CPF não muda (documento é identidade do cadastro).
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email != "" && !emailRegexp.MatchString(*in.Email) {
			return nil, domain.ErrInvalidInput
		}
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.BirthDate != nil {
		client.BirthDate = in.BirthDate
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.City != nil {
		client.City = *in.City
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes com paginação; com term faz busca por nome ou CPF,
// ignorando acentos e maiúsculas.
func (uc *ClientUseCase) List(term string, limit, offset int) (*dto.ClientListResponse, error) {
	var (
		list []*entity.Client
		err  error
	)
	if term != "" {
		list, err = uc.repo.Search(NormalizeTerm(term), limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove um cliente por ID.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// NormalizeTerm normaliza um termo de busca: minúsculas e sem acentos
// ("João" e "joao" encontram o mesmo cliente).
func NormalizeTerm(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		CPF:       c.CPF,
		Email:     c.Email,
		Phone:     c.Phone,
		BirthDate: c.BirthDate,
		Address:   c.Address,
		City:      c.City,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
