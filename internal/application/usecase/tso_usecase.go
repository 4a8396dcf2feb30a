package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/oticavisao/otica-api/internal/application/dto"
	"github.com/oticavisao/otica-api/internal/domain"
	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/domain/repository"
)

// TSOPDFGenerator é a porta do gerador do formulário imprimível da receita.
type TSOPDFGenerator interface {
	Generate(tso *entity.TSO, client *entity.Client) ([]byte, error)
}

// TSOUseCase casos de uso da receita oftálmica (TSO): registro, consulta e PDF.
type TSOUseCase struct {
	repo       repository.TSORepository
	clientRepo repository.ClientRepository
	pdfGen     TSOPDFGenerator
}

// NewTSOUseCase constrói o caso de uso.
func NewTSOUseCase(repo repository.TSORepository, clientRepo repository.ClientRepository, pdfGen TSOPDFGenerator) *TSOUseCase {
	return &TSOUseCase{repo: repo, clientRepo: clientRepo, pdfGen: pdfGen}
}

func validEyeMeasure(m dto.EyeMeasureDTO) bool {
	return m.Axis >= 0 && m.Axis <= 180
}

// Create registra uma receita para o cliente. IssuedAt omitido vira agora;
// a validade é de um ano a partir da emissão.
func (uc *TSOUseCase) Create(userID string, in dto.CreateTSORequest) (*dto.TSOResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validEyeMeasure(in.RightEye) || !validEyeMeasure(in.LeftEye) {
		return nil, domain.ErrInvalidInput
	}
	if in.Addition.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	issuedAt := now
	if in.IssuedAt != nil {
		issuedAt = *in.IssuedAt
	}
	tso := &entity.TSO{
		ID:         uuid.New().String(),
		ClientID:   in.ClientID,
		UserID:     userID,
		RightEye:   toEyeMeasure(in.RightEye),
		LeftEye:    toEyeMeasure(in.LeftEye),
		Addition:   in.Addition,
		Doctor:     in.Doctor,
		CRM:        in.CRM,
		IssuedAt:   issuedAt,
		ValidUntil: issuedAt.AddDate(1, 0, 0),
		Notes:      in.Notes,
		CreatedAt:  now,
	}
	if err := uc.repo.Create(tso); err != nil {
		return nil, err
	}
	return toTSOResponse(tso), nil
}

// GetByID obtém uma receita por ID.
func (uc *TSOUseCase) GetByID(id string) (*dto.TSOResponse, error) {
	tso, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tso == nil {
		return nil, nil
	}
	return toTSOResponse(tso), nil
}

// ListByClient lista as receitas de um cliente (mais recentes primeiro).
func (uc *TSOUseCase) ListByClient(clientID string, limit, offset int) (*dto.TSOListResponse, error) {
	list, err := uc.repo.ListByClient(clientID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TSOResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTSOResponse(t))
	}
	return &dto.TSOListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GeneratePDF gera o formulário imprimível da receita.
func (uc *TSOUseCase) GeneratePDF(id string) ([]byte, error) {
	tso, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tso == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(tso.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.Generate(tso, client)
}

func toEyeMeasure(m dto.EyeMeasureDTO) entity.EyeMeasure {
	return entity.EyeMeasure{
		Spherical:   m.Spherical,
		Cylindrical: m.Cylindrical,
		Axis:        m.Axis,
		DNP:         m.DNP,
	}
}

func toEyeMeasureDTO(m entity.EyeMeasure) dto.EyeMeasureDTO {
	return dto.EyeMeasureDTO{
		Spherical:   m.Spherical,
		Cylindrical: m.Cylindrical,
		Axis:        m.Axis,
		DNP:         m.DNP,
	}
}

func toTSOResponse(t *entity.TSO) *dto.TSOResponse {
	if t == nil {
		return nil
	}
	return &dto.TSOResponse{
		ID:         t.ID,
		ClientID:   t.ClientID,
		UserID:     t.UserID,
		RightEye:   toEyeMeasureDTO(t.RightEye),
		LeftEye:    toEyeMeasureDTO(t.LeftEye),
		Addition:   t.Addition,
		Doctor:     t.Doctor,
		CRM:        t.CRM,
		IssuedAt:   t.IssuedAt,
		ValidUntil: t.ValidUntil,
		Notes:      t.Notes,
		CreatedAt:  t.CreatedAt,
	}
}
