package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// CATALOG — CRUD administrativo de serviços e equipe
// ======================================================

type Catalog struct {
	repo  Repository
	audit *audit.Dispatcher
}

// Repository estende a visão de leitura do motor com as mutações
// administrativas do catálogo.
type Repository interface {
	domain.Repository

	AddService(svc models.Service) models.Service
	DeleteService(id uint) bool

	AddProfessional(p models.Professional) models.Professional
	DeleteProfessional(id uint) bool
}

func New(repo Repository, auditDispatcher *audit.Dispatcher) *Catalog {
	return &Catalog{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// ------------------------------
// Services
// ------------------------------

// ListServices filtra por categoria exata e por texto livre em nome ou
// descrição, ambos opcionais.
func (uc *Catalog) ListServices(ctx context.Context, category, query string) []models.Service {
	category = strings.ToLower(strings.TrimSpace(category))
	query = strings.ToLower(strings.TrimSpace(query))

	var out []models.Service
	for _, svc := range uc.repo.Services() {
		if category != "" && svc.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(svc.Name), query) &&
			!strings.Contains(strings.ToLower(svc.Description), query) {
			continue
		}
		out = append(out, svc)
	}
	return out
}

func (uc *Catalog) CreateService(ctx context.Context, actor string, draft ServiceDraft) (models.Service, error) {
	svc, err := draft.Validate()
	if err != nil {
		return models.Service{}, err
	}

	svc = uc.repo.AddService(svc)

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "service_created",
		Entity:   "service",
		EntityID: fmt.Sprint(svc.ID),
	})

	return svc, nil
}

// DeleteService remove sem checar referências: agendamentos existentes
// continuam apontando para o id removido e viram referência pendurada.
func (uc *Catalog) DeleteService(ctx context.Context, actor string, id uint) error {
	if !uc.repo.DeleteService(id) {
		return httperr.ErrBusiness("service_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: fmt.Sprint(id),
	})

	return nil
}

// ------------------------------
// Professionals
// ------------------------------

func (uc *Catalog) ListProfessionals(ctx context.Context) []models.Professional {
	return uc.repo.Professionals()
}

func (uc *Catalog) CreateProfessional(ctx context.Context, actor string, draft ProfessionalDraft) (models.Professional, error) {
	pro, err := draft.Validate()
	if err != nil {
		return models.Professional{}, err
	}

	pro = uc.repo.AddProfessional(pro)

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "professional_created",
		Entity:   "professional",
		EntityID: fmt.Sprint(pro.ID),
	})

	return pro, nil
}

func (uc *Catalog) DeleteProfessional(ctx context.Context, actor string, id uint) error {
	if !uc.repo.DeleteProfessional(id) {
		return httperr.ErrBusiness("professional_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "professional_deleted",
		Entity:   "professional",
		EntityID: fmt.Sprint(id),
	})

	return nil
}
