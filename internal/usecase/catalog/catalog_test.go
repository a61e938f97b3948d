package catalog

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/store"
)

func newCatalog(t *testing.T) (*Catalog, *store.Store, *audit.Dispatcher) {
	t.Helper()

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	st := store.New()
	st.Seed(time.Date(2024, 6, 10, 8, 0, 0, 0, loc))

	dispatcher := audit.NewDispatcher(audit.New(zerolog.New(os.Stdout).Level(zerolog.Disabled)))
	return New(st, dispatcher), st, dispatcher
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestListServicesFilters(t *testing.T) {
	uc, _, d := newCatalog(t)
	defer d.Close()
	ctx := context.Background()

	all := uc.ListServices(ctx, "", "")
	assert.Len(t, all, 10)

	cabelo := uc.ListServices(ctx, "cabelo", "")
	assert.Len(t, cabelo, 5)

	produto := uc.ListServices(ctx, "produto", "")
	assert.Len(t, produto, 2)

	byQuery := uc.ListServices(ctx, "", "toalha quente")
	require.Len(t, byQuery, 1)
	assert.Equal(t, "Barba Terapia", byQuery[0].Name)

	none := uc.ListServices(ctx, "barba", "degradê")
	assert.Empty(t, none)
}

func TestCreateServiceFromDraft(t *testing.T) {
	uc, st, d := newCatalog(t)
	defer d.Close()

	svc, err := uc.CreateService(context.Background(), "adm1", ServiceDraft{
		Name:        "  Sobrancelha ",
		Price:       floatPtr(15),
		DurationMin: intPtr(15),
		Description: "Design simples.",
		Category:    "Cabelo",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(11), svc.ID)
	assert.Equal(t, "Sobrancelha", svc.Name)
	assert.Equal(t, models.CategoryCabelo, svc.Category)

	_, ok := st.ServiceByID(svc.ID)
	assert.True(t, ok)
}

func TestServiceDraftValidation(t *testing.T) {
	cases := []struct {
		name  string
		draft ServiceDraft
		code  string
	}{
		{"missing name", ServiceDraft{Price: floatPtr(10)}, "missing_name"},
		{"blank name", ServiceDraft{Name: "   ", Price: floatPtr(10)}, "missing_name"},
		{"missing price", ServiceDraft{Name: "Corte"}, "missing_price"},
		{"negative price", ServiceDraft{Name: "Corte", Price: floatPtr(-1)}, "invalid_price"},
		{"negative duration", ServiceDraft{Name: "Corte", Price: floatPtr(10), DurationMin: intPtr(-5)}, "invalid_duration"},
		{"unknown category", ServiceDraft{Name: "Corte", Price: floatPtr(10), Category: "massagem"}, "invalid_category"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.draft.Validate()
			assert.True(t, httperr.IsBusiness(err, tc.code), "want %s, got %v", tc.code, err)
		})
	}
}

func TestServiceDraftDefaults(t *testing.T) {
	svc, err := ServiceDraft{Name: "Corte", Price: floatPtr(30)}.Validate()
	require.NoError(t, err)

	assert.Equal(t, 30, svc.DurationMin)
	assert.Equal(t, models.CategoryCabelo, svc.Category)

	// duração zero é válida (produto físico)
	product, err := ServiceDraft{
		Name:        "Pomada",
		Price:       floatPtr(25),
		DurationMin: intPtr(0),
		Category:    models.CategoryProduto,
	}.Validate()
	require.NoError(t, err)
	assert.Equal(t, 0, product.DurationMin)
}

func TestDeleteServiceUnconditional(t *testing.T) {
	uc, st, d := newCatalog(t)
	defer d.Close()
	ctx := context.Background()

	require.NoError(t, uc.DeleteService(ctx, "adm1", 1))
	_, ok := st.ServiceByID(1)
	assert.False(t, ok)

	// o agendamento do seed segue apontando para o serviço removido
	require.Len(t, st.Appointments(), 1)
	assert.Equal(t, uint(1), st.Appointments()[0].ServiceID)

	err := uc.DeleteService(ctx, "adm1", 1)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateProfessionalDerivesInitials(t *testing.T) {
	uc, st, d := newCatalog(t)
	defer d.Close()

	pro, err := uc.CreateProfessional(context.Background(), "adm1", ProfessionalDraft{
		Name: "Pedro Luz",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), pro.ID)
	assert.Equal(t, "PL", pro.Avatar)
	assert.Equal(t, 5.0, pro.Rating)
	assert.Equal(t, "09:00 - 18:00", pro.WorkHours)

	_, ok := st.ProfessionalByID(pro.ID)
	assert.True(t, ok)
}

func TestProfessionalDraftMissingName(t *testing.T) {
	_, err := ProfessionalDraft{}.Validate()
	assert.True(t, httperr.IsBusiness(err, "missing_name"))
}

func TestDeleteProfessionalKeepsAppointments(t *testing.T) {
	uc, st, d := newCatalog(t)
	defer d.Close()
	ctx := context.Background()

	pro, err := uc.CreateProfessional(ctx, "adm1", ProfessionalDraft{Name: "Pedro Luz"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProfessional(ctx, "adm1", pro.ID))
	_, ok := st.ProfessionalByID(pro.ID)
	assert.False(t, ok)

	err = uc.DeleteProfessional(ctx, "adm1", pro.ID)
	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))

	// roster de agendamentos intocado
	assert.Len(t, st.Appointments(), 1)
}

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Pedro Luz":          "PL",
		"Mestre Navalha":     "MN",
		"Ana":                "A",
		"ana fade":           "AF",
		"Folinha do Cipo":    "FD",
		"  João   Tesoura  ": "JT",
		"Érico Alves":        "ÉA",
	}

	for name, want := range cases {
		assert.Equal(t, want, Initials(name), "name %q", name)
	}
}
