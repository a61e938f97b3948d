package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/barber-booking/internal/usecase/catalog"
)

// ======================================================
// HANDLER — equipe (admin)
// ======================================================

type ProfessionalHandler struct {
	catalog *ucCatalog.Catalog
}

func NewProfessionalHandler(catalog *ucCatalog.Catalog) *ProfessionalHandler {
	return &ProfessionalHandler{catalog: catalog}
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	httpresp.List(c, h.catalog.ListProfessionals(c.Request.Context()))
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var draft ucCatalog.ProfessionalDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pro, err := h.catalog.CreateProfessional(c.Request.Context(), adminActor(c), draft)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, pro)
}

// Delete remove o profissional do roster; agendamentos que o referenciam
// permanecem como estão (referência pendurada na exibição).
func (h *ProfessionalHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.catalog.DeleteProfessional(c.Request.Context(), adminActor(c), uint(id)); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
