package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/barber-booking/internal/usecase/catalog"
)

// ======================================================
// HANDLER — serviços (admin)
// ======================================================

type ServiceHandler struct {
	catalog *ucCatalog.Catalog
}

func NewServiceHandler(catalog *ucCatalog.Catalog) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

func (h *ServiceHandler) List(c *gin.Context) {
	httpresp.List(c, h.catalog.ListServices(
		c.Request.Context(),
		c.Query("category"),
		c.Query("query"),
	))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var draft ucCatalog.ServiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := h.catalog.CreateService(c.Request.Context(), adminActor(c), draft)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.catalog.DeleteService(c.Request.Context(), adminActor(c), uint(id)); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

func adminActor(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextAdminUser); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return "admin"
}
