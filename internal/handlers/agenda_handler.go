package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAgenda "github.com/BruksfildServices01/barber-booking/internal/usecase/agenda"
)

// ======================================================
// HANDLER — agenda (admin, somente leitura)
// ======================================================

type AgendaHandler struct {
	list      *ucAgenda.ListAgenda
	dashboard *ucAgenda.Dashboard
	export    *ucAgenda.Export
	audit     *audit.Logger
}

func NewAgendaHandler(
	list *ucAgenda.ListAgenda,
	dashboard *ucAgenda.Dashboard,
	export *ucAgenda.Export,
	auditLogger *audit.Logger,
) *AgendaHandler {
	return &AgendaHandler{
		list:      list,
		dashboard: dashboard,
		export:    export,
		audit:     auditLogger,
	}
}

func (h *AgendaHandler) List(c *gin.Context) {
	httpresp.List(c, h.list.Execute(c.Request.Context()))
}

func (h *AgendaHandler) Dashboard(c *gin.Context) {
	httpresp.OK(c, h.dashboard.Execute(c.Request.Context()))
}

func (h *AgendaHandler) Export(c *gin.Context) {
	buf, err := h.export.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "export_failed", "Erro ao gerar a planilha.")
		return
	}

	fileName := fmt.Sprintf("agenda_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(
		http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes(),
	)
}

func (h *AgendaHandler) AuditLogs(c *gin.Context) {
	httpresp.List(c, h.audit.Events())
}
