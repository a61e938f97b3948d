package agenda

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type Export struct {
	list *ListAgenda
}

func NewExport(repo domain.Repository) *Export {
	return &Export{list: NewListAgenda(repo)}
}

const exportSheet = "Agenda"

var exportHeaders = []string{
	"Cliente", "Telefone", "Serviço", "Valor", "Profissional", "Data", "Horário", "Status",
}

// Execute gera a planilha da agenda em memória, pronta para download.
func (uc *Export) Execute(ctx context.Context) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(exportSheet, cell, header)
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	_ = f.SetCellStyle(exportSheet, "A1", "H1", style)

	for row, entry := range uc.list.Execute(ctx) {
		values := []any{
			entry.ClientName,
			entry.ClientPhone,
			entry.ServiceName,
			entry.ServicePrice,
			entry.ProfessionalName,
			entry.DisplayDate,
			entry.Time,
			entry.Status,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			_ = f.SetCellValue(exportSheet, cell, v)
		}
	}

	_ = f.SetColWidth(exportSheet, "A", "H", 20)
	_ = f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error saving file: %w", err)
	}
	return buf, nil
}
