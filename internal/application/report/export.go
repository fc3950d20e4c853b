// Package report exporta el stock y el historial de movimientos en CSV o PDF.
// Lee las mismas filas scopeadas que los listados; no tiene lógica de núcleo.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/jhoicas/stocktrack-api/internal/application/scope"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// Formatos de exportación soportados.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// PDFGenerator puerto para el renderizador PDF (implementado con Maroto en
// infrastructure/pdf).
type PDFGenerator interface {
	StockReport(ctx context.Context, rows []*entity.StockEntryView) ([]byte, error)
	HistoryReport(ctx context.Context, rows []*entity.StockMovementView) ([]byte, error)
}

// Export resultado de una exportación: bytes, content type y nombre sugerido.
type Export struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportUseCase genera los reportes de stock e historial.
type ExportUseCase struct {
	entryRepo    repository.StockEntryRepository
	movementRepo repository.StockMovementRepository
	pdf          PDFGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(entryRepo repository.StockEntryRepository, movementRepo repository.StockMovementRepository, pdf PDFGenerator) *ExportUseCase {
	return &ExportUseCase{entryRepo: entryRepo, movementRepo: movementRepo, pdf: pdf}
}

// ExportStock exporta el stock visible para el caller. format vacío = csv.
func (uc *ExportUseCase) ExportStock(ctx context.Context, caller scope.Access, format string) (*Export, error) {
	if err := caller.Valid(); err != nil {
		return nil, err
	}
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatPDF {
		return nil, domain.ErrInvalidInput
	}
	// Un técnico sin sede ligada exporta vacío (solo cabeceras)
	var rows []*entity.StockEntryView
	if filter, unbound := caller.SiteFilter(); !unbound {
		var err error
		rows, err = uc.entryRepo.ListViews(filter)
		if err != nil {
			return nil, err
		}
	}
	if format == FormatPDF {
		content, err := uc.pdf.StockReport(ctx, rows)
		if err != nil {
			return nil, err
		}
		return &Export{Content: content, ContentType: "application/pdf", Filename: "stock.pdf"}, nil
	}
	content, err := stockCSV(rows)
	if err != nil {
		return nil, err
	}
	return &Export{Content: content, ContentType: "text/csv", Filename: "stock.csv"}, nil
}

// ExportHistory exporta el historial visible para el caller. format vacío = csv.
func (uc *ExportUseCase) ExportHistory(ctx context.Context, caller scope.Access, format string) (*Export, error) {
	if err := caller.Valid(); err != nil {
		return nil, err
	}
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatPDF {
		return nil, domain.ErrInvalidInput
	}
	// Un técnico sin sede ligada exporta vacío (solo cabeceras)
	var rows []*entity.StockMovementView
	if filter, unbound := caller.SiteFilter(); !unbound {
		var err error
		rows, err = uc.movementRepo.ListViews(filter)
		if err != nil {
			return nil, err
		}
	}
	if format == FormatPDF {
		content, err := uc.pdf.HistoryReport(ctx, rows)
		if err != nil {
			return nil, err
		}
		return &Export{Content: content, ContentType: "application/pdf", Filename: "history.pdf"}, nil
	}
	content, err := historyCSV(rows)
	if err != nil {
		return nil, err
	}
	return &Export{Content: content, ContentType: "text/csv", Filename: "history.csv"}, nil
}

func stockCSV(rows []*entity.StockEntryView) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"site_name", "product_name", "quantity"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := []string{r.SiteName, r.ProductName, strconv.FormatInt(r.Quantity, 10)}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func historyCSV(rows []*entity.StockMovementView) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"timestamp", "site_name", "product_name", "quantity_change", "movement_type", "user_name"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range rows {
		username := ""
		if r.Username != nil {
			username = *r.Username
		}
		rec := []string{
			r.Timestamp.UTC().Format(time.RFC3339),
			r.SiteName,
			r.ProductName,
			strconv.FormatInt(r.QuantityChange, 10),
			r.Type,
			username,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
