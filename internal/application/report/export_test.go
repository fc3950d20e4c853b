package report_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktrack-api/internal/application/report"
	"github.com/jhoicas/stocktrack-api/internal/application/scope"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

// fakeEntryRepo devuelve las filas fijas, registrando el filtro recibido.
type fakeEntryRepo struct {
	rows       []*entity.StockEntryView
	seenFilter *string
	called     bool
}

func (r *fakeEntryRepo) GetForUpdate(productID, siteID string) (*entity.StockEntry, error) {
	return nil, nil
}
func (r *fakeEntryRepo) ApplyDelta(productID, siteID string, delta int64) (*entity.StockEntry, error) {
	return nil, nil
}
func (r *fakeEntryRepo) UpdateQuantity(id string, quantity int64) (*entity.StockEntry, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeEntryRepo) ListViews(siteID *string) ([]*entity.StockEntryView, error) {
	r.called = true
	r.seenFilter = siteID
	return r.rows, nil
}

type fakeMovementRepo struct {
	rows       []*entity.StockMovementView
	seenFilter *string
	called     bool
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error { return nil }
func (r *fakeMovementRepo) ListViews(siteID *string) ([]*entity.StockMovementView, error) {
	r.called = true
	r.seenFilter = siteID
	return r.rows, nil
}

// fakePDF devuelve bytes reconocibles para verificar el despacho por formato.
type fakePDF struct{}

func (fakePDF) StockReport(ctx context.Context, rows []*entity.StockEntryView) ([]byte, error) {
	return []byte("%PDF-stock"), nil
}
func (fakePDF) HistoryReport(ctx context.Context, rows []*entity.StockMovementView) ([]byte, error) {
	return []byte("%PDF-history"), nil
}

func admin() scope.Access {
	return scope.Access{UserID: "u-admin", Role: entity.RoleAdmin}
}

func newExportUC(entries *fakeEntryRepo, movements *fakeMovementRepo) *report.ExportUseCase {
	return report.NewExportUseCase(entries, movements, fakePDF{})
}

func parseCSV(t *testing.T, content []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportStock_CSV(t *testing.T) {
	entries := &fakeEntryRepo{rows: []*entity.StockEntryView{
		{ID: "e1", ProductName: "Taladro", SiteName: "Bodega Norte", Quantity: 12},
		{ID: "e2", ProductName: "Llave, ajustable", SiteName: "Bodega Sur", Quantity: 0},
	}}
	uc := newExportUC(entries, &fakeMovementRepo{})

	out, err := uc.ExportStock(context.Background(), admin(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", out.ContentType)
	assert.Equal(t, "stock.csv", out.Filename)

	records := parseCSV(t, out.Content)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"site_name", "product_name", "quantity"}, records[0])
	assert.Equal(t, []string{"Bodega Norte", "Taladro", "12"}, records[1])
	// La coma en el nombre queda escapada por el writer CSV
	assert.Equal(t, []string{"Bodega Sur", "Llave, ajustable", "0"}, records[2])
}

func TestExportStock_FormatoVacioEsCSV(t *testing.T) {
	uc := newExportUC(&fakeEntryRepo{}, &fakeMovementRepo{})

	out, err := uc.ExportStock(context.Background(), admin(), "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", out.ContentType)
}

func TestExportStock_PDF(t *testing.T) {
	uc := newExportUC(&fakeEntryRepo{}, &fakeMovementRepo{})

	out, err := uc.ExportStock(context.Background(), admin(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", out.ContentType)
	assert.Equal(t, "stock.pdf", out.Filename)
	assert.Equal(t, []byte("%PDF-stock"), out.Content)
}

func TestExportStock_FormatoDesconocido_Invalido(t *testing.T) {
	entries := &fakeEntryRepo{}
	uc := newExportUC(entries, &fakeMovementRepo{})

	_, err := uc.ExportStock(context.Background(), admin(), "xlsx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, entries.called, "formato inválido no llega al repo")
}

func TestExportStock_AplicaFiltroDeSede(t *testing.T) {
	entries := &fakeEntryRepo{}
	uc := newExportUC(entries, &fakeMovementRepo{})

	caller := scope.Access{UserID: "u-tech", Role: entity.RoleTechnician, SiteID: strPtr("site-1")}
	_, err := uc.ExportStock(context.Background(), caller, "csv")
	require.NoError(t, err)
	require.NotNil(t, entries.seenFilter, "el técnico exporta solo su sede")
	assert.Equal(t, "site-1", *entries.seenFilter)
}

func TestExportHistory_CSV(t *testing.T) {
	ts := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	movements := &fakeMovementRepo{rows: []*entity.StockMovementView{
		{ID: "m1", ProductName: "Taladro", SiteName: "Bodega Norte", QuantityChange: 8, Type: entity.MovementTypeOut, Timestamp: ts, Username: strPtr("admin")},
		{ID: "m2", ProductName: "Taladro", SiteName: "Bodega Norte", QuantityChange: 5, Type: entity.MovementTypeIn, Timestamp: ts.Add(-time.Hour), Username: nil},
	}}
	uc := newExportUC(&fakeEntryRepo{}, movements)

	out, err := uc.ExportHistory(context.Background(), admin(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "history.csv", out.Filename)

	records := parseCSV(t, out.Content)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"timestamp", "site_name", "product_name", "quantity_change", "movement_type", "user_name"}, records[0])
	assert.Equal(t, []string{"2026-03-15T10:30:00Z", "Bodega Norte", "Taladro", "8", "out", "admin"}, records[1])
	// Movimiento con usuario borrado: columna user_name vacía
	assert.Equal(t, "", records[2][5])
}

func TestExportHistory_PDF(t *testing.T) {
	uc := newExportUC(&fakeEntryRepo{}, &fakeMovementRepo{})

	out, err := uc.ExportHistory(context.Background(), admin(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", out.ContentType)
	assert.Equal(t, []byte("%PDF-history"), out.Content)
}

// Técnico sin sede ligada: exporta solo cabeceras y no consulta el repo,
// nunca el conjunto completo de sedes.
func TestExport_TecnicoSinSede_SoloCabeceras(t *testing.T) {
	entries := &fakeEntryRepo{rows: []*entity.StockEntryView{
		{ID: "e1", ProductName: "Taladro", SiteName: "Bodega Norte", Quantity: 12},
	}}
	movements := &fakeMovementRepo{rows: []*entity.StockMovementView{
		{ID: "m1", ProductName: "Taladro", SiteName: "Bodega Norte", QuantityChange: 5, Type: entity.MovementTypeIn, Timestamp: time.Now()},
	}}
	uc := newExportUC(entries, movements)
	caller := scope.Access{UserID: "u-tech", Role: entity.RoleTechnician}

	out, err := uc.ExportStock(context.Background(), caller, "csv")
	require.NoError(t, err)
	assert.False(t, entries.called, "sin sede no se consulta el repo")
	records := parseCSV(t, out.Content)
	require.Len(t, records, 1, "solo la fila de cabeceras")
	assert.Equal(t, []string{"site_name", "product_name", "quantity"}, records[0])

	out, err = uc.ExportHistory(context.Background(), caller, "csv")
	require.NoError(t, err)
	assert.False(t, movements.called, "sin sede no se consulta el repo")
	records = parseCSV(t, out.Content)
	require.Len(t, records, 1, "solo la fila de cabeceras")
}

func TestExport_SinIdentidad_Unauthorized(t *testing.T) {
	uc := newExportUC(&fakeEntryRepo{}, &fakeMovementRepo{})

	_, err := uc.ExportStock(context.Background(), scope.Access{}, "csv")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.ExportHistory(context.Background(), scope.Access{}, "csv")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
