package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP de stock: listado, override de
// cantidad y posteo de movimientos (protegido).
type StockHandler struct {
	queries    *stock.QueryUseCase
	reconciler *stock.PostMovementUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(queries *stock.QueryUseCase, reconciler *stock.PostMovementUseCase) *StockHandler {
	return &StockHandler{queries: queries, reconciler: reconciler}
}

// List godoc
// @Summary      Listar stock (admin: todas las sedes; técnico: su sede)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockEntryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.queries.ListStock(c.Context(), CallerAccess(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Fijar cantidad de una fila de stock (solo admin)
// @Description  Override directo: no crea filas ni escribe en el libro de movimientos.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la fila de stock"
// @Param        body  body  dto.SetQuantityRequest  true  "quantity >= 0"
// @Success      200   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [put]
func (h *StockHandler) SetQuantity(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity es requerido"})
	}
	entry, err := h.queries.SetQuantity(c.Context(), CallerAccess(c), id, *in.Quantity)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{
		"id":         entry.ID,
		"product_id": entry.ProductID,
		"site_id":    entry.SiteID,
		"quantity":   entry.Quantity,
	})
}

// PostMovement godoc
// @Summary      Registrar movimiento de stock (solo admin)
// @Description  Aplica el movimiento a la proyección (recorte en 0) y lo agrega al libro con la magnitud solicitada.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostMovementRequest  true  "product_id, site_id, quantity_change > 0, movement_type in|out"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) PostMovement(c *fiber.Ctx) error {
	var in dto.PostMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.reconciler.PostMovement(c.Context(), CallerAccess(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:             movement.ID,
		ProductID:      movement.ProductID,
		SiteID:         movement.SiteID,
		QuantityChange: movement.QuantityChange,
		MovementType:   movement.Type,
		UserID:         movement.UserID,
		Timestamp:      movement.Timestamp,
	})
}

// History godoc
// @Summary      Historial de movimientos (admin: todo; técnico: su sede)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.MovementHistoryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/history [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	out, err := h.queries.ListMovements(c.Context(), CallerAccess(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
