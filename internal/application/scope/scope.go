// Package scope implementa el Access Scoper: toda operación que lee o escribe
// stock o movimientos pasa por estas reglas, en lugar de chequeos ad hoc por
// ruta. Los admin ven y mutan todo; los técnicos solo ven su sede y no mutan.
package scope

import (
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// Access es la tripleta de identidad verificada que entrega el middleware de
// autenticación. El núcleo confía en ella por completo.
type Access struct {
	UserID string
	Role   string
	SiteID *string // nil para admin o usuarios sin sede ligada
}

// Valid verifica que haya identidad. Sin UserID no hay caller.
func (a Access) Valid() error {
	if a.UserID == "" {
		return domain.ErrUnauthorized
	}
	return nil
}

// IsAdmin indica si el caller tiene rol admin.
func (a Access) IsAdmin() bool { return a.Role == entity.RoleAdmin }

// SiteFilter devuelve el filtro de sede a aplicar en lecturas: nil para admin
// (sin restricción) y la sede ligada para el resto. Un no-admin sin sede
// ligada queda marcado como unbound: no ve ninguna fila, nunca todas.
func (a Access) SiteFilter() (filter *string, unbound bool) {
	if a.IsAdmin() {
		return nil, false
	}
	if a.SiteID == nil {
		return nil, true
	}
	return a.SiteID, false
}

// CheckSite verifica que el caller pueda tocar filas de la sede dada.
// Un no-admin sin sede ligada, o ligado a otra sede, recibe ErrForbidden.
func (a Access) CheckSite(siteID string) error {
	if err := a.Valid(); err != nil {
		return err
	}
	if a.IsAdmin() {
		return nil
	}
	if a.SiteID == nil || *a.SiteID != siteID {
		return domain.ErrForbidden
	}
	return nil
}

// RequireAdmin exige rol admin. Las mutaciones (posteo de movimientos, fijar
// cantidad, CRUD de productos/usuarios) pasan por aquí.
func (a Access) RequireAdmin() error {
	if err := a.Valid(); err != nil {
		return err
	}
	if !a.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
