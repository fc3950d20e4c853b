package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/scope"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// fakeProductRepo repo en memoria.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

func strPtr(s string) *string { return &s }

func admin() scope.Access {
	return scope.Access{UserID: "u-admin", Role: entity.RoleAdmin}
}

func technician() scope.Access {
	return scope.Access{UserID: "u-tech", Role: entity.RoleTechnician, SiteID: strPtr("site-1")}
}

func TestProductCreate_Admin(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(admin(), dto.CreateProductRequest{Name: "Taladro", Description: "850W"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Taladro", out.Name)
	assert.Len(t, repo.products, 1)
}

func TestProductCreate_SinNombre_Invalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(admin(), dto.CreateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_Tecnico_Forbidden(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(technician(), dto.CreateProductRequest{Name: "Taladro"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.products)
}

func TestProductList_TecnicoPuedeLeer(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["p1"] = &entity.Product{ID: "p1", Name: "Taladro"}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.List(technician())
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestProductGetByID_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.GetByID(admin(), "p-zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_Parcial(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["p1"] = &entity.Product{ID: "p1", Name: "Taladro", Description: "850W"}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Update(admin(), "p1", dto.UpdateProductRequest{Name: strPtr("Taladro Pro")})
	require.NoError(t, err)
	assert.Equal(t, "Taladro Pro", out.Name)
	assert.Equal(t, "850W", out.Description, "los campos no enviados no cambian")
}

func TestProductDelete_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	err := uc.Delete(admin(), "p-zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_Admin(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["p1"] = &entity.Product{ID: "p1", Name: "Taladro"}
	uc := usecase.NewProductUseCase(repo)

	require.NoError(t, uc.Delete(admin(), "p1"))
	assert.Empty(t, repo.products)
}
