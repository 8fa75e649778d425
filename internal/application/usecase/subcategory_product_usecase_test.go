package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablesprint/catalog-api/internal/application/dto"
	"github.com/tablesprint/catalog-api/internal/application/usecase"
	"github.com/tablesprint/catalog-api/internal/domain/entity"
)

type captureSubRepo struct {
	created *entity.Subcategory
	updated *entity.Subcategory
	deleted int64
	list    []*entity.Subcategory
}

func (r *captureSubRepo) List(context.Context) ([]*entity.Subcategory, error) { return r.list, nil }
func (r *captureSubRepo) Create(_ context.Context, s *entity.Subcategory) (int64, error) {
	r.created = s
	return 5, nil
}
func (r *captureSubRepo) Update(_ context.Context, s *entity.Subcategory) error {
	r.updated = s
	return nil
}
func (r *captureSubRepo) Delete(_ context.Context, id int64) error {
	r.deleted = id
	return nil
}

type captureProductRepo struct {
	created *entity.Product
	updated *entity.Product
	deleted int64
	list    []*entity.Product
}

func (r *captureProductRepo) List(context.Context) ([]*entity.Product, error) { return r.list, nil }
func (r *captureProductRepo) Create(_ context.Context, p *entity.Product) (int64, error) {
	r.created = p
	return 8, nil
}
func (r *captureProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.updated = p
	return nil
}
func (r *captureProductRepo) Delete(_ context.Context, id int64) error {
	r.deleted = id
	return nil
}

func TestSubcategoryUseCase_MapeaCampos(t *testing.T) {
	repo := &captureSubRepo{}
	uc := usecase.NewSubcategoryUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.SubcategoryRequest{Subname: strPtr("Apples"), Name: strPtr("Fruits"), Sequence: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.ID)
	assert.Equal(t, "Apples", *repo.created.Subname)
	assert.Equal(t, "Fruits", *repo.created.Name, "el padre se guarda como texto libre")
	assert.Equal(t, 3, *repo.created.Sequence)
	assert.Equal(t, entity.StatusActive, repo.created.Status)

	require.NoError(t, uc.Update(ctx, 5, dto.SubcategoryRequest{Subname: strPtr("Pears"), Name: strPtr("Fruits"), Sequence: intPtr(1), Status: "Inactive"}))
	assert.Equal(t, int64(5), repo.updated.ID)
	assert.Equal(t, "Inactive", repo.updated.Status)

	require.NoError(t, uc.Delete(ctx, 5))
	assert.Equal(t, int64(5), repo.deleted)

	repo.list = []*entity.Subcategory{{ID: 5, Subname: strPtr("Pears"), Name: strPtr("Fruits"), Sequence: intPtr(1), Status: "Inactive"}}
	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pears", list[0].Subname)
	assert.Equal(t, 1, list[0].Sequence)
}

func TestProductUseCase_MapeaCampos(t *testing.T) {
	repo := &captureProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.ProductRequest{Proname: strPtr("Gala"), Subname: strPtr("Apples"), Name: strPtr("Fruits"), Sequence: intPtr(1), Status: "Active"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), out.ID)
	assert.Equal(t, "Gala", *repo.created.Proname)
	assert.Equal(t, "Apples", *repo.created.Subname)

	require.NoError(t, uc.Update(ctx, 8, dto.ProductRequest{Proname: strPtr("Fuji")}))
	assert.Equal(t, "Fuji", *repo.updated.Proname)
	assert.Nil(t, repo.updated.Subname, "un campo omitido se envía como NULL")
	assert.Equal(t, entity.StatusActive, repo.updated.Status)

	require.NoError(t, uc.Delete(ctx, 8))
	assert.Equal(t, int64(8), repo.deleted)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
