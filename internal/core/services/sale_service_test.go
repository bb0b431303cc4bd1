package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"og-partnerhub/internal/adapters/persistence/models"
	"og-partnerhub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaleServiceFixture(t *testing.T) (*SaleService, *models.Expert) {
	t.Helper()

	expertRepo := newFakeExpertRepo()
	saleRepo := newFakeSaleRepo()

	expert := &models.Expert{
		BusinessName:           "Atlas Fitness",
		ExpertName:             "Jordan Reed",
		Email:                  "jordan@atlasfit.example",
		Status:                 domain.ExpertStatusActive,
		RevenueSplitPercentage: dec("70.00"),
		CreatedByID:            1,
	}
	require.NoError(t, expertRepo.Create(context.Background(), expert))

	return NewSaleService(saleRepo, expertRepo), expert
}

func TestCreateSaleDefaults(t *testing.T) {
	svc, expert := newSaleServiceFixture(t)

	before := time.Now().UTC()
	sale, err := svc.CreateSale(context.Background(), &SaleCreateInput{
		ExpertID:    expert.ID,
		GrossAmount: dec("100.00"),
		NetAmount:   dec("90.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TransactionTypeSale, sale.TransactionType)
	assert.Equal(t, 1, sale.Quantity)
	assert.False(t, sale.SaleDate.Before(before))

	// Absent customer reference gets anonymized
	require.NotNil(t, sale.CustomerID)
	assert.True(t, strings.HasPrefix(*sale.CustomerID, "anon-"))
}

func TestCreateSaleKeepsProvidedCustomerRef(t *testing.T) {
	svc, expert := newSaleServiceFixture(t)

	ref := "shop-58113"
	sale, err := svc.CreateSale(context.Background(), &SaleCreateInput{
		ExpertID:    expert.ID,
		GrossAmount: dec("100.00"),
		NetAmount:   dec("90.00"),
		CustomerID:  &ref,
	})
	require.NoError(t, err)
	assert.Equal(t, "shop-58113", *sale.CustomerID)
}

func TestCreateSaleUnknownExpert(t *testing.T) {
	svc, _ := newSaleServiceFixture(t)

	_, err := svc.CreateSale(context.Background(), &SaleCreateInput{
		ExpertID:    999,
		GrossAmount: dec("100.00"),
		NetAmount:   dec("90.00"),
	})
	assert.ErrorIs(t, err, domain.ErrExpertMissing)
	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)
}

func TestListSalesUnknownExpert(t *testing.T) {
	svc, _ := newSaleServiceFixture(t)

	_, err := svc.ListSales(context.Background(), 999, 0, 20)
	assert.ErrorIs(t, err, domain.ErrExpertNotFound)
}

func TestDeleteSale(t *testing.T) {
	svc, expert := newSaleServiceFixture(t)
	ctx := context.Background()

	sale, err := svc.CreateSale(ctx, &SaleCreateInput{
		ExpertID:    expert.ID,
		GrossAmount: dec("50.00"),
		NetAmount:   dec("45.00"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSale(ctx, sale.ID))
	err = svc.DeleteSale(ctx, sale.ID)
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}
