package services

import (
	"context"
	"testing"

	"og-partnerhub/internal/adapters/persistence/models"
	"og-partnerhub/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpertServiceFixture(t *testing.T) (*ExpertService, *fakeExpertRepo, *fakeUserRepo, *models.User) {
	t.Helper()

	expertRepo := newFakeExpertRepo()
	userRepo := newFakeUserRepo()

	admin := &models.User{
		Email:        "admin@ogpartner.io",
		PasswordHash: "x",
		Name:         "Admin",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	require.NoError(t, userRepo.Create(context.Background(), admin))

	return NewExpertService(expertRepo, userRepo), expertRepo, userRepo, admin
}

func validExpertInput() *ExpertCreateInput {
	return &ExpertCreateInput{
		BusinessName: "Atlas Fitness",
		ExpertName:   "Jordan Reed",
		Email:        "jordan@atlasfit.example",
	}
}

func TestCreateExpertDefaults(t *testing.T) {
	svc, _, _, admin := newExpertServiceFixture(t)

	expert, err := svc.CreateExpert(context.Background(), admin.ID, validExpertInput())
	require.NoError(t, err)

	assert.Equal(t, domain.ExpertStatusPending, expert.Status)
	assert.True(t, expert.RevenueSplitPercentage.Equal(decimal.NewFromFloat(50.00)))
	assert.Equal(t, admin.ID, expert.CreatedByID)
	assert.NotNil(t, expert.SocialMedia)
	assert.False(t, expert.PartnershipStartDate.IsZero())
}

func TestCreateExpertSplitOutOfRange(t *testing.T) {
	svc, _, _, admin := newExpertServiceFixture(t)

	for _, raw := range []string{"-0.01", "100.01", "150.00"} {
		split := dec(raw)
		input := validExpertInput()
		input.RevenueSplitPercentage = &split

		_, err := svc.CreateExpert(context.Background(), admin.ID, input)
		assert.ErrorIs(t, err, domain.ErrSplitOutOfRange, "split %s", raw)
	}

	// Boundaries are allowed
	for _, raw := range []string{"0.00", "100.00"} {
		split := dec(raw)
		input := validExpertInput()
		input.Email = raw + "@atlasfit.example"
		input.RevenueSplitPercentage = &split

		_, err := svc.CreateExpert(context.Background(), admin.ID, input)
		assert.NoError(t, err, "split %s", raw)
	}
}

func TestCreateExpertSubdomainConflict(t *testing.T) {
	svc, _, _, admin := newExpertServiceFixture(t)
	ctx := context.Background()

	sub := "atlas"
	input := validExpertInput()
	input.Subdomain = &sub
	_, err := svc.CreateExpert(ctx, admin.ID, input)
	require.NoError(t, err)

	second := validExpertInput()
	second.Email = "other@atlasfit.example"
	second.Subdomain = &sub
	_, err = svc.CreateExpert(ctx, admin.ID, second)
	assert.ErrorIs(t, err, domain.ErrSubdomainTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateExpertOwnerChecks(t *testing.T) {
	svc, _, userRepo, admin := newExpertServiceFixture(t)
	ctx := context.Background()

	missing := uint(42)
	input := validExpertInput()
	input.OwnerID = &missing
	_, err := svc.CreateExpert(ctx, admin.ID, input)
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)

	owner := &models.User{Email: "owner@example.com", PasswordHash: "x", Name: "Owner", Role: domain.RoleExpert, IsActive: true}
	require.NoError(t, userRepo.Create(ctx, owner))

	input = validExpertInput()
	input.OwnerID = &owner.ID
	_, err = svc.CreateExpert(ctx, admin.ID, input)
	require.NoError(t, err)

	// 1:1 - the same owner cannot back a second business
	second := validExpertInput()
	second.Email = "second@example.com"
	second.OwnerID = &owner.ID
	_, err = svc.CreateExpert(ctx, admin.ID, second)
	assert.ErrorIs(t, err, domain.ErrOwnerAlreadyBound)
}

func TestCreateExpertUnknownCreator(t *testing.T) {
	svc, _, _, _ := newExpertServiceFixture(t)

	_, err := svc.CreateExpert(context.Background(), 999, validExpertInput())
	assert.ErrorIs(t, err, domain.ErrCreatorNotFound)
	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)
}

func TestUpdateExpertStatusTransitions(t *testing.T) {
	svc, _, _, admin := newExpertServiceFixture(t)
	ctx := context.Background()

	expert, err := svc.CreateExpert(ctx, admin.ID, validExpertInput())
	require.NoError(t, err)

	// pending -> suspended is not allowed
	suspended := domain.ExpertStatusSuspended
	_, err = svc.UpdateExpert(ctx, expert.ID, &ExpertUpdateInput{Status: &suspended})
	assert.ErrorIs(t, err, domain.ErrStatusTransition)

	// pending -> active -> suspended is
	active := domain.ExpertStatusActive
	updated, err := svc.UpdateExpert(ctx, expert.ID, &ExpertUpdateInput{Status: &active})
	require.NoError(t, err)
	assert.Equal(t, domain.ExpertStatusActive, updated.Status)

	updated, err = svc.UpdateExpert(ctx, expert.ID, &ExpertUpdateInput{Status: &suspended})
	require.NoError(t, err)
	assert.Equal(t, domain.ExpertStatusSuspended, updated.Status)
}

func TestUpdateExpertPartial(t *testing.T) {
	svc, _, _, admin := newExpertServiceFixture(t)
	ctx := context.Background()

	expert, err := svc.CreateExpert(ctx, admin.ID, validExpertInput())
	require.NoError(t, err)

	name := "Atlas Fitness Co"
	branding := map[string]interface{}{"primary_color": "#FF5500"}
	updated, err := svc.UpdateExpert(ctx, expert.ID, &ExpertUpdateInput{
		BusinessName:   &name,
		BrandingConfig: &branding,
	})
	require.NoError(t, err)

	assert.Equal(t, "Atlas Fitness Co", updated.BusinessName)
	assert.Equal(t, "#FF5500", updated.BrandingConfig["primary_color"])
	// Untouched fields survive
	assert.Equal(t, "Jordan Reed", updated.ExpertName)
	assert.Equal(t, "jordan@atlasfit.example", updated.Email)
}

func TestUpdateExpertNotFound(t *testing.T) {
	svc, _, _, _ := newExpertServiceFixture(t)

	name := "x"
	_, err := svc.UpdateExpert(context.Background(), 999, &ExpertUpdateInput{BusinessName: &name})
	assert.ErrorIs(t, err, domain.ErrExpertNotFound)
}

func TestListExpertsStatusFilter(t *testing.T) {
	svc, expertRepo, _, admin := newExpertServiceFixture(t)
	ctx := context.Background()

	a, err := svc.CreateExpert(ctx, admin.ID, validExpertInput())
	require.NoError(t, err)

	b := validExpertInput()
	b.Email = "b@example.com"
	_, err = svc.CreateExpert(ctx, admin.ID, b)
	require.NoError(t, err)

	stored, _ := expertRepo.GetByID(ctx, a.ID)
	stored.Status = domain.ExpertStatusActive
	require.NoError(t, expertRepo.Update(ctx, stored))

	out, err := svc.ListExperts(ctx, domain.ExpertStatusActive, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)

	_, err = svc.ListExperts(ctx, domain.ExpertStatus("bogus"), 0, 20)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
