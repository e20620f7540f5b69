package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"glbiashara/internal/domain/entity"
	domainerrors "glbiashara/internal/domain/errors"
	"glbiashara/internal/domain/repository"
	mockRepo "glbiashara/internal/mocks/repository"
	mockSvc "glbiashara/internal/mocks/service"
	"glbiashara/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectoryService(t *testing.T) (usecase.DirectoryUsecase, *mockRepo.MockOrgRepository, *mockSvc.MockQRCodeService) {
	t.Helper()

	orgRepo := mockRepo.NewMockOrgRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := NewDirectoryService(DirectoryServiceParams{
		OrgRepo:   orgRepo,
		QRService: qrService,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, orgRepo, qrService
}

func TestDirectoryService_GetEntityPage(t *testing.T) {
	service, orgRepo, _ := newTestDirectoryService(t)
	ctx := context.Background()

	club := &entity.Club{ID: 1, Name: "Simba SC", Slug: "simba-sc", Sport: "football"}

	orgRepo.EXPECT().FindClubBySlug(ctx, "simba-sc").Return(club, nil)

	page, err := service.GetEntityPage(ctx, entity.OrgKindClub, "simba-sc")
	require.NoError(t, err)
	assert.Equal(t, entity.OrgKindClub, page.Kind)
	assert.Equal(t, club, page.Club)
	assert.Nil(t, page.Provider)
	assert.Nil(t, page.Institution)
}

func TestDirectoryService_GetEntityPage_NotFound(t *testing.T) {
	service, orgRepo, _ := newTestDirectoryService(t)
	ctx := context.Background()

	orgRepo.EXPECT().
		FindProviderBySlug(ctx, "hayupo").
		Return(nil, repository.ErrProviderNotFound)

	page, err := service.GetEntityPage(ctx, entity.OrgKindProvider, "hayupo")
	assert.Nil(t, page)
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestDirectoryService_GetEntityPage_UnknownKind(t *testing.T) {
	service, _, _ := newTestDirectoryService(t)
	ctx := context.Background()

	page, err := service.GetEntityPage(ctx, entity.OrgKind("market"), "kariakoo")
	assert.Nil(t, page)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownEntityKind)
}

func TestDirectoryService_GenerateConnectQR(t *testing.T) {
	service, orgRepo, qrService := newTestDirectoryService(t)
	ctx := context.Background()

	png := []byte{0x89, 0x50, 0x4E, 0x47}

	orgRepo.EXPECT().Exists(ctx, entity.OrgKindInstitution, int64(4)).Return(true, nil)
	qrService.EXPECT().GenerateConnectQR(entity.OrgKindInstitution, int64(4)).Return(png, nil)

	got, err := service.GenerateConnectQR(ctx, entity.OrgKindInstitution, 4)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestDirectoryService_GenerateConnectQR_UnknownEntity(t *testing.T) {
	service, orgRepo, _ := newTestDirectoryService(t)
	ctx := context.Background()

	orgRepo.EXPECT().Exists(ctx, entity.OrgKindClub, int64(404)).Return(false, nil)

	got, err := service.GenerateConnectQR(ctx, entity.OrgKindClub, 404)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestDirectoryService_Lists(t *testing.T) {
	service, orgRepo, _ := newTestDirectoryService(t)
	ctx := context.Background()

	providers := []*entity.Provider{{ID: 1, Name: "Airtel Tanzania", Slug: "airtel"}}
	clubs := []*entity.Club{{ID: 1, Name: "Yanga SC", Slug: "yanga-sc"}}
	institutions := []*entity.Institution{{ID: 1, Name: "UDSM", Slug: "udsm"}}

	orgRepo.EXPECT().ListProviders(ctx).Return(providers, nil)
	orgRepo.EXPECT().ListClubs(ctx).Return(clubs, nil)
	orgRepo.EXPECT().ListInstitutions(ctx, directoryInstitutionsLimit).Return(institutions, nil)

	gotProviders, err := service.ListProviders(ctx)
	require.NoError(t, err)
	assert.Equal(t, providers, gotProviders)

	gotClubs, err := service.ListClubs(ctx)
	require.NoError(t, err)
	assert.Equal(t, clubs, gotClubs)

	gotInstitutions, err := service.ListInstitutions(ctx)
	require.NoError(t, err)
	assert.Equal(t, institutions, gotInstitutions)
}
