package impl

import (
	"context"
	"log/slog"

	deliverycontext "glbiashara/internal/delivery/context"
	"glbiashara/internal/domain/entity"
	domainerrors "glbiashara/internal/domain/errors"
	"glbiashara/internal/domain/repository"
	"glbiashara/internal/domain/service"
	"glbiashara/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const directoryInstitutionsLimit = 100

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	orgRepo   repository.OrgRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	OrgRepo   repository.OrgRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		orgRepo:   params.OrgRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProviders returns all active telecom providers.
func (srv *directoryService) ListProviders(ctx context.Context) ([]*entity.Provider, error) {
	providers, err := srv.orgRepo.ListProviders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	return providers, nil
}

// ListClubs returns all clubs.
func (srv *directoryService) ListClubs(ctx context.Context) ([]*entity.Club, error) {
	clubs, err := srv.orgRepo.ListClubs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clubs")
	}

	return clubs, nil
}

// ListInstitutions returns active institutions for the directory view.
func (srv *directoryService) ListInstitutions(ctx context.Context) ([]*entity.Institution, error) {
	institutions, err := srv.orgRepo.ListInstitutions(ctx, directoryInstitutionsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list institutions")
	}

	return institutions, nil
}

// GetEntityPage resolves an entity page by kind and slug.
func (srv *directoryService) GetEntityPage(ctx context.Context, kind entity.OrgKind, slug string) (*usecase.EntityPage, error) {
	page := &usecase.EntityPage{Kind: kind}

	var err error
	switch kind {
	case entity.OrgKindProvider:
		page.Provider, err = srv.orgRepo.FindProviderBySlug(ctx, slug)
	case entity.OrgKindClub:
		page.Club, err = srv.orgRepo.FindClubBySlug(ctx, slug)
	case entity.OrgKindInstitution:
		page.Institution, err = srv.orgRepo.FindInstitutionBySlug(ctx, slug)
	default:
		return nil, domainerrors.ErrUnknownEntityKind
	}

	if errors.Is(err, repository.ErrProviderNotFound) ||
		errors.Is(err, repository.ErrClubNotFound) ||
		errors.Is(err, repository.ErrInstitutionNotFound) {
		return nil, domainerrors.ErrEntityNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve entity page")
	}

	return page, nil
}

// GenerateConnectQR renders the PNG QR code an entity prints on posters. The
// entity must exist, so scanned codes always resolve.
func (srv *directoryService) GenerateConnectQR(ctx context.Context, kind entity.OrgKind, entityID int64) ([]byte, error) {
	exists, err := srv.orgRepo.Exists(ctx, kind, entityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check entity existence")
	}
	if !exists {
		return nil, domainerrors.ErrEntityNotFound
	}

	png, err := srv.qrService.GenerateConnectQR(kind, entityID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate connect QR",
			slog.String("kind", kind.String()),
			slog.Int64("entityID", entityID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate connect QR")
	}

	return png, nil
}
