// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"

	deliverycontext "glbiashara/internal/delivery/context"
	"glbiashara/internal/domain/entity"
	domainerrors "glbiashara/internal/domain/errors"
	"glbiashara/internal/domain/repository"
	"glbiashara/internal/domain/service"
	"glbiashara/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	// similarUsersLimit bounds every similarity page.
	similarUsersLimit = 20
	// connectedSellersLimit bounds the sellers fanned out per entity.
	connectedSellersLimit = 20
	// productsPerSeller bounds the listings shown per connected seller.
	productsPerSeller = 2
	// recommendedInstitutionsLimit bounds the institutions block on the home screen.
	recommendedInstitutionsLimit = 10
	// recommendedProductsLimit bounds the products block on the home screen.
	recommendedProductsLimit = 10
)

// Attribute axis names reported in SimilarUser.SharedAttributes.
const (
	axisProfession  = "profession"
	axisSkills      = "skills"
	axisClubs       = "clubs"
	axisProvider    = "provider"
	axisInstitution = "institution"
)

// networkService implements the NetworkUsecase interface.
type networkService struct {
	userRepo    repository.UserRepository
	networkRepo repository.NetworkRepository
	orgRepo     repository.OrgRepository
	productRepo repository.ProductRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// NetworkServiceParams holds dependencies for NetworkService, injected by Fx.
type NetworkServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	NetworkRepo repository.NetworkRepository
	OrgRepo     repository.OrgRepository
	ProductRepo repository.ProductRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewNetworkService is the constructor for networkService.
func NewNetworkService(params NetworkServiceParams) usecase.NetworkUsecase {
	return &networkService{
		userRepo:    params.UserRepo,
		networkRepo: params.NetworkRepo,
		orgRepo:     params.OrgRepo,
		productRepo: params.ProductRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *networkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindSimilarUsers returns up to 20 users sharing at least one attribute axis
// with the given user. An unknown user yields an empty result with Found set
// to false rather than an error, so callers can render an empty state.
func (srv *networkService) FindSimilarUsers(ctx context.Context, userID uuid.UUID) (*usecase.SimilarUsersOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return &usecase.SimilarUsersOutput{Found: false, Users: []*usecase.SimilarUser{}}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reference user")
	}

	matched, err := srv.findSimilarTo(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.SimilarUsersOutput{Found: true, Users: matched}, nil
}

// findSimilarTo runs the candidate query for an already-loaded user and ranks
// the returned page by matched-axis count. Ranking happens after the bound is
// applied, so the result is always a ranking of the same 20-row page the
// storage layer selected.
func (srv *networkService) findSimilarTo(ctx context.Context, user *entity.User) ([]*usecase.SimilarUser, error) {
	profile := repository.MatchProfile{
		Profession:    user.Profession,
		Skills:        user.Skills,
		ClubIDs:       user.ClubIDs,
		ProviderID:    user.ProviderID,
		InstitutionID: user.InstitutionID,
	}

	// A user with no populated axis matches nobody.
	if profile.IsEmpty() {
		return []*usecase.SimilarUser{}, nil
	}

	candidates, err := srv.networkRepo.FindSimilarCandidates(ctx, user.ID, profile, similarUsersLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find similar candidates")
	}

	matched := make([]*usecase.SimilarUser, 0, len(candidates))
	for _, candidate := range candidates {
		shared := sharedAxes(user, candidate)
		matched = append(matched, &usecase.SimilarUser{
			User:             candidate,
			SharedAttributes: shared,
			MatchScore:       len(shared),
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchScore > matched[j].MatchScore
	})

	return matched, nil
}

// sharedAxes reports which attribute axes two users share. An axis only
// counts when it is populated on both sides; empty never matches empty.
func sharedAxes(a, b *entity.User) []string {
	axes := make([]string, 0, 5)

	if a.Profession != "" && a.Profession == b.Profession {
		axes = append(axes, axisProfession)
	}
	if stringSetsOverlap(a.Skills, b.Skills) {
		axes = append(axes, axisSkills)
	}
	if int64SetsOverlap(a.ClubIDs, b.ClubIDs) {
		axes = append(axes, axisClubs)
	}
	if a.ProviderID != nil && b.ProviderID != nil && *a.ProviderID == *b.ProviderID {
		axes = append(axes, axisProvider)
	}
	if a.InstitutionID != nil && b.InstitutionID != nil && *a.InstitutionID == *b.InstitutionID {
		axes = append(axes, axisInstitution)
	}

	return axes
}

func stringSetsOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; ok {
			return true
		}
	}

	return false
}

func int64SetsOverlap(a, b []int64) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	set := make(map[int64]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; ok {
			return true
		}
	}

	return false
}

// GetConnectedBusinesses returns the active products of users connected to an
// organizational entity, flattened to (product, seller) pairs. At most 20
// sellers contribute, each with at most 2 listings. An unknown entity yields
// an empty list.
func (srv *networkService) GetConnectedBusinesses(ctx context.Context, kind entity.OrgKind, entityID int64) ([]*usecase.ConnectedBusiness, error) {
	sellers, err := srv.networkRepo.FindUsersByAffiliation(ctx, kind, entityID, connectedSellersLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by affiliation")
	}

	businesses := make([]*usecase.ConnectedBusiness, 0, len(sellers)*productsPerSeller)
	for _, seller := range sellers {
		products, err := srv.productRepo.FindActiveByOwner(ctx, seller.ID, productsPerSeller)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load seller products")
		}

		for _, product := range products {
			businesses = append(businesses, &usecase.ConnectedBusiness{
				Product:    product,
				SellerID:   seller.ID,
				SellerName: seller.Name,
				Profession: seller.Profession,
			})
		}
	}

	return businesses, nil
}

// GetInterconnectivityStats aggregates platform-wide counts. The six counts
// run concurrently and any failure fails the whole call. The counts are
// separate reads, so slight skew between them under concurrent writes is
// accepted.
func (srv *networkService) GetInterconnectivityStats(ctx context.Context) (*usecase.InterconnectivityStats, error) {
	stats := &usecase.InterconnectivityStats{}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		stats.TotalUsers, err = srv.networkRepo.CountUsers(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		stats.TotalProviders, err = srv.networkRepo.CountProviders(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		stats.TotalClubs, err = srv.networkRepo.CountClubs(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		stats.TotalInstitutions, err = srv.networkRepo.CountInstitutions(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		stats.TotalProducts, err = srv.networkRepo.CountActiveProducts(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		stats.ConnectedUsers, err = srv.networkRepo.CountConnectedUsers(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to aggregate interconnectivity stats", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to aggregate interconnectivity stats")
	}

	// An empty platform has a rate of zero, not a division by zero. The rate
	// is rounded to the nearest whole percent.
	if stats.TotalUsers > 0 {
		stats.ConnectionRate = math.Round(float64(stats.ConnectedUsers) / float64(stats.TotalUsers) * 100)
	}

	return stats, nil
}

// GetPersonalizedRecommendations assembles the home screen blocks for a user:
// active providers, clubs sharing the user's club set or sports, a slice of
// institutions, products matching the user's skills or profession, and
// similar users.
func (srv *networkService) GetPersonalizedRecommendations(ctx context.Context, userID uuid.UUID) (*usecase.Recommendations, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for recommendations")
	}

	rec := &usecase.Recommendations{}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		rec.Providers, err = srv.orgRepo.ListProviders(groupCtx)
		return errors.Wrap(err, "failed to list providers")
	})
	group.Go(func() (err error) {
		// A user's sports are expressed as skills, so club affinity falls
		// back to matching the club's sport against the skill set.
		rec.Clubs, err = srv.orgRepo.FindClubsByIDsOrSports(groupCtx, user.ClubIDs, user.Skills)
		return errors.Wrap(err, "failed to find clubs")
	})
	group.Go(func() (err error) {
		rec.Institutions, err = srv.orgRepo.ListInstitutions(groupCtx, recommendedInstitutionsLimit)
		return errors.Wrap(err, "failed to list institutions")
	})
	group.Go(func() (err error) {
		rec.Products, err = srv.productRepo.FindActiveByTagsOrCategory(
			groupCtx, user.Skills, user.Profession, recommendedProductsLimit)
		return errors.Wrap(err, "failed to find recommended products")
	})
	group.Go(func() (err error) {
		rec.SimilarUsers, err = srv.findSimilarTo(groupCtx, user)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return rec, nil
}

// ConnectToEntity affiliates the user with an organizational entity. Club
// membership is a set, appended atomically at the storage layer, so repeated
// and concurrent connects to the same club leave a single membership.
// Provider and institution are single-value affiliations and connecting
// replaces the previous one.
func (srv *networkService) ConnectToEntity(ctx context.Context, userID uuid.UUID, kind entity.OrgKind, entityID int64) (*usecase.ConnectOutput, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for connect")
	}

	exists, err := srv.orgRepo.Exists(ctx, kind, entityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check entity existence")
	}
	if !exists {
		return nil, domainerrors.ErrEntityNotFound
	}

	switch kind {
	case entity.OrgKindClub:
		err = srv.userRepo.AppendClub(ctx, userID, entityID)
	case entity.OrgKindProvider:
		err = srv.userRepo.SetProvider(ctx, userID, entityID)
	case entity.OrgKindInstitution:
		err = srv.userRepo.SetInstitution(ctx, userID, entityID)
	default:
		return nil, domainerrors.ErrUnknownEntityKind
	}
	if err != nil {
		srv.log(ctx).Error("Failed to connect user to entity",
			slog.Any("userID", userID),
			slog.String("kind", kind.String()),
			slog.Int64("entityID", entityID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to connect user to entity")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload user after connect")
	}

	srv.log(ctx).Info("User connected to entity",
		slog.Any("userID", userID),
		slog.String("kind", kind.String()),
		slog.Int64("entityID", entityID))

	return &usecase.ConnectOutput{User: user}, nil
}

// ConnectFromQR parses a scanned connect QR payload and performs the
// affiliation it encodes.
func (srv *networkService) ConnectFromQR(ctx context.Context, userID uuid.UUID, qrData string) (*usecase.ConnectOutput, error) {
	kind, entityID, err := srv.qrService.ParseConnectQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidConnectQR.WrapMessage(err.Error())
	}

	return srv.ConnectToEntity(ctx, userID, kind, entityID)
}
