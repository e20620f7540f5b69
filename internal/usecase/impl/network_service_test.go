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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type networkServiceMocks struct {
	userRepo    *mockRepo.MockUserRepository
	networkRepo *mockRepo.MockNetworkRepository
	orgRepo     *mockRepo.MockOrgRepository
	productRepo *mockRepo.MockProductRepository
	qrService   *mockSvc.MockQRCodeService
}

func newTestNetworkService(t *testing.T) (*networkService, *networkServiceMocks) {
	t.Helper()

	mocks := &networkServiceMocks{
		userRepo:    mockRepo.NewMockUserRepository(t),
		networkRepo: mockRepo.NewMockNetworkRepository(t),
		orgRepo:     mockRepo.NewMockOrgRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		qrService:   mockSvc.NewMockQRCodeService(t),
	}

	service := NewNetworkService(NetworkServiceParams{
		UserRepo:    mocks.userRepo,
		NetworkRepo: mocks.networkRepo,
		OrgRepo:     mocks.orgRepo,
		ProductRepo: mocks.productRepo,
		QRService:   mocks.qrService,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service.(*networkService), mocks
}

func int64Ptr(v int64) *int64 {
	return &v
}

func buildTestUser(profession string, skills []string, clubIDs []int64) *entity.User {
	return &entity.User{
		ID:         uuid.New(),
		Email:      "neema@example.co.tz",
		Name:       "Neema",
		Profession: profession,
		Skills:     skills,
		ClubIDs:    clubIDs,
	}
}

func TestNetworkService_FindSimilarUsers_RanksByMatchedAxes(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	user := buildTestUser("fundi wa magari", []string{"welding", "engines"}, []int64{1})
	user.ProviderID = int64Ptr(3)

	// Shares profession only.
	weak := buildTestUser("fundi wa magari", []string{"carpentry"}, nil)
	// Shares profession, a skill and a club.
	strong := buildTestUser("fundi wa magari", []string{"engines"}, []int64{1, 9})

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mocks.networkRepo.EXPECT().
		FindSimilarCandidates(ctx, user.ID, mock.AnythingOfType("repository.MatchProfile"), similarUsersLimit).
		Return([]*entity.User{weak, strong}, nil)

	out, err := service.FindSimilarUsers(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, out.Found)
	require.Len(t, out.Users, 2)

	// The stronger match leads regardless of storage order.
	assert.Equal(t, strong.ID, out.Users[0].User.ID)
	assert.Equal(t, 3, out.Users[0].MatchScore)
	assert.ElementsMatch(t, []string{"profession", "skills", "clubs"}, out.Users[0].SharedAttributes)

	assert.Equal(t, weak.ID, out.Users[1].User.ID)
	assert.Equal(t, 1, out.Users[1].MatchScore)
	assert.Equal(t, []string{"profession"}, out.Users[1].SharedAttributes)
}

func TestNetworkService_FindSimilarUsers_ReturnsFullPage(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	user := buildTestUser("fundi wa magari", []string{"welding"}, []int64{1})

	// A full 20-row page from storage. The last row is the strongest match,
	// so ranking has to reorder without growing or shrinking the page.
	candidates := make([]*entity.User, 0, similarUsersLimit)
	for i := 0; i < similarUsersLimit-1; i++ {
		candidates = append(candidates, buildTestUser("fundi wa magari", nil, nil))
	}
	strong := buildTestUser("fundi wa magari", []string{"welding"}, []int64{1})
	candidates = append(candidates, strong)

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mocks.networkRepo.EXPECT().
		FindSimilarCandidates(ctx, user.ID, mock.Anything, similarUsersLimit).
		Return(candidates, nil)

	out, err := service.FindSimilarUsers(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, out.Users, similarUsersLimit)

	assert.Equal(t, strong.ID, out.Users[0].User.ID)
	assert.Equal(t, 3, out.Users[0].MatchScore)
	for _, matched := range out.Users[1:] {
		assert.Equal(t, 1, matched.MatchScore)
	}
}

func TestNetworkService_FindSimilarUsers_PassesProfileAndExclusion(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	user := buildTestUser("mkulima", []string{"horticulture"}, []int64{5})
	user.InstitutionID = int64Ptr(12)

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mocks.networkRepo.EXPECT().
		FindSimilarCandidates(ctx, user.ID, mock.Anything, similarUsersLimit).
		Run(func(_ context.Context, excludeID uuid.UUID, profile repository.MatchProfile, limit int) {
			assert.Equal(t, user.ID, excludeID)
			assert.Equal(t, "mkulima", profile.Profession)
			assert.Equal(t, []string{"horticulture"}, profile.Skills)
			assert.Equal(t, []int64{5}, profile.ClubIDs)
			assert.Nil(t, profile.ProviderID)
			require.NotNil(t, profile.InstitutionID)
			assert.Equal(t, int64(12), *profile.InstitutionID)
			assert.Equal(t, similarUsersLimit, limit)
		}).
		Return([]*entity.User{}, nil)

	out, err := service.FindSimilarUsers(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Empty(t, out.Users)
}

func TestNetworkService_FindSimilarUsers_EmptyProfileMatchesNobody(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	// No profession, no skills, no affiliations: the candidate query is
	// never issued.
	user := buildTestUser("", nil, nil)

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	out, err := service.FindSimilarUsers(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Empty(t, out.Users)
}

func TestNetworkService_FindSimilarUsers_UnknownUser(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	// An unknown user is an empty success, not an error.
	out, err := service.FindSimilarUsers(ctx, userID)
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Empty(t, out.Users)
}

func TestNetworkService_FindSimilarUsers_RepositoryError(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	user := buildTestUser("mwalimu", []string{"mathematics"}, nil)

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mocks.networkRepo.EXPECT().
		FindSimilarCandidates(ctx, user.ID, mock.Anything, similarUsersLimit).
		Return(nil, errors.New("connection reset"))

	out, err := service.FindSimilarUsers(ctx, user.ID)
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestSharedAxes_EmptyNeverMatchesEmpty(t *testing.T) {
	a := buildTestUser("", nil, nil)
	b := buildTestUser("", nil, nil)

	assert.Empty(t, sharedAxes(a, b))
}

func TestSharedAxes_AllFiveAxes(t *testing.T) {
	a := buildTestUser("mwalimu", []string{"english", "kiswahili"}, []int64{2, 3})
	a.ProviderID = int64Ptr(1)
	a.InstitutionID = int64Ptr(4)

	b := buildTestUser("mwalimu", []string{"kiswahili"}, []int64{3})
	b.ProviderID = int64Ptr(1)
	b.InstitutionID = int64Ptr(4)

	axes := sharedAxes(a, b)
	assert.ElementsMatch(t,
		[]string{"profession", "skills", "clubs", "provider", "institution"},
		axes)
}

func TestSharedAxes_DifferentValuesDoNotMatch(t *testing.T) {
	a := buildTestUser("mwalimu", []string{"english"}, []int64{2})
	a.ProviderID = int64Ptr(1)

	b := buildTestUser("daktari", []string{"surgery"}, []int64{7})
	b.ProviderID = int64Ptr(2)

	assert.Empty(t, sharedAxes(a, b))
}

func TestNetworkService_GetConnectedBusinesses_FlattensSellersAndProducts(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	sellerA := buildTestUser("fundi cherehani", []string{"tailoring"}, []int64{1})
	sellerB := buildTestUser("mkulima", nil, []int64{1})

	productA1 := &entity.Product{ID: uuid.New(), OwnerID: sellerA.ID, Name: "Kitenge dress", IsActive: true}
	productA2 := &entity.Product{ID: uuid.New(), OwnerID: sellerA.ID, Name: "School uniform", IsActive: true}
	productB1 := &entity.Product{ID: uuid.New(), OwnerID: sellerB.ID, Name: "Mango crate", IsActive: true}

	mocks.networkRepo.EXPECT().
		FindUsersByAffiliation(ctx, entity.OrgKindClub, int64(1), connectedSellersLimit).
		Return([]*entity.User{sellerA, sellerB}, nil)
	mocks.productRepo.EXPECT().
		FindActiveByOwner(ctx, sellerA.ID, productsPerSeller).
		Return([]*entity.Product{productA1, productA2}, nil)
	mocks.productRepo.EXPECT().
		FindActiveByOwner(ctx, sellerB.ID, productsPerSeller).
		Return([]*entity.Product{productB1}, nil)

	businesses, err := service.GetConnectedBusinesses(ctx, entity.OrgKindClub, 1)
	require.NoError(t, err)
	require.Len(t, businesses, 3)

	assert.Equal(t, productA1.ID, businesses[0].Product.ID)
	assert.Equal(t, sellerA.Name, businesses[0].SellerName)
	assert.Equal(t, sellerA.Profession, businesses[0].Profession)
	assert.Equal(t, productB1.ID, businesses[2].Product.ID)
	assert.Equal(t, sellerB.ID, businesses[2].SellerID)
}

func TestNetworkService_GetConnectedBusinesses_UnknownEntityIsEmpty(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	mocks.networkRepo.EXPECT().
		FindUsersByAffiliation(ctx, entity.OrgKindProvider, int64(999), connectedSellersLimit).
		Return([]*entity.User{}, nil)

	businesses, err := service.GetConnectedBusinesses(ctx, entity.OrgKindProvider, 999)
	require.NoError(t, err)
	assert.NotNil(t, businesses)
	assert.Empty(t, businesses)
}

func TestNetworkService_GetInterconnectivityStats(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	mocks.networkRepo.EXPECT().CountUsers(mock.Anything).Return(200, nil)
	mocks.networkRepo.EXPECT().CountProviders(mock.Anything).Return(4, nil)
	mocks.networkRepo.EXPECT().CountClubs(mock.Anything).Return(12, nil)
	mocks.networkRepo.EXPECT().CountInstitutions(mock.Anything).Return(30, nil)
	mocks.networkRepo.EXPECT().CountActiveProducts(mock.Anything).Return(85, nil)
	mocks.networkRepo.EXPECT().CountConnectedUsers(mock.Anything).Return(150, nil)

	stats, err := service.GetInterconnectivityStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(200), stats.TotalUsers)
	assert.Equal(t, int64(4), stats.TotalProviders)
	assert.Equal(t, int64(12), stats.TotalClubs)
	assert.Equal(t, int64(30), stats.TotalInstitutions)
	assert.Equal(t, int64(85), stats.TotalProducts)
	assert.Equal(t, int64(150), stats.ConnectedUsers)
	assert.InDelta(t, 75.0, stats.ConnectionRate, 0.001)
}

func TestNetworkService_GetInterconnectivityStats_RoundsToWholePercent(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	// 1 of 3 users connected: the rate rounds to the nearest whole
	// percent, not a two-decimal fraction.
	mocks.networkRepo.EXPECT().CountUsers(mock.Anything).Return(3, nil)
	mocks.networkRepo.EXPECT().CountProviders(mock.Anything).Return(1, nil)
	mocks.networkRepo.EXPECT().CountClubs(mock.Anything).Return(1, nil)
	mocks.networkRepo.EXPECT().CountInstitutions(mock.Anything).Return(1, nil)
	mocks.networkRepo.EXPECT().CountActiveProducts(mock.Anything).Return(1, nil)
	mocks.networkRepo.EXPECT().CountConnectedUsers(mock.Anything).Return(1, nil)

	stats, err := service.GetInterconnectivityStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(33), stats.ConnectionRate)
}

func TestNetworkService_GetInterconnectivityStats_RoundsHalfUp(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	// 5 of 8 users connected is 62.5%, which rounds up to 63.
	mocks.networkRepo.EXPECT().CountUsers(mock.Anything).Return(8, nil)
	mocks.networkRepo.EXPECT().CountProviders(mock.Anything).Return(1, nil)
	mocks.networkRepo.EXPECT().CountClubs(mock.Anything).Return(1, nil)
	mocks.networkRepo.EXPECT().CountInstitutions(mock.Anything).Return(1, nil)
	mocks.networkRepo.EXPECT().CountActiveProducts(mock.Anything).Return(1, nil)
	mocks.networkRepo.EXPECT().CountConnectedUsers(mock.Anything).Return(5, nil)

	stats, err := service.GetInterconnectivityStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(63), stats.ConnectionRate)
}

func TestNetworkService_GetInterconnectivityStats_EmptyPlatform(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	mocks.networkRepo.EXPECT().CountUsers(mock.Anything).Return(0, nil)
	mocks.networkRepo.EXPECT().CountProviders(mock.Anything).Return(0, nil)
	mocks.networkRepo.EXPECT().CountClubs(mock.Anything).Return(0, nil)
	mocks.networkRepo.EXPECT().CountInstitutions(mock.Anything).Return(0, nil)
	mocks.networkRepo.EXPECT().CountActiveProducts(mock.Anything).Return(0, nil)
	mocks.networkRepo.EXPECT().CountConnectedUsers(mock.Anything).Return(0, nil)

	stats, err := service.GetInterconnectivityStats(ctx)
	require.NoError(t, err)
	// No users means a zero rate, not a division by zero.
	assert.Equal(t, float64(0), stats.ConnectionRate)
}

func TestNetworkService_GetInterconnectivityStats_FailFast(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	countErr := errors.New("relation does not exist")
	mocks.networkRepo.EXPECT().CountUsers(mock.Anything).Return(0, countErr).Maybe()
	mocks.networkRepo.EXPECT().CountProviders(mock.Anything).Return(4, nil).Maybe()
	mocks.networkRepo.EXPECT().CountClubs(mock.Anything).Return(12, nil).Maybe()
	mocks.networkRepo.EXPECT().CountInstitutions(mock.Anything).Return(30, nil).Maybe()
	mocks.networkRepo.EXPECT().CountActiveProducts(mock.Anything).Return(85, nil).Maybe()
	mocks.networkRepo.EXPECT().CountConnectedUsers(mock.Anything).Return(150, nil).Maybe()

	stats, err := service.GetInterconnectivityStats(ctx)
	assert.Error(t, err)
	assert.Nil(t, stats)
	assert.ErrorIs(t, errors.Cause(err), countErr)
}

func TestNetworkService_GetPersonalizedRecommendations(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	user := buildTestUser("fundi cherehani", []string{"tailoring", "football"}, []int64{1})

	providers := []*entity.Provider{{ID: 1, Name: "Vodacom Tanzania", Slug: "vodacom", IsActive: true}}
	clubs := []*entity.Club{{ID: 1, Name: "Simba SC", Slug: "simba-sc", Sport: "football"}}
	institutions := []*entity.Institution{{ID: 2, Name: "VETA Chang'ombe", Slug: "veta-changombe"}}
	products := []*entity.Product{{ID: uuid.New(), Name: "Sewing kit", IsActive: true}}

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mocks.orgRepo.EXPECT().ListProviders(mock.Anything).Return(providers, nil)
	mocks.orgRepo.EXPECT().
		FindClubsByIDsOrSports(mock.Anything, []int64{1}, []string{"tailoring", "football"}).
		Return(clubs, nil)
	mocks.orgRepo.EXPECT().
		ListInstitutions(mock.Anything, recommendedInstitutionsLimit).
		Return(institutions, nil)
	mocks.productRepo.EXPECT().
		FindActiveByTagsOrCategory(mock.Anything, []string{"tailoring", "football"}, "fundi cherehani", recommendedProductsLimit).
		Return(products, nil)
	mocks.networkRepo.EXPECT().
		FindSimilarCandidates(mock.Anything, user.ID, mock.Anything, similarUsersLimit).
		Return([]*entity.User{}, nil)

	rec, err := service.GetPersonalizedRecommendations(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, providers, rec.Providers)
	assert.Equal(t, clubs, rec.Clubs)
	assert.Equal(t, institutions, rec.Institutions)
	assert.Equal(t, products, rec.Products)
	assert.Empty(t, rec.SimilarUsers)
}

func TestNetworkService_GetPersonalizedRecommendations_UnknownUser(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	rec, err := service.GetPersonalizedRecommendations(ctx, userID)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestNetworkService_ConnectToEntity_Club(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	user := buildTestUser("mkulima", nil, nil)
	connected := buildTestUser("mkulima", nil, []int64{7})
	connected.ID = user.ID

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Once()
	mocks.orgRepo.EXPECT().Exists(ctx, entity.OrgKindClub, int64(7)).Return(true, nil)
	mocks.userRepo.EXPECT().AppendClub(ctx, user.ID, int64(7)).Return(nil)
	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(connected, nil).Once()

	out, err := service.ConnectToEntity(ctx, user.ID, entity.OrgKindClub, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, out.User.ClubIDs)
}

func TestNetworkService_ConnectToEntity_ClubRepeatIsNoOp(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	// Already a member. The storage-level append is conditional, so the
	// repeated connect succeeds and the club set is unchanged.
	user := buildTestUser("mkulima", nil, []int64{7})

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mocks.orgRepo.EXPECT().Exists(ctx, entity.OrgKindClub, int64(7)).Return(true, nil)
	mocks.userRepo.EXPECT().AppendClub(ctx, user.ID, int64(7)).Return(nil)

	out, err := service.ConnectToEntity(ctx, user.ID, entity.OrgKindClub, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, out.User.ClubIDs)
}

func TestNetworkService_ConnectToEntity_ProviderAndInstitution(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	user := buildTestUser("daktari", nil, nil)

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mocks.orgRepo.EXPECT().Exists(ctx, entity.OrgKindProvider, int64(2)).Return(true, nil)
	mocks.userRepo.EXPECT().SetProvider(ctx, user.ID, int64(2)).Return(nil)

	_, err := service.ConnectToEntity(ctx, user.ID, entity.OrgKindProvider, 2)
	require.NoError(t, err)

	mocks.orgRepo.EXPECT().Exists(ctx, entity.OrgKindInstitution, int64(4)).Return(true, nil)
	mocks.userRepo.EXPECT().SetInstitution(ctx, user.ID, int64(4)).Return(nil)

	_, err = service.ConnectToEntity(ctx, user.ID, entity.OrgKindInstitution, 4)
	require.NoError(t, err)
}

func TestNetworkService_ConnectToEntity_UnknownEntity(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	user := buildTestUser("daktari", nil, nil)

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mocks.orgRepo.EXPECT().Exists(ctx, entity.OrgKindClub, int64(404)).Return(false, nil)

	out, err := service.ConnectToEntity(ctx, user.ID, entity.OrgKindClub, 404)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestNetworkService_ConnectToEntity_UnknownUser(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	out, err := service.ConnectToEntity(ctx, userID, entity.OrgKindClub, 7)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestNetworkService_ConnectFromQR(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	user := buildTestUser("mkulima", nil, nil)
	qrData := `{"kind":"club","entity_id":7,"type":"connect"}`

	mocks.qrService.EXPECT().ParseConnectQR(qrData).Return(entity.OrgKindClub, 7, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mocks.orgRepo.EXPECT().Exists(ctx, entity.OrgKindClub, int64(7)).Return(true, nil)
	mocks.userRepo.EXPECT().AppendClub(ctx, user.ID, int64(7)).Return(nil)

	out, err := service.ConnectFromQR(ctx, user.ID, qrData)
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestNetworkService_ConnectFromQR_InvalidPayload(t *testing.T) {
	service, mocks := newTestNetworkService(t)
	ctx := context.Background()

	mocks.qrService.EXPECT().
		ParseConnectQR("garbage").
		Return(entity.OrgKind(""), 0, errors.New("failed to unmarshal QR code data"))

	out, err := service.ConnectFromQR(ctx, uuid.New(), "garbage")
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidConnectQR.ErrorCode(), appErr.ErrorCode())
}
