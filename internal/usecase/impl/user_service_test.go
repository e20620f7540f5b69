package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "glbiashara/internal/domain/errors"
	"glbiashara/internal/domain/repository"
	"glbiashara/internal/domain/service"
	mockRepo "glbiashara/internal/mocks/repository"
	mockSvc "glbiashara/internal/mocks/service"
	"glbiashara/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newTestUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	mocks := &userServiceMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	svc := NewUserService(UserServiceParams{
		UserRepo:     mocks.userRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenService,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, mocks
}

func TestUserService_Register(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Neema Mushi",
		Email:    "neema@example.co.tz",
		Phone:    "+255712345678",
		Password: "SirilaBora1!",
	}

	mocks.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	mocks.hasher.EXPECT().Hash(input.Password).Return("$2a$10$hashed", nil)
	mocks.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	out, err := svc.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.Email, out.User.Email)
	assert.Equal(t, input.Name, out.User.Name)
	assert.Equal(t, "$2a$10$hashed", out.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
	// Fresh accounts start with empty, non-nil attribute sets.
	assert.NotNil(t, out.User.Skills)
	assert.NotNil(t, out.User.ClubIDs)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	existing := buildTestUser("mkulima", nil, nil)

	mocks.userRepo.EXPECT().FindByEmail(ctx, existing.Email).Return(existing, nil)

	out, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "Mtu Mwingine",
		Email:    existing.Email,
		Password: "SirilaBora1!",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	user := buildTestUser("mkulima", nil, nil)
	user.PasswordHash = "$2a$10$hashed"

	mocks.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	mocks.hasher.EXPECT().Check("SirilaBora1!", user.PasswordHash).Return(true)
	mocks.tokenService.EXPECT().GenerateTokens(user.ID).Return("access-token", "refresh-token", nil)

	out, err := svc.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "SirilaBora1!"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	user := buildTestUser("mkulima", nil, nil)
	user.PasswordHash = "$2a$10$hashed"

	mocks.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	mocks.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	out, err := svc.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "hayupo@example.co.tz").
		Return(nil, repository.ErrUserNotFound)

	// Unknown email and wrong password are indistinguishable to the caller.
	out, err := svc.Login(ctx, &usecase.LoginInput{Email: "hayupo@example.co.tz", Password: "whatever"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshTokens(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	user := buildTestUser("mkulima", nil, nil)
	claims := &service.TokenClaims{UserID: user.ID, Type: "refresh"}

	mocks.tokenService.EXPECT().ValidateRefreshToken("old-refresh").Return(claims, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mocks.tokenService.EXPECT().GenerateTokens(user.ID).Return("new-access", "new-refresh", nil)

	out, err := svc.RefreshTokens(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestUserService_RefreshTokens_InvalidToken(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	mocks.tokenService.EXPECT().
		ValidateRefreshToken("expired").
		Return(nil, errors.New("invalid or expired token"))

	out, err := svc.RefreshTokens(ctx, "expired")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestUserService_GetProfile(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	user := buildTestUser("mwalimu", []string{"english"}, []int64{3})

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := svc.GetProfile(ctx, userID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	updated := buildTestUser("fundi wa magari", []string{"welding"}, nil)

	mocks.userRepo.EXPECT().
		UpdateProfile(ctx, updated.ID, "fundi wa magari", []string{"welding"}).
		Return(nil)
	mocks.userRepo.EXPECT().FindByID(ctx, updated.ID).Return(updated, nil)

	got, err := svc.UpdateProfile(ctx, updated.ID, &usecase.UpdateProfileInput{
		Profession: "fundi wa magari",
		Skills:     []string{"welding"},
	})
	require.NoError(t, err)
	assert.Equal(t, "fundi wa magari", got.Profession)
	assert.Equal(t, []string{"welding"}, got.Skills)
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().
		UpdateProfile(ctx, userID, "mwalimu", []string(nil)).
		Return(repository.ErrUserNotFound)

	got, err := svc.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Profession: "mwalimu"})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
