package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"glbiashara/internal/delivery/http/middleware"
	"glbiashara/internal/delivery/http/response"
	"glbiashara/internal/domain/entity"
	"glbiashara/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NetworkHandlerParams holds dependencies for NetworkHandler, injected by Fx.
type NetworkHandlerParams struct {
	fx.In

	NetworkUC usecase.NetworkUsecase
	Logger    *slog.Logger
}

// NetworkHandler exposes the interconnectivity endpoints: similar users,
// connected businesses, platform stats, recommendations and entity connects.
type NetworkHandler struct {
	networkUC usecase.NetworkUsecase
	logger    *slog.Logger
}

// NewNetworkHandler is the constructor for NetworkHandler.
func NewNetworkHandler(params NetworkHandlerParams) *NetworkHandler {
	return &NetworkHandler{
		networkUC: params.NetworkUC,
		logger:    params.Logger,
	}
}

// ConnectRequest represents the request body for connecting to an entity.
type ConnectRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=provider club institution"`
	EntityID int64  `json:"entityId" validate:"required,gt=0"`
}

// ConnectQRRequest represents the request body for a scanned connect QR.
type ConnectQRRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

type similarUserView struct {
	User             *userView `json:"user"`
	SharedAttributes []string  `json:"sharedAttributes"`
	MatchScore       int       `json:"matchScore"`
}

func toSimilarUserViews(users []*usecase.SimilarUser) []*similarUserView {
	views := make([]*similarUserView, 0, len(users))
	for _, u := range users {
		views = append(views, &similarUserView{
			User:             toUserView(u.User),
			SharedAttributes: u.SharedAttributes,
			MatchScore:       u.MatchScore,
		})
	}

	return views
}

// parseEntityRef reads the :kind and :id path parameters.
func parseEntityRef(c echo.Context) (entity.OrgKind, int64, error) {
	kind, err := entity.ParseOrgKind(c.Param("kind"))
	if err != nil {
		return "", 0, err
	}

	entityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || entityID <= 0 {
		return "", 0, errors.New("invalid entity id")
	}

	return kind, entityID, nil
}

// SimilarUsers returns users similar to the authenticated user.
func (h *NetworkHandler) SimilarUsers(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.networkUC.FindSimilarUsers(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"found": output.Found,
		"users": toSimilarUserViews(output.Users),
	}, "")
}

// SimilarUsersOf returns users similar to an arbitrary user, for profile pages.
func (h *NetworkHandler) SimilarUsersOf(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	output, err := h.networkUC.FindSimilarUsers(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"found": output.Found,
		"users": toSimilarUserViews(output.Users),
	}, "")
}

// ConnectedBusinesses returns the active products of users connected to an entity.
func (h *NetworkHandler) ConnectedBusinesses(c echo.Context) error {
	kind, entityID, err := parseEntityRef(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	businesses, err := h.networkUC.GetConnectedBusinesses(c.Request().Context(), kind, entityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Stats returns the platform-wide interconnectivity statistics.
func (h *NetworkHandler) Stats(c echo.Context) error {
	stats, err := h.networkUC.GetInterconnectivityStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Recommendations returns the personalized home screen blocks.
func (h *NetworkHandler) Recommendations(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	rec, err := h.networkUC.GetPersonalizedRecommendations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"providers":    rec.Providers,
		"clubs":        rec.Clubs,
		"institutions": rec.Institutions,
		"products":     rec.Products,
		"similarUsers": toSimilarUserViews(rec.SimilarUsers),
	}, "")
}

// Connect affiliates the authenticated user with an entity.
func (h *NetworkHandler) Connect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ConnectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connect input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	kind, err := entity.ParseOrgKind(req.Kind)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown entity kind")
	}

	output, err := h.networkUC.ConnectToEntity(c.Request().Context(), userID, kind, req.EntityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(output.User), "Connected successfully")
}

// ConnectQR affiliates the authenticated user through a scanned QR payload.
func (h *NetworkHandler) ConnectQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ConnectQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.networkUC.ConnectFromQR(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(output.User), "Connected successfully")
}
