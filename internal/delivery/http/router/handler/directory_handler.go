package handler

import (
	"log/slog"
	"net/http"

	"glbiashara/internal/delivery/http/response"
	"glbiashara/internal/domain/entity"
	"glbiashara/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// DirectoryHandler holds dependencies for the entity directory handlers.
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler.
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// ListProviders returns all active telecom providers.
func (h *DirectoryHandler) ListProviders(c echo.Context) error {
	providers, err := h.directoryUC.ListProviders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, providers, "")
}

// ListClubs returns all clubs.
func (h *DirectoryHandler) ListClubs(c echo.Context) error {
	clubs, err := h.directoryUC.ListClubs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, clubs, "")
}

// ListInstitutions returns active institutions.
func (h *DirectoryHandler) ListInstitutions(c echo.Context) error {
	institutions, err := h.directoryUC.ListInstitutions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, institutions, "")
}

// GetPage resolves an entity profile page by kind and slug.
func (h *DirectoryHandler) GetPage(c echo.Context) error {
	kind, err := entity.ParseOrgKind(c.Param("kind"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown entity kind")
	}

	page, err := h.directoryUC.GetEntityPage(c.Request().Context(), kind, c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// ConnectQR streams the printable connect QR code for an entity as PNG.
func (h *DirectoryHandler) ConnectQR(c echo.Context) error {
	kind, entityID, err := parseEntityRef(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	png, err := h.directoryUC.GenerateConnectQR(c.Request().Context(), kind, entityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
