package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"glbiashara/internal/delivery/http/middleware"
	"glbiashara/internal/delivery/http/response"
	"glbiashara/internal/domain/entity"
	"glbiashara/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler holds dependencies for social feed handlers.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// CreatePostRequest represents the request body for publishing a post.
type CreatePostRequest struct {
	Body      string     `json:"body" validate:"required,min=1,max=5000"`
	ProductID *uuid.UUID `json:"productId,omitempty"`
}

// postAuthorView is the author summary attached to feed posts. It carries only
// public profile fields.
type postAuthorView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Profession string    `json:"profession,omitempty"`
}

// postView is the outward JSON shape of a feed post.
type postView struct {
	ID        uuid.UUID       `json:"id"`
	AuthorID  uuid.UUID       `json:"authorId"`
	Body      string          `json:"body"`
	Author    *postAuthorView `json:"author,omitempty"`
	Product   *entity.Product `json:"product,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

func toPostView(post *entity.Post) *postView {
	if post == nil {
		return nil
	}

	view := &postView{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Body:      post.Body,
		Product:   post.Product,
		CreatedAt: post.CreatedAt,
	}
	if post.Author != nil {
		view.Author = &postAuthorView{
			ID:         post.Author.ID,
			Name:       post.Author.Name,
			Profession: post.Author.Profession,
		}
	}

	return view
}

func toPostViews(posts []*entity.Post) []*postView {
	views := make([]*postView, 0, len(posts))
	for _, post := range posts {
		views = append(views, toPostView(post))
	}

	return views
}

// Create handles publishing a feed post.
func (h *PostHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postUC.CreatePost(c.Request().Context(), userID, &usecase.CreatePostInput{
		Body:      req.Body,
		ProductID: req.ProductID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPostView(post), "Post created successfully")
}

// Feed returns a page of the social feed.
func (h *PostHandler) Feed(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	feed, err := h.postUC.GetFeed(c.Request().Context(), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"posts": toPostViews(feed.Posts),
		"total": feed.Total,
		"page":  feed.Page,
		"limit": feed.Limit,
	}, "")
}
