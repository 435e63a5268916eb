package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/w3Abhishek/blog/internal/blog"
	"github.com/w3Abhishek/blog/internal/session"
)

// postsPerPage is the fixed public listing page size.
const postsPerPage = 5

type Handler struct {
	blog *blog.Manager
	gate *session.Gate
	log  *slog.Logger
}

func NewHandler(manager *blog.Manager, gate *session.Gate, log *slog.Logger) *Handler {
	return &Handler{
		blog: manager,
		gate: gate,
		log:  log,
	}
}

func year() int {
	return time.Now().UTC().Year()
}

// Index handles GET /. The page query parameter defaults to 1; garbage and
// values below 1 are clamped to 1 before they reach the listing engine.
func (h *Handler) Index(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	result := h.blog.Page(c.Request().Context(), page, postsPerPage)

	return c.Render(http.StatusOK, "index.html", indexPage{
		Posts:      NewPostViews(result.Posts),
		Page:       result.Page,
		TotalPages: result.TotalPages,
		HasNext:    result.HasNext,
		HasPrev:    result.HasPrev,
		NextPage:   result.Page + 1,
		PrevPage:   result.Page - 1,
		Year:       year(),
	})
}

// PostDetail handles GET /post/:slug. A missing or unpublished slug is a 404;
// so is a store failure, after logging it.
func (h *Handler) PostDetail(c echo.Context) error {
	slug := c.Param("slug")

	post, err := h.blog.PostBySlug(c.Request().Context(), slug)
	if err != nil {
		if !errors.Is(err, blog.ErrNotFound) {
			h.log.Error("failed to fetch post", "error", err, "slug", slug)
		}
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}

	prev, next := h.blog.Neighbors(c.Request().Context(), post)

	return c.Render(http.StatusOK, "post.html", postPage{
		Post: NewPostView(*post),
		Prev: NewNeighborView(prev),
		Next: NewNeighborView(next),
		Year: year(),
	})
}

// Logout handles GET /logout.
func (h *Handler) Logout(c echo.Context) error {
	if err := h.gate.Logout(c); err != nil {
		h.log.Error("failed to clear session", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
