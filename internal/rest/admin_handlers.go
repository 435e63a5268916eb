package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/w3Abhishek/blog/internal/blog"
	"github.com/w3Abhishek/blog/internal/session"
)

func postInputFromForm(c echo.Context) blog.PostInput {
	in := blog.PostInput{
		Title:    c.FormValue("title"),
		Slug:     c.FormValue("slug"),
		Content:  c.FormValue("content"),
		Category: c.FormValue("category"),
		Tags:     c.FormValue("tags"),
	}

	// published is a checkbox: presence of the field means true
	if form, err := c.FormParams(); err == nil {
		_, in.Published = form["published"]
	}

	return in
}

func (h *Handler) flash(c echo.Context, message string) {
	if err := session.Flash(c, message); err != nil {
		h.log.Error("failed to queue flash message", "error", err)
	}
}

// LoginForm handles GET /admin.
func (h *Handler) LoginForm(c echo.Context) error {
	if h.gate.IsLoggedIn(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	}

	return c.Render(http.StatusOK, "login.html", loginPage{
		Flashes: session.Flashes(c),
		Year:    year(),
	})
}

// Login handles POST /admin. A bad password flashes a generic message; the
// response never hints at what the password looks like.
func (h *Handler) Login(c echo.Context) error {
	if h.gate.IsLoggedIn(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	}

	ok, err := h.gate.Login(c, c.FormValue("password"))
	if err != nil {
		h.log.Error("failed to save session", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if !ok {
		h.flash(c, "Invalid password")
		return c.Redirect(http.StatusSeeOther, "/admin")
	}

	return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// Dashboard handles GET /admin/dashboard: every post, drafts included,
// newest first.
func (h *Handler) Dashboard(c echo.Context) error {
	posts := h.blog.AllPosts(c.Request().Context())

	return c.Render(http.StatusOK, "dashboard.html", dashboardPage{
		Posts:   NewPostViews(posts),
		Flashes: session.Flashes(c),
		Year:    year(),
	})
}

// NewPostForm handles GET /admin/new.
func (h *Handler) NewPostForm(c echo.Context) error {
	return c.Render(http.StatusOK, "editor.html", editorPage{
		Action:  "/admin/new",
		Flashes: session.Flashes(c),
		Year:    year(),
	})
}

// CreatePost handles POST /admin/new. A store failure re-renders the editor
// with a flash so the admin can retry.
func (h *Handler) CreatePost(c echo.Context) error {
	in := postInputFromForm(c)

	if _, err := h.blog.CreatePost(c.Request().Context(), in); err != nil {
		h.log.Error("failed to create post", "error", err)
		h.flash(c, "Error creating post, please try again")
		return c.Render(http.StatusOK, "editor.html", editorPage{
			Post:    draftView(0, in),
			Action:  "/admin/new",
			Flashes: session.Flashes(c),
			Year:    year(),
		})
	}

	h.flash(c, "Post created successfully")
	return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// EditPostForm handles GET /admin/edit/:id. An unknown id is a 404; a store
// failure sends the admin back to the dashboard with a flash.
func (h *Handler) EditPostForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}

	post, err := h.blog.PostByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		h.log.Error("failed to fetch post", "error", err, "id", id)
		h.flash(c, "Error fetching post")
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	}

	view := NewPostView(*post)
	return c.Render(http.StatusOK, "editor.html", editorPage{
		Post:    &view,
		Action:  "/admin/edit/" + strconv.Itoa(id),
		Flashes: session.Flashes(c),
		Year:    year(),
	})
}

// UpdatePost handles POST /admin/edit/:id. Fields are overwritten wholesale;
// a store failure re-renders the submitted values for retry.
func (h *Handler) UpdatePost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}

	in := postInputFromForm(c)

	if err := h.blog.UpdatePost(c.Request().Context(), id, in); err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		h.log.Error("failed to update post", "error", err, "id", id)
		h.flash(c, "Error updating post, please try again")
		return c.Render(http.StatusOK, "editor.html", editorPage{
			Post:    draftView(id, in),
			Action:  "/admin/edit/" + strconv.Itoa(id),
			Flashes: session.Flashes(c),
			Year:    year(),
		})
	}

	h.flash(c, "Post updated successfully")
	return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// DeletePost handles POST /admin/delete/:id. Deleting an unknown id is
// indistinguishable from success.
func (h *Handler) DeletePost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}

	if err := h.blog.DeletePost(c.Request().Context(), id); err != nil {
		h.log.Error("failed to delete post", "error", err, "id", id)
		h.flash(c, "Error deleting post")
	} else {
		h.flash(c, "Post deleted successfully")
	}

	return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// draftView rebuilds an editor view from submitted form values so a failed
// mutation keeps the admin's input on screen.
func draftView(id int, in blog.PostInput) *PostView {
	return &PostView{
		ID:        id,
		Slug:      in.Slug,
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		Tags:      blog.ParseTags(in.Tags),
		Published: in.Published,
	}
}
