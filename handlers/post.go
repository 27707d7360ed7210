package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ErosMello/jornalescolar/apperrors"
	"github.com/ErosMello/jornalescolar/listing"
	"github.com/ErosMello/jornalescolar/models"
	"github.com/ErosMello/jornalescolar/posts"
)

// CreatePost accepts a multipart form: title, content, optional category
// and optional image file. The post is stored as a draft; publishing is an
// explicit update. Image upload failure aborts the whole creation.
func (h *Handlers) CreatePost(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}
	category := c.PostForm("category")

	var image *posts.Image
	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		image = &posts.Image{File: file, Filename: header.Filename}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	id, err := h.repo.Create(ctx, title, content, category, c.GetString("email"), image)
	if err != nil {
		logrus.WithError(err).Error("create post failed")
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": "failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"postId": id})
}

// GetNews is the listing endpoint: one snapshot fetch, then filtering and
// pagination entirely in memory. A fetch failure degrades to the empty
// "nothing found" state rather than stale data.
func (h *Handlers) GetNews(c *gin.Context) {
	state := listing.NewState()
	state.ApplyFilters(c.Query("q"), c.Query("category"))
	if n, err := strconv.Atoi(c.Query("pageSize")); err == nil {
		state.SetPageSize(n)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	fetched, err := h.repo.Latest(ctx, h.cfg.ListingSnapshotSize)
	if err != nil {
		logrus.WithError(err).Error("listing snapshot fetch failed")
		state.Load(nil)
		c.JSON(http.StatusOK, gin.H{
			"items": []any{},
			"total": 0,
			"label": state.PageLabel(),
			"error": "failed to load posts",
		})
		return
	}
	state.Load(fetched)

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 1 {
		state.Page = page
		if last := state.LastPage(); state.Page > last {
			state.Page = last
		}
	}

	visible := state.Visible()
	for i := range visible {
		agg := h.ratings.PostAverage(ctx, visible[i].ID.Hex())
		visible[i].AverageRating = agg.Average
	}
	if visible == nil {
		visible = []models.Post{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items": visible,
		"total": state.TotalMatches(),
		"page":  state.Page,
		"label": state.PageLabel(),
	})
}

func (h *Handlers) GetPost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	post, err := h.repo.ByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": "post not found"})
		return
	}

	agg := h.ratings.PostAverage(ctx, post.ID.Hex())
	post.AverageRating = agg.Average

	c.JSON(http.StatusOK, post)
}

type UpdatePostRequest struct {
	Title       *string `form:"title"`
	Content     *string `form:"content"`
	Category    *string `form:"category"`
	IsPublished *bool   `form:"isPublished"`
}

// UpdatePost applies partial changes; author or admin only.
func (h *Handlers) UpdatePost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	post, err := h.repo.ByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": "post not found"})
		return
	}
	if post.Author != c.GetString("email") && !c.GetBool("isAdmin") {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your post"})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := posts.Update{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		IsPublished: req.IsPublished,
	}
	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		upd.Image = &posts.Image{File: file, Filename: header.Filename}
	}

	if err := h.repo.Apply(ctx, c.Param("id"), upd); err != nil {
		logrus.WithError(err).Error("update post failed")
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": "failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post updated"})
}

func (h *Handlers) DeletePost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.repo.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		logrus.WithError(err).Error("delete post failed")
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": "failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post removed"})
}
