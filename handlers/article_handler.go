package handlers

import (
	"strconv"

	"newscheck-backend/helper"
	"newscheck-backend/models"
	"newscheck-backend/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, httpHelper *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: httpHelper}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.CreateArticle(req)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "News added successfully", article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	articles, err := h.articleService.GetArticles()
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", articles)
}

func (h *ArticleHandler) GetVisibleArticles(c *gin.Context) {
	articles, err := h.articleService.GetVisibleArticles()
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", articles)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid news ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.GetArticle(uint(id))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", article)
}

func (h *ArticleHandler) ToggleVisibility(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid news ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.ToggleVisibility(uint(id))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	message := "News is now visible"
	if !article.Visible {
		message = "News hidden"
	}

	h.Helper.SendSuccess(c, message, article)
}

func (h *ArticleHandler) HideArticle(c *gin.Context) {
	h.setVisibility(c, false, "News hidden successfully")
}

func (h *ArticleHandler) ShowArticle(c *gin.Context) {
	h.setVisibility(c, true, "News shown successfully")
}

func (h *ArticleHandler) setVisibility(c *gin.Context, visible bool, message string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid news ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.SetVisibility(uint(id), visible)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, message, article)
}

func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	articles, err := h.articleService.Search(c.Query("q"))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", articles)
}

func (h *ArticleHandler) GetStats(c *gin.Context) {
	stats, err := h.articleService.GetStats()
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{"stats": stats})
}

func (h *ArticleHandler) RecalculateAllCounts(c *gin.Context) {
	if err := h.articleService.RecalculateAllCounts(); err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Upvotes, downvotes and comment counts updated for all news", h.Helper.EmptyJsonMap())
}
