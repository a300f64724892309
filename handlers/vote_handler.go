package handlers

import (
	"strconv"

	"newscheck-backend/helper"
	"newscheck-backend/models"
	"newscheck-backend/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type VoteHandler struct {
	voteService services.VoteService
	Helper      *helper.HTTPHelper
}

func NewVoteHandler(voteService services.VoteService, httpHelper *helper.HTTPHelper) *VoteHandler {
	return &VoteHandler{voteService: voteService, Helper: httpHelper}
}

func (h *VoteHandler) GetVotes(c *gin.Context) {
	votes, err := h.voteService.GetVotes()
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", votes)
}

func (h *VoteHandler) GetVotesByArticle(c *gin.Context) {
	articleID, err := h.articleIDParam(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid news ID", h.Helper.EmptyJsonMap())
		return
	}

	votes, err := h.voteService.GetVotesByArticle(articleID)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", votes)
}

// GetComments serves the legacy query-parameter route for an article's
// visible votes and comments.
func (h *VoteHandler) GetComments(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Query("newsId"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid news ID", h.Helper.EmptyJsonMap())
		return
	}

	votes, err := h.voteService.GetVotesByArticle(uint(articleID))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", votes)
}

func (h *VoteHandler) GetHiddenVotes(c *gin.Context) {
	votes, err := h.voteService.GetHiddenVotes()
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", votes)
}

func (h *VoteHandler) SubmitVote(c *gin.Context) {
	var req models.SubmitVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	tally, err := h.voteService.SubmitVote(req)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Vote saved successfully", tally)
}

func (h *VoteHandler) SetVoteVisibility(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid comment ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.VoteVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	tally, err := h.voteService.SetVoteVisibility(uint(id), *req.Visible, req.Vote)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment visibility and votes updated successfully", tally)
}

func (h *VoteHandler) RecalculateCounts(c *gin.Context) {
	articleID, err := h.articleIDParam(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid news ID", h.Helper.EmptyJsonMap())
		return
	}

	tally, err := h.voteService.RecalculateCounts(articleID)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recalculated successfully", tally)
}

func (h *VoteHandler) articleIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("newsId"), 10, 32)
	return uint(id), err
}
