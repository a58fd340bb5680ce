package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"synonym-search/backend/internal/constants"
	"synonym-search/backend/internal/services"
	"synonym-search/backend/internal/synonym"
	apperrors "synonym-search/backend/pkg/errors"
)

type handler struct {
	svc               SynonymService
	log               *zap.Logger
	transitiveDefault bool
}

type saveSynonymsRequest struct {
	Word     string   `json:"word" binding:"required,notblank"`
	Synonyms []string `json:"synonyms" binding:"required,min=1,dive,notblank"`
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) getSynonyms(c *gin.Context) {
	word := c.Param(constants.ParamWord)
	if synonym.IsBlank(word) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "The word parameter cannot be empty or whitespace.",
			"reason": apperrors.ReasonInvalidWord,
		})
		return
	}

	transitive := h.transitiveDefault
	if raw, ok := c.GetQuery(constants.QueryTransitive); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "transitive must be a boolean"})
			return
		}
		transitive = v
	}

	result, err := h.svc.GetSynonyms(c.Request.Context(), word, transitive)
	if err != nil {
		h.fail(c, "Failed to fetch synonyms", err)
		return
	}

	if len(result.Synonyms) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No synonyms found for the word: %s", word)})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) saveSynonyms(c *gin.Context) {
	var req saveSynonymsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if v, ok := bindingError(err); ok {
			h.fail(c, "Invalid save request", v)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.svc.SaveSynonyms(c.Request.Context(), services.SaveRequest{
		Word:     req.Word,
		Synonyms: req.Synonyms,
	})
	if err != nil {
		h.fail(c, "Failed to save synonyms", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "saved", "word": req.Word})
}

func (h *handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// fail maps service errors to responses: validation to 400, an expired
// request context to 503, anything else to 500.
func (h *handler) fail(c *gin.Context, msg string, err error) {
	if v, ok := apperrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": v.Message, "reason": v.Reason})
		return
	}
	if apperrors.IsErrorType(err, apperrors.ErrorTypeContext) || errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Request timed out"})
		return
	}
	h.log.Error(msg, zap.Error(err), zap.String("request_id", c.GetString(requestIDKey)))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
