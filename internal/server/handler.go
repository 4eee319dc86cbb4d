package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/snonux/vidrecall/internal/gateway"
	"codeberg.org/snonux/vidrecall/internal/language"
	"codeberg.org/snonux/vidrecall/internal/translation"
	"codeberg.org/snonux/vidrecall/internal/videoid"
)

// Summarizer produces a summary for a canonical video URL
type Summarizer interface {
	Summarize(ctx context.Context, videoURL string) (string, error)
}

// Handler serves the summary and translation endpoints
type Handler struct {
	Summarizer Summarizer
	Translator translation.Translator
}

// NewHandler creates a handler over s and t
func NewHandler(s Summarizer, t translation.Translator) *Handler {
	return &Handler{Summarizer: s, Translator: t}
}

// RegisterRoutes mounts the endpoints on rg
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/summary", h.summary)     // POST /summary
	rg.POST("/translate", h.translate) // POST /translate
}

func (h *Handler) summary(c *gin.Context) {
	var req gateway.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gateway.ErrorResponse{Error: "url is required"})
		return
	}

	id, ok := videoid.Extract(req.URL)
	if !ok {
		c.JSON(http.StatusBadRequest, gateway.ErrorResponse{Error: "no video identifier found in url"})
		return
	}

	text, err := h.Summarizer.Summarize(c.Request.Context(), videoid.WatchURL(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gateway.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gateway.SummaryResponse{Summary: text})
}

func (h *Handler) translate(c *gin.Context) {
	var req gateway.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gateway.ErrorResponse{Error: "text and targetLanguage are required"})
		return
	}

	target, err := language.Parse(req.TargetLanguage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gateway.ErrorResponse{Error: err.Error()})
		return
	}
	if target.IsSource() {
		c.JSON(http.StatusOK, gateway.TranslateResponse{TranslatedText: req.Text})
		return
	}

	text, err := h.Translator.Translate(c.Request.Context(), req.Text, target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gateway.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gateway.TranslateResponse{TranslatedText: text})
}
