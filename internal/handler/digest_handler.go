package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"insiderdigest/internal/model"
)

// DigestStore provides the latest run's summary sections.
type DigestStore interface {
	GetSections() ([]model.SummarySection, error)
}

type DigestHandler struct {
	store DigestStore
}

func NewDigestHandler(store DigestStore) *DigestHandler {
	return &DigestHandler{store: store}
}

func (h *DigestHandler) GetDigest(c *gin.Context) {
	sections, err := h.store.GetSections()
	if err != nil {
		slog.Error("error reading digest", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Digest unavailable"})
		return
	}

	if len(sections) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No digest available"})
		return
	}

	res := DigestResponse{
		Sections: make([]SectionResponse, len(sections)),
		Total:    len(sections),
	}
	for i, s := range sections {
		res.Sections[i] = SectionResponse{Section: s.Section, Content: s.Content}
	}

	c.JSON(http.StatusOK, res)
}

func (h *DigestHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
