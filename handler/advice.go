package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamtahealth/mamta-backend/service"
)

type AdviceHandler struct {
	Advice *service.AdviceClient
}

func NewAdviceHandler(advice *service.AdviceClient) *AdviceHandler {
	return &AdviceHandler{Advice: advice}
}

type generateRequest struct {
	UserInput string `json:"userInput"`
}

// Generate relays the question to Gemini and returns the provider's payload
// untouched. Presence of userInput is checked in the service so an empty
// question never reaches the provider.
func (h *AdviceHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	resp, err := h.Advice.Generate(c.Request.Context(), req.UserInput)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
