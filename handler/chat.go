package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mamtahealth/mamta-backend/service"
)

// ChatHandler exposes the account-scoped conversation CRUD. The caller's
// email travels in the query string for reads/deletes and in the JSON body
// for writes; there is no session.
type ChatHandler struct {
	Chats *service.ChatService
}

func NewChatHandler(chats *service.ChatService) *ChatHandler {
	return &ChatHandler{Chats: chats}
}

func conversationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return 0, false
	}
	return uint(id), true
}

func (h *ChatHandler) List(c *gin.Context) {
	convs, err := h.Chats.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, convs)
}

func (h *ChatHandler) Get(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}

	conv, err := h.Chats.Get(c.Request.Context(), c.Query("email"), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

type createChatRequest struct {
	Email        string `json:"email" binding:"required"`
	UserInput    string `json:"userInput" binding:"required"`
	AdviceOutput string `json:"adviceOutput" binding:"required"`
	Title        string `json:"title"`
}

func (h *ChatHandler) Create(c *gin.Context) {
	var req createChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	conv, err := h.Chats.Create(c.Request.Context(), req.Email, req.UserInput, req.AdviceOutput, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}

type updateChatRequest struct {
	Email        string  `json:"email" binding:"required"`
	Title        *string `json:"title"`
	UserInput    *string `json:"userInput"`
	AdviceOutput *string `json:"adviceOutput"`
}

func (h *ChatHandler) Update(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}

	var req updateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	patch := service.ConversationPatch{
		Title:        req.Title,
		UserInput:    req.UserInput,
		AdviceOutput: req.AdviceOutput,
	}
	conv, err := h.Chats.Update(c.Request.Context(), req.Email, id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *ChatHandler) Delete(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}

	if err := h.Chats.Delete(c.Request.Context(), c.Query("email"), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conversation deleted"})
}
