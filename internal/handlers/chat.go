package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dental-clinic-server/internal/config"
	"dental-clinic-server/internal/middleware"
	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
)

// ChatHandler proxies the AI assistant endpoint and persists conversation
// history per user.
type ChatHandler struct {
	DB     *gorm.DB
	Cfg    config.ChatConfig
	Client *http.Client
	Log    *zap.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(db *gorm.DB, cfg *config.Config, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		DB:  db,
		Cfg: cfg.Chat,
		Client: &http.Client{
			Timeout: time.Duration(cfg.Chat.TimeoutSeconds) * time.Second,
		},
		Log: log,
	}
}

// chatUpstreamMessage is one message in the upstream request payload.
type chatUpstreamMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatUpstreamResponse is the upstream endpoint's reply shape: either a text
// or an error string.
type chatUpstreamResponse struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

// callAssistant posts the conversation to the external endpoint and returns
// the assistant's reply text.
func callAssistant(client *http.Client, endpointURL, apiKey string, messages []chatUpstreamMessage) (string, error) {
	body, err := json.Marshal(map[string]interface{}{"messages": messages})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpointURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call chat endpoint: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	var parsed chatUpstreamResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("chat endpoint error: %s", parsed.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat endpoint returned status %d", resp.StatusCode)
	}
	return parsed.Text, nil
}

// SendChatMessageRequest represents the request body for a chat turn.
type SendChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// SendMessage handles one assistant turn: persists the user message, sends
// the recent history upstream, persists and returns the reply.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendChatMessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if h.Cfg.EndpointURL == "" {
		utils.InternalServerError(c, "Chat assistant is not configured")
		return
	}

	// Last 20 messages give the assistant conversational context.
	var history []models.ChatMessage
	if err := h.DB.Where("user_id = ?", userID).Order("created_at desc").Limit(20).Find(&history).Error; err != nil {
		utils.InternalServerError(c, "Failed to load chat history: "+err.Error())
		return
	}

	messages := make([]chatUpstreamMessage, 0, len(history)+1)
	for i := len(history) - 1; i >= 0; i-- { // restore chronological order
		messages = append(messages, chatUpstreamMessage{
			Role:    string(history[i].Sender),
			Content: history[i].Content,
		})
	}
	messages = append(messages, chatUpstreamMessage{Role: "user", Content: req.Message})

	userMessage := models.ChatMessage{
		UserID:  userID,
		Sender:  models.ChatSenderUser,
		Content: req.Message,
	}
	if err := h.DB.Create(&userMessage).Error; err != nil {
		utils.InternalServerError(c, "Failed to store chat message: "+err.Error())
		return
	}

	reply, err := callAssistant(h.Client, h.Cfg.EndpointURL, h.Cfg.APIKey, messages)
	if err != nil {
		h.Log.Warn("assistant call failed", zap.String("user_id", userID), zap.Error(err))
		utils.InternalServerError(c, "Assistant is unavailable: "+err.Error())
		return
	}

	assistantMessage := models.ChatMessage{
		UserID:  userID,
		Sender:  models.ChatSenderAssistant,
		Content: reply,
	}
	if err := h.DB.Create(&assistantMessage).Error; err != nil {
		utils.InternalServerError(c, "Failed to store assistant reply: "+err.Error())
		return
	}

	utils.Success(c, "Message sent successfully", gin.H{"text": reply})
}

// GetHistory returns the user's conversation, oldest first.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var history []models.ChatMessage
	if err := h.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&history).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch chat history: "+err.Error())
		return
	}

	utils.Success(c, "Chat history fetched successfully", history)
}

// ClearHistory deletes the user's conversation.
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.DB.Delete(&models.ChatMessage{}, "user_id = ?", userID).Error; err != nil {
		utils.InternalServerError(c, "Failed to clear chat history: "+err.Error())
		return
	}

	utils.Success(c, "Chat history cleared successfully", nil)
}
