package delivery

import (
	"net/http"

	"jobtrail-backend/internal/chat/dto"
	"jobtrail-backend/internal/chat/usecase"
	identitydelivery "jobtrail-backend/internal/identity/delivery"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// apologyReply is what the assistant says when anything goes wrong. The chat
// surface never returns an error status.
const apologyReply = "I apologize, but I encountered an error. Please try again."

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
	log         *zap.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, log *zap.Logger) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase, log: log}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	claims := identitydelivery.ClaimsFromContext(c)

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("chat request parse failed", zap.Error(err))
		c.JSON(http.StatusOK, dto.ChatResponse{Response: apologyReply})
		return
	}

	reply, err := h.chatUsecase.Chat(c.Request.Context(), claims.Subject, req.Message)
	if err != nil {
		h.log.Error("chat failed", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusOK, dto.ChatResponse{Response: apologyReply})
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Response: reply.Response, Sources: reply.Sources})
}
