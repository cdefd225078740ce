package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/sandevgo/weatherbot/internal/service/session"
)

type Handler interface {
	Handle(ctx context.Context, sess *session.Session, text string) (string, bool)
}

type messageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	Reply      string         `json:"reply"`
	Transcript []core.Message `json:"transcript"`
}

type transcriptResponse struct {
	SessionID  string         `json:"session_id"`
	Transcript []core.Message `json:"transcript"`
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
}

type chatHandler struct {
	bot      Handler
	sessions *session.Store
}

func (h *chatHandler) createSession(c *gin.Context) {
	sess := h.sessions.Get(uuid.NewString())
	c.JSON(http.StatusCreated, sessionResponse{SessionID: sess.ID})
}

func (h *chatHandler) postMessage(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}

	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "body must be {\"text\": \"...\"}", err))
		return
	}

	reply, handled := h.bot.Handle(c.Request.Context(), sess, req.Text)
	if !handled {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "empty_message", "text must not be empty", nil))
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Reply:      reply,
		Transcript: sess.Transcript.Messages(),
	})
}

func (h *chatHandler) getTranscript(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, transcriptResponse{
		SessionID:  sess.ID,
		Transcript: sess.Transcript.Messages(),
	})
}

func (h *chatHandler) deleteSession(c *gin.Context) {
	if !h.sessions.Drop(c.Param("id")) {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "session_not_found", "session not found", nil))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *chatHandler) lookup(c *gin.Context) (*session.Session, bool) {
	sess, ok := h.sessions.Lookup(c.Param("id"))
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "session_not_found", "session not found", nil))
		return nil, false
	}
	return sess, true
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "name": core.BotName})
}
