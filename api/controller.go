package api

import (
	"errors"
	"log/slog"
	"net/http"

	"msglog/domain"
	apperrors "msglog/errors"
	"msglog/services"

	"github.com/gin-gonic/gin"
)

// LogController handles the HTTP boundary of the message log.
type LogController struct {
	logService       services.ILogService
	log              *slog.Logger
	requireMessageID bool
}

func NewLogController(logService services.ILogService, log *slog.Logger, requireMessageID bool) *LogController {
	return &LogController{
		logService:       logService,
		log:              log,
		requireMessageID: requireMessageID,
	}
}

func (c *LogController) Health(ctx *gin.Context) {
	ctx.String(http.StatusOK, c.logService.HealthCheck())
}

// SaveMessage records a new message. A body that does not parse is
// reported the same way as missing fields.
func (c *LogController) SaveMessage(ctx *gin.Context) {
	var req SaveMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: c.missingSubmitFields()})
		return
	}

	_, err := c.logService.Submit(domain.SubmitCommand{
		Sender:    req.Sender,
		Content:   req.Query,
		MessageID: req.MessageID,
	})
	switch {
	case errors.Is(err, apperrors.ErrMissingField):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: c.missingSubmitFields()})
	case err != nil:
		c.log.Error("saving message failed", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	default:
		ctx.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "Message logged successfully"})
	}
}

// EditMessage replaces the content of a previously recorded message.
// An unknown id is still a success unless strict edits are enabled.
func (c *LogController) EditMessage(ctx *gin.Context) {
	var req EditMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing message_id or new_content"})
		return
	}

	_, err := c.logService.SubmitEdit(domain.EditCommand{
		MessageID:  req.MessageID,
		NewContent: req.NewContent,
	})
	switch {
	case errors.Is(err, apperrors.ErrMissingField):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing message_id or new_content"})
	case errors.Is(err, apperrors.ErrMessageNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "message not found"})
	case err != nil:
		c.log.Error("editing message failed", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	default:
		ctx.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "Message edited successfully"})
	}
}

// ShowLogs renders the whole log as HTML, oldest first. An empty or
// unreadable store degrades to the placeholder page, never an error.
func (c *LogController) ShowLogs(ctx *gin.Context) {
	messages, err := c.logService.ListMessages()
	if err != nil {
		c.log.Error("listing messages failed", "error", err.Error())
		messages = nil
	}
	ctx.HTML(http.StatusOK, "logs.html", gin.H{"Messages": messages})
}

func (c *LogController) missingSubmitFields() string {
	if c.requireMessageID {
		return "Missing sender or query, or message_id"
	}
	return "Missing sender or query"
}
