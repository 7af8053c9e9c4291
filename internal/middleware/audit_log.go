// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/labelforge/label-service/internal/domain/model"
	"github.com/labelforge/label-service/internal/service"
)

// AuditLog logs an action for audit purposes.
// This should be used for critical actions like label compositions and
// history lookups.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := newAuditEntry(c, actionType, message, fields)
	entry.Level = "info"

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// AuditLogError logs an error action for audit purposes.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := newAuditEntry(c, actionType, message, fields)
	entry.Level = "error"
	entry.Error = err.Error()

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// newAuditEntry builds a log entry from the request context, picking up the
// order fields a handler may have recorded.
func newAuditEntry(c *gin.Context, actionType string, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}

	if orderID, exists := c.Get("order_id"); exists {
		if id, ok := orderID.(string); ok {
			entry.OrderID = id
		}
	}
	if marketplace, exists := c.Get("marketplace"); exists {
		if m, ok := marketplace.(string); ok {
			entry.Marketplace = m
		}
	}

	return entry
}
