package http

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/labelforge/label-service/internal/domain/dto"
	"github.com/labelforge/label-service/internal/domain/model"
	"github.com/labelforge/label-service/internal/i18n"
	"github.com/labelforge/label-service/internal/label/assemble"
	"github.com/labelforge/label-service/internal/metrics"
	"github.com/labelforge/label-service/internal/middleware"
	"github.com/labelforge/label-service/internal/service"
)

// Handler provides HTTP handlers for label composition routes.
type Handler struct {
	composer service.LabelComposer
	history  service.RenderHistoryService
	fetcher  LabelFetcher
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLabelFetcher sets the fetcher used for label_url requests.
func WithLabelFetcher(f LabelFetcher) HandlerOption {
	return func(h *Handler) {
		h.fetcher = f
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(composer service.LabelComposer, history service.RenderHistoryService, opts ...HandlerOption) *Handler {
	h := &Handler{
		composer: composer,
		history:  history,
		fetcher:  NewHTTPLabelFetcher(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// GenerateLabel handles POST /api/labels requests.
//
// @Summary      Compose a printable label document
// @Description  Renders one sticker page per product of the order, duplicates each page by the requested quantity, and appends the stickers to the caller-supplied marketplace label PDF. The marketplace label can be sent inline (base64 or data-URI) or fetched from label_url. Supports idempotency via Idempotency-Key header.
// @Tags         Labels
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.GenerateLabelRequest true "Order and marketplace label"
// @Success      200 {object} dto.SuccessResponse "Merged document with page accounting"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - marketplace label is not a usable PDF"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - label download failed"
// @Security     BearerAuth
// @Router       /api/labels [post]
func (h *Handler) GenerateLabel(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.GenerateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			metrics.RecordComposition(0, "validation_error", 0)
			builder.Error(http.StatusBadRequest, validationMessageKey(vErr), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	// Expose order identity to request logging and audit trails.
	c.Set("order_id", req.Order.OrderID)
	c.Set("marketplace", req.Order.Marketplace)

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "compose", "Label composition requested", map[string]interface{}{
				"products":   len(req.Order.Products),
				"has_inline": req.Label != "",
			})
		}
	}

	marketplaceDoc, ok := h.resolveLabelDocument(c, builder, &req)
	if !ok {
		return
	}

	start := time.Now()
	result, err := h.composer.Compose(c.Request.Context(), req.Order, marketplaceDoc)
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, assemble.ErrInvalidSource) {
			metrics.RecordComposition(duration, "invalid_source", 0)
			builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyLabelSource, err)
			return
		}
		metrics.RecordComposition(duration, "error", 0)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyComposeFailed, err)
		return
	}

	metrics.RecordComposition(duration, "success", result.StickerPages)
	h.recordHistory(c, &req, result, duration)

	builder.SuccessOK(dto.ComposeResponse{
		FileName:         result.FileName,
		PDF:              base64.StdEncoding.EncodeToString(result.PDF),
		MarketplacePages: result.MarketplacePages,
		StickerPages:     result.StickerPages,
		Pages:            result.Pages(),
		Warnings:         result.Warnings,
	})
}

// ListRenderHistory handles GET /api/labels/history requests.
//
// @Summary      List past label compositions
// @Description  Returns render history records, newest first. Filter by order_id to audit one order's reprints.
// @Tags         Labels
// @Produce      json
// @Param        order_id query string false "Filter records to one order"
// @Param        limit query int false "Maximum number of records (default 50)"
// @Success      200 {object} dto.SuccessResponse "History records"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid query"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/labels/history [get]
func (h *Handler) ListRenderHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.history == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	var query dto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var (
		records []model.RenderRecord
		err     error
	)
	if query.OrderID != "" {
		records, err = h.history.ListByOrder(c.Request.Context(), query.OrderID, query.Limit)
	} else {
		records, err = h.history.ListRecent(c.Request.Context(), query.Limit)
	}
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(records)
}

// resolveLabelDocument turns the request's label fields into document bytes.
func (h *Handler) resolveLabelDocument(c *gin.Context, builder *ResponseBuilder, req *dto.GenerateLabelRequest) ([]byte, bool) {
	if req.Label != "" {
		doc, err := decodeInlineLabel(req.Label)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyLabelSource, err)
			return nil, false
		}
		return doc, true
	}

	doc, err := h.fetcher.Fetch(c.Request.Context(), req.LabelURL)
	if err != nil {
		metrics.RecordLabelFetch("error")
		builder.Error(http.StatusBadGateway, i18n.ErrKeyLabelFetch, err)
		return nil, false
	}
	metrics.RecordLabelFetch("success")
	return doc, true
}

// recordHistory stores the composition record asynchronously; history must
// never delay or fail the response.
func (h *Handler) recordHistory(c *gin.Context, req *dto.GenerateLabelRequest, result model.ComposeResult, duration time.Duration) {
	if h.history == nil {
		return
	}

	record := &model.RenderRecord{
		OrderID:          req.Order.OrderID,
		Marketplace:      req.Order.Marketplace,
		FileName:         result.FileName,
		MarketplacePages: result.MarketplacePages,
		StickerPages:     result.StickerPages,
		Products:         len(req.Order.Products),
		Warnings:         result.Warnings,
		DurationMS:       duration.Milliseconds(),
		RequestID:        middleware.GetRequestID(c),
	}
	if record.Products == 0 {
		record.Products = 1 // legacy single-product shape
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.history.RecordRender(ctx, record)
	}()
}

// validationMessageKey maps a validation error to its translation key.
func validationMessageKey(err *dto.ValidationError) string {
	switch err.Field {
	case "order_id":
		return i18n.ErrKeyValidationOrderID
	case "products":
		return i18n.ErrKeyValidationProducts
	default:
		return i18n.ErrKeyLabelSource
	}
}
