package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/labelforge/label-service/internal/domain/dto"
	"github.com/labelforge/label-service/internal/domain/model"
	"github.com/labelforge/label-service/internal/label/assemble"
	"github.com/labelforge/label-service/internal/mocks"
	"github.com/labelforge/label-service/internal/repository"
	"github.com/labelforge/label-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// marketplaceLabelBase64 builds a one-page PDF and returns it base64-encoded,
// the way a caller sends the marketplace label inline.
func marketplaceLabelBase64(t *testing.T) string {
	t.Helper()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(40, 10, "marketplace label")

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func setupRouter() *gin.Engine {
	composer := service.NewLabelComposerService()
	handler := NewHandler(composer, nil) // nil means render history is disabled
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig())
}

func setupRouterWithMock() (*gin.Engine, *mocks.MockLabelComposer) {
	mockComposer := new(mocks.MockLabelComposer)
	handler := NewHandler(mockComposer, nil)
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig()), mockComposer
}

func postLabels(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/labels", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateLabel(t *testing.T) {
	router := setupRouter()
	label := marketplaceLabelBase64(t)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "valid request",
			body:           fmt.Sprintf(`{"order": {"order_id": "A1", "products": [{"product_barcode": "5901234123457", "product_code": "SKU-1", "quantity": 2}]}, "label": %q}`, label),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)

				// Unmarshal data field
				dataBytes, _ := json.Marshal(resp.Data)
				var composeResp dto.ComposeResponse
				err = json.Unmarshal(dataBytes, &composeResp)
				assert.NoError(t, err)
				assert.Equal(t, "label-A1.pdf", composeResp.FileName)
				assert.Equal(t, 1, composeResp.MarketplacePages)
				assert.Equal(t, 2, composeResp.StickerPages)
				assert.Equal(t, 3, composeResp.Pages)

				pdf, err := base64.StdEncoding.DecodeString(composeResp.PDF)
				assert.NoError(t, err)
				assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
			},
		},
		{
			name:           "legacy single-product shape",
			body:           fmt.Sprintf(`{"order": {"order_id": "A2", "product_barcode": "5901234123457", "product_code": "SKU-1"}, "label": %q}`, label),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)

				dataBytes, _ := json.Marshal(resp.Data)
				var composeResp dto.ComposeResponse
				err = json.Unmarshal(dataBytes, &composeResp)
				assert.NoError(t, err)
				assert.Equal(t, model.DefaultCopies, composeResp.StickerPages)
			},
		},
		{
			name:           "unusable barcode composes with a warning",
			body:           fmt.Sprintf(`{"order": {"order_id": "A3", "products": [{"product_barcode": "bad!!", "product_code": "SKU-1", "quantity": 1}]}, "label": %q}`, label),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)

				dataBytes, _ := json.Marshal(resp.Data)
				var composeResp dto.ComposeResponse
				err = json.Unmarshal(dataBytes, &composeResp)
				assert.NoError(t, err)
				assert.NotEmpty(t, composeResp.Warnings)
			},
		},
		{
			name:           "invalid JSON",
			body:           `invalid`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing order",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty order id",
			body:           fmt.Sprintf(`{"order": {"order_id": "", "products": [{"product_barcode": "5901234123457", "product_code": "SKU-1"}]}, "label": %q}`, label),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no products",
			body:           fmt.Sprintf(`{"order": {"order_id": "A1"}, "label": %q}`, label),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "neither label nor label_url",
			body:           `{"order": {"order_id": "A1", "products": [{"product_barcode": "5901234123457", "product_code": "SKU-1"}]}}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "both label and label_url",
			body:           fmt.Sprintf(`{"order": {"order_id": "A1", "products": [{"product_barcode": "5901234123457", "product_code": "SKU-1"}]}, "label": %q, "label_url": "https://cdn.example.com/a1.pdf"}`, label),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "label is not valid base64",
			body:           `{"order": {"order_id": "A1", "products": [{"product_barcode": "5901234123457", "product_code": "SKU-1"}]}, "label": "!!!not-base64!!!"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "label decodes but is not a pdf",
			body:           fmt.Sprintf(`{"order": {"order_id": "A1", "products": [{"product_barcode": "5901234123457", "product_code": "SKU-1"}]}, "label": %q}`, base64.StdEncoding.EncodeToString([]byte("plain text"))),
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postLabels(router, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestGenerateLabel_ComposerErrors(t *testing.T) {
	label := marketplaceLabelBase64(t)
	body := fmt.Sprintf(`{"order": {"order_id": "A1", "products": [{"product_barcode": "5901234123457", "product_code": "SKU-1"}]}, "label": %q}`, label)

	tests := []struct {
		name           string
		composeErr     error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "invalid source maps to 422",
			composeErr:     fmt.Errorf("compose order A1: %w", assemble.ErrInvalidSource),
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "other errors map to 500",
			composeErr:     errors.New("renderer exploded"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockComposer := setupRouterWithMock()
			mockComposer.On("Compose", mock.Anything, mock.Anything, mock.Anything).
				Return(model.ComposeResult{}, tt.composeErr)

			w := postLabels(router, body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				var errResp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedCode, errResp.Error)
			}
			mockComposer.AssertExpectations(t)
		})
	}
}

func TestGenerateLabel_LabelURL(t *testing.T) {
	pdfDoc, err := base64.StdEncoding.DecodeString(marketplaceLabelBase64(t))
	require.NoError(t, err)

	tests := []struct {
		name           string
		setupFetcher   func(*mocks.MockLabelFetcher)
		expectedStatus int
	}{
		{
			name: "fetched label is composed",
			setupFetcher: func(m *mocks.MockLabelFetcher) {
				m.On("Fetch", mock.Anything, "https://cdn.example.com/a1.pdf").Return(pdfDoc, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "fetch failure maps to 502",
			setupFetcher: func(m *mocks.MockLabelFetcher) {
				m.On("Fetch", mock.Anything, "https://cdn.example.com/a1.pdf").Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFetcher := new(mocks.MockLabelFetcher)
			tt.setupFetcher(mockFetcher)

			composer := service.NewLabelComposerService()
			handler := NewHandler(composer, nil, WithLabelFetcher(mockFetcher))
			router := NewRouter(handler, NewHealthHandler(), DefaultRouterConfig())

			body := `{"order": {"order_id": "A1", "products": [{"product_barcode": "5901234123457", "product_code": "SKU-1", "quantity": 1}]}, "label_url": "https://cdn.example.com/a1.pdf"}`
			w := postLabels(router, body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockFetcher.AssertExpectations(t)
		})
	}
}

// historyDocs builds one stored render record per order id.
func historyDocs(orderIDs ...string) []*repository.RenderRecordDocument {
	docs := make([]*repository.RenderRecordDocument, len(orderIDs))
	for i, id := range orderIDs {
		docs[i] = &repository.RenderRecordDocument{
			ID:               primitive.NewObjectID(),
			OrderID:          id,
			FileName:         "label-" + id + ".pdf",
			MarketplacePages: 1,
			StickerPages:     2,
			Products:         1,
		}
	}
	return docs
}

func TestListRenderHistory(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMock      func(*mocks.MockRenderHistoryRepositoryInterface)
		expectedStatus int
		expectedCount  int
	}{
		{
			name:   "recent records",
			target: "/api/labels/history",
			setupMock: func(m *mocks.MockRenderHistoryRepositoryInterface) {
				m.On("ListRecent", mock.Anything, 50).Return(historyDocs("A1", "A2"), nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:   "filter by order id",
			target: "/api/labels/history?order_id=A1&limit=5",
			setupMock: func(m *mocks.MockRenderHistoryRepositoryInterface) {
				m.On("ListByOrder", mock.Anything, "A1", 5).Return(historyDocs("A1"), nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:   "repository failure maps to 500",
			target: "/api/labels/history",
			setupMock: func(m *mocks.MockRenderHistoryRepositoryInterface) {
				m.On("ListRecent", mock.Anything, 50).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockRenderHistoryRepositoryInterface)
			tt.setupMock(mockRepo)

			history := service.NewRenderHistoryService(mockRepo)
			handler := NewHandler(service.NewLabelComposerService(), history)
			router := NewRouter(handler, NewHealthHandler(), DefaultRouterConfig())

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

				dataBytes, _ := json.Marshal(resp.Data)
				var records []model.RenderRecord
				require.NoError(t, json.Unmarshal(dataBytes, &records))
				assert.Len(t, records, tt.expectedCount)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestListRenderHistory_Disabled(t *testing.T) {
	router := setupRouter() // history service not configured

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/labels/history", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
