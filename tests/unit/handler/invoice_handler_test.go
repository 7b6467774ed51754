package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"novabill/internal/domain"
	"novabill/internal/handler"
	"novabill/internal/service"
	"novabill/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newInvoiceHandler() (*handler.InvoiceHandler, *mocks.MockInvoiceService, *mocks.MockDocumentService) {
	invSvc := new(mocks.MockInvoiceService)
	docSvc := new(mocks.MockDocumentService)
	h := handler.NewInvoiceHandler(invSvc, docSvc)
	return h, invSvc, docSvc
}

func sampleInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:     uuid.New(),
		Number: "INV-2026-003",
		Items: domain.LineItems{
			{Description: "UI/UX Design Package", Quantity: 1, Rate: 3200},
			{Description: "Brand Guidelines", Quantity: 1, Rate: 800},
		},
		Subtotal:   4000,
		TaxRate:    13,
		TaxAmount:  520,
		Total:      4520,
		Currency:   "CAD",
		Status:     domain.StatusSent,
		ClientName: "Pacific Digital Agency",
	}
}

func TestInvoiceHandler_List(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	invSvc.On("List", mock.Anything).Return([]domain.Invoice{*sampleInvoice()}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	invSvc.AssertExpectations(t)
}

func TestInvoiceHandler_GetByID_InvalidID(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/not-a-uuid", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	invSvc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_GetByID_NotFound(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	id := uuid.New()
	invSvc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrInvoiceNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/"+id.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INVOICE_NOT_FOUND", resp.Error.Code)
}

func TestInvoiceHandler_Create_Success(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	invSvc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateInvoiceInput")).
		Return(sampleInvoice(), nil)

	body := `{"items":[{"desc":"UI/UX Design Package","qty":1,"rate":3200}]}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	invSvc.AssertExpectations(t)
}

func TestInvoiceHandler_Create_MalformedBody(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewBufferString("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	invSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_Create_EmptyItems(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	invSvc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateInvoiceInput")).
		Return(nil, domain.ErrItemsRequired)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewBufferString(`{"items":[]}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ITEMS_REQUIRED", resp.Error.Code)
}

func TestInvoiceHandler_Create_DuplicateNumber(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	invSvc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateInvoiceInput")).
		Return(nil, domain.ErrDuplicateNumber)

	body := `{"invoice_number":"INV-2026-001","items":[{"desc":"x","rate":10}]}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestInvoiceHandler_Update_Success(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	id := uuid.New()
	updated := sampleInvoice()
	updated.Status = domain.StatusPaid
	invSvc.On("Update", mock.Anything, id, mock.AnythingOfType("service.UpdateInvoiceInput")).
		Return(updated, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/invoices/"+id.String(), bytes.NewBufferString(`{"status":"paid"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	invSvc.AssertExpectations(t)
}

func TestInvoiceHandler_Delete_NotFound(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	id := uuid.New()
	invSvc.On("Delete", mock.Anything, id).Return(domain.ErrInvoiceNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/invoices/"+id.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceHandler_DownloadPDF(t *testing.T) {
	h, invSvc, docSvc := newInvoiceHandler()

	inv := sampleInvoice()
	invSvc.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	docSvc.Output = []byte("%PDF-1.3 fake content %%EOF")
	docSvc.On("Render", mock.Anything, inv, mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/"+inv.ID.String()+"/pdf", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: inv.ID.String()}}

	h.DownloadPDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "INV-2026-003.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestInvoiceHandler_DownloadPDF_NotFound(t *testing.T) {
	h, invSvc, docSvc := newInvoiceHandler()

	id := uuid.New()
	invSvc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrInvoiceNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/"+id.String()+"/pdf", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.DownloadPDF(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEqual(t, "application/pdf", w.Header().Get("Content-Type"))
	docSvc.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceHandler_DownloadPDF_RenderFailure(t *testing.T) {
	h, invSvc, docSvc := newInvoiceHandler()

	inv := sampleInvoice()
	invSvc.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	docSvc.On("Render", mock.Anything, inv, mock.Anything).Return(errors.New("layout failed"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/"+inv.ID.String()+"/pdf", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: inv.ID.String()}}

	h.DownloadPDF(c)

	// A failed render must surface as an error response, not an empty
	// 200 with document headers.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Empty(t, w.Header().Get("Content-Disposition"))

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
}

func TestInvoiceHandler_Export_ListFailure(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	invSvc.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/exports/invoices", http.NoBody)

	h.Export(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

func TestInvoiceHandler_Email_NoClient(t *testing.T) {
	h, _, docSvc := newInvoiceHandler()

	id := uuid.New()
	docSvc.On("EmailInvoice", mock.Anything, id).Return(domain.ErrClientNoEmail)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices/"+id.String()+"/email", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Email(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CLIENT_NO_EMAIL", resp.Error.Code)
}

func TestInvoiceHandler_Archive_Success(t *testing.T) {
	h, _, docSvc := newInvoiceHandler()

	id := uuid.New()
	docSvc.On("Archive", mock.Anything, id).
		Return("https://archive.example/invoices/INV-2026-003.pdf", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices/"+id.String()+"/archive", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Archive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://archive.example/invoices/INV-2026-003.pdf")
}

func TestInvoiceHandler_Archive_Disabled(t *testing.T) {
	h, _, docSvc := newInvoiceHandler()

	id := uuid.New()
	docSvc.On("Archive", mock.Anything, id).Return("", domain.ErrArchiveDisabled)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices/"+id.String()+"/archive", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Archive(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestInvoiceHandler_Export(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	invSvc.On("List", mock.Anything).Return([]domain.Invoice{*sampleInvoice()}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/exports/invoices", http.NoBody)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}

// Guards against accidentally widening the patch contract: unknown JSON
// fields are ignored, absent fields stay nil.
func TestUpdateInvoiceInput_AbsentFieldsStayNil(t *testing.T) {
	var input service.UpdateInvoiceInput
	require.NoError(t, json.Unmarshal([]byte(`{"discount":25}`), &input))

	require.NotNil(t, input.Discount)
	assert.Equal(t, 25.0, *input.Discount)
	assert.Nil(t, input.Items)
	assert.Nil(t, input.TaxRate)
	assert.Nil(t, input.Status)
	assert.Nil(t, input.ClientID)
}
