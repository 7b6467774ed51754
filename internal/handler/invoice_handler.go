package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"novabill/internal/service"
	"novabill/internal/xlsxexport"
)

// InvoiceHandler handles invoice management endpoints.
type InvoiceHandler struct {
	invoiceService  service.InvoiceService
	documentService service.DocumentService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService, documentService service.DocumentService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, documentService: documentService}
}

// List handles GET /api/v1/invoices
// @Summary List invoices
// @Description List all invoices, newest first.
// @Tags invoices
// @Produce json
// @Success 200 {object} Response{data=[]domain.Invoice} "Invoices"
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoices)
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=domain.Invoice} "Invoice"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}

// Create handles POST /api/v1/invoices
// @Summary Create an invoice
// @Description Create an invoice. Monetary fields are derived from the submitted line items; an omitted invoice number is generated from the yearly sequence.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body service.CreateInvoiceInput true "Invoice"
// @Success 201 {object} Response{data=domain.Invoice} "Created invoice"
// @Failure 400 {object} ErrorResponseBody "Validation failed"
// @Failure 409 {object} ErrorResponseBody "Duplicate invoice number"
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed request body")
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, invoice)
}

// Update handles PUT /api/v1/invoices/:id
// @Summary Update an invoice
// @Description Partially update an invoice. Absent fields keep their current values; a present items list replaces the stored list and triggers recomputation.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body service.UpdateInvoiceInput true "Fields to update"
// @Success 200 {object} Response{data=domain.Invoice} "Updated invoice"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	var input service.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed request body")
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}

// Delete handles DELETE /api/v1/invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// DownloadPDF handles GET /api/v1/invoices/:id/pdf
// @Summary Download an invoice PDF
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary "Rendered invoice"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	// The renderer writes nothing until layout succeeds, so the headers
	// can be set before streaming begins and still be withdrawn on a
	// render failure.
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", invoice.Number))

	if err := h.documentService.Render(c.Request.Context(), invoice, c.Writer); err != nil {
		c.Writer.Header().Del("Content-Type")
		c.Writer.Header().Del("Content-Disposition")
		HandleError(c, err)
	}
}

// Email handles POST /api/v1/invoices/:id/email
func (h *InvoiceHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	if err := h.documentService.EmailInvoice(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"sent": true})
}

// Archive handles POST /api/v1/invoices/:id/archive
func (h *InvoiceHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	location, err := h.documentService.Archive(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"location": location})
}

// Export handles GET /api/v1/exports/invoices
// @Summary Export the invoice register
// @Description Download all invoices as an XLSX workbook.
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Invoice register"
// @Router /exports/invoices [get]
func (h *InvoiceHandler) Export(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	// The workbook writer buffers internally and only touches c.Writer
	// on its final flush, so a build failure can still turn into a
	// proper error response.
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", xlsxexport.BuildFilename()))

	if err := xlsxexport.WriteInvoices(c.Writer, invoices); err != nil {
		c.Writer.Header().Del("Content-Type")
		c.Writer.Header().Del("Content-Disposition")
		HandleError(c, err)
	}
}
