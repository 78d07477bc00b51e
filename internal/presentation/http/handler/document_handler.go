package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkrishnan/retailbill-api/internal/application/service"
	"github.com/mkrishnan/retailbill-api/internal/domain/enum"
	"github.com/mkrishnan/retailbill-api/internal/domain/repository"
	"github.com/mkrishnan/retailbill-api/internal/presentation/http/dto/response"
	"github.com/mkrishnan/retailbill-api/pkg/pagination"
)

// DocumentHandler serves the invoice output surfaces: preview JSON,
// printable HTML, WhatsApp share text, thermal receipt and the Excel
// register export.
type DocumentHandler struct {
	documentService *service.DocumentService
	exportService   *service.ExportService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, exportService *service.ExportService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		exportService:   exportService,
	}
}

// Preview handles returning the rendered invoice as JSON
func (h *DocumentHandler) Preview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	doc, err := h.documentService.BuildDocument(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice document rendered successfully", doc)
}

// PrintHTML handles serving the printable invoice page
func (h *DocumentHandler) PrintHTML(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	html, err := h.documentService.PrintHTML(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// WhatsApp handles building the WhatsApp share message and deep link
func (h *DocumentHandler) WhatsApp(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	share, err := h.documentService.WhatsAppText(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "WhatsApp share prepared successfully", share)
}

// PrintReceipt handles sending the thermal receipt to the printer
func (h *DocumentHandler) PrintReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	doc, err := h.documentService.PrintReceipt(c.Request.Context(), id)
	if err != nil {
		// Return the rendered document even on printer failure so the
		// client can fall back to an on-screen receipt.
		if doc != nil {
			response.Success(c, http.StatusOK, "Printer unavailable, returning receipt preview", doc)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", doc)
}

// PrinterStatus handles reporting printer connectivity
func (h *DocumentHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.documentService.GetPrinterStatus())
}

// ExportRegister handles downloading the invoice register as .xlsx
func (h *DocumentHandler) ExportRegister(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		var status enum.PaymentStatus
		switch statusStr {
		case "PAID", "paid":
			status = enum.PaymentStatusPaid
		case "UNPAID", "unpaid":
			status = enum.PaymentStatusUnpaid
		default:
			response.BadRequest(c, "Invalid status, expected PAID or UNPAID")
			return
		}
		params.Status = &status
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}
	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	f, filename, err := h.exportService.ExportRegister(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := f.Write(c.Writer); err != nil {
		response.InternalServerError(c, "Failed to write export file")
	}
}
