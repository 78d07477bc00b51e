package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mkrishnan/retailbill-api/internal/domain/repository"
)

// ExportService produces the invoice register as an Excel workbook.
type ExportService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewExportService creates a new export service
func NewExportService(invoiceRepo repository.InvoiceRepository) *ExportService {
	return &ExportService{invoiceRepo: invoiceRepo}
}

const registerSheet = "Invoices"

// ExportRegister builds an .xlsx file with one row per invoice matching
// the given filters. The caller owns closing the returned file.
func (s *ExportService) ExportRegister(ctx context.Context, params *repository.InvoiceFilterParams) (*excelize.File, string, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx, params)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(registerSheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"Invoice No", "Date", "Customer", "Salesperson", "Items",
		"Subtotal", "Discount", "CGST", "SGST", "Grand Total",
		"Advance", "Balance", "Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(registerSheet, cell, h)
	}

	for i, inv := range invoices {
		row := i + 2
		customerName := "Walk-in Customer"
		if inv.Customer != nil {
			customerName = inv.Customer.Name
		}

		values := []interface{}{
			inv.InvoiceNo,
			inv.InvoiceDate.Format("02/01/2006"),
			customerName,
			inv.Employee.Name,
			len(inv.Items),
			inv.SubTotal.StringFixed(2),
			inv.TotalDiscount.StringFixed(2),
			inv.CGSTAmount.StringFixed(2),
			inv.SGSTAmount.StringFixed(2),
			inv.TotalAmount.StringFixed(2),
			inv.AdvanceAmount.StringFixed(2),
			inv.BalanceAmount.StringFixed(2),
			inv.PaymentStatus.String(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(registerSheet, cell, v)
		}
	}

	filename := fmt.Sprintf("invoice-register-%s.xlsx", time.Now().Format("20060102-150405"))
	return f, filename, nil
}
