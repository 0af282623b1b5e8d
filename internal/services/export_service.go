package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"quotation-service/internal/config"
	"quotation-service/internal/database/minio"
	"quotation-service/internal/models"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/xuri/excelize/v2"
)

const (
	spreadsheetTemplateObject = "quotation_template.xlsx"
	pdfTemplateObject         = "quotation_form.pdf"
	quotationSheetName        = "Quotation"

	// Insurer slots 1..5 map to fixed spreadsheet columns C..G.
	maxInsurerSlots = 5
	firstSlotColumn = 'C'
)

// Spreadsheet rows of the per-slot premium block.
const (
	rowInsurerName    = 8
	rowNetAmount      = 10
	rowEmissionAmount = 11
	rowTaxAmount      = 12
	rowTotalPremium   = 13
	rowFeeInstallment = 14
	rowDirectDebit    = 15
)

// ExportService renders quotation reports by filling fixed templates kept in
// object storage: a spreadsheet with one column per insurer slot and a PDF
// form.
type ExportService struct {
	workflowService *QuotationWorkflowService
	minioClient     *minio.MinioClient
	workflowCfg     config.WorkflowConfig
}

func NewExportService(
	workflowService *QuotationWorkflowService,
	minioClient *minio.MinioClient,
	workflowCfg config.WorkflowConfig,
) *ExportService {
	return &ExportService{
		workflowService: workflowService,
		minioClient:     minioClient,
		workflowCfg:     workflowCfg,
	}
}

func slotColumn(slot int) (string, error) {
	if slot < 1 || slot > maxInsurerSlots {
		return "", fmt.Errorf("insurer display slot out of range: %d", slot)
	}
	return string(rune(firstSlotColumn + slot - 1)), nil
}

// ExportSpreadsheet fills the fixed-coordinate spreadsheet template with the
// quotation's values, one column per insurer display slot.
func (s *ExportService) ExportSpreadsheet(ctx context.Context, quotationID uuid.UUID) ([]byte, error) {
	detail, err := s.quotationDetail(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	templateData, err := s.minioClient.GetFileBytes(ctx, minio.Storage.ReportTemplates, spreadsheetTemplateObject)
	if err != nil {
		return nil, fmt.Errorf("failed to load spreadsheet template: %w", err)
	}

	workbook, err := excelize.OpenReader(bytes.NewReader(templateData))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet template: %w", err)
	}
	defer workbook.Close()

	header := map[string]any{
		"B2": detail.Customer.DisplayName(),
		"B3": detail.Customer.DocumentNumber(),
		"B4": detail.Vehicle.Plate,
		"B5": detail.Vehicle.Brand + " " + detail.Vehicle.Model,
		"B6": detail.Quotation.InsuredAmount,
		"B7": detail.Quotation.Currency,
	}
	for cell, value := range header {
		if err := workbook.SetCellValue(quotationSheetName, cell, value); err != nil {
			return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}

	for _, quote := range detail.Premiums {
		column, err := slotColumn(quote.Insurer.DisplaySlot)
		if err != nil {
			slog.Warn("Skipping premium outside slot range",
				"insurer", quote.Insurer.Name,
				"slot", quote.Insurer.DisplaySlot)
			continue
		}

		cells := map[int]any{
			rowInsurerName:    quote.Insurer.Name,
			rowNetAmount:      quote.Premium.NetAmount,
			rowEmissionAmount: quote.EmissionAmount,
			rowTaxAmount:      quote.TaxAmount,
			rowTotalPremium:   quote.TotalPremium,
			rowFeeInstallment: quote.FeeInstallment,
			rowDirectDebit:    quote.DirectDebitAmount,
		}
		for row, value := range cells {
			cell := fmt.Sprintf("%s%d", column, row)
			if err := workbook.SetCellValue(quotationSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	var out bytes.Buffer
	if err := workbook.Write(&out); err != nil {
		return nil, fmt.Errorf("failed to render spreadsheet: %w", err)
	}
	return out.Bytes(), nil
}

// pdfFormData is the pdfcpu form-fill payload.
type pdfFormData struct {
	Forms []pdfForm `json:"forms"`
}

type pdfForm struct {
	TextField []pdfTextField `json:"textfield"`
}

type pdfTextField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ExportPDF fills the AcroForm template with the quotation, its premiums
// ordered by insurer slot, and the validity range.
func (s *ExportService) ExportPDF(ctx context.Context, quotationID uuid.UUID) ([]byte, error) {
	detail, err := s.quotationDetail(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	templateData, err := s.minioClient.GetFileBytes(ctx, minio.Storage.ReportTemplates, pdfTemplateObject)
	if err != nil {
		return nil, fmt.Errorf("failed to load PDF template: %w", err)
	}

	fields := []pdfTextField{
		{Name: "customer_name", Value: detail.Customer.DisplayName()},
		{Name: "document_number", Value: detail.Customer.DocumentNumber()},
		{Name: "plate", Value: detail.Vehicle.Plate},
		{Name: "vehicle", Value: detail.Vehicle.Brand + " " + detail.Vehicle.Model},
		{Name: "insured_amount", Value: fmt.Sprintf("%.2f %s", detail.Quotation.InsuredAmount, detail.Quotation.Currency)},
		{Name: "seller", Value: detail.Seller.FirstName + " " + detail.Seller.LastName},
		{Name: "valid_until", Value: detail.ExpiresAt.Format("02/01/2006")},
	}
	for _, quote := range sortQuotesBySlot(detail.Premiums) {
		slot := quote.Insurer.DisplaySlot
		fields = append(fields,
			pdfTextField{Name: fmt.Sprintf("insurer_%d", slot), Value: quote.Insurer.Name},
			pdfTextField{Name: fmt.Sprintf("net_%d", slot), Value: fmt.Sprintf("%.2f", quote.Premium.NetAmount)},
			pdfTextField{Name: fmt.Sprintf("total_%d", slot), Value: fmt.Sprintf("%.2f", quote.TotalPremium)},
			pdfTextField{Name: fmt.Sprintf("rate_%d", slot), Value: FormatPercent(quote.Premium.Rate, s.workflowCfg.PercentDecimalSeparator)},
		)
	}

	formJSON, err := json.Marshal(pdfFormData{Forms: []pdfForm{{TextField: fields}}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal form data: %w", err)
	}

	var out bytes.Buffer
	if err := api.FillForm(bytes.NewReader(templateData), bytes.NewReader(formJSON), &out, nil); err != nil {
		return nil, fmt.Errorf("failed to fill PDF form: %w", err)
	}
	return out.Bytes(), nil
}

func sortQuotesBySlot(quotes []models.PremiumQuote) []models.PremiumQuote {
	ordered := make([]models.PremiumQuote, 0, len(quotes))
	for slot := 1; slot <= maxInsurerSlots; slot++ {
		for _, quote := range quotes {
			if quote.Insurer.DisplaySlot == slot {
				ordered = append(ordered, quote)
			}
		}
	}
	return ordered
}

func (s *ExportService) quotationDetail(ctx context.Context, quotationID uuid.UUID) (*models.QuotationDetail, error) {
	return s.workflowService.GetQuotationDetail(ctx, quotationID)
}
