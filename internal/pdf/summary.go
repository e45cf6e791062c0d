package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"accverse/internal/models"
)

// SummaryGenerator renders one-page tax-form summaries for back-office use.
type SummaryGenerator interface {
	FormSummary(data FormSummaryData) ([]byte, error)
}

type FormSummaryData struct {
	Form       *models.TaxForm
	ClientName string
}

type summaryGenerator struct{}

func NewSummaryGenerator() SummaryGenerator {
	return &summaryGenerator{}
}

func (g *summaryGenerator) FormSummary(data FormSummaryData) ([]byte, error) {
	form := data.Form

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Tax Form %s", form.ID), false)
	pdf.SetAuthor("Accverse", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "TAX FORM SUMMARY", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Form %s", form.ID), "", 1, "C", false, 0, "")
	hr(pdf)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 8, value, "", "L", false)
	}

	row("Client", data.ClientName)
	row("Form type", form.FormType)
	row("Status", form.Status)
	if form.Notes != "" {
		row("Notes", form.Notes)
	}
	row("Created", formatTime(form.CreatedAt))
	row("Updated", formatTime(form.UpdatedAt))

	if len(form.Files) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Attached files", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, f := range form.Files {
			line := f.FileName
			if f.FileType != "" {
				line = fmt.Sprintf("%s (%s)", f.FileName, f.FileType)
			}
			pdf.CellFormat(0, 7, "- "+line, "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render summary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("02 Jan 2006 15:04")
}

func hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(20, y+2, pageW-20, y+2)
	pdf.SetXY(x, y+6)
}
