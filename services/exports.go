package services

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/UCDC-Institute/Website_BCMS/res"
)

// ExportContacts writes every contact message to an xlsx sheet.
func (c *ContactService) ExportContacts(w io.Writer) *res.ErrorRes {
	contacts, errRes := c.GetContacts()
	if errRes != nil {
		return errRes
	}
	file := excelize.NewFile()
	sheetName := "Messages"
	file.SetSheetName("Sheet1", sheetName)

	headers := []string{"Name", "Email", "Phone", "Subject", "Message", "Read", "Date"}
	for i, header := range headers {
		column := fmt.Sprintf("%v1", string(rune('A'+i)))
		file.SetCellValue(sheetName, column, header)
	}
	for i, contact := range contacts {
		row := i + 2
		read := "No"
		if contact.IsRead {
			read = "Yes"
		}
		file.SetCellValue(sheetName, fmt.Sprintf("A%v", row), contact.Name)
		file.SetCellValue(sheetName, fmt.Sprintf("B%v", row), contact.Email)
		file.SetCellValue(sheetName, fmt.Sprintf("C%v", row), contact.Phone)
		file.SetCellValue(sheetName, fmt.Sprintf("D%v", row), contact.Subject)
		file.SetCellValue(sheetName, fmt.Sprintf("E%v", row), contact.Message)
		file.SetCellValue(sheetName, fmt.Sprintf("F%v", row), read)
		file.SetCellValue(
			sheetName,
			fmt.Sprintf("G%v", row),
			contact.CreatedAt.Time().Format("2006-01-02 15:04"),
		)
	}
	if err := file.Write(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

// ExportAlumni writes the alumni directory as a PDF table, approved
// rows flagged.
func (a *AlumniService) ExportAlumni(w io.Writer) *res.ErrorRes {
	alumni, errRes := a.GetAlumni()
	if errRes != nil {
		return errRes
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	defer pdf.Close()
	pdf.SetFont("Arial", "", 10)
	pdf.AddPage()

	width, height := pdf.GetPageSize()
	pdf.Text(5, 10, settingsData.INSTITUTE_NAME)
	title := "Alumni Directory"
	pdf.Text(width-5-pdf.GetStringWidth(title), 10, title)
	date := fmt.Sprintf("Issued %s", time.Now().Format("2006-01-02"))
	pdf.Text(5, height-5, date)

	columns := []struct {
		header string
		width  float64
	}{
		{"Name", 50},
		{"Email", 60},
		{"Phone", 30},
		{"Course", 45},
		{"Batch", 20},
		{"Position", 55},
		{"Approved", 22},
	}
	pdf.SetXY(5, 20)
	for _, column := range columns {
		pdf.CellFormat(column.width, 6, column.header, "1", 0, "C", false, 0, "")
	}
	y := 26.0
	for _, row := range alumni {
		if y > height-15 {
			pdf.AddPage()
			y = 20
		}
		approved := "No"
		if row.IsApproved {
			approved = "Yes"
		}
		values := []string{
			row.Name,
			row.Email,
			row.Phone,
			row.Course,
			row.Batch,
			row.CurrentPosition,
			approved,
		}
		pdf.SetXY(5, y)
		for i, value := range values {
			pdf.CellFormat(columns[i].width, 6, value, "1", 0, "", false, 0, "")
		}
		y += 6
	}
	if err := pdf.Output(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}
