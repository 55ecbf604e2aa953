// Package export renders registration records to a spreadsheet for the admin
// view. The whole filtered set goes into one sheet; pagination is a display
// concern and does not apply here.
package export

import (
	"fmt"
	"time"

	"github.com/campreg/campreg/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Registrations"

var headers = []string{
	"ID", "Child Name", "Age", "Registration Type", "First Time", "TC Center",
	"Zone", "Address", "Parent Name", "Parent Phone", "Allergy", "Consent",
	"Payment Email", "Total Amount", "Payment Status", "Payment Reference",
	"Registered At", "Paid At",
}

// Workbook builds an xlsx file from the registrations. zoneNames maps zone
// IDs to display names; unknown zones fall back to the raw ID.
func Workbook(regs []domain.Registration, zoneNames map[int64]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, reg := range regs {
		row := i + 2
		values := []any{
			reg.ID,
			reg.ChildName,
			reg.Age,
			reg.RegistrationType,
			reg.FirstTimeAttendingCamp,
			reg.TCCenter,
			zoneName(zoneNames, reg.ZoneID),
			reg.Address,
			reg.ParentName,
			reg.ParentPhone,
			reg.Allergy,
			consent(reg.ConsentGiven),
			reg.PaymentEmail,
			reg.TotalAmount,
			reg.PaymentStatus,
			reg.PaymentReference,
			timestamp(reg.CreatedAt),
			timestamp(reg.PaymentCreatedAt),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func zoneName(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("%d", id)
}

func consent(given bool) string {
	if given {
		return "Yes"
	}
	return "No"
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
