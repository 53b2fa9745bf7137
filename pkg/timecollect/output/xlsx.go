package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/timecollect-go/pkg/timecollect/models"
	"github.com/xuri/excelize/v2"
)

// Headers is the header row of every exported sheet, in TimesheetEntry field order.
var Headers = []string{
	"対応",
	"行番号",
	"年",
	"月",
	"日",
	"WeekType",
	"名前",
	"工号",
	"種別",
	"直接/間接",
	"原寸/3D/管理",
	"時間",
}

// WriteWorkbook writes each report sheet into the workbook at path, replacing
// sheets of the same name and keeping all others. A missing workbook is created.
func WriteWorkbook(path string, report *models.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, created, err := openOrCreate(path)
	if err != nil {
		return err
	}
	defer f.Close()

	placeholder := ""
	if created {
		placeholder = f.GetSheetName(0)
	}

	for i := range report.Sheets {
		sheet := &report.Sheets[i]
		if err := WriteSheet(f, sheet.Name, sheet.Entries); err != nil {
			return fmt.Errorf("write sheet %q: %w", sheet.Name, err)
		}
		if sheet.Name == placeholder {
			placeholder = ""
		}
	}

	// A new file starts with an empty default sheet; drop it once real sheets exist.
	if placeholder != "" && len(f.GetSheetList()) > 1 {
		if err := f.DeleteSheet(placeholder); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func openOrCreate(path string) (*excelize.File, bool, error) {
	f, err := excelize.OpenFile(path)
	if err == nil {
		return f, false, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return excelize.NewFile(), true, nil
	}
	return nil, false, fmt.Errorf("open workbook %s: %w", path, err)
}

// WriteSheet (re)creates sheet name in f holding the header row and entries.
func WriteSheet(f *excelize.File, name string, entries []models.TimesheetEntry) error {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return err
	}
	if idx >= 0 {
		if len(f.GetSheetList()) == 1 {
			// The last sheet of a workbook cannot be deleted; rename it away first.
			tmp := name + "_old"
			if err := f.SetSheetName(name, tmp); err != nil {
				return err
			}
			if _, err := f.NewSheet(name); err != nil {
				return err
			}
			if err := f.DeleteSheet(tmp); err != nil {
				return err
			}
		} else {
			if err := f.DeleteSheet(name); err != nil {
				return err
			}
			if _, err := f.NewSheet(name); err != nil {
				return err
			}
		}
	} else if _, err := f.NewSheet(name); err != nil {
		return err
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := entryRow(e)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// entryRow lays out an entry in Headers order.
func entryRow(e models.TimesheetEntry) []interface{} {
	return []interface{}{
		e.Client,
		e.RowNumber,
		e.Year,
		e.Month,
		e.Day,
		e.WeekType,
		e.EmployeeName,
		e.ProjectCode,
		e.TaskType,
		e.WorkType,
		e.EmployeeTeam,
		e.WorkedHours,
	}
}
