package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"insiderdigest/internal/model"
)

// WriteWorkbook writes the multi-sheet results workbook: one sheet per
// non-empty raw dataset plus a Summaries sheet mirroring the CSV.
func WriteWorkbook(path string, filings []model.Filing, tweets, youtube []model.Post, sections []model.SummarySection) error {
	f := excelize.NewFile()
	defer f.Close()

	if len(filings) > 0 {
		if err := writeSheet(f, "SEC Filings", filingRows(filings)); err != nil {
			return err
		}
	}
	if len(tweets) > 0 {
		if err := writeSheet(f, "Twitter", postRows(tweets)); err != nil {
			return err
		}
	}
	if len(youtube) > 0 {
		if err := writeSheet(f, "YouTube", postRows(youtube)); err != nil {
			return err
		}
	}
	if err := writeSheet(f, "Summaries", sectionRows(sections)); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("workbook: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("workbook sheet %s: %w", name, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("workbook sheet %s: %w", name, err)
		}
		if err := f.SetSheetRow(name, cell, &rows[i]); err != nil {
			return fmt.Errorf("workbook sheet %s: %w", name, err)
		}
	}
	return nil
}

func filingRows(filings []model.Filing) [][]any {
	rows := [][]any{{"company", "link", "updated", "summary"}}
	for _, f := range filings {
		rows = append(rows, []any{f.Company, f.Link, f.Updated.Format(time.RFC3339), f.Summary})
	}
	return rows
}

func postRows(posts []model.Post) [][]any {
	rows := [][]any{{"user", "content"}}
	for _, p := range posts {
		rows = append(rows, []any{p.User, p.Content})
	}
	return rows
}

func sectionRows(sections []model.SummarySection) [][]any {
	rows := [][]any{{"section", "content"}}
	for _, s := range sections {
		rows = append(rows, []any{s.Section, s.Content})
	}
	return rows
}
