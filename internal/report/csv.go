package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"insiderdigest/internal/model"
)

// writeCSV overwrites path with a header row plus records. Outputs are
// whole-file artifacts, never appended to.
func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return w.Error()
}

func WriteFilingsCSV(path string, filings []model.Filing) error {
	records := make([][]string, 0, len(filings))
	for _, f := range filings {
		records = append(records, []string{f.Company, f.Link, f.Updated.Format(time.RFC3339), f.Summary})
	}
	return writeCSV(path, []string{"company", "link", "updated", "summary"}, records)
}

func WritePostsCSV(path string, posts []model.Post) error {
	records := make([][]string, 0, len(posts))
	for _, p := range posts {
		records = append(records, []string{p.User, p.Content})
	}
	return writeCSV(path, []string{"user", "content"}, records)
}

func WriteSummariesCSV(path string, sections []model.SummarySection) error {
	records := make([][]string, 0, len(sections))
	for _, s := range sections {
		records = append(records, []string{s.Section, s.Content})
	}
	return writeCSV(path, []string{"section", "content"}, records)
}

// NormalizedPath derives the capped-output filename for a dataset: same
// base name with a _normalized suffix.
func NormalizedPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_normalized.csv"
}

// ReadSummaries loads a previously written summaries file.
func ReadSummaries(path string) ([]model.SummarySection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var sections []model.SummarySection
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		sections = append(sections, model.SummarySection{Section: row[0], Content: row[1]})
	}
	return sections, nil
}

// FileStore serves the latest run's summaries from disk for the API binary.
// A digest that has never been generated reads as empty, not as an error.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) GetSections() ([]model.SummarySection, error) {
	sections, err := ReadSummaries(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return sections, nil
}
