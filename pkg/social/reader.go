package social

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"insiderdigest/internal/model"
)

// readRows parses a dataset file, tolerating ragged rows. On a hard parse
// error the file is re-read in a permissive mode that skips the lines the
// parser still cannot make sense of.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err == nil {
		return rows, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	r = csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows = rows[:0]
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadPosts loads a dataset: header row skipped, first column the user,
// second the content. A row missing its content column is kept with empty
// content rather than dropped, so row counts stay predictable.
func ReadPosts(path string) ([]model.Post, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	posts := make([]model.Post, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		p := model.Post{User: row[0]}
		if len(row) > 1 {
			p.Content = row[1]
		}
		posts = append(posts, p)
	}
	return posts, nil
}
