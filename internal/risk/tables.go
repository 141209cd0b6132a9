package risk

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadTable reads a two-column risk CSV into a Table. Header names are
// matched case-insensitively; a missing required column is a hard error.
// Values are stored as-is and only normalized at lookup time, so the same
// rule applies uniformly regardless of source file casing.
func LoadTable(path, keyCol, valCol string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening risk table %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("risk table %s has no header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading risk table %s: %w", path, err)
	}

	keyIdx, valIdx := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case strings.ToLower(keyCol):
			keyIdx = i
		case strings.ToLower(valCol):
			valIdx = i
		}
	}
	if keyIdx < 0 || valIdx < 0 {
		return nil, fmt.Errorf("risk table %s must contain columns %q and %q, found %v", path, keyCol, valCol, header)
	}

	out := make(Table)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading risk table %s: %w", path, err)
		}
		if keyIdx >= len(rec) {
			continue
		}
		k := strings.TrimSpace(rec[keyIdx])
		if k == "" {
			continue
		}
		v := ""
		if valIdx < len(rec) {
			v = strings.TrimSpace(rec[valIdx])
		}
		out[k] = v
	}
	return out, nil
}

// LoadTables loads the disease and symptom risk tables from their CSVs.
func LoadTables(diseaseCSV, symptomCSV string) (disease Table, symptom Table, err error) {
	disease, err = LoadTable(diseaseCSV, "Disease", "Risk_Level")
	if err != nil {
		return nil, nil, err
	}
	symptom, err = LoadTable(symptomCSV, "Symptom", "Risk_Level")
	if err != nil {
		return nil, nil, err
	}
	return disease, symptom, nil
}
