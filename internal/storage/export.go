package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/cracklab/internal/fatigue"
)

// ExportData is the full JSON dump of one run: summary plus growth trace.
type ExportData struct {
	RunMetadata
	History []fatigue.GrowthSample `json:"growth_history"`
}

// ExportJSON writes a run, history included, to one writer.
func ExportJSON(w io.Writer, meta *RunMetadata, history []fatigue.GrowthSample) error {
	data := ExportData{RunMetadata: *meta, History: history}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONFile writes a run dump to a file path.
func ExportJSONFile(path string, meta *RunMetadata, history []fatigue.GrowthSample) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, meta, history)
}
