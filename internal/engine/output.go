package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// exportZone is the fixed +08:00 offset all output timestamps use.
var exportZone = time.FixedZone("CST", 8*60*60)

const siteTimeLayout = "2006-01-02T15:04:05.000-07:00"

// Writer serialises verified URLs into the output file.
type Writer struct {
	Path   string
	Label  string // display-name prefix, e.g. the recency window label
	Remark string
	Tags   []string
	Now    func() time.Time // defaults to time.Now
}

// NewWriter builds a Writer from cfg.
func NewWriter(cfg Config) *Writer {
	return &Writer{
		Path:   cfg.OutputFile,
		Label:  cfg.WindowLabel,
		Remark: cfg.Remark,
		Tags:   cfg.Tags,
	}
}

// Build assembles the export document. Ids are auto-1, auto-2, ... in
// input order.
func (w *Writer) Build(urls []string) Export {
	now := time.Now()
	if w.Now != nil {
		now = w.Now()
	}
	now = now.In(exportZone)
	stamp := now.Format(siteTimeLayout)

	sites := make([]Site, 0, len(urls))
	for i, u := range urls {
		n := strconv.Itoa(i + 1)
		sites = append(sites, Site{
			ID:          "auto-" + n,
			Key:         w.Label + "-" + n,
			Name:        w.Label + "-" + n,
			API:         u,
			Type:        2,
			IsActive:    1,
			Time:        stamp,
			IsDefault:   0,
			Remark:      w.Remark,
			Tags:        append([]string{}, w.Tags...),
			Priority:    0,
			ProxyMode:   "none",
			CustomProxy: "",
		})
	}

	return Export{
		Sites:      sites,
		ExportTime: now.Format(time.RFC3339Nano),
		Total:      len(sites),
	}
}

// Write overwrites the output file with the export for urls. An empty list
// still produces a valid document.
func (w *Writer) Write(urls []string) error {
	data, err := Encode(w.Build(urls))
	if err != nil {
		return err
	}
	if err := os.WriteFile(w.Path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", w.Path, err)
	}
	slog.Info("output: saved", slog.String("file", w.Path), slog.Int("total", len(urls)))
	return nil
}

// Encode renders the export as indented JSON without HTML escaping.
func Encode(e Export) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return buf.Bytes(), nil
}
