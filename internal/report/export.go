package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"clawdbot-dashboard/internal/domain"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatJSON, FormatYAML, FormatCSV, FormatPDF:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w %s", ErrUnknownFormat, s)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatCSV:
		return "text/csv"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

func (f Format) Ext() string { return "." + string(f) }

// Source is what an export reads from.
type Source interface {
	List() ([]domain.Task, error)
}

// Snapshot is the exported document.
type Snapshot struct {
	Title       string        `json:"title" yaml:"title"`
	GeneratedAt time.Time     `json:"generatedAt" yaml:"generated_at"`
	Stats       domain.Stats  `json:"stats" yaml:"stats"`
	Tasks       []domain.Task `json:"tasks" yaml:"tasks"`
}

type Exporter struct {
	src   Source
	title string
	now   func() time.Time
}

func NewExporter(src Source, title string) *Exporter {
	return &Exporter{src: src, title: title, now: time.Now}
}

func (e *Exporter) Snapshot() (Snapshot, error) {
	tasks, err := e.src.List()
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Title:       e.title,
		GeneratedAt: e.now().UTC(),
		Stats:       domain.ComputeStats(tasks),
		Tasks:       tasks,
	}, nil
}

func (e *Exporter) Export(format Format) ([]byte, error) {
	snap, err := e.Snapshot()
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return json.MarshalIndent(snap, "", "  ")
	case FormatYAML:
		return yaml.Marshal(snap)
	case FormatCSV:
		return exportCSV(snap)
	case FormatPDF:
		return exportPDF(snap)
	default:
		return nil, fmt.Errorf("%w %s", ErrUnknownFormat, format)
	}
}

func exportCSV(snap Snapshot) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"id", "title", "description", "status", "priority", "created_at"})
	for _, t := range snap.Tasks {
		_ = w.Write([]string{t.ID, t.Title, t.Description, string(t.Status), string(t.Priority), t.CreatedAt.Format(time.RFC3339)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func exportPDF(snap Snapshot) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr(snap.Title))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(40, 6, "Generated "+snap.GeneratedAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	s := snap.Stats
	pdf.Cell(0, 6, fmt.Sprintf("Total %d   Pending %d   In Progress %d   Completed %d   Failed %d",
		s.Total, s.Pending, s.InProgress, s.Completed, s.Failed))
	pdf.Ln(10)

	for _, t := range snap.Tasks {
		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s  [%s] [%s]", t.Title, t.Status.Label(), t.Priority.Label())), "0", "L", false)
		pdf.SetFont("Arial", "", 10)
		if t.Description != "" {
			pdf.MultiCell(0, 5, tr(t.Description), "0", "L", false)
		}
		pdf.SetFont("Arial", "I", 8)
		pdf.MultiCell(0, 5, "Created: "+t.CreatedAt.Format("2006-01-02"), "0", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
