package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/yixuqiu/page-spy-web/internal/model"
)

// Renderer writes committed console records to an output stream.
type Renderer interface {
	Render(rec model.ConsoleRecord) error
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

var (
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	styleDebug = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	styleFatal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("196")).
			Bold(true) // white on red
	styleSource = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Faint(true) // cyan
)

// TextRenderer prints console records with severity-based colors.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer returns a Renderer that writes colorized text to stdout.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{w: os.Stdout}
}

func (r *TextRenderer) Render(rec model.ConsoleRecord) error {
	tag := styleLevelTag(rec.Level)
	ts := rec.Time.Format("15:04:05")

	line := fmt.Sprintf("%s %s %s", ts, tag, rec.Message)
	if rec.Source != "" {
		line += " " + styleSource.Render(rec.Source)
	}
	_, err := fmt.Fprintln(r.w, line)
	return err
}

func styleLevelTag(level string) string {
	padded := fmt.Sprintf("%-5s", level)
	switch level {
	case "DEBUG":
		return styleDebug.Render(padded)
	case "WARN":
		return styleWarn.Render(padded)
	case "ERROR":
		return styleError.Render(padded)
	case "FATAL":
		return styleFatal.Render(padded)
	default:
		return styleInfo.Render(padded)
	}
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints each record as a single JSON object per line.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON lines to stdout.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(os.Stdout)}
}

func (r *JSONRenderer) Render(rec model.ConsoleRecord) error {
	return r.enc.Encode(rec)
}
