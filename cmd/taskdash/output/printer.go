package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"
)

// maxCellWidth caps table cells so long titles don't wrap the terminal
const maxCellWidth = 48

// Printer provides methods for formatted console output
type Printer struct {
	writer io.Writer
	styles *Styles
	quiet  bool
}

// Styles holds lipgloss styles for console output
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Header  lipgloss.Style
	Subtle  lipgloss.Style
	Bold    lipgloss.Style
}

// NewPrinter creates a new console printer
func NewPrinter(writer io.Writer) *Printer {
	return &Printer{
		writer: writer,
		styles: &Styles{
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true).Underline(true),
			Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Bold:    lipgloss.NewStyle().Bold(true),
		},
	}
}

// SetQuiet suppresses informational messages; errors still print
func (p *Printer) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.writer, p.styles.Success.Render("✓ "+msg))
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.writer, p.styles.Error.Render("✗ "+msg))
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.writer, p.styles.Warning.Render("⚠ "+msg))
}

// Info prints an info message
func (p *Printer) Info(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.writer, p.styles.Info.Render("ℹ "+msg))
}

// Header prints a header message
func (p *Printer) Header(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.writer, p.styles.Header.Render(msg))
}

// Println prints a normal message
func (p *Printer) Println(format string, args ...interface{}) {
	fmt.Fprintf(p.writer, format+"\n", args...)
}

// Subtle prints a subtle/dimmed message
func (p *Printer) Subtle(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.writer, p.styles.Subtle.Render(msg))
}

// Table prints rows under a bold header, truncating wide cells
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = p.styles.Bold.Render(h)
	}
	tbl.AddRow(header...)

	for _, row := range rows {
		cells := make([]interface{}, len(headers))
		for i := range headers {
			var cell string
			if i < len(row) {
				cell = truncate.StringWithTail(row[i], maxCellWidth, "…")
			}
			cells[i] = cell
		}
		tbl.AddRow(cells...)
	}

	fmt.Fprintln(p.writer, tbl)
}

// KeyValues prints aligned label/value pairs
func (p *Printer) KeyValues(pairs [][2]string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, pair := range pairs {
		tbl.AddRow(p.styles.Subtle.Render(pair[0]+":"), pair[1])
	}
	fmt.Fprintln(p.writer, tbl)
}

// DefaultPrinter returns a printer that writes to stdout
func DefaultPrinter() *Printer {
	return NewPrinter(os.Stdout)
}

// ErrorPrinter returns a printer that writes to stderr
func ErrorPrinter() *Printer {
	return NewPrinter(os.Stderr)
}
