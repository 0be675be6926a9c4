// Package report renders the result of a program run.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/sivchari/gobasics/internal/config"
	"github.com/sivchari/gobasics/internal/parity"
)

// Summary contains everything a run produced.
type Summary struct {
	Label       string        `json:"label"`
	RecordX     int           `json:"recordX"`
	Calculation Calculation   `json:"calculation"`
	Branch      string        `json:"branch"`
	Counted     []int         `json:"counted"`
	Data        []int         `json:"data"`
	Evens       []int         `json:"evens"`
	Duration    time.Duration `json:"duration"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Calculation records the operands and result of a + b*c.
type Calculation struct {
	A      int `json:"a"`
	B      int `json:"b"`
	C      int `json:"c"`
	Result int `json:"result"`
}

// Generator handles report generation.
type Generator struct {
	config *config.Config
	out    io.Writer
}

// New creates a new report generator writing to out unless the config
// names an output file.
func New(cfg *config.Config, out io.Writer) *Generator {
	if out == nil {
		out = os.Stdout
	}

	return &Generator{
		config: cfg,
		out:    out,
	}
}

// Generate outputs the summary in the configured format.
func (g *Generator) Generate(summary *Summary) error {
	switch g.config.Output.Format {
	case config.FormatJSON:
		return g.generateJSON(summary)
	case config.FormatHTML:
		return g.generateHTML(summary)
	default:
		return g.generateText(summary)
	}
}

func (g *Generator) generateJSON(summary *Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	return g.write(append(data, '\n'))
}

func (g *Generator) generateText(summary *Summary) error {
	return g.write([]byte(FormatText(summary)))
}

func (g *Generator) generateHTML(summary *Summary) error {
	funcMap := template.FuncMap{
		"evenLine": parity.Line,
	}

	tmpl, err := template.New("html_report").Funcs(funcMap).Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, summary); err != nil {
		return fmt.Errorf("failed to execute HTML template: %w", err)
	}

	return g.write(buf.Bytes())
}

func (g *Generator) write(data []byte) error {
	if g.config.Output.File != "" {
		if err := os.WriteFile(g.config.Output.File, data, 0600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		return nil
	}

	if _, err := g.out.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// FormatText renders the summary as the plain program output: the label,
// the comparison with its count, then one line per even value.
func FormatText(summary *Summary) string {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, summary.Label)
	fmt.Fprintln(&buf, summary.Branch)

	for _, i := range summary.Counted {
		fmt.Fprintln(&buf, i)
	}

	for _, n := range summary.Evens {
		fmt.Fprintln(&buf, parity.Line(n))
	}

	return buf.String()
}

// htmlTemplate is the template for HTML reports.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>gobasics report</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; margin: 20px; color: #2c3e50; }
        .card { border-left: 4px solid #3498db; padding: 10px 20px; margin-bottom: 15px; background: #f8f9fa; }
        .evens li { color: #27ae60; }
    </style>
</head>
<body>
    <h1 class="label">{{.Label}}</h1>
    <div class="card">
        <h3>Calculation</h3>
        <p class="calculation">{{.Calculation.A}} + {{.Calculation.B}} * {{.Calculation.C}} = {{.Calculation.Result}}</p>
    </div>
    <div class="card">
        <h3>Comparison</h3>
        <p class="branch">{{.Branch}}</p>
        <ol class="counted" start="0">{{range .Counted}}<li>{{.}}</li>{{end}}</ol>
    </div>
    <div class="card">
        <h3>Evens</h3>
        <ul class="evens">{{range .Evens}}<li>{{evenLine .}}</li>{{end}}</ul>
    </div>
    <footer>Generated {{.Timestamp.Format "2006-01-02T15:04:05Z07:00"}} in {{.Duration}}</footer>
</body>
</html>
`
