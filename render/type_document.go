package render

import (
	"fmt"
	"strings"
	"text/template"

	practice "github.com/tetuanhairi-prog/HMpengurusan"
	"github.com/tetuanhairi-prog/HMpengurusan/config"
)

// Document is the print-ready view of an official document: the firm
// letterhead, the per-kind labels and the computed lines, all resolved
// to display strings so templates stay dumb.
type Document struct {
	Firm     config.Firm
	Labels   practice.DocLabels
	DocNo    string
	Date     practice.Date
	Customer string
	Phone    string
	Address  string
	Notes    string
	Lines    []Line
	Total    practice.Money
}

// Line is one rendered row of the document body.
type Line struct {
	Label  string
	Amount practice.Money
}

// NewDocument resolves a document against the firm profile.
func NewDocument(d *practice.Document, firm config.Firm) *Document {
	v := &Document{
		Firm:     firm,
		Labels:   d.Labels(),
		DocNo:    d.DocNo,
		Date:     d.Date,
		Customer: d.Customer,
		Phone:    d.Phone,
		Address:  d.Address,
		Notes:    d.Notes,
		Lines:    make([]Line, 0, len(d.Lines)),
		Total:    practice.M(d.Total),
	}
	for _, l := range d.Lines {
		v.Lines = append(v.Lines, Line{Label: l.Label, Amount: practice.M(l.Amount)})
	}
	return v
}

// documentMarkdownTemplate is the template for rendering an official
// document in Markdown.
const documentMarkdownTemplate = `# {{ .Firm.Name }}
{{ if .Firm.Tagline }}*{{ .Firm.Tagline }}*
{{ end }}{{ if .Firm.Address }}{{ .Firm.Address }}
{{ end }}{{ if .Firm.Phone }}Tel: {{ .Firm.Phone }}
{{ end }}
## {{ .Labels.TypeLabel }}

No: **{{ .DocNo }}**
Tarikh: {{ .Date }}

{{ .Labels.CustomerLabel }} **{{ .Customer }}**
{{- if .Phone }}
Telefon: {{ .Phone }}
{{- end }}
{{- if .Address }}
Alamat: {{ .Address }}
{{- end }}

| Perkara | Amaun |
|:---|---:|
{{- range .Lines }}
| {{ .Label }} | {{ .Amount }} |
{{- end }}
| **{{ .Labels.TotalLabel }}** | **{{ .Total }}** |
{{- if .Notes }}

> {{ .Notes }}
{{- end }}

{{ .Labels.FooterNote }}
`

// RenderDocument renders the Document view to a markdown string.
func RenderDocument(v *Document) string {
	tmpl := template.Must(template.New("document").Parse(documentMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, v); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
