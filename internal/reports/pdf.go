package reports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/font"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/text/encoding/charmap"

	"github.com/JaimeStill/unmask/internal/reports/markup"
)

// A4 portrait, 10pt body.
const (
	pageTop     = 800.0
	pageBottom  = 50.0
	marginLeft  = 50.0
	lineHeight  = 13.0
	lineWidth   = 92
	fontSize    = 10
	headingSize = 14
)

// pdfcpu installs Roboto into its user font directory with the default
// configuration. Helvetica only covers WinAnsi and is used when that
// directory is unavailable.
const (
	unicodeFont = "Roboto-Regular"
	coreFont    = "Helvetica"
)

var document = template.Must(template.New("report").Parse(`UnmaskAI Bias Report
Session: {{.SessionID}}
Model: {{.ModelUsed}}
Domain: {{.Domain}}
Created: {{.CreatedAt}}
{{range .Prompts}}
== Prompt {{.Number}} ==
{{.Text}}

Response:
{{.Response}}
{{if .Insights}}
Bias insights:
{{range .Insights}}- {{.}}
{{end}}{{end}}{{if .Exams}}
Cross-examination:
{{range .Exams}}Q: {{.Question}}
A: {{.Answer}}
{{end}}{{end}}{{if .Rewrites}}
Perspectives:
{{range .Rewrites}}[{{.Label}}]
{{.Text}}
{{end}}{{end}}{{with .Override}}
Human override:
{{.Response}}{{if .Justification}}
Justification: {{.Justification}}{{end}}{{if .Tags}}
Tags: {{.Tags}}{{end}}
{{end}}{{else}}
No prompts recorded.
{{end}}`))

type documentView struct {
	SessionID string
	ModelUsed string
	Domain    string
	CreatedAt string
	Prompts   []promptView
}

type promptView struct {
	Number   int
	Text     string
	Response string
	Insights []string
	Exams    []examView
	Rewrites []rewriteView
	Override *overrideView
}

type examView struct{ Question, Answer string }

type rewriteView struct{ Label, Text string }

type overrideView struct{ Response, Justification, Tags string }

func orNone(s *string) string {
	if s == nil || *s == "" {
		return "n/a"
	}
	return *s
}

// newDocumentView flattens every collaborator answer from Markdown to
// plain text.
func newDocumentView(r *Report) documentView {
	v := documentView{
		SessionID: r.SessionID.String(),
		ModelUsed: orNone(r.ModelUsed),
		Domain:    orNone(r.Domain),
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}

	for i, p := range r.Prompts {
		pv := promptView{
			Number:   i + 1,
			Text:     p.PromptText,
			Response: markup.Flatten(orNone(p.AIResponse)),
		}
		for _, b := range p.BiasInsights {
			line := fmt.Sprintf("%s: %.2f", b.Category, b.Score)
			if b.Summary != nil && *b.Summary != "" {
				line += " (" + *b.Summary + ")"
			}
			pv.Insights = append(pv.Insights, line)
		}
		for _, e := range p.CrossExams {
			pv.Exams = append(pv.Exams, examView{Question: e.UserQuestion, Answer: markup.Flatten(e.AIResponse)})
		}
		for _, rw := range p.Perspectives {
			pv.Rewrites = append(pv.Rewrites, rewriteView{Label: rw.Perspective, Text: markup.Flatten(rw.AIRephrasedOutput)})
		}
		if o := p.HumanOverride; o != nil {
			ov := &overrideView{Response: o.HumanResponse, Tags: strings.Join(o.Tags, ", ")}
			if o.Justification != nil {
				ov.Justification = *o.Justification
			}
			pv.Override = ov
		}
		v.Prompts = append(v.Prompts, pv)
	}
	return v
}

// Layout description consumed by pdfcpu's create command.
type pdfLayout struct {
	Paper string             `json:"paper"`
	Pages map[string]pdfPage `json:"pages"`
}

type pdfPage struct {
	Content pdfContent `json:"content"`
}

type pdfContent struct {
	Text []pdfText `json:"text"`
}

type pdfText struct {
	Value string     `json:"value"`
	Pos   [2]float64 `json:"pos"`
	Font  pdfFont    `json:"font"`
}

type pdfFont struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

func renderPDF(r *Report) ([]byte, error) {
	var text bytes.Buffer
	if err := document.Execute(&text, newDocumentView(r)); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	name, drawable := selectFont()

	lines := wrap(text.String(), lineWidth)
	if err := checkGlyphs(lines, drawable); err != nil {
		return nil, err
	}

	layout, err := json.Marshal(paginate(lines, name))
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}

	var out bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(layout), &out, conf); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// selectFont returns the layout font and a predicate reporting whether a
// rune has a glyph in it. User fonts must already be loaded.
func selectFont() (string, func(rune) bool) {
	font.UserFontMetricsLock.RLock()
	ttf, ok := font.UserFontMetrics[unicodeFont]
	font.UserFontMetricsLock.RUnlock()

	if ok {
		return unicodeFont, func(r rune) bool {
			_, ok := ttf.Chars[uint32(r)]
			return ok
		}
	}
	return coreFont, func(r rune) bool {
		_, ok := charmap.Windows1252.EncodeRune(r)
		return ok
	}
}

// checkGlyphs fails on the first rune the font cannot draw. pdfcpu drops
// such runes silently.
func checkGlyphs(lines []string, drawable func(rune) bool) error {
	for _, line := range lines {
		for _, r := range line {
			if !drawable(r) {
				return fmt.Errorf("%w: %q (U+%04X)", ErrUnencodableText, r, r)
			}
		}
	}
	return nil
}

// paginate places lines top to bottom, starting a new page when the
// bottom margin is reached. Blank lines only advance the cursor.
func paginate(lines []string, fontName string) pdfLayout {
	layout := pdfLayout{Paper: "A4P", Pages: map[string]pdfPage{}}

	page, y := 1, pageTop
	var content pdfContent
	flush := func() {
		layout.Pages[strconv.Itoa(page)] = pdfPage{Content: content}
		content = pdfContent{}
	}

	for i, line := range lines {
		if y < pageBottom {
			flush()
			page++
			y = pageTop
		}
		if strings.TrimSpace(line) != "" {
			size := fontSize
			if i == 0 {
				size = headingSize
			}
			content.Text = append(content.Text, pdfText{
				Value: line,
				Pos:   [2]float64{marginLeft, y},
				Font:  pdfFont{Name: fontName, Size: size},
			})
		}
		y -= lineHeight
	}
	flush()

	return layout
}

// wrap breaks text into lines of at most width runes, splitting on spaces
// where possible.
func wrap(text string, width int) []string {
	var out []string
	for _, para := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		var line []rune
		for _, w := range words {
			rw := []rune(w)
			for len(rw) > width {
				if len(line) > 0 {
					out = append(out, string(line))
					line = nil
				}
				out = append(out, string(rw[:width]))
				rw = rw[width:]
			}
			switch {
			case len(line) == 0:
				line = rw
			case len(line)+1+len(rw) <= width:
				line = append(append(line, ' '), rw...)
			default:
				out = append(out, string(line))
				line = rw
			}
		}
		if len(line) > 0 {
			out = append(out, string(line))
		}
	}
	return out
}
