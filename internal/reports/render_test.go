package reports

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/font"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

func sampleReport(prompts int) *Report {
	used := "gpt-4o"
	r := &Report{
		SessionID: uuid.MustParse("0190f2a4-0000-7000-8000-000000000001"),
		ModelUsed: &used,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Prompts:   []PromptReport{},
	}
	for range prompts {
		answer := "The answer is **probably** yes.\n\n- point one\n- point two"
		r.Prompts = append(r.Prompts, PromptReport{
			ID:           uuid.New(),
			PromptText:   "Is the coverage balanced?",
			AIResponse:   &answer,
			BiasInsights: []InsightEntry{{Category: "Political", Score: 0.6}},
			CrossExams:   []ExamEntry{{UserQuestion: "Why?", AIResponse: "Because of *framing*."}},
			Perspectives: []RewriteEntry{{Perspective: "Conservative", AIRephrasedOutput: "## Rewrite\n\nCoverage is fair."}},
			HumanOverride: &OverrideEntry{
				HumanResponse: "Mostly balanced.",
				Tags:          []string{"tone", "sourcing"},
			},
		})
	}
	return r
}

func TestRenderJSON(t *testing.T) {
	r := sampleReport(1)

	for _, format := range []string{"", "json", "JSON"} {
		doc, err := Render(r, format)
		if err != nil {
			t.Fatalf("Render(%q): %v", format, err)
		}
		if doc.ContentType != "application/json" {
			t.Errorf("content type = %q", doc.ContentType)
		}

		var back Report
		if err := json.Unmarshal(doc.Data, &back); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if back.SessionID != r.SessionID || len(back.Prompts) != 1 {
			t.Errorf("decoded = %+v", back)
		}
	}
}

func TestRenderUnsupported(t *testing.T) {
	_, err := Render(sampleReport(0), "html")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRenderPDF(t *testing.T) {
	tests := []struct {
		name    string
		prompts int
		pages   int
	}{
		{"empty session", 0, 1},
		{"single prompt", 1, 1},
		{"spills onto more pages", 12, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Render(sampleReport(tt.prompts), "pdf")
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if doc.ContentType != "application/pdf" || !strings.HasSuffix(doc.Filename, ".pdf") {
				t.Errorf("document = %q %q", doc.ContentType, doc.Filename)
			}

			n, err := api.PageCount(bytes.NewReader(doc.Data), nil)
			if err != nil {
				t.Fatalf("page count: %v", err)
			}
			if n < tt.pages {
				t.Errorf("pages = %d, want at least %d", n, tt.pages)
			}
		})
	}
}

func TestRenderPDFKeepsNonLatinText(t *testing.T) {
	model.NewDefaultConfiguration()
	font.UserFontMetricsLock.RLock()
	ttf, ok := font.UserFontMetrics[unicodeFont]
	font.UserFontMetricsLock.RUnlock()
	if !ok {
		t.Skipf("%s is not installed in the pdfcpu font directory", unicodeFont)
	}

	line := "Le café — “quoted” текст Ελληνικά"
	r := sampleReport(1)
	r.Prompts[0].AIResponse = &line

	doc, err := Render(r, "pdf")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	dir := t.TempDir()
	if err := api.ExtractContent(bytes.NewReader(doc.Data), dir, "report.pdf", nil, nil); err != nil {
		t.Fatalf("extract content: %v", err)
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil || len(files) == 0 {
		t.Fatalf("content files = %v, err = %v", files, err)
	}
	var content []byte
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		content = append(content, data...)
	}

	var gids []byte
	for _, c := range line {
		gid, ok := ttf.Chars[uint32(c)]
		if !ok {
			t.Fatalf("%s has no glyph for %q", unicodeFont, c)
		}
		gids = binary.BigEndian.AppendUint16(gids, gid)
	}
	want, _ := types.Escape(string(gids))
	if !bytes.Contains(content, []byte("("+*want+")")) {
		t.Errorf("page content does not carry every glyph of %q", line)
	}
}

func TestRenderPDFUndrawableText(t *testing.T) {
	line := "Summary: 日本語のテキスト"
	r := sampleReport(1)
	r.Prompts[0].AIResponse = &line

	_, err := Render(r, "pdf")
	if !errors.Is(err, ErrUnencodableText) {
		t.Fatalf("err = %v, want ErrUnencodableText", err)
	}
	if !strings.Contains(err.Error(), "U+65E5") {
		t.Errorf("err = %v, want the offending rune named", err)
	}
}

func TestCheckGlyphs(t *testing.T) {
	_, drawable := selectFont()
	tests := []struct {
		name  string
		lines []string
		ok    bool
	}{
		{"ascii", []string{"plain text", ""}, true},
		{"latin-1 and typographic quotes", []string{"café “fair” — naïve"}, true},
		{"han", []string{"fine", "日本"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkGlyphs(tt.lines, drawable)
			if (err == nil) != tt.ok {
				t.Errorf("checkGlyphs(%q) = %v, want ok=%v", tt.lines, err, tt.ok)
			}
		})
	}
}

func TestDocumentViewFlattensResponses(t *testing.T) {
	v := newDocumentView(sampleReport(1))
	p := v.Prompts[0]

	if strings.Contains(p.Response, "**") {
		t.Errorf("response not flattened: %q", p.Response)
	}
	if p.Exams[0].Answer != "Because of framing." {
		t.Errorf("answer = %q", p.Exams[0].Answer)
	}
	if p.Rewrites[0].Text != "Rewrite\n\nCoverage is fair." {
		t.Errorf("rewrite = %q", p.Rewrites[0].Text)
	}
	if v.Domain != "n/a" {
		t.Errorf("domain = %q, want n/a", v.Domain)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"short", "a b c", 10, []string{"a b c"}},
		{"breaks on spaces", "alpha beta gamma", 10, []string{"alpha beta", "gamma"}},
		{"keeps blank lines", "a\n\nb", 10, []string{"a", "", "b"}},
		{"splits long words", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrap(tt.text, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrap(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	top, bottom := pageTop, pageBottom
	perPage := int((top-bottom)/lineHeight) + 1
	lines := make([]string, perPage+3)
	for i := range lines {
		lines[i] = "line"
	}

	layout := paginate(lines, coreFont)
	if len(layout.Pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(layout.Pages))
	}
	if n := len(layout.Pages["2"].Content.Text); n != 3 {
		t.Errorf("page 2 lines = %d, want 3", n)
	}
	if first := layout.Pages["1"].Content.Text[0]; first.Font.Size != headingSize || first.Pos[1] != pageTop || first.Font.Name != coreFont {
		t.Errorf("first line = %+v", first)
	}
}
