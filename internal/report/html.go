package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"
)

// HTML renders the report as a standalone HTML page. The body is built as
// CommonMark with table extensions and converted with gomarkdown.
func (r *Report) HTML(precision int) []byte {
	var b strings.Builder
	title := "missflux report"
	if r.Name != "" {
		title = "missflux report: " + r.Name
	}
	b.WriteString("# " + escapeMarkdown(title) + "\n\n")
	b.WriteString(fmt.Sprintf("- Rows: %d (processed %d)\n", r.Rows, r.Processed))
	b.WriteString(fmt.Sprintf("- Columns: %d\n", len(r.Columns)))
	if r.ID != "" {
		b.WriteString(fmt.Sprintf("- Report: `%s`\n", r.ID))
	}
	if len(r.Missing.Columns) > 0 {
		b.WriteString("\n## Missing values\n\n| column | missing | rate |\n|---|---|---|\n")
		for _, c := range r.Missing.Columns {
			b.WriteString(fmt.Sprintf("| %s | %d | %.1f%% |\n", htmlLabel(c.Name), c.Count, c.Rate*100))
		}
	}
	for _, s := range r.Sections {
		b.WriteString("\n## " + strings.ToLower(s.Title) + "\n\n")
		writeTable(&b, s.Table, precision, htmlLabel)
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n## Notes\n\n")
		for _, w := range r.Warnings {
			b.WriteString("- " + escapeMarkdown(w) + "\n")
		}
	}

	p := mdparser.NewWithExtensions(mdparser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		// Raw HTML never comes from missflux itself, only from dataset text.
		Flags: mdhtml.CommonFlags | mdhtml.CompletePage | mdhtml.SkipHTML,
		Title: title,
	})
	return markdown.ToHTML([]byte(b.String()), p, renderer)
}

// mdEscaper backslash-escapes characters that would otherwise start inline
// markup; the renderer then prints them as escaped text.
var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`,
	"<", `\<`, ">", `\>`, "&", `\&`,
)

func escapeMarkdown(s string) string { return mdEscaper.Replace(s) }

func htmlLabel(s string) string { return escapeMarkdown(safeName(s)) }
