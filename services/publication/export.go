// File: services/publication/export.go
package publication

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"

	"praxia/models"
)

// Export formats supported by RenderExport.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatLaTeX    = "latex"
)

// Export renders the publication in the requested format.
func (s *DefaultPublicationService) Export(ctx context.Context, actorID, pubID, format string) (string, error) {
	pub, err := s.authorize(ctx, actorID, pubID)
	if err != nil {
		return "", err
	}
	return RenderExport(pub, format)
}

// RenderExport assembles the document as a single string: title, abstract,
// sections in order, then the numbered reference list. Pure and stateless.
func RenderExport(pub *models.Publication, format string) (string, error) {
	sections := orderedSections(pub.Sections)
	switch format {
	case FormatMarkdown:
		return renderMarkdown(pub, sections), nil
	case FormatHTML:
		return renderHTML(pub, sections), nil
	case FormatLaTeX:
		return renderLaTeX(pub, sections), nil
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
}

func orderedSections(sections []models.Section) []models.Section {
	ordered := make([]models.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})
	return ordered
}

func renderMarkdown(pub *models.Publication, sections []models.Section) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", pub.Title)
	if pub.Abstract != "" {
		fmt.Fprintf(&sb, "\n## Abstract\n\n%s\n", pub.Abstract)
	}
	for _, sec := range sections {
		fmt.Fprintf(&sb, "\n## %s\n\n%s\n", sec.Heading, sec.Body)
	}
	if len(pub.References) > 0 {
		sb.WriteString("\n## References\n\n")
		for i, ref := range pub.References {
			fmt.Fprintf(&sb, "%d. %s", i+1, ref.Citation)
			if ref.URL != "" {
				fmt.Fprintf(&sb, " <%s>", ref.URL)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func renderHTML(pub *models.Publication, sections []models.Section) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<article>\n<h1>%s</h1>\n", html.EscapeString(pub.Title))
	if pub.Abstract != "" {
		fmt.Fprintf(&sb, "<section>\n<h2>Abstract</h2>\n<p>%s</p>\n</section>\n", html.EscapeString(pub.Abstract))
	}
	for _, sec := range sections {
		fmt.Fprintf(&sb, "<section>\n<h2>%s</h2>\n<p>%s</p>\n</section>\n",
			html.EscapeString(sec.Heading), html.EscapeString(sec.Body))
	}
	if len(pub.References) > 0 {
		sb.WriteString("<section>\n<h2>References</h2>\n<ol>\n")
		for _, ref := range pub.References {
			if ref.URL != "" {
				fmt.Fprintf(&sb, "<li>%s <a href=%q>%s</a></li>\n",
					html.EscapeString(ref.Citation), ref.URL, html.EscapeString(ref.URL))
			} else {
				fmt.Fprintf(&sb, "<li>%s</li>\n", html.EscapeString(ref.Citation))
			}
		}
		sb.WriteString("</ol>\n</section>\n")
	}
	sb.WriteString("</article>\n")
	return sb.String()
}

// latexEscaper handles the characters LaTeX treats as syntax.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

func renderLaTeX(pub *models.Publication, sections []models.Section) string {
	var sb strings.Builder
	sb.WriteString("\\documentclass{article}\n")
	fmt.Fprintf(&sb, "\\title{%s}\n", latexEscaper.Replace(pub.Title))
	sb.WriteString("\\begin{document}\n\\maketitle\n")
	if pub.Abstract != "" {
		fmt.Fprintf(&sb, "\\begin{abstract}\n%s\n\\end{abstract}\n", latexEscaper.Replace(pub.Abstract))
	}
	for _, sec := range sections {
		fmt.Fprintf(&sb, "\\section{%s}\n%s\n", latexEscaper.Replace(sec.Heading), latexEscaper.Replace(sec.Body))
	}
	if len(pub.References) > 0 {
		sb.WriteString("\\begin{thebibliography}{99}\n")
		for _, ref := range pub.References {
			fmt.Fprintf(&sb, "\\bibitem{ref%s} %s", ref.ID, latexEscaper.Replace(ref.Citation))
			if ref.URL != "" {
				fmt.Fprintf(&sb, " \\url{%s}", ref.URL)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\\end{thebibliography}\n")
	}
	sb.WriteString("\\end{document}\n")
	return sb.String()
}
