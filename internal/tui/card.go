package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"headliner/internal/model"
)

const (
	dateLayout      = "2006. 1. 2."
	metaSeparator   = " • "
	emptyCategory   = "뉴스가 없습니다."
	cardMinWidth    = 20
	cardLinesApprox = 5
	ellipsis        = "..."
)

func formatDate(a model.Article) string {
	t, ok := a.Published()
	if !ok {
		return a.PublishedAt
	}
	return t.Local().Format(dateLayout)
}

// truncateStr cuts s to at most n terminal cells. Wide runes such as Hangul
// count as two cells.
func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	if n <= len(ellipsis) {
		return ansi.Truncate(s, n, "")
	}
	return ansi.Truncate(s, n, ellipsis)
}

func renderCard(a model.Article, selected bool, width int) []string {
	if width < cardMinWidth {
		width = cardMinWidth
	}
	inner := width - 2

	var lines []string
	if selected {
		lines = append(lines, cardSelectedStyle.Render("> "+truncateStr(a.Title, inner)))
	} else {
		lines = append(lines, cardTitleStyle.Render("  "+truncateStr(a.Title, inner)))
	}

	if a.Description != "" {
		lines = append(lines, "  "+cardDescStyle.Render(truncateStr(a.Description, inner)))
	}

	date := truncateStr(formatDate(a)+metaSeparator, inner)
	source := truncateStr(a.SourceName(), inner-lipgloss.Width(date))
	meta := cardMetaStyle.Render(date) + cardSourceStyle.Render(source)
	lines = append(lines, "  "+meta)
	lines = append(lines, "  "+cardLinkStyle.Render(truncateStr(a.URL, inner)))

	return lines
}

// renderList draws the category's cards, keeping the cursor on screen.
func renderList(articles []model.Article, cursor, height, width int) string {
	if len(articles) == 0 {
		return "\n  " + emptyStyle.Render(emptyCategory)
	}

	visible := height / cardLinesApprox
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}

	var lines []string
	for i := start; i < len(articles); i++ {
		card := renderCard(articles[i], i == cursor, width)
		if len(lines) > 0 && len(lines)+len(card)+1 > height {
			break
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, card...)
	}

	return strings.Join(lines, "\n")
}
