package tui

import (
	"strings"

	"headliner/internal/model"
)

var tabLabels = map[string]string{
	model.CategoryKorean: "국내 뉴스",
	model.CategoryTech:   "기술 뉴스",
}

func renderTabs(active int) string {
	var parts []string
	for i, category := range model.Categories {
		style := tabInactiveStyle
		if i == active {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(tabLabels[category]))
	}
	return " " + strings.Join(parts, " ")
}

func tabIndex(category string) int {
	for i, c := range model.Categories {
		if c == category {
			return i
		}
	}
	return 0
}
