package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"headliner/internal/browser"
	"headliner/internal/model"
)

const (
	title           = "Headliner"
	refreshLabel    = "새로고침"
	updatedLabel    = "마지막 업데이트: "
	updatedLayout   = "2006-01-02 15:04:05"
	fallbackMessage = "Failed to fetch news"
)

type loadState int

const (
	stateInitial loadState = iota
	stateLoading
	stateReady
	stateFailed
)

func (s loadState) String() string {
	switch s {
	case stateLoading:
		return "loading"
	case stateReady:
		return "ready"
	case stateFailed:
		return "failed"
	}
	return "initial"
}

type NewsFetcher interface {
	Fetch(ctx context.Context) (model.NewsData, error)
}

type App struct {
	fetcher NewsFetcher
	timeout time.Duration
	now     func() time.Time
	open    func(string) error

	data        model.NewsData
	state       loadState
	errMsg      string
	notice      string
	lastUpdated time.Time

	tab     int
	cursors [2]int

	spinner spinner.Model
	width   int
	height  int
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Fetcher    NewsFetcher
	Timeout    time.Duration
	DefaultTab string
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		fetcher: opts.Fetcher,
		timeout: opts.Timeout,
		now:     time.Now,
		open:    browser.Open,
		tab:     tabIndex(opts.DefaultTab),
		spinner: sp,
		data:    model.NewsData{Korean: []model.Article{}, Tech: []model.Article{}},
	}
}

// Init starts the first load as soon as the program is mounted.
func (a *App) Init() tea.Cmd {
	return a.refresh()
}

// refresh enters the loading state. It is a no-op while a load is already running.
func (a *App) refresh() tea.Cmd {
	if a.state == stateLoading {
		return nil
	}
	a.state = stateLoading
	a.errMsg = ""
	return tea.Batch(a.fetchCmd(), a.spinner.Tick)
}

func (a *App) fetchCmd() tea.Cmd {
	fetcher := a.fetcher
	timeout := a.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		data, err := fetcher.Fetch(ctx)
		if err != nil {
			slog.Error("error fetching news", "error", err)
			return newsErrMsg{err: err}
		}
		return newsLoadedMsg{data: data}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		a.notice = ""
		return a.handleKey(msg)

	case newsLoadedMsg:
		a.data = msg.data
		a.lastUpdated = a.now()
		a.state = stateReady
		a.clampCursors()
		return a, nil

	case newsErrMsg:
		a.state = stateFailed
		a.errMsg = fallbackMessage
		if msg.err != nil {
			a.errMsg = msg.err.Error()
		}
		return a, nil

	case openErrMsg:
		a.notice = msg.err.Error()
		return a, nil

	case spinner.TickMsg:
		if a.state == stateLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "r":
		return a, a.refresh()
	case "tab", "right", "l":
		a.tab = (a.tab + 1) % len(model.Categories)
		return a, nil
	case "shift+tab", "left", "h":
		a.tab = (a.tab + len(model.Categories) - 1) % len(model.Categories)
		return a, nil
	case "1":
		a.tab = 0
		return a, nil
	case "2":
		a.tab = 1
		return a, nil
	case "j", "down":
		if a.cursors[a.tab] < len(a.articles())-1 {
			a.cursors[a.tab]++
		}
		return a, nil
	case "k", "up":
		if a.cursors[a.tab] > 0 {
			a.cursors[a.tab]--
		}
		return a, nil
	case "o", "enter":
		if article, ok := a.selected(); ok {
			return a, a.openCmd(article.URL)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) openCmd(url string) tea.Cmd {
	open := a.open
	return func() tea.Msg {
		if err := open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) category() string {
	return model.Categories[a.tab]
}

func (a *App) articles() []model.Article {
	return a.data.Category(a.category())
}

func (a *App) selected() (model.Article, bool) {
	articles := a.articles()
	cursor := a.cursors[a.tab]
	if cursor < 0 || cursor >= len(articles) {
		return model.Article{}, false
	}
	return articles[cursor], true
}

func (a *App) clampCursors() {
	for i, category := range model.Categories {
		n := len(a.data.Category(category))
		if a.cursors[i] >= n {
			a.cursors[i] = max(0, n-1)
		}
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  headliner")
	}

	var sections []string
	sections = append(sections, a.renderHeader())

	if !a.lastUpdated.IsZero() {
		sections = append(sections, updatedStyle.Render(updatedLabel+a.lastUpdated.Format(updatedLayout)))
	}

	if a.errMsg != "" {
		sections = append(sections, " "+errorStyle.Render(truncateStr(a.errMsg, a.width-3)))
	}

	sections = append(sections, "", renderTabs(a.tab), "")

	used := 0
	for _, s := range sections {
		used += strings.Count(s, "\n") + 1
	}
	listHeight := a.height - used - 1
	if listHeight < cardLinesApprox {
		listHeight = cardLinesApprox
	}

	sections = append(sections, renderList(a.articles(), a.cursors[a.tab], listHeight, a.width-2))

	body := strings.Join(sections, "\n")
	lines := strings.Split(body, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if a.height > 1 && len(lines) > a.height-1 {
		lines = lines[:a.height-1]
	}

	return strings.Join(lines, "\n") + "\n" + a.renderStatusBar()
}

func (a *App) renderHeader() string {
	left := headerStyle.Render(title)

	var right string
	if a.state == stateLoading {
		right = a.spinner.View() + " " + refreshDisabledStyle.Render(refreshLabel)
	} else {
		right = refreshStyle.Render("r " + refreshLabel)
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (a *App) renderStatusBar() string {
	left := fmt.Sprintf(" %d articles · %s", len(a.articles()), a.state)
	if a.notice != "" {
		left = " " + a.notice
	}
	right := " tab switch  j/k move  o open  r refresh  q quit "

	// padding takes one cell on each side
	inner := a.width - statusBarStyle.GetHorizontalPadding()
	left = truncateStr(left, inner)

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		right = ""
		gap = inner - lipgloss.Width(left)
	}

	return statusBarStyle.Width(a.width).Render(left + strings.Repeat(" ", gap) + right)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
