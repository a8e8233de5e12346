package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorError     = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	colorErrorBg   = lipgloss.AdaptiveColor{Light: "#FEF2F2", Dark: "#3B1219"}
	colorTabBg     = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A3E"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	refreshStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1)

	refreshDisabledStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Background(colorTabBg).
				Padding(0, 1)

	updatedStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Background(colorErrorBg).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Background(colorTabBg).
				Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	cardSelectedStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	cardDescStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	cardMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	cardSourceStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	cardLinkStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)
