package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles for the application
type Styles struct {
	Colors Colors

	// Window chrome
	WindowFocused   lipgloss.Style
	WindowUnfocused lipgloss.Style
	WindowTitle     lipgloss.Style
	WindowTitleDim  lipgloss.Style
	ButtonMinimize  lipgloss.Style
	ButtonClose     lipgloss.Style

	// Desktop chrome
	Desktop       lipgloss.Style
	TopBar        lipgloss.Style
	Brand         lipgloss.Style
	Taskbar       lipgloss.Style
	TaskbarItem   lipgloss.Style
	TaskbarActive lipgloss.Style
	TaskbarOpen   lipgloss.Style

	// Transcripts
	Prompt      lipgloss.Style
	Input       lipgloss.Style
	Output      lipgloss.Style
	Banner      lipgloss.Style
	UserBubble  lipgloss.Style
	ModelBubble lipgloss.Style
	Source      lipgloss.Style
	Busy        lipgloss.Style

	// Lists
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	Folder           lipgloss.Style

	// Log levels
	LogInfo   lipgloss.Style
	LogWarn   lipgloss.Style
	LogError  lipgloss.Style
	LogSystem lipgloss.Style

	// Modal
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	// General
	Muted  lipgloss.Style
	Bold   lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles creates a new Styles instance with the given colors
func NewStyles(c Colors) Styles {
	return Styles{
		Colors: c,

		WindowFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderFocused),
		WindowUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderUnfocused),
		WindowTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Text),
		WindowTitleDim: lipgloss.NewStyle().
			Foreground(c.Muted),
		ButtonMinimize: lipgloss.NewStyle().
			Foreground(c.Warn),
		ButtonClose: lipgloss.NewStyle().
			Foreground(c.Error),

		Desktop: lipgloss.NewStyle().
			Background(c.Desktop),
		TopBar: lipgloss.NewStyle().
			Background(c.Bar).
			Foreground(c.Muted),
		Brand: lipgloss.NewStyle().
			Background(c.Bar).
			Foreground(c.Text).
			Bold(true),
		Taskbar: lipgloss.NewStyle().
			Background(c.Bar).
			Foreground(c.Muted),
		TaskbarItem: lipgloss.NewStyle().
			Background(c.Bar).
			Foreground(c.Muted).
			Padding(0, 1),
		TaskbarActive: lipgloss.NewStyle().
			Background(c.BorderUnfocused).
			Foreground(c.Text).
			Underline(true).
			Padding(0, 1),
		TaskbarOpen: lipgloss.NewStyle().
			Background(c.Bar).
			Foreground(c.Accent),

		Prompt: lipgloss.NewStyle().
			Foreground(c.Accent),
		Input: lipgloss.NewStyle().
			Foreground(c.Secondary),
		Output: lipgloss.NewStyle().
			Foreground(c.Text),
		Banner: lipgloss.NewStyle().
			Foreground(c.Accent),
		UserBubble: lipgloss.NewStyle().
			Foreground(c.Secondary).
			Bold(true),
		ModelBubble: lipgloss.NewStyle().
			Foreground(c.Text),
		Source: lipgloss.NewStyle().
			Foreground(c.Secondary).
			Underline(true),
		Busy: lipgloss.NewStyle().
			Foreground(c.Accent),

		ListItem: lipgloss.NewStyle().
			Foreground(c.Text),
		ListItemSelected: lipgloss.NewStyle().
			Foreground(c.Secondary).
			Bold(true),
		Folder: lipgloss.NewStyle().
			Foreground(c.Secondary),

		LogInfo: lipgloss.NewStyle().
			Foreground(c.Text),
		LogWarn: lipgloss.NewStyle().
			Foreground(c.Warn),
		LogError: lipgloss.NewStyle().
			Foreground(c.Error),
		LogSystem: lipgloss.NewStyle().
			Foreground(c.Accent),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Secondary).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Secondary).
			MarginBottom(1),

		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),
		Bold: lipgloss.NewStyle().
			Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(c.Accent),
		Error: lipgloss.NewStyle().
			Foreground(c.Error).
			Bold(true),
	}
}

// DefaultStyles returns styles with the default color palette
var DefaultStyles = NewStyles(DefaultColors)

// Title-row buttons drawn at the right end of every window, minimize first
const (
	MinimizeButton = "[_]"
	CloseButton    = "[x]"
)
