package display

import "github.com/charmbracelet/lipgloss"

// Styles holds every style used to draw the table
type Styles struct {
	Header     lipgloss.Style
	Board      lipgloss.Style
	RedCard    lipgloss.Style
	BlackCard  lipgloss.Style
	HiddenCard lipgloss.Style
	Seat       lipgloss.Style
	Acting     lipgloss.Style
	Human      lipgloss.Style
	Inactive   lipgloss.Style
	Log        lipgloss.Style
	Prompt     lipgloss.Style
	Error      lipgloss.Style
	Info       lipgloss.Style
	Frame      lipgloss.Style
}

// NewStyles builds the styles on r so colour output follows r's profile
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		Board: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#E0E0E0")).
			Bold(true),
		HiddenCard: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Seat: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Acting: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Human: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Inactive: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Log: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		Frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
	}
}
