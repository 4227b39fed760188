package interact

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goeye "github.com/jdginn/go-eye-optics/eye"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

const dimmed = "#d0d0d0"

type item struct {
	index  int
	result goeye.TraceResult
	color  string
}

func (i item) Title() string {
	return fmt.Sprintf("ray %d (%s) from %.2f mm", i.index, i.color, i.result.Start.Y)
}

func (i item) Description() string {
	end := i.result.Path.Last()
	return fmt.Sprintf("%s at (%.3f, %.4f), %d points", i.result.Reason, end.X, end.Y, len(i.result.Path))
}

func (i item) FilterValue() string {
	return i.Title()
}

type model struct {
	list     list.Model
	view     *goeye.View
	results  []goeye.TraceResult
	colors   []string
	output   string
	selected int
	err      error
}

func (m model) Init() tea.Cmd {
	return nil
}

// highlight keeps the colour of the selected ray and greys out the others
func highlight(colors []string, selected, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = dimmed
	}
	if selected >= 0 && selected < n {
		out[selected] = goeye.DefaultRayColors[selected%len(goeye.DefaultRayColors)]
		if selected < len(colors) && colors[selected] != "" {
			out[selected] = colors[selected]
		}
	}
	return out
}

func (m *model) render() {
	img, err := m.view.PlotRays(m.results, highlight(m.colors, m.selected, len(m.results)))
	if err == nil {
		err = goeye.SaveImage(m.output, img)
	}
	m.err = err
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if selected, ok := m.list.SelectedItem().(item); ok && selected.index != m.selected {
		m.selected = selected.index
		m.render()
	}
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return docStyle.Render(m.list.View() + "\n" + errStyle.Render(m.err.Error()))
	}
	return docStyle.Render(m.list.View())
}

func newModel(view *goeye.View, results []goeye.TraceResult, colors []string, output string) model {
	items := make([]list.Item, len(results))
	for i, result := range results {
		color := ""
		if i < len(colors) {
			color = colors[i]
		}
		items[i] = item{index: i, result: result, color: color}
	}
	m := model{
		list:     list.New(items, list.NewDefaultDelegate(), 0, 0),
		view:     view,
		results:  results,
		colors:   colors,
		output:   output,
		selected: -1,
	}
	m.list.Title = "Traced rays"
	return m
}

// Interact lists the traced rays in the terminal. Moving through the list redraws output
// with only the selected ray in colour.
func Interact(view *goeye.View, results []goeye.TraceResult, colors []string, output string) error {
	p := tea.NewProgram(newModel(view, results, colors, output), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive browser: %w", err)
	}
	return nil
}
