package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/calc"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
)

// Cursor step sizes as fractions of the scale length.
const (
	followStepFine   = 0.001
	followStepCoarse = 0.01
)

// followModel is the bubbletea model for the interactive cursor: a hairline
// the user slides along the scale while the value under it updates live.
type followModel struct {
	def      *scale.Definition
	position float64 // normalized 0..1
	width    int
}

func newFollowModel(def *scale.Definition) followModel {
	return followModel{def: def, width: 80}
}

func (m followModel) Init() tea.Cmd {
	return nil
}

func (m followModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "left", "h":
			m.position = clamp01(m.position - followStepFine)
		case "right", "l":
			m.position = clamp01(m.position + followStepFine)
		case "shift+left", "H", "pgup":
			m.position = clamp01(m.position - followStepCoarse)
		case "shift+right", "L", "pgdown":
			m.position = clamp01(m.position + followStepCoarse)
		case "home", "g":
			m.position = 0
		case "end", "G":
			m.position = 1
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m followModel) View() string {
	track := m.width - 4
	if track < 20 {
		track = 20
	}
	cursor := int(m.position * float64(track-1))

	var rail strings.Builder
	for i := 0; i < track; i++ {
		if i == cursor {
			rail.WriteString(styleHighlight.Render("▼"))
		} else {
			rail.WriteByte('-')
		}
	}

	value := calc.ValueAt(m.def, m.position)
	lines := []string{
		styleTitle.Render(m.def.Name) + " " + styleDim.Render(m.def.Func.String()),
		"",
		"  " + rail.String(),
		"",
		fmt.Sprintf("  position %s   value %s",
			styleHighlight.Render(fmt.Sprintf("%.4f", m.position)),
			styleValue.Render(strconv.FormatFloat(value, 'g', 8, 64))),
	}
	if m.def.Layout.IsCircular() {
		lines = append(lines, fmt.Sprintf("  angle    %s",
			styleHighlight.Render(fmt.Sprintf("%.2f°", m.position*360))))
	}
	lines = append(lines, "", styleDim.Render("  ←/→ move   shift speeds up   g/G ends   q quit"))
	return strings.Join(lines, "\n")
}

// runFollow starts the cursor TUI and blocks until the user quits.
func runFollow(def *scale.Definition) error {
	_, err := tea.NewProgram(newFollowModel(def)).Run()
	return err
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
