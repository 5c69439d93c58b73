// mb-explore — интерактивный TUI для поиска артистов в MusicBrainz.
//
// Вводишь поисковый запрос, получаешь список артистов, стрелками выбираешь
// и видишь карточку с деталями. Esc очищает результаты, Ctrl+C выходит.
//
// Использование:
//
//	go run cmd/mb-explore/main.go
//
// Конфигурация:
//
//	config.yaml из текущей директории (опционально, иначе дефолты)
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/ilkoid/musicbrainz-go/pkg/config"
	"github.com/ilkoid/musicbrainz-go/pkg/lucene"
	"github.com/ilkoid/musicbrainz-go/pkg/mb"
	"github.com/ilkoid/musicbrainz-go/pkg/utils"
)

// Version — версия утилиты (заполняется при сборке)
var Version = "dev"

const searchLimit = 15

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	detailStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// searchDoneMsg — результат фонового поиска.
type searchDoneMsg struct {
	result mb.SearchResult[mb.Artist]
	err    error
}

type model struct {
	client *mb.Client

	input   textinput.Model
	spin    spinner.Model
	width   int
	height  int
	loading bool

	artists  []mb.Artist
	count    int
	selected int
	errMsg   string
}

func newModel(client *mb.Client) model {
	ti := textinput.New()
	ti.Placeholder = "имя артиста..."
	ti.Prompt = "search> "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		client: client,
		input:  ti,
		spin:   sp,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// searchCmd запускает поиск в фоне, чтобы не блокировать UI loop.
func (m model) searchCmd(query string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		expr := lucene.NewQuery().Field("artist", query).Build()
		result, err := client.SearchArtists(expr).Limit(searchLimit).Execute(ctx)
		return searchDoneMsg{result: result, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = mb.ClassifyError(msg.err).HumanMessage()
			utils.Error("Search failed", "error", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.artists = msg.result.Entities
		m.count = msg.result.Count
		m.selected = 0
		utils.Info("Search completed", "count", msg.result.Count, "shown", len(msg.result.Entities))
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEsc:
			m.artists = nil
			m.count = 0
			m.errMsg = ""
			return m, nil

		case tea.KeyEnter:
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.loading {
				return m, nil
			}
			m.loading = true
			m.errMsg = ""
			utils.Info("Search started", "query", query)
			return m, tea.Batch(m.spin.Tick, m.searchCmd(query))

		case tea.KeyUp:
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case tea.KeyDown:
			if m.selected < len(m.artists)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("MusicBrainz Explorer"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spin.View() + " searching...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	case len(m.artists) > 0:
		b.WriteString(statusStyle.Render(fmt.Sprintf("найдено %d, показано %d", m.count, len(m.artists))))
		b.WriteString("\n")
		for i, artist := range m.artists {
			line := artistLine(artist)
			if i == m.selected {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
		b.WriteString(m.detailView())
	default:
		b.WriteString(statusStyle.Render("Enter — поиск, Esc — очистить, Ctrl+C — выход"))
	}

	return b.String()
}

// detailView рисует карточку выбранного артиста.
func (m model) detailView() string {
	if m.selected >= len(m.artists) {
		return ""
	}
	artist := m.artists[m.selected]

	var lines []string
	lines = append(lines, titleStyle.Render(artist.Name))
	lines = append(lines, "MBID: "+artist.ID)
	if artist.Type != "" {
		lines = append(lines, "Тип: "+artist.Type)
	}
	if artist.Country != "" {
		lines = append(lines, "Страна: "+artist.Country)
	}
	if artist.LifeSpan != nil && artist.LifeSpan.Begin != "" {
		span := artist.LifeSpan.Begin
		if artist.LifeSpan.End != "" {
			span += " — " + artist.LifeSpan.End
		}
		lines = append(lines, "Годы: "+span)
	}
	if artist.Disambiguation != "" {
		lines = append(lines, artist.Disambiguation)
	}

	width := m.width - 4
	if width < 20 {
		width = 60
	}
	return detailStyle.Render(wordwrap.String(strings.Join(lines, "\n"), width))
}

// artistLine форматирует строку списка результатов.
func artistLine(artist mb.Artist) string {
	line := "  " + artist.Name
	if artist.Disambiguation != "" {
		line += " (" + artist.Disambiguation + ")"
	}
	if artist.Country != "" {
		line += " [" + artist.Country + "]"
	}
	return line
}

func main() {
	if err := utils.InitLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logger: %v\n", err)
	}
	defer utils.Close()

	utils.Info("Starting mb-explore", "version", Version)

	client := mb.New()
	if cfg, err := config.Load("config.yaml"); err == nil {
		client, err = mb.NewFromConfig(cfg.MB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating client from config: %v\n", err)
			os.Exit(1)
		}
		utils.Info("Config loaded", "path", "config.yaml")
	}

	program := tea.NewProgram(newModel(client), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		utils.Error("TUI crashed", "error", err)
		os.Exit(1)
	}
}
