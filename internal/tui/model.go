package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifequest/internal/engine"
	"lifequest/internal/storage"
	"lifequest/internal/ui"
)

type boardMode int

const (
	modeList boardMode = iota
	// modeMood is entered right after a completion to collect a mood.
	modeMood
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile    *storage.Profile
	quests     []storage.Quest
	weeklyMood float64

	mode         boardMode
	moodQuestID  string
	selected     int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile    *storage.Profile
	quests     []storage.Quest
	weeklyMood float64
	err        error
}

type cycledMsg struct {
	id  string
	res *engine.CycleResult
	err error
}

type deletedMsg struct {
	id  string
	err error
}

type moodRecordedMsg struct {
	entry *storage.MoodEntry
	err   error
}

// storeChangedMsg arrives from the engine's fan-out whenever observed state
// mutated.
type storeChangedMsg struct{}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Profile(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		quests, err := m.svc.QuestRepo().ListAll(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		engine.SortQuests(quests)
		weekly, err := m.svc.WeeklyMood(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, quests: quests, weeklyMood: weekly}
	}
}

func (m boardModel) cycleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CycleStatus(m.ctx, id)
		return cycledMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.svc.DeleteQuest(m.ctx, id)
		return deletedMsg{id: id, err: err}
	}
}

func (m boardModel) moodCmd(id string, mood engine.Mood) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.svc.RecordMood(m.ctx, id, mood)
		return moodRecordedMsg{entry: entry, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.quests = msg.quests
		m.weeklyMood = msg.weeklyMood
		if m.selected >= len(m.quests) {
			m.selected = max(0, len(m.quests)-1)
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil

	case storeChangedMsg:
		return m, m.loadCmd()

	case cycledMsg:
		if msg.err != nil {
			m.lastLog = "Cycle failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.Completed != nil {
			res := msg.res.Completed
			m.lastLog = fmt.Sprintf("Completed: +%d EXP (level %d → %d, streak %d)",
				res.ExpAwarded, res.LevelBefore, res.LevelAfter, res.CurrentStreak)
			if res.LevelUp {
				m.lastLog += " " + ui.BadgeLevelUp
			}
			m.mode = modeMood
			m.moodQuestID = msg.id
		} else {
			m.lastLog = "Quest is now " + msg.res.Quest.Status + "."
		}
		return m, m.loadCmd()

	case deletedMsg:
		if msg.err != nil {
			m.lastLog = "Delete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = "Quest deleted."
		return m, m.loadCmd()

	case moodRecordedMsg:
		if msg.err != nil {
			m.lastLog = "Mood failed: " + msg.err.Error()
			return m, nil
		}
		if msg.entry != nil {
			m.lastLog = "Mood recorded: " + msg.entry.Mood
		}
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.mode == modeMood {
			return m.updateMoodKeys(msg)
		}
		return m.updateListKeys(msg)
	}
	return m, nil
}

func (m boardModel) updateListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.quests)-1 {
			m.selected++
		}
		return m, nil
	case "enter", " ":
		if q := m.selectedQuest(); q != nil {
			return m, m.cycleCmd(q.ID)
		}
		return m, nil
	case "d":
		if q := m.selectedQuest(); q != nil {
			return m, m.deleteCmd(q.ID)
		}
		return m, nil
	}
	return m, nil
}

func (m boardModel) updateMoodKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" || key == "q" {
		m.mode = modeList
		m.lastLog = "Mood skipped."
		return m, nil
	}
	if n, err := strconv.Atoi(key); err == nil {
		moods := engine.Moods()
		if n >= 1 && n <= len(moods) {
			id := m.moodQuestID
			m.mode = modeList
			m.moodQuestID = ""
			return m, m.moodCmd(id, moods[n-1])
		}
	}
	return m, nil
}

func (m boardModel) selectedQuest() *storage.Quest {
	if m.selected < 0 || m.selected >= len(m.quests) {
		return nil
	}
	return &m.quests[m.selected]
}

func (m boardModel) View() string {
	if m.loading && m.profile == nil {
		return "Loading…\n"
	}
	if m.err != nil && m.profile == nil {
		return ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.mode == modeMood {
		b.WriteString(m.moodView())
	} else {
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog))
	b.WriteString("\n")
	if m.mode == modeMood {
		b.WriteString(ui.Muted.Render("1-8 pick mood · esc skip"))
	} else {
		b.WriteString(ui.Muted.Render("j/k move · enter cycle · d delete · r refresh · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m boardModel) headerView() string {
	p := m.profile
	info := engine.LevelProgress(p.EXP)
	counts := engine.CountQuests(m.quests)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n",
		ui.Heading(ui.IconSparkle, "LifeQuest"),
		ui.Muted.Render(fmt.Sprintf("%d quests · %d done", counts.Total, counts.Completed)))
	fmt.Fprintf(&b, "%s %d  %s %s  %s\n",
		ui.Key.Render("Level"), info.Level,
		ui.ProgressBar(20, info.Progress),
		ui.Muted.Render(fmt.Sprintf("%d EXP (%d to next)", info.EXP, info.ExpToNext)),
		ui.Warn.Render(fmt.Sprintf("%s %d day streak", ui.IconStreak, p.CurrentStreak)))
	if m.weeklyMood > 0 {
		fmt.Fprintf(&b, "%s %.1f/5 weekly mood\n", ui.IconMood, m.weeklyMood)
	}
	return ui.Panel.Render(b.String())
}

func (m boardModel) listView() string {
	if len(m.quests) == 0 {
		return ui.Muted.Render("No quests yet. Add one with: lq add")
	}

	var b strings.Builder
	for i, q := range m.quests {
		row := fmt.Sprintf("%s %-28s %s %s %s",
			statusIcon(q.Status),
			truncate(q.Title, 28),
			ui.StatusText(q.Status),
			ui.PriorityText(q.Priority),
			ui.Muted.Render(fmt.Sprintf("%d EXP · %s", q.EXP, q.Category)))
		if q.Mood != nil {
			row += " " + *q.Mood
		}
		if i == m.selected {
			row = ui.SelectedRow.Render("▸ " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m boardModel) moodView() string {
	var b strings.Builder
	b.WriteString(ui.H2.Render("How did that quest feel?"))
	b.WriteString("\n\n")
	for i, mood := range engine.Moods() {
		fmt.Fprintf(&b, "  %d %s", i+1, mood)
	}
	b.WriteString("\n")
	return b.String()
}

func statusIcon(status string) string {
	switch engine.Status(status) {
	case engine.StatusCompleted:
		return ui.IconDone
	case engine.StatusInProgress:
		return ui.IconBolt
	default:
		return ui.IconQuest
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
