package ui

import (
	"context"
	"strconv"
	"strings"

	bubblesprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"clipkit/internal/ffmpeg"
	"clipkit/internal/model"
	"clipkit/internal/pipeline"
	"clipkit/internal/progress"
)

type tabID int

const (
	tabCombine tabID = iota
	tabCompress
	tabMusic
	tabTimelapse
	tabInfo
)

type field struct {
	label string
	multi bool // whitespace-separated multi-path field
	input textinput.Model
}

type tabState struct {
	id       tabID
	title    string
	fields   []field
	selected int
}

type Model struct {
	ctx    context.Context
	tools  pipeline.Tools
	runner ffmpeg.Runner
	logger *log.Logger
	styles Styles
	bridge *bridge

	tabs   []tabState
	active int

	// Worker state. busy stays true until the terminal message arrives;
	// a trigger while busy is rejected, never queued.
	busy     bool
	complete bool
	fraction float64
	status   string
	logs     []string

	bar           bubblesprogress.Model
	width, height int
}

func newField(label, initial string, multi bool) field {
	in := textinput.New()
	in.Prompt = ""
	in.SetValue(initial)
	return field{label: label, multi: multi, input: in}
}

// NewModel builds the five-tab model mirroring the CLI operations.
func NewModel(ctx context.Context, tools pipeline.Tools, logger *log.Logger) Model {
	tabs := []tabState{
		{id: tabCombine, title: "Combine", fields: []field{
			newField("Inputs (space separated)", "", true),
			newField("Output Path", "", false),
		}},
		{id: tabCompress, title: "Compress", fields: []field{
			newField("Input Video", "", false),
			newField("Output Path", "", false),
			newField("CRF (0-51, Default: 23)", "23", false),
		}},
		{id: tabMusic, title: "Add Music", fields: []field{
			newField("Video Path", "", false),
			newField("Audio Path", "", false),
			newField("Output Path", "", false),
			newField("Original Volume (0.0-1.0)", "1.0", false),
		}},
		{id: tabTimelapse, title: "Timelapse", fields: []field{
			newField("Input Video", "", false),
			newField("Output Path", "", false),
			newField("Speed Factor", "10.0", false),
		}},
		{id: tabInfo, title: "Info", fields: []field{
			newField("Video Path", "", false),
		}},
	}

	m := Model{
		ctx:    ctx,
		tools:  tools,
		runner: ffmpeg.Runner{Logger: logger},
		logger: logger,
		styles: defaultStyles(),
		bridge: newBridge(),
		tabs:   tabs,
		bar:    bubblesprogress.New(bubblesprogress.WithDefaultGradient(), bubblesprogress.WithWidth(50)),
	}
	m.focusSelected()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.bridge.awaitCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w := msg.Width - 10
		if w > 20 {
			m.bar.Width = w
		}
		return m, nil

	case flushMsg:
		for _, qm := range m.bridge.drain() {
			m.apply(qm)
		}
		return m, m.bridge.awaitCmd()
	}

	var cmd tea.Cmd
	cur := &m.tabs[m.active]
	cur.fields[cur.selected].input, cmd = cur.fields[cur.selected].input.Update(msg)
	return m, cmd
}

// apply mutates UI state from one bridge message. Messages arrive in send
// order; a Done or Error is always last for its invocation.
func (m *Model) apply(msg tea.Msg) {
	switch msg := msg.(type) {
	case workerEventMsg:
		switch e := msg.E.(type) {
		case progress.LogLine:
			if len(m.logs) > 1000 {
				m.logs = m.logs[1:]
			}
			m.logs = append(m.logs, e.Text)
		case progress.Percentage:
			m.fraction = e.Fraction
		}
	case workerDoneMsg:
		// Keep the processing view up until the user acknowledges.
		m.complete = true
		m.fraction = 1.0
		m.status = "Process completed successfully! Press any key to continue."
	case workerErrMsg:
		m.busy = false
		m.status = "Error: " + msg.Message
		m.logs = append(m.logs, "Error: "+msg.Message)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// After completion, any key returns to the form.
	if m.complete {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.complete = false
		m.busy = false
		m.status = ""
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		// An in-flight worker is abandoned, not joined; its process runs
		// to completion on its own.
		return m, tea.Quit
	case "shift+tab":
		m.nextTab()
		return m, m.focusSelected()
	case "tab":
		m.autocomplete()
		return m, nil
	case "ctrl+e":
		m.triggerRun()
		return m, nil
	case "enter", "down":
		m.nextField()
		return m, m.focusSelected()
	case "up":
		m.prevField()
		return m, m.focusSelected()
	}

	var cmd tea.Cmd
	cur := &m.tabs[m.active]
	cur.fields[cur.selected].input, cmd = cur.fields[cur.selected].input.Update(msg)
	return m, cmd
}

func (m *Model) nextTab() {
	m.active = (m.active + 1) % len(m.tabs)
	m.tabs[m.active].selected = 0
	m.status = ""
}

func (m *Model) nextField() {
	t := &m.tabs[m.active]
	t.selected = (t.selected + 1) % len(t.fields)
}

func (m *Model) prevField() {
	t := &m.tabs[m.active]
	t.selected = (t.selected - 1 + len(t.fields)) % len(t.fields)
}

func (m *Model) focusSelected() tea.Cmd {
	var cmd tea.Cmd
	for ti := range m.tabs {
		for fi := range m.tabs[ti].fields {
			in := &m.tabs[ti].fields[fi].input
			if ti == m.active && fi == m.tabs[ti].selected {
				cmd = in.Focus()
			} else {
				in.Blur()
			}
		}
	}
	return cmd
}

func (m *Model) autocomplete() {
	t := &m.tabs[m.active]
	f := &t.fields[t.selected]
	f.input.SetValue(completePath(f.input.Value(), f.multi))
	f.input.CursorEnd()
}

// triggerRun snapshots the active tab's field values and launches a
// worker goroutine. At most one worker runs at a time; outcome arrives
// only via the bridge, never via a join.
func (m *Model) triggerRun() {
	if m.busy {
		m.status = "Already processing..."
		return
	}

	t := m.tabs[m.active]
	vals := make([]string, len(t.fields))
	for i, f := range t.fields {
		vals[i] = strings.TrimSpace(f.input.Value())
	}

	m.busy = true
	m.complete = false
	m.fraction = 0
	m.logs = nil
	m.status = "Starting..."

	go runWorker(m.ctx, m.runner, m.tools, t.id, vals, m.bridge)
}

// runWorker drives one invocation end to end on its own goroutine and
// reports exclusively through the bridge.
func runWorker(ctx context.Context, runner ffmpeg.Runner, tools pipeline.Tools, tab tabID, vals []string, br *bridge) {
	inv, err := buildInvocation(ctx, tab, vals, tools)
	if err != nil {
		br.send(workerErrMsg{Message: err.Error()})
		return
	}
	rep := progress.Func(func(e progress.Event) {
		br.send(workerEventMsg{E: e})
	})
	if err := runner.Run(ctx, inv, rep); err != nil {
		br.send(workerErrMsg{Message: err.Error()})
		return
	}
	br.send(workerDoneMsg{})
}

func buildInvocation(ctx context.Context, tab tabID, vals []string, tools pipeline.Tools) (ffmpeg.Invocation, error) {
	switch tab {
	case tabCombine:
		return pipeline.BuildCombine(model.CombineRequest{
			Inputs: strings.Fields(vals[0]),
			Output: vals[1],
		}, tools)
	case tabCompress:
		crf, err := strconv.Atoi(vals[2])
		if err != nil {
			crf = model.DefaultCRF
		}
		return pipeline.BuildCompress(model.CompressRequest{
			Input:  vals[0],
			Output: vals[1],
			CRF:    crf,
		}, tools)
	case tabMusic:
		return pipeline.BuildMusic(ctx, model.MusicRequest{
			Video:          vals[0],
			Audio:          vals[1],
			Output:         vals[2],
			OriginalVolume: vals[3],
		}, tools)
	case tabTimelapse:
		speed, err := strconv.ParseFloat(vals[2], 64)
		if err != nil {
			speed = model.DefaultTimelapseSpeed
		}
		return pipeline.BuildTimelapse(model.TimelapseRequest{
			Input:  vals[0],
			Output: vals[1],
			Speed:  speed,
		}, tools)
	default:
		return pipeline.BuildInfo(model.InfoRequest{Input: vals[0]}, tools)
	}
}
