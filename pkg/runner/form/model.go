package form

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/field"
	"github.com/irreligious86/Report-UAV/pkg/lists"
	"github.com/irreligious86/Report-UAV/pkg/timeutil"
)

// generatedMsg carries the outcome of a generate run back into Update.
type generatedMsg struct {
	form app.Form
	res  app.GenerateResult
	err  error
}

// listsMsg replaces the option lists after the override changed on disk.
type listsMsg struct{ cfg lists.Config }

// streamsMsg replaces the known stream values.
type streamsMsg struct{ items []string }

// Model is the interactive report form.
type Model struct {
	ctx  context.Context
	svc  *app.Service
	form app.Form
	cfg  lists.Config

	streams    []string
	streamMode field.DisplayMode

	theme   Theme
	inputs  []textinput.Model
	focus   fieldID
	busy    bool
	status  string
	failed  bool
	preview string
	width   int
}

// NewModel builds a form model seeded from f.
func NewModel(ctx context.Context, svc *app.Service, f app.Form, cfg lists.Config, streams []string) Model {
	m := Model{
		ctx:        ctx,
		svc:        svc,
		form:       f,
		cfg:        cfg,
		streams:    streams,
		streamMode: field.Freeform,
		theme:      DefaultTheme(),
		inputs:     make([]textinput.Model, fieldCount),
	}
	for id := fieldID(0); id < fieldCount; id++ {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = id.placeholder()
		in.CharLimit = id.charLimit()
		m.inputs[id] = in
	}
	m.load()
	m.setFocus(fieldCrew)
	return m
}

// load copies the form values into the inputs.
func (m *Model) load() {
	m.inputs[fieldCrew].SetValue(m.form.Crew)
	m.inputs[fieldCounter].SetValue(m.form.Counter)
	if !m.form.Date.IsZero() {
		m.inputs[fieldDate].SetValue(m.form.Date.Format(timeutil.LayoutISO))
	}
	m.inputs[fieldTakeoff].SetValue(m.form.Takeoff)
	m.inputs[fieldImpact].SetValue(m.form.Impact)
	m.inputs[fieldDrone].SetValue(m.form.Drone)
	m.inputs[fieldMission].SetValue(m.form.MissionType)
	m.inputs[fieldEasting].SetValue(m.form.Coords.Easting)
	m.inputs[fieldNorthing].SetValue(m.form.Coords.Northing)
	m.inputs[fieldMgrs].SetValue(m.form.MgrsPrefix)
	m.inputs[fieldAmmo].SetValue(m.form.Ammo)
	m.inputs[fieldStream].SetValue(m.form.Stream)
	m.inputs[fieldResult].SetValue(m.form.Result)
}

// store copies one input value back into the form.
func (m *Model) store(id fieldID) {
	v := m.inputs[id].Value()
	switch id {
	case fieldCrew:
		m.form.Crew = v
	case fieldCounter:
		clean := field.SanitizeCounterInput(v)
		if clean != v {
			m.inputs[id].SetValue(clean)
		}
		m.form.Counter = clean
		// Valid edits, clearing included, are saved right away so the next
		// session starts from them.
		if field.ParseCounter(clean).Valid {
			if _, err := m.svc.SetCounter(clean); err != nil {
				m.svc.Logger.Warn().Err(err).Msg("form: save counter")
			}
		}
	case fieldTakeoff:
		m.form.Takeoff = v
	case fieldImpact:
		m.form.Impact = v
	case fieldDrone:
		m.form.Drone = v
	case fieldMission:
		m.form.MissionType = v
	case fieldMgrs:
		m.form.MgrsPrefix = v
	case fieldAmmo:
		m.form.Ammo = v
	case fieldStream:
		m.form.Stream = v
	case fieldResult:
		m.form.Result = v
	}
}

func (m *Model) mode(id fieldID) field.DisplayMode {
	if c, ok := id.category(); ok {
		return m.form.Mode(c)
	}
	if id == fieldStream {
		return m.streamMode
	}
	return field.Freeform
}

func (m *Model) toggleMode(id fieldID) {
	if c, ok := id.category(); ok {
		m.form.ToggleMode(c)
		return
	}
	if id == fieldStream {
		m.streamMode = m.streamMode.Toggle()
	}
}

func (m *Model) options(id fieldID) []string {
	if c, ok := id.category(); ok {
		return m.cfg.Lists.Get(c)
	}
	if id == fieldStream {
		return m.streams
	}
	return nil
}

// enumerated reports whether id currently shows its option list.
func (m *Model) enumerated(id fieldID) bool {
	return id.listBacked() && m.mode(id) == field.Enumerated && len(m.options(id)) > 0
}

// cycle moves the selection of an enumerated field by delta.
func (m *Model) cycle(id fieldID, delta int) {
	opts := m.options(id)
	if len(opts) == 0 {
		return
	}
	cur := m.inputs[id].Value()
	idx := -1
	for i, o := range opts {
		if o == cur {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta < 0:
		idx = len(opts) - 1
	case idx < 0:
		idx = 0
	default:
		idx = (idx + delta + len(opts)) % len(opts)
	}
	m.inputs[id].SetValue(opts[idx])
	m.store(id)
}

func (m *Model) setFocus(id fieldID) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = id
	if id == fieldEasting {
		m.form.Coords.FocusEasting()
	}
	if !m.enumerated(id) {
		m.inputs[id].Focus()
	}
}

func (m *Model) move(delta int) {
	next := (int(m.focus) + delta + int(fieldCount)) % int(fieldCount)
	m.leave()
	m.setFocus(fieldID(next))
}

// leave normalizes the focused field before focus moves away.
func (m *Model) leave() {
	if m.focus != fieldDate {
		return
	}
	if d, ok, err := m.date(); ok && err == nil {
		m.form.Date = d
	}
}

// date parses the date input, "YYYY-MM-DD" or "DD.MM.YYYY". ok is false when
// the input is blank.
func (m *Model) date() (time.Time, bool, error) {
	raw := strings.TrimSpace(m.inputs[fieldDate].Value())
	if raw == "" {
		return time.Time{}, false, nil
	}
	iso := timeutil.NormalizeReportDate(raw)
	if iso == "" {
		return time.Time{}, true, fmt.Errorf("form: invalid date %q", raw)
	}
	d, err := timeutil.ParseDate(iso, m.svc.Loc())
	return d, true, err
}

// Form returns the current form state.
func (m Model) Form() app.Form {
	return m.form
}

// Status returns the last status line and whether it reports a failure.
func (m Model) Status() (string, bool) {
	return m.status, m.failed
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return m.generated(msg), nil
	case listsMsg:
		m.cfg = msg.cfg
		return m, nil
	case streamsMsg:
		m.streams = msg.items
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.move(1)
			return m, nil
		case "shift+tab", "up":
			m.move(-1)
			return m, nil
		case "ctrl+e":
			if m.focus.listBacked() {
				m.toggleMode(m.focus)
				m.setFocus(m.focus)
			}
			return m, nil
		case "left", "right":
			if m.enumerated(m.focus) {
				delta := 1
				if msg.String() == "left" {
					delta = -1
				}
				m.cycle(m.focus, delta)
				return m, nil
			}
		case "enter":
			return m.submit()
		}
		if m.enumerated(m.focus) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	id := m.focus
	before := m.inputs[id].Value()
	m.inputs[id], cmd = m.inputs[id].Update(msg)
	if m.inputs[id].Value() != before {
		m.changed(id)
	}
	return m, cmd
}

// changed applies the side effects of an edit to the focused input.
func (m *Model) changed(id fieldID) {
	switch id {
	case fieldEasting:
		eff := m.form.Coords.SetEasting(m.inputs[id].Value())
		m.inputs[fieldEasting].SetValue(m.form.Coords.Easting)
		if eff.ClearedNorthing {
			m.inputs[fieldNorthing].SetValue("")
		}
		if eff.AdvanceToNorthing {
			m.setFocus(fieldNorthing)
		}
	case fieldNorthing:
		eff := m.form.Coords.SetNorthing(m.inputs[id].Value())
		m.inputs[fieldNorthing].SetValue(m.form.Coords.Northing)
		if eff.NorthingComplete {
			m.setFocus(fieldNorthing + 1)
		}
	case fieldDate:
	default:
		m.store(id)
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	d, ok, err := m.date()
	if err != nil {
		m.status, m.failed = "Невірна дата.", true
		return m, nil
	}
	if ok {
		m.form.Date = d
	}

	m.busy = true
	m.status, m.failed = "", false
	f := m.form
	ctx, svc := m.ctx, m.svc
	return m, func() tea.Msg {
		res, err := svc.Generate(ctx, &f)
		return generatedMsg{form: f, res: res, err: err}
	}
}

func (m Model) generated(msg generatedMsg) Model {
	m.busy = false
	if msg.err != nil {
		m.failed = true
		if s := app.ValidationStatus(msg.err); s != "" {
			m.status = s
		} else {
			m.status = msg.err.Error()
		}
		return m
	}

	// Only the post-generate resets come back; edits made meanwhile stay.
	m.form.Counter = msg.form.Counter
	m.form.Date = msg.form.Date
	m.inputs[fieldCounter].SetValue(m.form.Counter)
	m.inputs[fieldDate].SetValue(m.form.Date.Format(timeutil.LayoutISO))

	if s := strings.TrimSpace(msg.form.Stream); s != "" && !contains(m.streams, s) {
		m.streams = append(m.streams, s)
	}
	m.preview = msg.res.Report.Text
	m.status = msg.res.Status
	m.failed = msg.res.DeliveryErr != nil
	return m
}

func contains(items []string, v string) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}

func (m Model) View() string {
	var b strings.Builder
	for id := fieldID(0); id < fieldCount; id++ {
		label := m.theme.Field.Label.Render(id.label())
		if id == m.focus {
			label = m.theme.Field.Focused.Render(id.label())
		}
		b.WriteString(label)
		if m.enumerated(id) {
			v := m.inputs[id].Value()
			if id == m.focus {
				v = "‹ " + v + " ›"
			}
			b.WriteString(m.theme.Field.Option.Render(v))
		} else {
			b.WriteString(m.inputs[id].View())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.busy:
		b.WriteString(m.theme.Footer.Busy.Render("..."))
	case m.status != "" && m.failed:
		b.WriteString(m.theme.Footer.Error.Render(m.status))
	case m.status != "":
		b.WriteString(m.theme.Footer.Status.Render(m.status))
	}
	b.WriteString("\n")

	if m.preview != "" {
		preview := m.preview
		if m.width > previewPadding {
			preview = wordwrap.String(preview, m.width-previewPadding)
		}
		b.WriteString(m.theme.Report.Frame.Render(preview))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Footer.Help.Render("tab/↑↓ поле · ←→ варіант · ctrl+e список/текст · enter звіт · esc вихід"))
	b.WriteString("\n")
	return b.String()
}
