package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/timegraph/internal/backend"
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/data/dispatcher"
	"github.com/atomicstack/timegraph/internal/session"
	"github.com/atomicstack/timegraph/internal/state"
	"github.com/atomicstack/timegraph/internal/theme"
	"github.com/atomicstack/timegraph/internal/timegraph"
	"github.com/atomicstack/timegraph/internal/ui/command"
	uistate "github.com/atomicstack/timegraph/internal/ui/state"
)

type Mode int

const (
	ModeTimeline Mode = iota
	ModeFilter
)

// rows taken by the header above the canvas and the status line below it
const (
	headerRows = 1
	footerRows = 1
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the timeline viewer.
type Model struct {
	session    *session.Session
	captures   state.CaptureStore
	selection  state.SelectionStore
	dispatcher *dispatcher.Dispatcher
	backend    *backend.Watcher
	provider   capture.Provider
	bus        *command.Bus

	list   *uistate.List
	filter textinput.Model
	mode   Mode

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	mouseX  int
	mouseY  int
	hovered bool

	errMsg         string
	infoMsg        string
	infoExpire     time.Time
	backendLastErr string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the viewer. A zero width or height follows the
// terminal size. The watcher and provider may be nil in tests.
func NewModel(layout timegraph.Layout, width, height int, watcher *backend.Watcher, provider capture.Provider, filter string) *Model {
	captures := state.NewCaptureStore()
	selection := state.NewSelectionStore()
	m := &Model{
		session:    session.New(layout, selection),
		captures:   captures,
		selection:  selection,
		dispatcher: dispatcher.New(captures, selection),
		backend:    watcher,
		provider:   provider,
		bus:        command.New(),
		list:       uistate.NewList(nil),
		mode:       ModeTimeline,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.resizeSession()

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter tracks"
	ti.CharLimit = 128
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.FilterText != nil {
		ti.TextStyle = *styles.FilterText
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	// blink ticks are never routed back to the input
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(filter)
	m.filter = ti
	if filter != "" {
		m.applyFilter(filter)
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == ModeFilter {
		if handled, cmd := m.handleFilterInput(msg); handled {
			return m, cmd
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(captureLoadedMsg{}):  m.handleCaptureLoadedMsg,
		reflect.TypeOf(actionResultMsg{}):   m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Session exposes the capture view driven by the model.
func (m *Model) Session() *session.Session { return m.session }

// Selection exposes the selection store shared with the tracks.
func (m *Model) Selection() state.SelectionStore { return m.selection }

// Close releases the session.
func (m *Model) Close() {
	m.session.Close()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.resizeSession()
	return nil
}

func (m *Model) resizeSession() {
	m.session.Resize(m.width, m.canvasHeight())
	m.filter.Width = max(m.width-4, 0)
}

func (m *Model) canvasHeight() int {
	return max(m.height-headerRows-footerRows, 0)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func (m *Model) clearMessages() {
	m.errMsg = ""
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}
