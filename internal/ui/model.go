package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sirupsen/logrus"

	"moviegrid/internal/catalog"
	"moviegrid/internal/config"
	"moviegrid/internal/domain"
	"moviegrid/internal/eventbus"
	"moviegrid/internal/favorites"
	"moviegrid/internal/logging"
	"moviegrid/internal/navigation"
	"moviegrid/internal/ui/input"
	inputtypes "moviegrid/internal/ui/input/types"
	"moviegrid/internal/ui/views"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	statusTimeout = 3 * time.Second
)

// Options are the collaborators of the UI model
type Options struct {
	Config    *config.Config
	Catalog   catalog.Catalog
	Favorites *favorites.Store
	Bus       eventbus.EventBus
	Logger    logrus.FieldLogger
}

// detailsState is the open details page
type detailsState struct {
	movie           domain.Movie
	details         domain.MovieDetails
	recommendations []domain.Movie
	loaded          bool
	err             error
}

// contentSection is one grid of the current view
type contentSection struct {
	title  string
	movies []domain.Movie
	// list is the paged list behind the section, empty when it cannot load more
	list listKey
}

// loadAnchor remembers where the first card of a requested page will appear
type loadAnchor struct {
	contentKey string
	section    int
	index      int
}

// Model represents the application state
type Model struct {
	cfg     *config.Config
	catalog catalog.Catalog
	favs    *favorites.Store
	bus     eventbus.EventBus
	log     logrus.FieldLogger
	program *tea.Program

	keys       input.KeyMap
	dispatcher *input.Dispatcher
	input      *input.Handler
	engine     *navigation.Engine
	focus      *FocusRegistry
	frames     *TickScheduler

	zones         *zone.Manager
	contentZones  *zone.Manager // scanned before the viewport clips, so cut cards keep their bounds
	contentMarker *recordingMarker
	chromeMarker  *recordingMarker
	contentView   *views.Renderer
	chromeView    *views.Renderer
	help          help.Model
	spinner       spinner.Model
	spinning      bool

	width   int
	height  int
	columns int

	view     domain.ViewID
	details  *detailsState
	lists    map[listKey]*listState
	query    string
	searchID int

	viewport viewport.Model
	scroller *viewportScroller
	sections []contentSection
	page     navigation.Page[domain.Movie]
	nav      []navigation.Section
	spans    map[string]views.Span
	reveal   *navigation.ElementID
	anchor   *loadAnchor

	header string
	footer string

	tabSeq    int
	status    string
	statusErr bool
	statusSeq int
	inPager   bool
	pending   []tea.Cmd
}

// NewModel creates the UI model and mounts the navigation engine
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := &Model{
		cfg:     cfg,
		catalog: opts.Catalog,
		favs:    opts.Favorites,
		bus:     opts.Bus,
		log:     logger.WithField("component", "ui"),
		keys:    input.DefaultKeyMap(cfg.Navigation.VimKeys),
		input:   input.New(),
		frames:  NewTickScheduler(cfg.Navigation.FrameRate),
		zones:   zone.New(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   defaultWidth,
		height:  defaultHeight,
		view:    domain.ViewHome,
		lists: map[listKey]*listState{
			listPopular: {},
			listAiring:  {},
			listSearch:  {},
		},
		viewport: viewport.New(defaultWidth, defaultHeight),
	}
	m.columns = navigation.ColumnsForWidth(m.width, cfg.Grid.Breakpoints)
	m.scroller = newViewportScroller(&m.viewport)

	m.contentZones = zone.New()
	m.contentMarker = &recordingMarker{mark: m.contentZones.Mark}
	m.chromeMarker = &recordingMarker{mark: m.zones.Mark}
	styles := views.NewStyles(cfg.UI.Theme)
	m.contentView = views.NewRenderer(styles, m.contentMarker)
	m.chromeView = views.NewRenderer(styles, m.chromeMarker)

	hit := &zoneHitTester{layers: []hitLayer{
		{bounds: managerBounds{manager: m.zones}, ids: m.chromeMarker.marked},
		{bounds: managerBounds{manager: m.contentZones}, ids: m.contentMarker.marked, translate: m.toContent},
	}}
	m.dispatcher = input.NewDispatcher(m.keys, hit)

	m.focus = NewFocusRegistry(m.focusable, focusHooks{
		Reveal:  m.onReveal,
		Focused: m.onFocused,
		Blurred: m.onBlurred,
	})
	m.engine = navigation.NewEngine(m.dispatcher, navigation.Options{
		InitialZone:   navigation.ZoneTabs,
		InitialTab:    m.activeTab(),
		ScrollStep:    cfg.Navigation.ScrollStep,
		ScrollEase:    cfg.Navigation.ScrollEase,
		SnapThreshold: cfg.Navigation.SnapThreshold,
		Surface:       m.focus,
		Scheduler:     m.frames,
		Logger:        logger,
	})

	m.syncEngine()
	m.render()
	return m
}

// SetProgram sets the program reference used to hand the terminal to the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Close releases the zone manager and unmounts the engine
func (m *Model) Close() {
	m.engine.Unmount()
	m.zones.Close()
	m.contentZones.Close()
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	m.pending = nil
	return tea.Batch(
		m.loadPage(listPopular, 1),
		m.loadPage(listAiring, 1),
		m.takePending(),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.handle(msg)
	m.syncEngine()
	m.render()

	cmds := append(m.pending, cmd, m.frames.Cmd())
	m.pending = nil
	return m, tea.Batch(cmds...)
}

func (m *Model) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.columns = navigation.ColumnsForWidth(msg.Width, m.cfg.Grid.Breakpoints)
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		m.frames.Fire()
		return nil

	case spinner.TickMsg:
		if !m.anyLoading() {
			m.spinning = false
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case pageLoadedMsg:
		return m.applyPage(msg)

	case detailsLoadedMsg:
		return m.applyDetails(msg)

	case searchDebounceMsg:
		if msg.seq == m.searchID {
			return m.setQuery(msg.query)
		}
		return nil

	case tabFocusMsg:
		if msg.seq != m.tabSeq {
			return nil
		}
		if id, ok := m.focus.Active(); ok && id == navigation.TabID(msg.tab) {
			return m.showTab(msg.tab)
		}
		return nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return nil

	case EventMsg:
		return m.handleEvent(msg.Event)

	case helpPagerMsg:
		m.inPager = false
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			m.log.WithError(msg.err).Warn("help pager failed")
		}
		return nil

	case pauseRenderingMsg:
		m.inPager = true
		return nil

	case resumeRenderingMsg:
		m.inPager = false
		return nil
	}
	return nil
}

// handleKey offers the key to the navigation engine first. Keys the engine
// did not claim go to the input mode.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.inPager {
		return nil
	}
	if ev := m.dispatcher.DispatchKey(msg); ev.DefaultPrevented() {
		return nil
	}
	actions, cmd := m.input.HandleKey(msg, m)
	return tea.Batch(cmd, m.processActions(actions))
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.inPager || msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		notches := 1
		if msg.Button == tea.MouseButtonWheelUp {
			notches = -1
		}
		m.scroller.wheel(m.engine.Scroll(), notches)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	// a click outside the search input blurs it so the engine listens again
	var cmd tea.Cmd
	if m.input.CurrentMode() == inputtypes.ModeSearch {
		var actions []inputtypes.Action
		actions, cmd = m.input.SetMode(inputtypes.ModeNormal, m)
		cmd = tea.Batch(cmd, m.processActions(actions))
		m.syncEngine()
	}

	ev := m.dispatcher.DispatchMouse(msg)
	if ev == nil || ev.Target == nil {
		return cmd
	}
	return tea.Batch(cmd, m.activateTarget(ev.Target))
}

// activateTarget runs the activation of a clicked element
func (m *Model) activateTarget(target navigation.Target) tea.Cmd {
	s, ok := navigation.StateFromClick(target, m.engine.State())
	if !ok {
		return nil
	}
	if s.Zone == navigation.ZoneTabs {
		m.onTabActivate(s.TabIndex)
		return nil
	}
	if section, ok := m.navSection(s.SectionIndex); ok && section.IsFooter(s.ItemIndex) {
		m.onFooterActivate(s.SectionIndex)
		return nil
	}
	m.onItemActivate(s.SectionIndex, s.ItemIndex)
	return nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, true)
	case eventbus.FavoriteToggledEvent:
		if e.Favorite {
			return m.setStatus(fmt.Sprintf("Added %s to favorites", e.Movie.Title), false)
		}
		return m.setStatus(fmt.Sprintf("Removed %s from favorites", e.Movie.Title), false)
	case eventbus.ConfigLoadedEvent:
		m.log.WithField("path", e.Path).Debug("config loaded")
	}
	return nil
}

// processActions executes the actions of the input handler
func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.searchID++
		seq := m.searchID
		delay := time.Duration(m.cfg.Search.DebounceMs) * time.Millisecond
		if delay <= 0 {
			return m.setQuery(a.Text)
		}
		return tea.Tick(delay, func(time.Time) tea.Msg {
			return searchDebounceMsg{seq: seq, query: a.Text}
		})

	case inputtypes.SubmitTextAction:
		m.searchID++
		return m.setQuery(a.Text)

	case inputtypes.CancelTextAction:
		return nil

	case inputtypes.ClearSearchAction:
		m.clearSearch()
		return nil

	case inputtypes.ToggleFavoriteAction:
		return m.toggleFavorite(a.MovieID)

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		return nil

	case inputtypes.ShowPagerHelpAction:
		return m.fetchHelpPager(NewHelpRenderer().RenderHelpContent(m.keys))

	case inputtypes.QuitAction:
		m.log.WithField("force", a.Force).Info("quit requested")
		return tea.Quit
	}
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(content string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	program := m.program
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := NewHelpOps(program).ShowHelpInPager(content)
		program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the model
func (m *Model) View() string {
	if m.inPager {
		return ""
	}
	return m.zones.Scan(m.chromeView.Render(m.header, m.viewport.View(), m.footer))
}

// toContent maps a screen cell to a cell of the unclipped content. Cells
// outside the viewport do not map.
func (m *Model) toContent(x, y int) (int, int, bool) {
	row := y - lipgloss.Height(m.header)
	if row < 0 || row >= m.viewport.Height || x < 0 || x >= m.viewport.Width {
		return 0, 0, false
	}
	return x, row + m.viewport.YOffset, true
}

// contentKey identifies what the content area shows. A change resets the cursor.
func (m *Model) contentKey() string {
	switch {
	case m.details != nil:
		return fmt.Sprintf("%s-%d", domain.ViewDetails, m.details.movie.ID)
	case m.query != "":
		return string(domain.ViewSearch)
	default:
		return string(m.view)
	}
}

// activeTab is the tab whose view is shown
func (m *Model) activeTab() int {
	return m.view.TabIndex()
}

func (m *Model) enabled() bool {
	return m.input.CurrentMode() != inputtypes.ModeSearch && !m.inPager
}

// syncEngine rebuilds the sections of the current view and hands the engine
// its latest props
func (m *Model) syncEngine() {
	m.sections = m.buildSections()

	if m.details != nil {
		m.page = navigation.Page[domain.Movie]{}
		m.nav = []navigation.Section{{ItemCount: 1, Columns: 1}}
	} else {
		m.page = navigation.Page[domain.Movie]{Columns: m.columns}
		for _, s := range m.sections {
			m.page.Items = append(m.page.Items, s.movies)
			m.page.HasFooter = append(m.page.HasFooter, s.list != "" && m.lists[s.list].hasMore())
		}
		m.nav = m.page.Sections()
	}

	active := m.activeTab()
	props := navigation.Props{
		TabCount:       len(domain.TabViews),
		Sections:       m.nav,
		ContentKey:     m.contentKey(),
		ActiveTabIndex: &active,
		Enabled:        m.enabled(),
		Callbacks: navigation.Callbacks{
			OnTabActivate:    m.onTabActivate,
			OnItemActivate:   m.onItemActivate,
			OnFooterActivate: m.onFooterActivate,
			OnEscape:         m.onEscape,
		},
	}
	if m.details != nil {
		props.ScrollTarget = m.scroller
	}
	if !props.Enabled {
		// the search input or the pager holds the terminal's focus
		m.focus.Blur()
	}
	m.engine.Render(props)
}

// buildSections lists the non-empty grids of the current view
func (m *Model) buildSections() []contentSection {
	if m.details != nil {
		return nil
	}

	var all []contentSection
	switch {
	case m.query != "":
		all = []contentSection{{title: fmt.Sprintf("Results for %q", m.query), movies: m.lists[listSearch].movies, list: listSearch}}
	case m.view == domain.ViewHome:
		all = []contentSection{
			{title: domain.ViewPopular.Title(), movies: m.lists[listPopular].preview()},
			{title: domain.ViewAiringNow.Title(), movies: m.lists[listAiring].preview()},
		}
	case m.view == domain.ViewPopular:
		all = []contentSection{{title: domain.ViewPopular.Title(), movies: m.lists[listPopular].movies, list: listPopular}}
	case m.view == domain.ViewAiringNow:
		all = []contentSection{{title: domain.ViewAiringNow.Title(), movies: m.lists[listAiring].movies, list: listAiring}}
	case m.view == domain.ViewFavorites:
		all = []contentSection{{title: domain.ViewFavorites.Title(), movies: m.favorites()}}
	}

	sections := all[:0]
	for _, s := range all {
		if len(s.movies) > 0 {
			sections = append(sections, s)
		}
	}
	return sections
}

func (m *Model) favorites() []domain.Movie {
	if m.favs == nil {
		return nil
	}
	return m.favs.List()
}

func (m *Model) navSection(index int) (navigation.Section, bool) {
	if index < 0 || index >= len(m.nav) {
		return navigation.Section{}, false
	}
	return m.nav[index], true
}

// focusable reports whether id is on screen and can take focus. A footer
// whose page is loading is disabled.
func (m *Model) focusable(id navigation.ElementID) bool {
	if id.Kind == navigation.ElementTab {
		return id.Tab >= 0 && id.Tab < len(domain.TabViews)
	}
	section, ok := m.navSection(id.Section)
	if !ok || id.Item < 0 {
		return false
	}
	if id.Item < section.ItemCount {
		return true
	}
	if !section.IsFooter(id.Item) {
		return false
	}
	list := m.sections[id.Section].list
	return list != "" && !m.lists[list].loading
}

func (m *Model) onReveal(id navigation.ElementID) {
	m.reveal = &id
}

// onFocused starts the auto-switch timer of a focused tab
func (m *Model) onFocused(id navigation.ElementID) {
	delay := time.Duration(m.cfg.Navigation.TabFocusDelayMs) * time.Millisecond
	if id.Kind != navigation.ElementTab || delay <= 0 || id.Tab == m.activeTab() {
		return
	}
	m.tabSeq++
	seq, tab := m.tabSeq, id.Tab
	m.pending = append(m.pending, tea.Tick(delay, func(time.Time) tea.Msg {
		return tabFocusMsg{seq: seq, tab: tab}
	}))
}

// onBlurred cancels a pending tab auto-switch
func (m *Model) onBlurred(id navigation.ElementID) {
	if id.Kind == navigation.ElementTab {
		m.tabSeq++
	}
}

// onTabActivate switches to the tab. Activating the tab already shown goes home.
func (m *Model) onTabActivate(tab int) {
	if tab < 0 || tab >= len(domain.TabViews) {
		return
	}
	if m.details == nil && m.query == "" && tab == m.activeTab() {
		tab = domain.ViewHome.TabIndex()
	}
	m.pending = append(m.pending, m.showTab(tab))
}

func (m *Model) onItemActivate(section, item int) {
	if m.details != nil {
		m.closeDetails()
		return
	}
	m.page.ItemActivator(m.openDetails)(section, item)
}

// onFooterActivate requests the next page of the section's list and anchors
// the first card of that page
func (m *Model) onFooterActivate(section int) {
	if section < 0 || section >= len(m.sections) {
		return
	}
	s := m.sections[section]
	if s.list == "" {
		return
	}
	l := m.lists[s.list]
	if l.loading || !l.hasMore() {
		return
	}
	m.anchor = &loadAnchor{contentKey: m.contentKey(), section: section, index: len(s.movies)}
	m.pending = append(m.pending, m.loadPage(s.list, l.page+1))
}

func (m *Model) onEscape() {
	if m.details != nil {
		m.closeDetails()
	}
}

// showTab shows the view of tab, leaving details and search
func (m *Model) showTab(tab int) tea.Cmd {
	if tab < 0 || tab >= len(domain.TabViews) {
		return nil
	}
	next := domain.TabViews[tab]
	prev := m.view
	m.details = nil
	m.clearSearch()
	m.view = next
	if prev != next {
		m.log.WithFields(logrus.Fields{"from": prev, "to": next}).Debug("view changed")
		m.publish(eventbus.ViewChangedEvent{From: prev, To: next})
	}

	var cmds []tea.Cmd
	for _, key := range []listKey{listPopular, listAiring} {
		if l := m.lists[key]; !l.loaded() && !l.loading {
			cmds = append(cmds, m.loadPage(key, 1))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) openDetails(movie domain.Movie) {
	m.details = &detailsState{movie: movie}
	m.scroller.SetScrollOffset(0)
	m.log.WithField("movie", movie.ID).Debug("details opened")
	m.publish(eventbus.MovieOpenedEvent{MovieID: movie.ID})
	m.pending = append(m.pending, m.loadDetails(movie.ID))
}

func (m *Model) closeDetails() {
	m.details = nil
}

// setQuery replaces the search results with those of query. Queries under the
// minimum length clear the results.
func (m *Model) setQuery(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < m.cfg.Search.MinQueryLength {
		m.query = ""
		m.lists[listSearch] = &listState{}
		return nil
	}
	if query == m.query {
		return nil
	}
	m.query = query
	m.details = nil
	m.lists[listSearch] = &listState{}
	return m.loadPage(listSearch, 1)
}

func (m *Model) clearSearch() {
	m.searchID++
	m.query = ""
	m.lists[listSearch] = &listState{}
	m.input.TextInput().Reset()
}

func (m *Model) applyPage(msg pageLoadedMsg) tea.Cmd {
	if msg.list == listSearch && msg.query != m.query {
		return nil
	}
	l := m.lists[msg.list]
	l.loading = false
	if msg.err != nil {
		l.err = msg.err
		m.anchor = nil
		return m.fail(msg.err, "failed to load movies")
	}
	l.apply(msg.page)

	view := domain.ViewID(msg.list)
	if msg.list == listSearch {
		view = domain.ViewSearch
	}
	m.publish(eventbus.PageLoadedEvent{
		View:       view,
		Page:       msg.page.Page,
		TotalPages: msg.page.TotalPages,
		Count:      len(msg.page.Movies),
	})
	return nil
}

func (m *Model) applyDetails(msg detailsLoadedMsg) tea.Cmd {
	if m.details == nil || m.details.movie.ID != msg.id {
		return nil
	}
	if msg.err != nil {
		m.details.err = msg.err
		return m.fail(msg.err, "failed to load details")
	}
	m.details.details = msg.details
	m.details.recommendations = msg.recommendations
	m.details.loaded = true
	return nil
}

// toggleFavorite flips the favorite state of the movie under the cursor
func (m *Model) toggleFavorite(id int) tea.Cmd {
	movie, ok := m.FocusedMovie()
	if !ok || movie.ID != id || m.favs == nil {
		return nil
	}
	if _, err := m.favs.Toggle(movie); err != nil {
		return m.fail(err, "failed to save favorites")
	}
	return nil
}

// fail logs err, publishes it and shows it in the status line
func (m *Model) fail(err error, message string) tea.Cmd {
	m.log.WithError(err).Warn(message)
	text := fmt.Sprintf("%s: %v", message, err)
	m.publish(eventbus.ErrorEvent{Message: text, Err: err})
	return m.setStatus(text, true)
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// startSpinner schedules the spinner when it is not already running
func (m *Model) startSpinner() {
	if m.spinning {
		return
	}
	m.spinning = true
	m.pending = append(m.pending, m.spinner.Tick)
}

func (m *Model) takePending() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// CurrentView implements inputtypes.Context
func (m *Model) CurrentView() domain.ViewID {
	switch {
	case m.details != nil:
		return domain.ViewDetails
	case m.query != "":
		return domain.ViewSearch
	}
	return m.view
}

// FocusedMovie implements inputtypes.Context
func (m *Model) FocusedMovie() (domain.Movie, bool) {
	if m.details != nil {
		return m.details.movie, true
	}
	s := m.engine.State()
	if s.Zone != navigation.ZoneContent {
		return domain.Movie{}, false
	}
	return m.page.Item(s.SectionIndex, s.ItemIndex)
}

// SearchQuery implements inputtypes.Context
func (m *Model) SearchQuery() string {
	return m.query
}

// render lays out the frame for the current state. Spans are refreshed
// before pending reveals are applied.
func (m *Model) render() {
	m.chromeMarker.reset()
	focus := m.engine.Focus()
	if !m.enabled() {
		focus = navigation.Focus{Tab: -1, Section: -1, Item: -1}
	}

	loading := ""
	if m.anyLoading() {
		loading = m.spinner.View() + " loading"
	}
	search := views.SearchBar{
		Active:  m.input.CurrentMode() == inputtypes.ModeSearch,
		Input:   m.input.TextInput().View(),
		Query:   m.query,
		Results: len(m.lists[listSearch].movies),
	}
	frame := views.Frame{
		Width: m.width,
		Tabs: views.TabBar{
			Titles:  tabTitles(),
			Active:  m.activeTab(),
			Focused: focus.Tab,
		},
		Search:  search,
		Loading: loading,
		Status:  m.status,
		Error:   m.statusErr,
		Help:    m.help.View(m.keys),
	}
	m.header = m.chromeView.Header(frame)
	m.footer = m.chromeView.Footer(frame)
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-lipgloss.Height(m.header)-lipgloss.Height(m.footer))

	m.contentMarker.reset()
	block := m.renderContent(focus)
	m.spans = block.Spans
	m.viewport.SetContent(m.contentZones.Scan(block.Text))

	m.applyAnchor()
	if m.reveal != nil {
		m.revealCenter(m.reveal.String())
		m.reveal = nil
	}
}

func (m *Model) renderContent(focus navigation.Focus) views.Block {
	if m.details != nil {
		page := views.DetailsPage{
			Details:         m.details.details,
			Loaded:          m.details.loaded,
			Recommendations: m.details.recommendations,
			BackFocused:     focus.ItemIn(views.BackSection) == 0,
			Spinner:         m.spinner.View(),
		}
		if m.favs != nil {
			page.Favorite = m.favs.IsFavorite(m.details.movie.ID)
		}
		if m.details.err != nil {
			page.Loaded = true
			page.Details.Movie = m.details.movie
			page.Details.Overview = "Details are not available."
		}
		return m.contentView.RenderDetails(page, m.width)
	}

	if len(m.sections) == 0 {
		return m.contentView.RenderEmpty(m.emptyMessage())
	}

	blocks := make([]views.Block, 0, len(m.sections))
	for i, s := range m.sections {
		cards := make([]views.Card, len(s.movies))
		for j, movie := range s.movies {
			cards[j] = views.Card{Movie: movie, Favorite: m.favs != nil && m.favs.IsFavorite(movie.ID)}
		}
		footer := views.FooterNone
		if section, _ := m.navSection(i); section.HasFooter {
			footer = views.FooterReady
			if m.lists[s.list].loading {
				footer = views.FooterLoading
			}
		}
		blocks = append(blocks, m.contentView.RenderSection(views.GridSection{
			Index:   i,
			Title:   s.title,
			Cards:   cards,
			Columns: m.columns,
			Focused: focus.ItemIn(i),
			Footer:  footer,
			Spinner: m.spinner.View(),
		}, m.width))
	}
	return views.Stack(blocks...)
}

func (m *Model) emptyMessage() string {
	switch {
	case m.anyLoading():
		return "Loading…"
	case m.query != "":
		return fmt.Sprintf("No movies match %q.", m.query)
	case m.view == domain.ViewFavorites:
		return "No favorites yet. Press f on a movie to add it."
	default:
		return "Nothing to show."
	}
}

// applyAnchor scrolls the first card of a freshly loaded page to the top
func (m *Model) applyAnchor() {
	a := m.anchor
	if a == nil {
		return
	}
	if a.contentKey != m.contentKey() {
		m.anchor = nil
		return
	}
	if a.section >= len(m.sections) || len(m.sections[a.section].movies) <= a.index {
		return
	}
	m.anchor = nil
	if span, ok := m.spans[navigation.ItemID(a.section, a.index).String()]; ok {
		m.viewport.SetYOffset(span.Top)
	}
}

// revealCenter scrolls the content so the element sits in the middle
func (m *Model) revealCenter(id string) {
	span, ok := m.spans[id]
	if !ok {
		return
	}
	m.viewport.SetYOffset(span.Top - (m.viewport.Height-span.Height())/2)
}

func tabTitles() []string {
	titles := make([]string, len(domain.TabViews))
	for i, v := range domain.TabViews {
		titles[i] = v.Title()
	}
	return titles
}
