package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cookbook/internal/app"
	"github.com/MKhiriev/go-cookbook/internal/logger"
	"github.com/MKhiriev/go-cookbook/internal/query"
	"github.com/MKhiriev/go-cookbook/internal/service"
	"github.com/MKhiriev/go-cookbook/models"
)

type appModel struct {
	ctx       context.Context
	recipes   service.ClientRecipeService
	sessions  service.ClientSessionService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mode          appMode
	currentScreen screen
	session       models.Session

	login  loginModel
	list   listModel
	detail detailModel
	add    addModel

	status        string
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showStats     bool
	stats         models.Stats
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger, session models.Session) appModel {
	m := appModel{
		ctx:       ctx,
		recipes:   services.RecipeService,
		sessions:  services.SessionService,
		buildInfo: buildInfo,
		logger:    log,
		session:   session,
	}

	if session.LoggedIn {
		return m.enterMode(modeMain)
	}
	return m.enterMode(modeLogin)
}

// enterMode resets the screens owned by mode and shows its first screen.
func (m appModel) enterMode(mode appMode) appModel {
	m.mode = mode
	m.showConfirm = false
	m.showStats = false
	m.pendingDelete = ""

	switch mode {
	case modeLogin:
		username := ""
		if m.session.Username != models.GuestUsername {
			username = m.session.Username
		}
		m.login = newLoginModel(username)
		m.currentScreen = screenLogin
	case modeMain:
		m.list = newListModel()
		m.currentScreen = screenList
	}

	return m
}

// apply moves the model along event and returns the command the new mode
// starts with.
func (m appModel) apply(event appEvent) (appModel, tea.Cmd) {
	next := transition(m.mode, event)
	if next == m.mode {
		return m, nil
	}

	m.logger.Debug().
		Str("func", "appModel.apply").
		Stringer("from", m.mode).
		Stringer("to", next).
		Msg("mode transition")

	m = m.enterMode(next)
	if next == modeMain {
		return m, m.cmdLoadRecipes()
	}
	return m, nil
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdLoadRecipes()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showStats {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showStats = false
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				id := m.pendingDelete
				m.pendingDelete = ""
				return m, m.cmdDeleteRecipe(id)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}

	case authDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorFor(msg.err)
			return m, nil
		}
		m.session = msg.session
		m.status = fmt.Sprintf(app.MsgWelcome, msg.session.Username)
		if msg.event == eventRegistered {
			m.status = app.MsgRegistered
		}
		var cmd tea.Cmd
		m, cmd = m.apply(msg.event)
		return m, tea.Batch(cmd, cmdClearStatus())

	case loggedOutMsg:
		if msg.err != nil {
			m.showErrorFor(msg.err)
			return m, nil
		}
		m.session.LoggedIn = false
		m, _ = m.apply(eventLogout)
		m.login.notice = app.MsgLoggedOut
		m.status = ""
		return m, nil

	case recipesLoadedMsg:
		if msg.err != nil {
			m.list.loading = false
			m.showErrorFor(msg.err)
			return m, nil
		}
		m.list = m.list.setRecipes(msg.recipes)
		return m, nil

	case recipesChangedMsg:
		m.add.submitting = false
		if msg.err != nil {
			m.showErrorFor(msg.err)
			return m, nil
		}
		return m.onRecipesChanged(msg)

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("func", "appModel.Update").Msg("clipboard write failed")
			m.status = app.MsgClipboardUnavailable
		} else {
			m.status = app.MsgIngredientsCopied
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m appModel) onRecipesChanged(msg recipesChangedMsg) (tea.Model, tea.Cmd) {
	m.list = m.list.setRecipes(msg.recipes)
	m.status = msg.status

	switch m.currentScreen {
	case screenAdd:
		m.currentScreen = screenList
	case screenDetail:
		found := false
		for _, r := range msg.recipes {
			if r.ID == m.detail.recipe.ID {
				m.detail.recipe = r
				found = true
				break
			}
		}
		if !found {
			m.currentScreen = screenList
		}
	}

	return m, cmdClearStatus()
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View() + "\n\n" + renderBuildInfoLine(m.buildInfo)
	case screenList:
		body = m.list.View(m.session.Username, m.status)
	case screenDetail:
		body = m.detail.View(m.session.Username, m.status)
	case screenAdd:
		body = m.add.View()
	}

	if m.showStats {
		body += "\n\n" + renderStats(m.stats)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorFor(err error) {
	message := humanizeError(err)
	if message == app.MsgUnexpectedError {
		m.logger.Err(err).Str("func", "appModel.showErrorFor").Msg("unexpected error")
	}
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			m.login.submitting = true
			m.login.notice = ""
			return m, m.cmdLogin(m.login.credentials())
		case key.Matches(keyMsg, keys.register):
			if m.login.submitting {
				return m, nil
			}
			m.login.submitting = true
			m.login.notice = ""
			return m, m.cmdRegister(m.login.credentials())
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.down):
			if m.list.idx < len(m.list.items)-1 {
				m.list.idx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.left):
			m.list = m.list.prevCategory()
			return m, nil
		case key.Matches(keyMsg, keys.right):
			m.list = m.list.nextCategory()
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			m.list.search.SetValue("")
			m.list = m.list.refresh()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			recipe, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.detail.recipe = recipe
			m.currentScreen = screenDetail
			return m, nil
		case key.Matches(keyMsg, keys.newRecipe):
			m.add = newAddModel()
			m.currentScreen = screenAdd
			return m, nil
		case key.Matches(keyMsg, keys.stats):
			if len(m.list.all) == 0 {
				m.status = app.MsgNoRecipesForStats
				return m, cmdClearStatus()
			}
			m.stats = query.Statistics(m.list.all, m.session.Username)
			m.showStats = true
			return m, nil
		case key.Matches(keyMsg, keys.demo):
			return m, m.cmdAddDemoRecipes()
		case key.Matches(keyMsg, keys.logout):
			return m, m.cmdLogout()
		}
	}

	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)
	m.list = m.list.refresh()
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.favorite):
		return m, m.cmdToggleFavorite(m.detail.recipe.ID)
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.recipe.Ingredients)
	case key.Matches(keyMsg, keys.delete):
		if !m.detail.recipe.IsAuthoredBy(m.session.Username) {
			m.showErrorFor(service.ErrNotRecipeAuthor)
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = m.detail.recipe.Title
		m.pendingDelete = m.detail.recipe.ID
	}

	return m, nil
}

func (m appModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.add = m.add.setFocus(m.add.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.add = m.add.setFocus(m.add.focus - 1)
			return m, nil
		case m.add.focus == addFieldCategory && key.Matches(keyMsg, keys.left):
			m.add = m.add.shiftCategory(-1)
			return m, nil
		case m.add.focus == addFieldCategory && key.Matches(keyMsg, keys.right):
			m.add = m.add.shiftCategory(1)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.add.submitting {
				return m, nil
			}
			recipe, err := m.add.toRecipe(m.session.Username)
			if err != nil {
				m.showErrorFor(err)
				return m, nil
			}
			m.add.submitting = true
			return m, m.cmdAddRecipe(recipe)
		}
	}

	var cmd tea.Cmd
	m.add, cmd = m.add.update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		session, err := sessions.Login(ctx, creds)
		return authDoneMsg{session: session, event: eventLoginSucceeded, err: err}
	}
}

func (m appModel) cmdRegister(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		session, err := sessions.Register(ctx, creds)
		return authDoneMsg{session: session, event: eventRegistered, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		return loggedOutMsg{err: sessions.Logout(ctx)}
	}
}

func (m appModel) cmdLoadRecipes() tea.Cmd {
	ctx := m.ctx
	svc := m.recipes
	username := m.session.Username
	return func() tea.Msg {
		recipes, err := svc.Load(ctx, username)
		return recipesLoadedMsg{recipes: recipes, err: err}
	}
}

func (m appModel) cmdAddRecipe(recipe models.Recipe) tea.Cmd {
	ctx := m.ctx
	svc := m.recipes
	return func() tea.Msg {
		if _, err := svc.Create(ctx, recipe); err != nil {
			return recipesChangedMsg{err: err}
		}
		return recipesChangedMsg{recipes: svc.Recipes(), status: app.MsgRecipeAdded}
	}
}

// cmdToggleFavorite works on the recipe id, so the filtered row position is
// never used as a store index.
func (m appModel) cmdToggleFavorite(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.recipes
	return func() tea.Msg {
		recipe, err := svc.ToggleFavoriteByID(ctx, id)
		if err != nil {
			return recipesChangedMsg{err: err}
		}

		status := app.MsgRemovedFromFavorites
		if recipe.IsFavorite {
			status = app.MsgAddedToFavorites
		}
		return recipesChangedMsg{recipes: svc.Recipes(), status: status}
	}
}

func (m appModel) cmdDeleteRecipe(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.recipes
	session := m.session
	return func() tea.Msg {
		if err := svc.DeleteByID(ctx, session, id); err != nil {
			return recipesChangedMsg{err: err}
		}
		return recipesChangedMsg{recipes: svc.Recipes(), status: app.MsgRecipeDeleted}
	}
}

func (m appModel) cmdAddDemoRecipes() tea.Cmd {
	ctx := m.ctx
	svc := m.recipes
	username := m.session.Username
	return func() tea.Msg {
		if err := svc.AddDemoRecipes(ctx, username); err != nil {
			return recipesChangedMsg{err: err}
		}
		return recipesChangedMsg{recipes: svc.Recipes(), status: app.MsgDemoRecipesAdded}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
