package tui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secret-share/internal/archive"
	"github.com/MKhiriev/go-secret-share/internal/lifecycle"
	"github.com/MKhiriev/go-secret-share/internal/service"
	"github.com/MKhiriev/go-secret-share/internal/validators"
	"github.com/MKhiriev/go-secret-share/models"
)

type createField int

const (
	fieldText createField = iota
	fieldTitle
	fieldFiles
	fieldPassword
	fieldTTL
	fieldMaxViews
	fieldAllowedIP
	fieldPreventBurn
	fieldCount
)

// CreateModel is the form page. It keeps a lifecycle.State and feeds it
// every event; the runner's completion events arrive as tea messages.
type CreateModel struct {
	ctx         context.Context
	runner      lifecycleRunner
	origin      string
	genPassword func() (string, error)

	state lifecycle.State

	text      textarea.Model
	title     textinput.Model
	files     textinput.Model
	password  textinput.Model
	maxViews  textinput.Model
	allowedIP textinput.Model

	ttlIdx      int
	preventBurn bool
	focus       createField

	spinner     spinner.Model
	separateKey bool
	confirmBurn bool
}

func NewCreateModel(ctx context.Context, runner lifecycleRunner, origin string, authenticated bool, genPassword func() (string, error)) CreateModel {
	m := CreateModel{
		ctx:         ctx,
		runner:      runner,
		origin:      origin,
		genPassword: genPassword,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.resetForm(lifecycle.NewState(authenticated))
	return m
}

func (m *CreateModel) resetForm(state lifecycle.State) {
	m.state = state

	m.text = textarea.New()
	m.text.Placeholder = "Secret text"
	m.text.ShowLineNumbers = false
	m.text.SetHeight(5)
	m.text.SetWidth(60)

	m.title = newInput("Title (optional)", 0)
	m.files = newInput("path/to/file, other/file", 0)
	m.password = newInput("Password", 28)
	m.password.EchoMode = textinput.EchoPassword
	m.maxViews = newInput("1", 4)
	m.maxViews.SetValue(strconv.Itoa(state.Form.Policy.MaxViews))
	m.allowedIP = newInput("1.2.3.4 or 10.0.0.0/8 (optional)", 64)

	m.ttlIdx = 0
	for i, o := range state.TTLOptions() {
		if o.Seconds == state.Form.Policy.TTL {
			m.ttlIdx = i
		}
	}
	m.preventBurn = state.Form.Policy.PreventBurn
	m.separateKey = false
	m.confirmBurn = false
	m.setFocus(fieldText)
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	if limit > 0 {
		in.CharLimit = limit
	}
	return in
}

func (m CreateModel) Init() tea.Cmd {
	return textarea.Blink
}

// State exposes the lifecycle state for tests.
func (m CreateModel) State() lifecycle.State {
	return m.state
}

func (m CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lifecycle.SubmitSucceeded, lifecycle.SubmitFailed:
		m.state = lifecycle.Reduce(m.state, msg.(lifecycle.Event))
		return m, nil

	case lifecycle.BurnCompleted:
		next := lifecycle.Reduce(m.state, msg)
		if next.Phase == lifecycle.Idle {
			m.resetForm(next)
		}
		return m, nil

	case passwordGeneratedMsg:
		if msg.err != nil {
			m.state.Feedback = service.NewFeedback(msg.err)
			return m, nil
		}
		m.state = lifecycle.Reduce(m.state, lifecycle.PasswordToggled{Enabled: true, Generated: msg.password})
		m.password.SetValue(m.state.Form.Password)
		return m, nil

	case spinner.TickMsg:
		if m.state.Phase != lifecycle.Submitting && m.state.Phase != lifecycle.Burned {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.state.Phase {
		case lifecycle.Idle:
			return m.updateForm(msg)
		case lifecycle.Revealed:
			return m.updateRevealed(msg)
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m CreateModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.password):
		if m.state.PasswordEnabled {
			m.state = lifecycle.Reduce(m.state, lifecycle.PasswordToggled{Enabled: false})
			m.password.Reset()
			if m.focus == fieldPassword {
				m.setFocus(fieldTTL)
			}
			return m, nil
		}
		gen := m.genPassword
		return m, func() tea.Msg {
			pw, err := gen()
			return passwordGeneratedMsg{password: pw, err: err}
		}
	case key.Matches(msg, keys.reset):
		m.resetForm(lifecycle.Reduce(m.state, lifecycle.CreateNewRequested{}))
		return m, nil
	case key.Matches(msg, keys.history):
		return m, navigate(pageHistory)
	case key.Matches(msg, keys.tab):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.moveFocus(-1)
		return m, nil
	}

	switch m.focus {
	case fieldTTL:
		opts := m.state.TTLOptions()
		switch {
		case key.Matches(msg, keys.left) && m.ttlIdx > 0:
			m.ttlIdx--
		case key.Matches(msg, keys.right) && m.ttlIdx < len(opts)-1:
			m.ttlIdx++
		}
		return m, nil
	case fieldPreventBurn:
		if key.Matches(msg, keys.toggle) {
			m.preventBurn = !m.preventBurn
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m CreateModel) updateRevealed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmBurn {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmBurn = false
			m.state = lifecycle.Reduce(m.state, lifecycle.BurnRequested{})
			if m.state.Phase != lifecycle.Burned {
				return m, nil
			}
			runner, ctx, id := m.runner, m.ctx, m.state.SecretID()
			return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
				return runner.Burn(ctx, id)
			})
		case key.Matches(msg, keys.no):
			m.confirmBurn = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.burn):
		m.confirmBurn = true
	case key.Matches(msg, keys.separateKey):
		m.separateKey = !m.separateKey
	case key.Matches(msg, keys.newSecret):
		m.resetForm(lifecycle.Reduce(m.state, lifecycle.CreateNewRequested{}))
		return m, textarea.Blink
	case key.Matches(msg, keys.history), msg.String() == "h":
		return m, navigate(pageHistory)
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m CreateModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Phase != lifecycle.Idle {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldText:
		m.text, cmd = m.text.Update(msg)
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldFiles:
		m.files, cmd = m.files.Update(msg)
	case fieldPassword:
		m.password, cmd = m.password.Update(msg)
	case fieldMaxViews:
		m.maxViews, cmd = m.maxViews.Update(msg)
	case fieldAllowedIP:
		m.allowedIP, cmd = m.allowedIP.Update(msg)
	}
	return m, cmd
}

// submit copies the inputs into the lifecycle form and starts an attempt.
// Attachments are read inside the command so a slow disk does not block the
// event loop.
func (m CreateModel) submit() (tea.Model, tea.Cmd) {
	m.state = lifecycle.Reduce(m.state, lifecycle.FormEdited{Form: m.formFromInputs()})

	attemptID := m.runner.NewAttemptID()
	m.state = lifecycle.Reduce(m.state, lifecycle.SubmitRequested{AttemptID: attemptID})
	if m.state.Phase != lifecycle.Submitting {
		return m, nil
	}

	runner, ctx, form := m.runner, m.ctx, m.state.Form
	paths := archive.SplitPaths(m.files.Value())
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		files, err := archive.LoadFiles(paths)
		if err != nil {
			return lifecycle.SubmitFailed{
				AttemptID: attemptID,
				Err:       &service.ValidationError{Field: validators.FieldFiles, Message: err.Error(), Err: err},
			}
		}
		form.Files = files
		return runner.Submit(ctx, attemptID, form)
	})
}

func (m CreateModel) formFromInputs() models.SecretForm {
	form := models.NewSecretForm()
	form.Text = m.text.Value()
	form.Title = m.title.Value()
	form.Password = m.password.Value()

	if opts := m.state.TTLOptions(); m.ttlIdx < len(opts) {
		form.Policy.TTL = opts[m.ttlIdx].Seconds
	}
	// Unparsable input becomes 0, which the validator reports.
	views, _ := strconv.Atoi(strings.TrimSpace(m.maxViews.Value()))
	form.Policy.MaxViews = views
	form.Policy.AllowedIP = m.allowedIP.Value()
	form.Policy.PreventBurn = m.preventBurn
	return form
}

func (m *CreateModel) moveFocus(step int) {
	next := m.focus
	for {
		next = (next + createField(step) + fieldCount) % fieldCount
		if next != fieldPassword || m.state.PasswordEnabled {
			break
		}
	}
	m.setFocus(next)
}

func (m *CreateModel) setFocus(f createField) {
	m.focus = f
	m.text.Blur()
	for _, in := range []*textinput.Model{&m.title, &m.files, &m.password, &m.maxViews, &m.allowedIP} {
		in.Blur()
	}

	switch f {
	case fieldText:
		m.text.Focus()
	case fieldTitle:
		m.title.Focus()
	case fieldFiles:
		m.files.Focus()
	case fieldPassword:
		m.password.Focus()
	case fieldMaxViews:
		m.maxViews.Focus()
	case fieldAllowedIP:
		m.allowedIP.Focus()
	}
}

func (m CreateModel) View() string {
	switch m.state.Phase {
	case lifecycle.Submitting:
		return renderPage("NEW SECRET", m.spinner.View()+" Encrypting and uploading...", "")
	case lifecycle.Revealed:
		return m.viewRevealed()
	case lifecycle.Burned:
		return renderPage("NEW SECRET", m.spinner.View()+" Burning...", "")
	}
	return m.viewForm()
}

func (m CreateModel) viewForm() string {
	var b strings.Builder

	row := func(f createField, label, value string) {
		marker := "  "
		if m.focus == f {
			marker = focusStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%-12s %s\n", marker, label, value)
		if msg, ok := m.state.Feedback.FieldErrors[fieldName(f)]; ok {
			fmt.Fprintf(&b, "  %-12s %s\n", "", errorStyle.Render(humanizeServerUnavailable(msg)))
		}
	}

	b.WriteString(m.text.View())
	b.WriteString("\n")
	if msg, ok := m.state.Feedback.FieldErrors[validators.FieldText]; ok {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	row(fieldTitle, "Title", m.title.View())
	row(fieldFiles, "Files", m.files.View())
	if m.state.PasswordEnabled {
		row(fieldPassword, "Password", m.password.View())
	} else {
		row(fieldPassword, "Password", helpStyle.Render("off (ctrl+p to generate)"))
	}

	ttl := "-"
	if opts := m.state.TTLOptions(); m.ttlIdx < len(opts) {
		ttl = "< " + opts[m.ttlIdx].Label + " >"
	}
	row(fieldTTL, "Expires in", ttl)
	row(fieldMaxViews, "Max views", m.maxViews.View())
	row(fieldAllowedIP, "Allowed IP", m.allowedIP.View())
	row(fieldPreventBurn, "Keep alive", checkbox(m.preventBurn)+" prevent burn after reading")

	// Field errors for names without a row, e.g. from a newer server.
	for _, f := range unknownFields(m.state.Feedback.FieldErrors) {
		fmt.Fprintf(&b, "\n%s", errorStyle.Render(f+": "+m.state.Feedback.FieldErrors[f]))
	}
	if m.state.Feedback.Banner != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(humanizeServerUnavailable(m.state.Feedback.Banner)))
	}

	return renderPage("NEW SECRET", b.String(),
		"tab/shift+tab: move │ ctrl+s: create │ ctrl+p: password │ ctrl+r: reset │ ctrl+l: history")
}

func (m CreateModel) viewRevealed() string {
	links, err := m.state.ShareLinks(m.origin)
	if err != nil {
		return renderPage("SECRET CREATED", errorStyle.Render(err.Error()), "n: new │ q: quit")
	}

	var b strings.Builder
	b.WriteString(successStyle.Render("Secret " + m.state.SecretID() + " created"))
	b.WriteString("\n\n")
	if m.separateKey {
		b.WriteString("Link: " + links.WithoutKey + "\n")
		b.WriteString("Key:  " + links.Key + "\n")
	} else {
		b.WriteString(links.WithKey + "\n")
	}

	sub := m.state.Submission
	fmt.Fprintf(&b, "\nExpires in %s, max views %d", models.TTLLabel(sub.Policy.TTL), sub.Policy.MaxViews)
	if sub.HasPassword {
		b.WriteString("\nThe recipient also needs the password: " + m.state.Form.Password)
	}

	if m.confirmBurn {
		b.WriteString("\n\n")
		b.WriteString(confirmModel{message: sub.SecretID}.View())
	}

	return renderPage("SECRET CREATED", b.String(),
		"s: split link and key │ b: burn │ n: new │ h: history │ q: quit")
}

func fieldName(f createField) string {
	switch f {
	case fieldText:
		return validators.FieldText
	case fieldFiles:
		return validators.FieldFiles
	case fieldPassword:
		return validators.FieldPassword
	case fieldTTL:
		return validators.FieldTTL
	case fieldMaxViews:
		return validators.FieldMaxViews
	case fieldAllowedIP:
		return validators.FieldAllowedIP
	default:
		return ""
	}
}

func unknownFields(errs map[string]string) []string {
	known := make(map[string]bool, fieldCount)
	for f := createField(0); f < fieldCount; f++ {
		if name := fieldName(f); name != "" {
			known[name] = true
		}
	}

	var out []string
	for f := range errs {
		if !known[f] {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
