package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Burn secret \"" + m.message + "\"? It cannot be read afterwards.\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
