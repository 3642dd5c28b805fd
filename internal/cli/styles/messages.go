package styles

// Info renders a neutral user-facing message.
func (t *Theme) Info(msg string) string {
	return t.Subtle.Render(IconInfo+" ") + t.Normal.Render(msg)
}

// Success renders a completed-action message.
func (t *Theme) Success(msg string) string {
	return t.SuccessStyle.Render(IconCheck+" ") + t.Normal.Render(msg)
}

// Failure renders an error message.
func (t *Theme) Failure(msg string) string {
	return t.ErrorStyle.Render(IconX + " " + msg)
}
