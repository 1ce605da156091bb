package editor

// AddMessage appends text to the status message log and makes it visible.
// Messages are never removed; dismissal only toggles visibility, so the full
// session history stays available for diagnostics.
func (e *Editor) AddMessage(text string) {
	e.messages = append(e.messages, text)
	e.msgVisible = true
}

// LatestMessage returns the most recent message while it is visible. Front
// ends use this, and only this, to decide whether to show a status banner.
func (e *Editor) LatestMessage() (string, bool) {
	if !e.msgVisible || len(e.messages) == 0 {
		return "", false
	}
	return e.messages[len(e.messages)-1], true
}

// Messages returns a copy of the full session message log, dismissed entries
// included.
func (e *Editor) Messages() []string {
	out := make([]string, len(e.messages))
	copy(out, e.messages)
	return out
}
