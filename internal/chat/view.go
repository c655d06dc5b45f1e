package chat

// These are the UI elements the widget binds to. A front end implements
// them over whatever it renders with and hands them to NewWidget.

// MessagePanel is the scrollable list of messages.
type MessagePanel interface {
	Append(msg Message)
	// ScrollToBottom brings the newest entry into view.
	ScrollToBottom()
}

// InputControl is the single-line text input.
type InputControl interface {
	Value() string
	SetValue(v string)
	SetDisabled(disabled bool)
}

// SendControl is the send button (or whatever stands in for it).
type SendControl interface {
	SetDisabled(disabled bool)
}

// LoadingIndicator is shown while a request is outstanding.
type LoadingIndicator interface {
	SetVisible(visible bool)
}

// Elements groups the UI elements a widget needs.
type Elements struct {
	Panel   MessagePanel
	Input   InputControl
	Send    SendControl
	Loading LoadingIndicator
}

func (e Elements) validate() error {
	switch {
	case e.Panel == nil:
		return errMissingElement("message panel")
	case e.Input == nil:
		return errMissingElement("input control")
	case e.Send == nil:
		return errMissingElement("send control")
	case e.Loading == nil:
		return errMissingElement("loading indicator")
	}
	return nil
}
