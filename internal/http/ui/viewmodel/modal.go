package viewmodel

// ModalButton is a footer action of a modal dialog.
type ModalButton struct {
	Label string
	// Class is appended to the base "btn" class (e.g. "btn-primary").
	Class string
	// Close marks a button that only dismisses the dialog.
	Close bool
	// Form, when set, makes the button submit the form with that id.
	Form string
}

// Modal is a server-built dialog rendered into the single #modal-root
// container. BodyTemplate names the partial executed with Body.
type Modal struct {
	ID           string
	Title        string
	BodyTemplate string
	Body         any
	Buttons      []ModalButton
}

// CancelButton is the standard dismiss button.
func CancelButton() ModalButton {
	return ModalButton{Label: "Cancel", Class: "btn-secondary", Close: true}
}

// SubmitButton submits the form with the given id.
func SubmitButton(label, formID string) ModalButton {
	return ModalButton{Label: label, Class: "btn-primary", Form: formID}
}
