package viewmodel

// ToastKind selects the toast style.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
	ToastWarning ToastKind = "warning"
)

// Toast is the payload of the showToast client event.
type Toast struct {
	Message string    `json:"message"`
	Type    ToastKind `json:"type"`
}
