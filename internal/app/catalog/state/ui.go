package state

// ModalType identifies which modal is open, if any.
type ModalType string

const (
	ModalNone   ModalType = ""
	ModalCreate ModalType = "create"
	ModalEdit   ModalType = "edit"
	ModalDelete ModalType = "delete"
)

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification is a transient user-facing message.
type Notification struct {
	Message  string
	Severity Severity
	Visible  bool
}

// UIState is purely presentational state. Nothing here is persisted.
type UIState struct {
	ModalOpen    bool
	ModalType    ModalType
	Notification Notification
	Loading      bool
}

func initialUIState() UIState {
	return UIState{
		Notification: Notification{Severity: SeverityInfo},
	}
}

// reduceUI applies a UI-slice action. Actions belonging to other slices pass
// through unchanged.
func reduceUI(s UIState, a Action) UIState {
	switch a := a.(type) {
	case OpenModal:
		s.ModalOpen = true
		s.ModalType = a.Type
	case CloseModal:
		s.ModalOpen = false
		s.ModalType = ModalNone
	case ShowNotification:
		s.Notification = Notification{
			Message:  a.Message,
			Severity: a.Severity,
			Visible:  true,
		}
	case HideNotification:
		s.Notification.Visible = false
	case SetLoading:
		s.Loading = a.Loading
	}
	return s
}
