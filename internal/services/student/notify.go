package student

// Kind is the severity of a notification
type Kind int

const (
	KindInfo Kind = iota
	KindWarning
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// Notifier presents the outcome of a mutating operation to the user.
// Every mutation reports exactly one notification.
type Notifier interface {
	Notify(kind Kind, title, message string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(Kind, string, string) {}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(kind Kind, title, message string)

func (f NotifierFunc) Notify(kind Kind, title, message string) {
	f(kind, title, message)
}
