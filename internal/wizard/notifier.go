package wizard

// Notifier surfaces blocking, user-visible failure notifications.
type Notifier interface {
	Notify(err error)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(err error)

// Notify implements Notifier.
func (f NotifierFunc) Notify(err error) { f(err) }

type discardNotifier struct{}

func (discardNotifier) Notify(error) {}
