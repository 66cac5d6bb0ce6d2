package core

import (
	"fmt"

	"go.uber.org/multierr"
)

// NotifyOption identifies one signal sent to applications after a change.
type NotifyOption int

// Values match the wininet INTERNET_OPTION_* constants.
const (
	NotifySettingsChanged NotifyOption = 39
	NotifyRefresh         NotifyOption = 37
)

func (o NotifyOption) String() string {
	switch o {
	case NotifySettingsChanged:
		return "settings-changed"
	case NotifyRefresh:
		return "refresh"
	default:
		return fmt.Sprintf("option(%d)", int(o))
	}
}

// Notifier tells running applications that proxy settings changed.
// Calls are best effort and never retried.
type Notifier interface {
	Notify(option NotifyOption) error
}

// Notification is the outcome of the signals sent after a mutation.
type Notification struct {
	OK  bool
	Err error
}

// notifyAll sends settings-changed then refresh. A failure of the first does
// not prevent the second.
func notifyAll(n Notifier) Notification {
	if n == nil {
		return Notification{OK: true}
	}
	var err error
	for _, option := range []NotifyOption{NotifySettingsChanged, NotifyRefresh} {
		if notifyErr := n.Notify(option); notifyErr != nil {
			err = multierr.Append(err, fmt.Errorf("notify %s: %w", option, notifyErr))
		}
	}
	return Notification{OK: err == nil, Err: err}
}
