package ports

// Notifier surfaces transient user-visible notices (the toast layer of
// the UI). Implementations must not block.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards all notices.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
