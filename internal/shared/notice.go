package shared

// Severity classifies a user-facing notice.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notice is a transient user-facing message produced while handling a request.
type Notice struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// InfoNotice builds an info-severity notice.
func InfoNotice(message string) Notice {
	return Notice{Severity: SeverityInfo, Message: message}
}

// WarningNotice builds a warning-severity notice.
func WarningNotice(message string) Notice {
	return Notice{Severity: SeverityWarning, Message: message}
}
