package notification

// Mailer sends one email. Implementations are fire-and-forget from the
// caller's point of view; delivery failures surface as errors but callers
// decide whether they matter.
type Mailer interface {
	Send(to, subject, text, html string) error
}
