package schema

// Response sizing constants.
const (
	// CharacterLimit is the maximum character count for markdown tool
	// responses before truncation kicks in.
	CharacterLimit = 25000

	// DefaultEventsLimit is the event count requested upstream when the
	// caller does not supply a limit.
	DefaultEventsLimit = 100
)
