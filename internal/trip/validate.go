package trip

// Rejection explains why a submission was not applied. Mutators return nil
// on accept. The TUI shows Reason inline next to the form; CLI callers print
// it and exit with a usage code. Callers that want the original silent-drop
// behavior can simply discard it.
type Rejection struct {
	Field  string
	Reason string
}

func reject(field, reason string) *Rejection {
	return &Rejection{Field: field, Reason: reason}
}
