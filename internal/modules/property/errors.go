package property

// ValidationError carries the first constraint violated by a create or
// update payload. The API reports one violation at a time.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
