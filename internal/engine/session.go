package engine

// Session is the complete state of one calculator form. It is treated as an
// immutable value: Calculate and Clear return a new Session and never modify
// the one they receive. Each user session owns its own Session; nothing in
// it is shared across sessions.
type Session struct {
	Inputs RawInputs

	// Result is the last successful computation, nil until one exists.
	Result *BmiResult

	// Err is the last validation failure, nil after a success or a clear.
	Err *ValidationError

	History History
}

// Alert returns the message to show above the form, or "".
func (s Session) Alert() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Message
}

// Flags returns the fields to highlight.
func (s Session) Flags() FieldFlags {
	if s.Err == nil {
		return FieldFlags{}
	}
	return s.Err.Fields
}

// WithInputs returns a copy of s carrying new raw inputs.
func (s Session) WithInputs(in RawInputs) Session {
	s.Inputs = in
	return s
}

// Calculate runs Compute on the session's inputs.
// On failure only the error state changes; the previous result and the
// history stay as they were. On success the result is replaced, the error
// state is cleared and the history advances.
func (c *Calculator) Calculate(s Session) Session {
	res, hist, err := c.Compute(s.Inputs, s.History)
	if err != nil {
		if ve, ok := AsValidationError(err); ok {
			s.Err = ve
		}
		return s
	}

	s.Result = &res
	s.Err = nil
	s.History = hist
	return s
}

// Clear resets every transient field (inputs, result, alert, field flags)
// and keeps the history.
func Clear(s Session) Session {
	return Session{History: s.History}
}
