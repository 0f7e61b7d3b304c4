package state

import "strings"

// InputState manages simple text input state for dialogs.
// This is used for renaming items and other single-line inputs.
type InputState struct {
	// Buffer contains the text currently being typed
	Buffer string

	// Prompt is the text displayed to the user (e.g., "New name:")
	Prompt string

	// TargetID is the ID of the item the input applies to
	TargetID string

	// InitialBuffer stores the original buffer value for change detection
	InitialBuffer string
}

// NewInputState creates a new InputState with empty values.
func NewInputState() *InputState {
	return &InputState{}
}

// Clear resets the input state.
func (s *InputState) Clear() {
	s.Buffer = ""
	s.Prompt = ""
	s.TargetID = ""
	s.InitialBuffer = ""
}

// AppendChar appends a character to the input buffer if within max length.
// Returns true if the character was added, false if buffer is at max length.
//
// The maximum buffer length is set to 100 characters to keep the dialog
// readable on narrow terminals.
func (s *InputState) AppendChar(c rune) bool {
	const maxLength = 100

	if len(s.Buffer) >= maxLength {
		return false
	}

	s.Buffer += string(c)
	return true
}

// Backspace removes the last character from the input buffer.
// Returns true if a character was removed, false if buffer was already empty.
func (s *InputState) Backspace() bool {
	if len(s.Buffer) == 0 {
		return false
	}

	runes := []rune(s.Buffer)
	s.Buffer = string(runes[:len(runes)-1])
	return true
}

// IsEmpty returns true if the input buffer is empty or contains only whitespace.
func (s *InputState) IsEmpty() bool {
	return len(strings.TrimSpace(s.Buffer)) == 0
}

// TrimmedBuffer returns the input buffer with surrounding whitespace removed.
func (s *InputState) TrimmedBuffer() string {
	return strings.TrimSpace(s.Buffer)
}

// HasChanges returns true if the buffer differs from its initial value.
func (s *InputState) HasChanges() bool {
	return strings.TrimSpace(s.Buffer) != strings.TrimSpace(s.InitialBuffer)
}
