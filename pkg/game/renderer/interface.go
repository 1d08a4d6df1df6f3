package renderer

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal  TextStyle = iota
	StyleTitle             // banner heading
	StyleExact             // peg for a symbol in the right position
	StylePartial           // peg for a symbol in the wrong position
	StyleDenied            // rejected input
	StyleSuccess           // win message
	StyleSubtle            // secondary information
)

// Renderer defines the interface for game output backends.
type Renderer interface {
	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage emits msg as one line of output
	ShowMessage(msg string)

	// Width returns the number of columns available for a line
	Width() int
}
