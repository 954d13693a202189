package correct

// ICorrector defines the interface for spelling correction engines,
// consumed by the CLI and server layers.
type ICorrector interface {
	// Correct returns the best correction for word within the edit budget.
	Correct(word string) (Result, bool)

	// MaxEdits returns the edit budget in effect.
	MaxEdits() int
}
