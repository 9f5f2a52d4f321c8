// Package suggest is the core, learning words from passages and retrieving ranked completions for a prefix.
package suggest

// IProvider defines the interface consumed by the CLI and IPC surfaces
type IProvider interface {
	// Train learns every word of a multi-word passage
	Train(passage string) error

	// Lookup returns the ranked candidates sharing the given prefix
	Lookup(fragment string) ([]Candidate, error)

	// Stats returns statistics about the learned words
	Stats() map[string]int
}
