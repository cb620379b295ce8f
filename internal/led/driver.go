package led

// Driver abstracts the pixel output sink. Write commits one whole frame
// of RGB triples; the chain latches atomically on the wire side.
type Driver interface {
	// Write pushes an RGB frame to the chain. len(rgb) must be 3*N.
	Write(rgb []byte) error
	// Close releases resources.
	Close() error
}
