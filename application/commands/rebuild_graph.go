package commands

// RebuildGraphCommand asks for a fresh graph to be built from the configured
// dataset source and atomically swapped in as the reader-visible graph. The
// graph already built never mutates; readers holding it stay valid.
type RebuildGraphCommand struct{}

// Validate validates the command
func (c RebuildGraphCommand) Validate() error {
	return nil
}
