package mapping

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoScanners is returned when Build is given nothing to map.
	ErrNoScanners = errors.New("no scanners to map")
	// ErrIncompleteReconstruction matches any *IncompleteError.
	ErrIncompleteReconstruction = errors.New("incomplete reconstruction")
)

// IncompleteError reports scanners that could not be related to the reference scanner. The map
// returned alongside it covers only the connected scanners.
type IncompleteError struct {
	Missing []int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: scanners %v are not connected to the reference scanner", ErrIncompleteReconstruction, e.Missing)
}

// Is makes errors.Is(err, ErrIncompleteReconstruction) hold.
func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncompleteReconstruction
}
