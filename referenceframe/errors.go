package referenceframe

import "github.com/pkg/errors"

// NewNodeMissingError returns an error indicating that a frame is not in the graph.
func NewNodeMissingError(id int) error {
	return errors.Errorf("frame %d is not in the transform graph", id)
}

// NewSelfTransformError returns an error indicating an attempt to relate a frame to itself.
func NewSelfTransformError(id int) error {
	return errors.Errorf("cannot add a transform from frame %d to itself", id)
}
