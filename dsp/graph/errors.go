package graph

import "errors"

var (
	// ErrInvalidConfig is returned for a non-positive sample rate or block size.
	ErrInvalidConfig = errors.New("graph: invalid configuration")
	// ErrDuplicateName is returned when a node name is already registered.
	ErrDuplicateName = errors.New("graph: duplicate node name")
	// ErrUnknownNode is returned when a label or id names no node.
	ErrUnknownNode = errors.New("graph: unknown node")
	// ErrUnknownPort is returned when a node has no port of the given name.
	ErrUnknownPort = errors.New("graph: unknown port")
	// ErrInputConnected is returned when a destination input already has a source.
	ErrInputConnected = errors.New("graph: input already connected")
	// ErrLabelFormat is returned for a label without a "." separator.
	ErrLabelFormat = errors.New("graph: malformed label")
	// ErrCycle is returned when a connection would close a cycle.
	ErrCycle = errors.New("graph: connection creates a cycle")
)
