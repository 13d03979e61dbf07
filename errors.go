package eartist

import "errors"

var (
	// ErrDimensionMismatch is returned when two canvases, or a canvas and
	// a pixel buffer, do not have the same size.
	ErrDimensionMismatch = errors.New("eartist: dimension mismatch")

	// ErrIndexOutOfRange is returned for a shape index beyond the end of
	// a genome.
	ErrIndexOutOfRange = errors.New("eartist: shape index out of range")

	// ErrUnknownShapeKind is returned for a shape kind other than
	// triangle, circle or rectangle.
	ErrUnknownShapeKind = errors.New("eartist: unknown shape kind")

	// ErrFitnessNotComputed is returned when the fitness of a genome is
	// read before it has been evaluated.
	ErrFitnessNotComputed = errors.New("eartist: fitness not computed")

	// ErrInvalidWeights is returned for shape kind weights which are
	// negative or all zero.
	ErrInvalidWeights = errors.New("eartist: invalid shape weights")

	// ErrInvalidConfig is returned for other unusable evolution parameters.
	ErrInvalidConfig = errors.New("eartist: invalid configuration")
)
