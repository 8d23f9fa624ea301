package domain

import "errors"

// ErrUnknownTransform is returned when a configured pipeline names a
// transform that is not present in the registry.
var ErrUnknownTransform = errors.New("unknown transform")

// ErrInvalidBranching is returned when a branching limit below 1 is configured.
var ErrInvalidBranching = errors.New("branching limit must be >= 1")

// ErrInvalidNovelty is returned when a novelty threshold outside [0,1] is configured.
var ErrInvalidNovelty = errors.New("novelty threshold must be within [0,1]")

// ErrInvalidDepth is returned when a negative max depth is configured.
var ErrInvalidDepth = errors.New("max depth must be >= 0")
