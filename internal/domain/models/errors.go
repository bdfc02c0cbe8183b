package models

import "errors"

// ErrInsufficientData is returned when a candle sequence or training set is
// too short for the requested computation. Recoverable by supplying more data;
// the engine never pads silently.
var ErrInsufficientData = errors.New("insufficient data")

// ErrArtifactNotFound signals that no model artifact exists in durable
// storage. Distinct from a storage failure: the artifact has simply never
// been created.
var ErrArtifactNotFound = errors.New("model artifact not found")
