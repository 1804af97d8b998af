package game

import "errors"

// ErrInvalidInput marks genuinely malformed input: a team referencing an
// unknown player, a position outside the board radius, an out-of-range
// edge. In a replayed game these indicate a corrupted action log, so they
// surface as errors instead of degrading to a quiet "no" result.
// Ordinary rejections (occupied cell, blocked path, no candidate) stay
// plain false/nil returns.
var ErrInvalidInput = errors.New("invalid input")
