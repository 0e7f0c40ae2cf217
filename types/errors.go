package types

import "errors"

// Pipeline error kinds. Fallible steps wrap one of these with %w so
// callers can branch with errors.Is.
//
// ErrImageDecode and ErrAudioRead are always recovered locally by the
// assembler (text-fallback frame, zero duration). The other three are
// fatal to the current job and propagate.
var (
	ErrRecordLoad  = errors.New("story record load failed")
	ErrAudioRead   = errors.New("audio read failed")
	ErrImageDecode = errors.New("image decode failed")
	ErrNoContent   = errors.New("no segments to assemble")
	ErrEncode      = errors.New("video encode failed")
)
