package pitch

import "errors"

// ErrInvalidVariant is returned when a Variant outside the known set is used
// where a concrete element kind is required.
var ErrInvalidVariant = errors.New("pitch: invalid variant")
