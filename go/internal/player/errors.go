package player

import "errors"

// ErrMalformedSearch marks search text that cannot be read as a jersey number.
// It only disables the jersey predicate and is never returned by the App.
var ErrMalformedSearch = errors.New("search text is not a jersey number")
