package pricing

import "errors"

// ErrInvalidItem indicates a rejected price-list update.
var ErrInvalidItem = errors.New("invalid pricing item")
