// Provides common liveprops errors definitions.
package liveprops_errors

import "errors"

var (
	ErrStoreUnknown = errors.New("liveprops: unknown component store")
)
