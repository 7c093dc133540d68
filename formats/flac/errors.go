// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrUnsupportedLayout indicates a stream without channels or sample rate
	ErrUnsupportedLayout = errors.New("unsupported FLAC layout")
)
