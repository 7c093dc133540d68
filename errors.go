// SPDX-License-Identifier: EPL-2.0

package speechprep

import "errors"

var (
	// ErrUnsupportedFormat indicates no decoder is registered for the file extension.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrDecode wraps any failure while decoding or resampling a file.
	ErrDecode = errors.New("cannot decode audio")
)
