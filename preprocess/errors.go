// SPDX-License-Identifier: EPL-2.0

package preprocess

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid preprocess config")
	ErrEmptyAudio    = errors.New("audio has no samples")
)
