// SPDX-License-Identifier: EPL-2.0

package dataset

import "errors"

var ErrMalformedMetadata = errors.New("malformed metadata row")
