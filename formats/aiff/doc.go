// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Only uncompressed big-endian PCM at 8, 16, 24 or 32 bits is accepted.
package aiff
