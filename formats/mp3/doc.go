// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG Layer III files through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so mono recordings come out with
// both channels equal; the loader mixes them back down.
package mp3
