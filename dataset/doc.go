// SPDX-License-Identifier: EPL-2.0

// Package dataset enumerates the files of common speech corpora on disk.
//
// Only the directory layouts are known here; decoding is left to the
// preprocess package. Listings are lexicographically sorted so that runs
// over the same tree visit files in the same order.
package dataset
