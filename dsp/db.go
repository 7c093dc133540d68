// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// DefaultTopDB is the dynamic range kept by PowerToDB when callers do not
// choose one.
const DefaultTopDB = 80.0

// PowerToDB converts a power spectrogram to decibels relative to its own
// maximum, so the loudest cell maps to 0 dB. Values below amin (1e-10) are
// floored first. When topDB > 0 the output is also floored at -topDB below
// the peak; pass 0 to disable that floor.
func PowerToDB(s [][]float64, topDB float64) [][]float64 {
	ref := amin
	for _, row := range s {
		for _, v := range row {
			ref = math.Max(ref, v)
		}
	}
	refDB := 10 * math.Log10(ref)

	out := make([][]float64, len(s))
	peak := math.Inf(-1)
	for i, row := range s {
		dbRow := make([]float64, len(row))
		for j, v := range row {
			db := 10*math.Log10(math.Max(amin, v)) - refDB
			dbRow[j] = db
			peak = math.Max(peak, db)
		}
		out[i] = dbRow
	}

	if topDB > 0 {
		floor := peak - topDB
		for _, row := range out {
			for j, v := range row {
				if v < floor {
					row[j] = floor
				}
			}
		}
	}

	return out
}

// DBToPower inverts PowerToDB up to the unknown reference: 0 dB maps to 1.
func DBToPower(db [][]float64) [][]float64 {
	out := make([][]float64, len(db))
	for i, row := range db {
		p := make([]float64, len(row))
		for j, v := range row {
			p[j] = math.Pow(10, v/10)
		}
		out[i] = p
	}
	return out
}
