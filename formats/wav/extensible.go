// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"io"
)

const (
	extensibleFormat = 0xFFFE

	// offset of the SubFormat GUID inside a 40 byte extensible fmt chunk
	subFormatOffset = 24
	extensibleSize  = 40
)

// subFormat returns the format code carried in the SubFormat GUID of a
// WAVE_FORMAT_EXTENSIBLE fmt chunk. go-audio/riff discards the extension,
// so the chunk is read again from the start of rs. The position of rs is
// restored before returning.
func subFormat(rs io.ReadSeeker) (uint16, error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	defer func() { _, _ = rs.Seek(pos, io.SeekStart) }()

	if _, err := rs.Seek(12, io.SeekStart); err != nil {
		return 0, err
	}

	var hdr [8]byte
	for {
		if _, err := io.ReadFull(rs, hdr[:]); err != nil {
			return 0, err
		}
		size := int64(binary.LittleEndian.Uint32(hdr[4:]))

		if !bytes.Equal(hdr[:4], []byte("fmt ")) {
			if _, err := rs.Seek(size+size%2, io.SeekCurrent); err != nil {
				return 0, err
			}
			continue
		}

		if size < extensibleSize {
			return 0, ErrOnlyPCMSupported
		}
		chunk := make([]byte, extensibleSize)
		if _, err := io.ReadFull(rs, chunk); err != nil {
			return 0, err
		}

		return binary.LittleEndian.Uint16(chunk[subFormatOffset:]), nil
	}
}
