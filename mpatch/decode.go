package mpatch

import "encoding/binary"

const headerSize = 12

// Decode parses a binary delta into its fragment list. An empty delta
// decodes to an empty (nil) fragment list, meaning "no change". Fragment
// data is borrowed from bin, never copied.
func Decode(bin []byte) ([]Fragment, error) {
	var frags []Fragment
	pos := 0

	for pos < len(bin) {
		if pos+headerSize > len(bin) {
			return nil, &DecodeError{Offset: pos, Reason: "truncated record header"}
		}
		start := int(binary.BigEndian.Uint32(bin[pos : pos+4]))
		end := int(binary.BigEndian.Uint32(bin[pos+4 : pos+8]))
		length := int(binary.BigEndian.Uint32(bin[pos+8 : pos+12]))
		recordPos := pos
		pos += headerSize

		if start > end {
			return nil, &DecodeError{Offset: recordPos, Reason: "start after end"}
		}
		if pos+length > len(bin) {
			return nil, &DecodeError{Offset: pos, Reason: "truncated record data"}
		}

		frags = append(frags, Fragment{
			Start:  start,
			End:    end,
			Length: length,
			Data:   bin[pos : pos+length],
		})
		pos += length
	}

	if pos != len(bin) {
		return nil, &DecodeError{Offset: pos, Reason: "trailing bytes after last record"}
	}
	return frags, nil
}
