package bip39

import "fmt"

// maxBitGroupWidth is the widest bit group readBits and writeBits support.
// Word indices are 11 bits and checksums are at most 8, so anything wider
// indicates a caller bug.
const maxBitGroupWidth = 16

// readBits returns the big-endian unsigned value of the width-bit group
// beginning at the given absolute bit offset of buf. Bits are numbered
// MSB-first within each byte.
//
// Panics if the group extends beyond the end of buf, or if width exceeds
// maxBitGroupWidth.
func readBits(buf []byte, offset, width int) uint16 {
	if width > maxBitGroupWidth {
		panic(fmt.Sprintf("readBits attempted to read oversized %d-bit group", width))
	}
	if end := offset + width; end > len(buf)*8 {
		panic(fmt.Sprintf(
			"readBits attempted to read outside buffer (size %d bits) bounds by %d bits",
			len(buf)*8, end-len(buf)*8,
		))
	}

	var value uint16
	for width > 0 {
		available := 8 - offset%8
		take := available
		if take > width {
			take = width
		}
		chunk := buf[offset/8] >> (available - take) & byte(1<<take-1)
		value = value<<take | uint16(chunk)
		offset += take
		width -= take
	}
	return value
}

// writeBits sets the width-bit group beginning at the given absolute bit
// offset of buf to the big-endian representation of value. Bits outside the
// group are left untouched.
//
// Panics if the group extends beyond the end of buf, if width exceeds
// maxBitGroupWidth, or if value does not fit in width bits.
func writeBits(buf []byte, offset, width int, value uint16) {
	if width > maxBitGroupWidth {
		panic(fmt.Sprintf("writeBits attempted to write oversized %d-bit group", width))
	}
	if end := offset + width; end > len(buf)*8 {
		panic(fmt.Sprintf(
			"writeBits attempted to write outside buffer (size %d bits) bounds by %d bits",
			len(buf)*8, end-len(buf)*8,
		))
	}
	if value>>width != 0 {
		panic(fmt.Sprintf("writeBits value %d does not fit in %d bits", value, width))
	}

	for width > 0 {
		available := 8 - offset%8
		take := available
		if take > width {
			take = width
		}
		chunk := byte(value>>(width-take)) & byte(1<<take-1)
		shift := available - take
		mask := byte(1<<take-1) << shift
		buf[offset/8] = buf[offset/8]&^mask | chunk<<shift
		offset += take
		width -= take
	}
}
