package huffman

// payloadLen returns the number of bytes needed to hold numBits packed bits.
func payloadLen(numBits uint64) uint64 {
	return (numBits + 7) / 8
}

// padMask returns the mask of the unused low-order bits in the final byte of
// a payload holding numBits bits.
func padMask(numBits uint64) byte {
	used := numBits % 8
	if used == 0 {
		return 0
	}
	return byte(0xff) >> used
}
