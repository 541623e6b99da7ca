package encoding

// ZigzagEncode maps signed integers to unsigned-ordered ones so small
// magnitudes of either sign stay small: 0, -1, 1, -2 become 0, 1, 2, 3.
// Stored as a listpack integer, -1 then takes one byte instead of two.
func ZigzagEncode(v int64) int64 {
	return (v << 1) ^ (v >> 63)
}

// ZigzagDecode reverses ZigzagEncode.
func ZigzagDecode(v int64) int64 {
	return int64(uint64(v)>>1) ^ -(v & 1)
}
