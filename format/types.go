package format

type (
	EntryType uint8
	Placement uint8
)

const (
	TypeUnknown EntryType = iota // TypeUnknown represents a tag byte that matches no class.
	TypeUint7                    // TypeUint7 represents 0xxxxxxx, values 0..127.
	TypeInt13                    // TypeInt13 represents 110xxxxx xxxxxxxx, values -4096..4095.
	TypeInt16                    // TypeInt16 represents 0xF1 + 2 bytes.
	TypeInt24                    // TypeInt24 represents 0xF2 + 3 bytes.
	TypeInt32                    // TypeInt32 represents 0xF3 + 4 bytes.
	TypeInt64                    // TypeInt64 represents 0xF4 + 8 bytes.
	TypeStr6                     // TypeStr6 represents 10llllll, lengths 0..63.
	TypeStr12                    // TypeStr12 represents 1110llll llllllll, lengths 64..4095.
	TypeStr32                    // TypeStr32 represents 0xF0 + 4-byte length.
	TypeEOF                      // TypeEOF represents the 0xFF terminator.
)

const (
	Before Placement = 0x0 // Before inserts immediately at the target entry.
	After  Placement = 0x1 // After inserts immediately after the target entry.
)

// IsInt reports whether the entry type holds an integer.
func (e EntryType) IsInt() bool {
	return e >= TypeUint7 && e <= TypeInt64
}

// IsString reports whether the entry type holds a byte string.
func (e EntryType) IsString() bool {
	return e >= TypeStr6 && e <= TypeStr32
}

func (e EntryType) String() string {
	switch e {
	case TypeUint7:
		return "Uint7"
	case TypeInt13:
		return "Int13"
	case TypeInt16:
		return "Int16"
	case TypeInt24:
		return "Int24"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeStr6:
		return "Str6"
	case TypeStr12:
		return "Str12"
	case TypeStr32:
		return "Str32"
	case TypeEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

func (p Placement) String() string {
	switch p {
	case Before:
		return "Before"
	case After:
		return "After"
	default:
		return "Unknown"
	}
}
