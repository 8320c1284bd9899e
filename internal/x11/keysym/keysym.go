// Package keysym holds the X11 keysym values the input adapter cares about
// and the conversion from keysyms to text input.
//
// Values follow <X11/keysymdef.h>.
package keysym

// Keysym is an X11 keyboard symbol.
type Keysym uint32

// NoSymbol is returned by the server for keycodes without a binding.
const NoSymbol Keysym = 0

// TTY function keys.
const (
	BackSpace  Keysym = 0xff08
	Tab        Keysym = 0xff09
	Linefeed   Keysym = 0xff0a
	Clear      Keysym = 0xff0b
	Return     Keysym = 0xff0d
	Pause      Keysym = 0xff13
	ScrollLock Keysym = 0xff14
	SysReq     Keysym = 0xff15
	Escape     Keysym = 0xff1b
	Delete     Keysym = 0xffff
)

// Cursor control and motion.
const (
	Home  Keysym = 0xff50
	Left  Keysym = 0xff51
	Up    Keysym = 0xff52
	Right Keysym = 0xff53
	Down  Keysym = 0xff54
	Prior Keysym = 0xff55 // Page Up
	Next  Keysym = 0xff56 // Page Down
	End   Keysym = 0xff57
	Begin Keysym = 0xff58

	Insert Keysym = 0xff63
)

// Keypad.
const (
	KPSpace     Keysym = 0xff80
	KPTab       Keysym = 0xff89
	KPEnter     Keysym = 0xff8d
	KPEqual     Keysym = 0xffbd
	KPMultiply  Keysym = 0xffaa
	KPAdd       Keysym = 0xffab
	KPSeparator Keysym = 0xffac
	KPSubtract  Keysym = 0xffad
	KPDecimal   Keysym = 0xffae
	KPDivide    Keysym = 0xffaf
	KP0         Keysym = 0xffb0
	KP9         Keysym = 0xffb9
)

// Function keys.
const (
	F1  Keysym = 0xffbe
	F12 Keysym = 0xffc9
)

// Modifiers.
const (
	ShiftL    Keysym = 0xffe1
	ShiftR    Keysym = 0xffe2
	ControlL  Keysym = 0xffe3
	ControlR  Keysym = 0xffe4
	CapsLock  Keysym = 0xffe5
	ShiftLock Keysym = 0xffe6
	MetaL     Keysym = 0xffe7
	MetaR     Keysym = 0xffe8
	AltL      Keysym = 0xffe9
	AltR      Keysym = 0xffea
	SuperL    Keysym = 0xffeb
	SuperR    Keysym = 0xffec
)

// Latin-1 keysyms used by the key map. Latin-1 keysyms share their value with
// the character they produce.
const (
	Space  Keysym = 0x0020
	A      Keysym = 0x0041
	C      Keysym = 0x0043
	V      Keysym = 0x0056
	X      Keysym = 0x0058
	Y      Keysym = 0x0059
	Z      Keysym = 0x005a
	LowerA Keysym = 0x0061
	LowerZ Keysym = 0x007a
)

// unicodeOffset marks keysyms that directly encode a Unicode code point.
const unicodeOffset Keysym = 0x01000000

// ToRune converts a keysym to the character it types.
//
// Latin-1 and Unicode keysyms decode to their code point, and the keypad and
// TTY keys that have an ASCII meaning decode to it. Anything else is returned
// as its raw numeric value so that every key press still yields exactly one
// character.
func ToRune(sym Keysym) rune {
	switch {
	case sym >= 0x20 && sym <= 0x7e, sym >= 0xa0 && sym <= 0xff:
		return rune(sym)
	case sym > unicodeOffset && sym <= unicodeOffset+0x10ffff:
		return rune(sym - unicodeOffset)
	case sym >= KP0 && sym <= KP9:
		return '0' + rune(sym-KP0)
	}

	switch sym {
	case Tab, KPTab:
		return '\t'
	case Linefeed:
		return '\n'
	case KPEnter:
		return '\r'
	case Escape:
		return 0x1b
	case KPSpace:
		return ' '
	case KPEqual:
		return '='
	case KPMultiply:
		return '*'
	case KPAdd:
		return '+'
	case KPSeparator:
		return ','
	case KPSubtract:
		return '-'
	case KPDecimal:
		return '.'
	case KPDivide:
		return '/'
	}
	return rune(sym)
}
