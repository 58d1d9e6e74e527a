// keyboard_scancodes.go - Fixed host-key -> PC-XT-style scancode
// translation table, taken verbatim (including the F5/F3 duplicate)
// from the machine's keyboard controller scancode table.

package main

// HostKey identifies a physical key independent of any particular host
// windowing toolkit; backend adapters (e.g. the ebiten display host)
// translate their own key enums into HostKey before calling
// Keyboard.PushKeyEvent.
type HostKey int

const (
	KeyA HostKey = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyReturn
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
	KeyCapsLock
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyNumLock
	KeyKPDivide
	KeyKPMultiply
	KeyKPMinus
	KeyKPPlus
	KeyKPEnter
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKP0
	KeyKPPeriod
	KeyApplication
	KeySysReq
	KeyLeftCtrl
	KeyLeftShift
	KeyLeftAlt
	KeyLeftGUI
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
	KeyRightGUI
)

// scancodeTable maps HostKey to the machine's 7-bit make-code. The
// keyboard controller ORs in 0x80 on release. KeyF5 duplicates KeyF3's
// code (0x3D), a known quirk of the machine's firmware table.
var scancodeTable = map[HostKey]uint8{
	KeyA:            0x1e,
	KeyB:            0x30,
	KeyC:            0x2e,
	KeyD:            0x20,
	KeyE:            0x12,
	KeyF:            0x21,
	KeyG:            0x22,
	KeyH:            0x23,
	KeyI:            0x17,
	KeyJ:            0x24,
	KeyK:            0x25,
	KeyL:            0x26,
	KeyM:            0x32,
	KeyN:            0x31,
	KeyO:            0x18,
	KeyP:            0x19,
	KeyQ:            0x10,
	KeyR:            0x13,
	KeyS:            0x1f,
	KeyT:            0x14,
	KeyU:            0x16,
	KeyV:            0x2f,
	KeyW:            0x11,
	KeyX:            0x2d,
	KeyY:            0x15,
	KeyZ:            0x2c,
	Key1:            0x02,
	Key2:            0x03,
	Key3:            0x04,
	Key4:            0x05,
	Key5:            0x06,
	Key6:            0x07,
	Key7:            0x08,
	Key8:            0x09,
	Key9:            0x0a,
	Key0:            0x0b,
	KeyReturn:       0x1c,
	KeyEscape:       0x01,
	KeyBackspace:    0x0e,
	KeyTab:          0x0f,
	KeySpace:        0x39,
	KeyMinus:        0x0c,
	KeyEquals:       0x0d,
	KeyLeftBracket:  0x1a,
	KeyRightBracket: 0x1b,
	KeyBackslash:    0x2b,
	KeySemicolon:    0x27,
	KeyApostrophe:   0x28,
	KeyGrave:        0x29,
	KeyComma:        0x33,
	KeyPeriod:       0x34,
	KeySlash:        0x35,
	KeyCapsLock:     0x3a,
	KeyF1:           0x3b,
	KeyF2:           0x3c,
	KeyF3:           0x3d,
	KeyF4:           0x3e,
	KeyF5:           0x3d, // duplicate of F3, preserved as a known quirk
	KeyF6:           0x40,
	KeyF7:           0x41,
	KeyF8:           0x42,
	KeyF9:           0x43,
	KeyF10:          0x44,
	KeyF11:          0x57,
	KeyF12:          0x58,
	KeyPrintScreen:  0x37,
	KeyScrollLock:   0x46,
	KeyPause:        0x45,
	KeyInsert:       0x52,
	KeyHome:         0x47,
	KeyPageUp:       0x49,
	KeyDelete:       0x53,
	KeyEnd:          0x4f,
	KeyPageDown:     0x51,
	KeyRight:        0x4d,
	KeyLeft:         0x4b,
	KeyDown:         0x50,
	KeyUp:           0x48,
	KeyNumLock:      0x45,
	KeyKPDivide:     0x35,
	KeyKPMultiply:   0x37,
	KeyKPMinus:      0x4a,
	KeyKPPlus:       0x4e,
	KeyKPEnter:      0x1c,
	KeyKP1:          0x4f,
	KeyKP2:          0x50,
	KeyKP3:          0x51,
	KeyKP4:          0x4b,
	KeyKP5:          0x4c,
	KeyKP6:          0x4d,
	KeyKP7:          0x47,
	KeyKP8:          0x48,
	KeyKP9:          0x49,
	KeyKP0:          0x52,
	KeyKPPeriod:     0x53,
	KeyApplication:  0x5d,
	KeySysReq:       0x54,
	KeyLeftCtrl:     0x1d,
	KeyLeftShift:    0x2a,
	KeyLeftAlt:      0x38,
	KeyLeftGUI:      0x5b,
	KeyRightCtrl:    0x1d,
	KeyRightShift:   0x36,
	KeyRightAlt:     0x38,
	KeyRightGUI:     0x5c,
}
