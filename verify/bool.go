// File: bool.go
// Title: Bool Verifier
// Description: Verifier for boolean values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

// BoolVerifier verifies booleans
type BoolVerifier struct {
	Base[bool, *BoolVerifier]
}

func newBool(vn *Verification[bool]) *BoolVerifier {
	v := &BoolVerifier{}
	v.Init(vn, v)
	return v
}

// True checks that the value is true
func (v *BoolVerifier) True() *BoolVerifier {
	return v.report(v.vn.value, KeyTrue)
}

// False checks that the value is false
func (v *BoolVerifier) False() *BoolVerifier {
	return v.report(!v.vn.value, KeyFalse)
}
