// File: object.go
// Title: Object Verifier
// Description: Verifier for values of any type. It offers the common checks
//              only.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

// ObjectVerifier verifies values of any type
type ObjectVerifier struct {
	Base[any, *ObjectVerifier]
}

func newObject(vn *Verification[any]) *ObjectVerifier {
	v := &ObjectVerifier{}
	v.Init(vn, v)
	return v
}
