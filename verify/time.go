// File: time.go
// Title: Time Verifier
// Description: Verifier for instants. Comparisons use the instant and ignore
//              the location. Past and Future read the verifier clock.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

import (
	"time"

	"github.com/msto63/verifier/core/format"
)

// TimeVerifier verifies instants
type TimeVerifier struct {
	Base[time.Time, *TimeVerifier]
}

func newTime(vn *Verification[time.Time]) *TimeVerifier {
	v := &TimeVerifier{}
	v.Init(vn, v)
	return v
}

// After checks that the value is after t
func (v *TimeVerifier) After(t time.Time) *TimeVerifier {
	return v.report(v.vn.value.After(t), KeyAfter, t)
}

// AfterOrSameAs checks that the value is not before t
func (v *TimeVerifier) AfterOrSameAs(t time.Time) *TimeVerifier {
	return v.report(!v.vn.value.Before(t), KeyAfterOrSameAs, t)
}

// Before checks that the value is before t
func (v *TimeVerifier) Before(t time.Time) *TimeVerifier {
	return v.report(v.vn.value.Before(t), KeyBefore, t)
}

// BeforeOrSameAs checks that the value is not after t
func (v *TimeVerifier) BeforeOrSameAs(t time.Time) *TimeVerifier {
	return v.report(!v.vn.value.After(t), KeyBeforeOrSameAs, t)
}

// Between checks that lo <= value <= hi
func (v *TimeVerifier) Between(lo, hi time.Time) *TimeVerifier {
	t := v.vn.value
	return v.report(!t.Before(lo) && !t.After(hi), KeyTimeBetween, lo, hi)
}

// SameAs checks that the value is the same instant as t
func (v *TimeVerifier) SameAs(t time.Time) *TimeVerifier {
	return v.report(v.vn.value.Equal(t), KeySameAs, t)
}

// SameDayAs checks that the value falls on the calendar day of t, both taken
// in the location of the value
func (v *TimeVerifier) SameDayAs(t time.Time) *TimeVerifier {
	a := v.vn.value
	b := t.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return v.report(ay == by && am == bm && ad == bd, KeySameDayAs, t)
}

// Weekday checks that the value falls on day
func (v *TimeVerifier) Weekday(day time.Weekday) *TimeVerifier {
	return v.report(v.vn.value.Weekday() == day, KeyWeekday, format.Text(day.String()))
}

// Past checks that the value is before the current time
func (v *TimeVerifier) Past() *TimeVerifier {
	return v.report(v.vn.value.Before(v.vn.verifier.Now()), KeyPast)
}

// Future checks that the value is after the current time
func (v *TimeVerifier) Future() *TimeVerifier {
	return v.report(v.vn.value.After(v.vn.verifier.Now()), KeyFuture)
}
