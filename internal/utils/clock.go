// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "time"

// Clock returns the current time. Tests replace it with a fixed value.
type Clock func() time.Time

// SystemClock is the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock returns a [Clock] that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
