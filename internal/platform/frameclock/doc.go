// Package frameclock drives per-frame simulation steps.
//
// A Loop owns an ordered set of Steppers and advances each of them exactly
// once per tick with the elapsed time since the previous tick. Loops are
// single-owner: only the goroutine running Run (or calling Tick) touches the
// registered steppers, so inputs from other goroutines must be handed off
// through a channel drained by a stepper at the start of the tick.
package frameclock
