// Package tween interpolates values of any type over time and composes
// interpolations into shared timelines.
//
// A Tween owns one interpolation task. It is built from Data (usually
// produced by a Travel), a duration in seconds and a set of options:
//
//	tw, err := tween.NewTravel(tween.FromTo(0.0, 100.0), interp.Number[float64], 5,
//		tween.WithEasing(easing.InOutQuad),
//		tween.WithLooping(tween.PingPong(2)))
//
// Time only moves when the tween is updated. Pass WithRegistry to let a
// Manager drive it, or call Update yourself with the elapsed time:
//
//	tw.Update(1.0 / 60)
//
// Lifecycle:
//
// The first non-zero update resolves the start value (calling the deferred
// accessor of To and By travels exactly once) and fires OnStart. Each update
// moves the elapsed time according to the looping policy, eases the progress
// ratio and sends the interpolated value to OnUpdate. When the last loop ends
// the tween sends its final value, fires OnCompletion and closes every
// channel. Stop(false) closes the channels without firing OnCompletion.
//
// Ping-pong tweens run forward on odd loops and backward on even loops, so a
// tween with an even loop count ends on its start value.
//
// Sequences:
//
// A Sequence places tweens and nested sequences at offsets on one timeline.
// Every update of the sequence is sliced so that each entry receives exactly
// the part of the delta that overlaps its own window. Inserting a member
// into a sequence revokes its registration: the sequence becomes its only
// time source. Entries cannot be added once the sequence has started.
//
// Notifications:
//
// Channels never block the engine. OnUpdate and OnLoopCompletion keep only
// the most recent unconsumed value; OnStart and OnCompletion fire at most
// once and then close.
package tween
