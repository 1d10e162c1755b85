// Package transaction records edits as replayable, invertible units.
//
// A Transaction accumulates primitive changes (insert, delete, move
// forward) into one or more ChangeSets, each anchored at an absolute char
// position. Applying a transaction replays its changesets against a rope;
// Undo derives the inverse transaction from the pre-edit text, so any
// applied transaction can be rolled back exactly.
//
// A repeat count above one replays the whole recording that many times,
// which is how a counted insert ("3i" style) multiplies typed text.
//
// All positions and counts are char offsets, matching the rope.
package transaction
