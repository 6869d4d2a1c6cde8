// Package mask implements the masked text-input formatter used by the
// formwidgets text fields. A Mask is a template where Placeholder ('X') marks
// a user-editable position and every other rune is a literal separator that
// the formatter inserts on the user's behalf.
//
// The Formatter is toolkit free: it receives the text currently held by an
// input plus a single proposed Edit and answers with a Decision telling the
// host whether to perform its own edit (optionally followed by a suffix
// append), to replace its buffer, or to drop the edit. Apply folds a decision
// back into a buffer and caret position for hosts that do not want to
// interpret decisions themselves.
//
// The rules are tuned for single-rune literals between placeholder groups of
// uniform width (card numbers and similar). Multi-rune literals and irregular
// group widths are outside what the deletion and strip rules handle.
package mask
