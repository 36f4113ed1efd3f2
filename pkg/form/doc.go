// Package form holds the user information form: its typed state, the set of
// touched fields, and the Controller that applies user edits, runs validation
// on submit, and manages the transient success notification.
//
// A Controller is safe for concurrent use. The success notification is
// cleared either by DismissSuccess or by an auto-dismiss timer armed on every
// successful submit; any dismiss, reset or re-submit cancels the pending
// timer so a stale firing never clears a newer notification.
package form
