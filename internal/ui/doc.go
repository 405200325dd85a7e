// Package ui contains the Bubble Tea program that drives one picker session.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys, mouse, resize, commit results).
//   - Key presses matching the keymap become picker events (internal/picker).
//     Everything else is offered to the filter editor (internal/ui/state.Input),
//     whose text is pushed back into the picker after each edit.
//   - A commit hands the chosen symbol to the command bus, which runs the
//     clipboard and paste pipeline off the update loop and reports back with
//     a commitResultMsg. The model records the result and quits.
//
// State ownership:
//   - The picker owns category, filter view and highlight. The model only
//     keeps presentation state: the editor cursor, the list viewport and the
//     terminal size.
//
// Layout: row 0 holds the category tabs, row 1 the filter prompt, row 2 a
// separator, and items start at row 3. Mouse hit testing relies on those rows.
package ui
