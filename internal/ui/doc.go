// Package ui contains the Bubble Tea program that edits a treehouse outline.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function. Messages without a handler, such as cursor blinks, go to the
//     label editor.
//   - Key presses are translated by KeyEvent into keybind events. While a menu
//     or the command palette is open, keys drive that overlay. Otherwise the
//     workspace resolves the event against its bindings, and keys no binding
//     claims edit the focused node's label through a bubbles text input.
//
// State ownership:
//   - The workspace owns the tree, panels, focus and the open menu or
//     palette. The model registers itself as the workspace renderer and only
//     keeps view state: the editor, the palette filter in internal/ui/state,
//     the menu cursor and the last error.
//   - After every handled message finishUpdate reconciles the palette and the
//     editor with whatever the workspace now reports as focused.
package ui
