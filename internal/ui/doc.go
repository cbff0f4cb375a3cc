// Package ui contains the Bubble Tea program that powers the wallpaper picker.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, resizes, ticks, dispatch results).
//   - Key handling (navigation.go) maps the six bindings of keyMap onto the
//     Browser in internal/ui/state. Every other key is ignored.
//   - A tick re-arms itself every interval; Bubble Tea redraws after each
//     Update, so the view is refreshed whether or not a key arrived.
//
// State ownership:
//   - The Browser is owned by the Model and only mutated from Update.
//   - Directory scans happen inline. Scan failures are logged and leave the
//     Browser untouched.
//   - Activating a file hands it to the command bus (internal/ui/command),
//     which runs the wallpaper command inside a tea.Cmd and reports back with
//     a command.Result message. Only one dispatch runs at a time.
package ui
