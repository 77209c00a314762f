// Package ui contains the Bubble Tea program that draws the radial menu inside
// a tmux popup.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function: mouse.go for pointer motion and clicks, input.go for keyboard
//     fallbacks and the search box, backend.go for tmux snapshots.
//   - Every gesture is forwarded to a menu.Controller. Gestures that may run a
//     command go through the internal/ui/command bus, which runs them in the
//     Update loop and turns the outcome into tea.Quit or a failure message.
//
// State ownership:
//   - The controller owns the registry session, the action tree and the
//     selection engine. The model only keeps presentation state: size, search
//     box, error line and the result that closed the menu.
//   - View asks the controller for a menu.Frame and paints it onto a canvas of
//     styled cells (canvas.go). Terminal rows are taller than columns, so the
//     controller works in column units and the frame carries the aspect.
//
// Backend interactions:
//   - A backend.Watcher streams tmux snapshots. Each one is handed to the
//     OnSnapshot callback (the quick actions' cached state) before command
//     state is recomputed, so checkmarks follow tmux while the menu is open.
package ui
