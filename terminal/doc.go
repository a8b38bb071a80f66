// @focus: #sys { term }
// Package terminal adapts a tcell screen to the cell-buffer interface used by the renderer.
//
// Features:
//   - Row-major cell flush with 24-bit colour and a small attribute set
//   - Mouse reporting with motion events, folded into a single Event type
//   - TTY guard via golang.org/x/term before the screen is opened
//   - Clean terminal restoration on exit/panic
package terminal
