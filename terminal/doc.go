// Package terminal adapts a tcell screen into the particle field's display and scroll input.
//
// Features:
//   - Screen lifecycle with idempotent close and mouse reporting for wheel scroll
//   - Translation of wheel, arrow, page and home/end keys into virtual page scroll deltas
//   - Event pump that stops with its context and never blocks on a departed consumer
//   - Clean terminal restoration on panic
package terminal
