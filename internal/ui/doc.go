// Package ui renders TraceTutor as a Bubble Tea program.
//
// Core abstractions:
//   - AppModel: owns the session state, runs the reducer and turns completion
//     requests into commands
//   - View: one tab's screen with its own update and render (Elm-style)
//   - Host: what a View may read from or ask of the AppModel
//   - FocusManager: tracks whether keys go to navigation or a text input
//   - KeybindRegistry/KeyHandler: single keys plus SPC-prefixed commands
//   - ProjectCard: the reusable project card
package ui
