// Package cli provides the interactive Bloodstream command-line client.
//
// It wires configuration, the persisted session, the REST services, and the
// realtime channel into a REPL. Typical flow: login (or pick up the saved
// session), connect to realtime updates, and run commands against the
// platform: blood requests, appointments, blood banks, the digital blood
// card, and notifications.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
