// Package cli provides the interactive MilaVault command-line client.
//
// It wires configuration, the local draft database, the gRPC record
// store, and an interactive REPL. Typical flow: request a login link,
// exchange the token for a session, then browse and edit people.
//
// Key features:
//   - Email-link login with token entry
//   - List / search people, with unsaved drafts taking part in search
//   - Add, edit, and delete people with draft-backed edit sessions
//   - Per-person notes panels with autosaved drafts
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
