// Package cli provides the interactive FoundrMate terminal client.
//
// It wires configuration, the local SQLite store, the API services and a
// REPL. A session stored by a previous run is picked up on start.
//
// Commands:
//   - register / login / logout / whoami
//   - idea: submit a business idea and optionally turn the suggested steps
//     into roadmap tasks
//   - tasks / addtask / done <id> / undo <id> / rmtask <id>
//   - health
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
