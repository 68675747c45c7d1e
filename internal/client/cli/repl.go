package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface runREPL drives; *App implements it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Idea(ctx context.Context) error
	Tasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	SetDone(ctx context.Context, id string, done bool) error
	RemoveTask(ctx context.Context, id string) error
	Health(ctx context.Context) error
}

// runREPL reads commands from reader until EOF or exit/quit. Command
// errors are reported by the commands themselves. Prompts issued by the
// commands read from the same reader.
//
//	Always:           help, health, tasks, addtask, done <id>, undo <id>, rmtask <id>, exit
//	Not logged in:    register, login
//	Logged in:        whoami, idea, logout
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("fm (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, idea, tasks, addtask, done <id>, undo <id>, rmtask <id>, health, logout, exit")
			} else {
				printlnFn("Available commands: register, login, tasks, addtask, done <id>, undo <id>, rmtask <id>, health, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "idea":
			_ = a.Idea(ctx)

		case "tasks", "l":
			_ = a.Tasks(ctx)

		case "addtask":
			_ = a.AddTask(ctx)

		case "done", "undo", "rmtask":
			if len(args) == 0 {
				printlnFn("Usage: " + cmd + " <id>")
				continue
			}
			switch cmd {
			case "done":
				_ = a.SetDone(ctx, args[0], true)
			case "undo":
				_ = a.SetDone(ctx, args[0], false)
			default:
				_ = a.RemoveTask(ctx, args[0])
			}

		case "health":
			_ = a.Health(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
