package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	RequestOtp(ctx context.Context) error
	VerifyOtp(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Open(ctx context.Context, path string) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Upload(ctx context.Context) error
	SetRole(ctx context.Context, id, role string) error
}

// runREPL starts a simple read–eval–print loop for the admin panel client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate with email and password
//	  - otp            — request a one-time code by phone
//	  - verify         — enter a received one-time code
//	  - open <path>    — navigate to a screen (may redirect to /login)
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - open <path>    — navigate to a screen
//	  - list           — list the current screen's records
//	  - add            — create a record on the current screen
//	  - edit <id>      — edit a record on the current screen
//	  - delete <id>    — delete a record on the current screen
//	  - upload         — upload a media file (on /media)
//	  - role <id> <r>  — change a managed user's role (on /users)
//	  - whoami         — show the current identity and role
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("crm> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: open <path>, (l)ist, add, edit <id>, delete <id>, upload, role <id> <role>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, otp, verify, open <path>, exit")
			}

		case "signup":
			_ = a.SignUp(ctx)

		case "login":
			_ = a.Login(ctx)

		case "otp":
			_ = a.RequestOtp(ctx)

		case "verify":
			_ = a.VerifyOtp(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "upload":
			_ = a.Upload(ctx)

		case "role":
			if len(args) < 2 {
				printlnFn("Usage: role <id> <admin|editor|viewer>")
				continue
			}
			_ = a.SetRole(ctx, args[0], args[1])

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
