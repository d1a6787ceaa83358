package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	MyProfile(ctx context.Context) error
	ViewProfile(ctx context.Context, args []string) error
	Roster(ctx context.Context) error
	AddUser(ctx context.Context) error
}

// runREPL reads lines from the reader, parses the first token as the
// command and dispatches to methods on 'a'. Every command except login and
// exit requires an authenticated session. The loop exits on EOF or when the
// user types "exit" or "quit".
//
// The reader is the same one the interactive screens read from, so scripted
// input never gets stranded in a second buffer.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("portal %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		atEOF := err != nil
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if atEOF {
				return
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: me, view <id>, (l)ist, adduser, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			if !requireAuth(a) {
				continue
			}
			_ = a.Logout(ctx)

		case "me", "profile":
			if !requireAuth(a) {
				continue
			}
			_ = a.MyProfile(ctx)

		case "view":
			if !requireAuth(a) {
				continue
			}
			_ = a.ViewProfile(ctx, args)

		case "l", "list":
			if !requireAuth(a) {
				continue
			}
			_ = a.Roster(ctx)

		case "adduser":
			if !requireAuth(a) {
				continue
			}
			_ = a.AddUser(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if atEOF {
			return
		}
	}
}

// requireAuth gates guarded commands: anonymous sessions are sent to login.
func requireAuth(a execIface) bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Please login first.")
	return false
}
