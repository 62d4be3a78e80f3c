package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/planandgo/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	ConfirmReset(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Profile(ctx context.Context) error
	Badges(ctx context.Context) error
	Badge(ctx context.Context, id int64) error
	Routes(ctx context.Context) error
	AddRoute(ctx context.Context) error
	EditRoute(ctx context.Context, id int64) error
	Notifications(ctx context.Context) error
	MarkRead(ctx context.Context, id int64) error
	Feedback(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, register, reset, confirm, help, exit"
	helpLoggedIn  = "Available commands: routes, addroute, editroute <id>, badges, badge <id>, " +
		"profile, notifications, read <id>, feedback, whoami, logout, help, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - login, register      authenticate or create an account
//	  - reset, confirm       request a reset token, set a new password
//	Logged in:
//	  - routes, addroute, editroute <id>
//	  - badges, badge <id>, profile
//	  - notifications, read <id>, feedback
//	  - whoami, logout
//
// Command errors are reported and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("planandgo%s> ", prefixSpace(statusFn())))
		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return
		}
		eof := err != nil

		parts := strings.Fields(line)
		if len(parts) > 0 {
			if quit := dispatch(ctx, a, parts[0], parts[1:]); quit {
				return
			}
		}
		if eof {
			return
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}

// dispatch runs one command and reports whether the REPL should stop.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) bool {
	var err error

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return false

	case "exit", "quit":
		printlnFn("Bye!")
		return true

	case "login":
		err = a.Login(ctx)
	case "register":
		err = a.Register(ctx)
	case "reset":
		err = a.ResetPassword(ctx)
	case "confirm":
		err = a.ConfirmReset(ctx)

	case "logout", "whoami", "profile", "badges", "badge", "routes", "addroute",
		"editroute", "notifications", "read", "feedback":
		if !a.isLoggedIn() {
			printlnFn("Please log in first")
			return false
		}
		err = dispatchAuthenticated(ctx, a, cmd, args)

	default:
		printlnFn("Unknown command:", cmd)
		return false
	}

	if err != nil {
		reportError(err)
	}
	return false
}

func dispatchAuthenticated(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "profile":
		return a.Profile(ctx)
	case "badges":
		return a.Badges(ctx)
	case "routes":
		return a.Routes(ctx)
	case "addroute":
		return a.AddRoute(ctx)
	case "notifications":
		return a.Notifications(ctx)
	case "feedback":
		return a.Feedback(ctx)
	}

	id, err := parseID(args)
	if err != nil {
		return fmt.Errorf("usage: %s <id>: %w", cmd, err)
	}
	switch cmd {
	case "badge":
		return a.Badge(ctx, id)
	case "editroute":
		return a.EditRoute(ctx, id)
	case "read":
		return a.MarkRead(ctx, id)
	}
	return nil
}

func reportError(err error) {
	var se *client.ServerError
	switch {
	case errors.Is(err, client.ErrUnauthenticated):
		printlnFn("Not authenticated:", err)
	case errors.Is(err, client.ErrNetwork):
		printlnFn("Backend unreachable:", err)
	case errors.As(err, &se) && se.Detail() != "":
		printlnFn("Request failed:", se.Detail())
	default:
		printlnFn("Error:", err)
	}
}
