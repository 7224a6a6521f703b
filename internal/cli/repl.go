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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddExpense(ctx context.Context) error
	AddIncome(ctx context.Context) error
	DeleteExpense(ctx context.Context) error
	DeleteIncome(ctx context.Context) error
	List(ctx context.Context) error
	More(ctx context.Context) error
	Summary(ctx context.Context) error
	Trend(ctx context.Context) error
	Profile(ctx context.Context) error
	SetProfile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the CashTrack CLI.
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
//	  - register       — create an account (and log in)
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - addexpense     — record an expense
//	  - addincome      — record an income
//	  - delexpense     — delete an expense by id
//	  - delincome      — delete an income by id
//	  - list           — combined transactions, newest first
//	  - more           — load the next page of both listings
//	  - summary        — balance and per-category totals
//	  - trend          — month-by-month income vs. spending
//	  - profile        — show the profile
//	  - setprofile     — update the profile name
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ct> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: addexpense, addincome, delexpense, delincome, (l)ist, more, summary, trend, profile, setprofile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "addexpense":
			_ = a.AddExpense(ctx)

		case "addincome":
			_ = a.AddIncome(ctx)

		case "delexpense":
			_ = a.DeleteExpense(ctx)

		case "delincome":
			_ = a.DeleteIncome(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "more":
			_ = a.More(ctx)

		case "summary":
			_ = a.Summary(ctx)

		case "trend":
			_ = a.Trend(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "setprofile":
			_ = a.SetProfile(ctx)

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
