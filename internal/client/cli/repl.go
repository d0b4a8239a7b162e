package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, maxCalories string) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit". Command
// handlers prompt on the same reader.
//
// Handler errors are reported to the user and the loop continues.
//
//	register         create an account
//	login            authenticate and keep the token in memory
//	logout           drop the token
//	add              submit a recipe (requires login)
//	list | l         list all recipes
//	search <max>     list recipes with at most <max> calories
//	help             show available commands
//	exit | quit      leave the program
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("rk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		err = nil
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, (l)ist, search <max>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (l)ist, search <max>, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "add":
			err = a.Add(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "search":
			if len(args) != 1 {
				printlnFn("Usage: search <max calories>")
				continue
			}
			err = a.Search(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", describeError(err))
		}
	}
}
