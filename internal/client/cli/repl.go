package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printFn and printlnFn are test seams for user-facing output.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	report(err error)

	Go(ctx context.Context, path string) error
	Back(ctx context.Context) error
	Relogin(ctx context.Context) error
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Demo(ctx context.Context, role string) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	NewRequest(ctx context.Context) error
	List(ctx context.Context, status string) error
	Donate(ctx context.Context, id string) error
	Fulfill(ctx context.Context, id string) error
}

const (
	guestHelp = `Available commands:
  go <path>        open a page (/, /auth/login, /auth/signup, /home, ...)
  back             return to the previous page
  signup           create an account
  login            sign in
  demo <role>      sign in as the demo donor or student
  exit | quit      leave the program`

	memberHelp = `Available commands:
  go <path>        open a page (/home, /onboarding, /requests, /donations, /leaderboard)
  back             return to the previous page
  relogin          sign out and sign in again
  whoami           show the signed-in user
  new              create an assistance request (students)
  list [status]    list your requests: all, pending, accepted, fulfilled (students)
  fulfill <id>     mark an accepted request as fulfilled (students)
  donate <id>      donate to an open request (donors)
  logout           sign out
  exit | quit      leave the program`
)

// runREPL reads commands line by line from reader and dispatches them to a
// until EOF, "exit" or "quit". Handler errors are reported and the loop
// continues; none of them ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printFn(fmt.Sprintf("biteshare %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			printlnFn()
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
				printlnFn(memberHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			a.report(a.Go(ctx, args[0]))

		case "back":
			a.report(a.Back(ctx))

		case "relogin":
			a.report(a.Relogin(ctx))

		case "login":
			a.report(a.Login(ctx))

		case "signup":
			a.report(a.Signup(ctx))

		case "demo":
			if len(args) == 0 {
				printlnFn("Usage: demo <donor|student>")
				continue
			}
			a.report(a.Demo(ctx, args[0]))

		case "logout":
			a.report(a.Logout(ctx))

		case "whoami":
			a.report(a.Whoami(ctx))

		case "new":
			a.report(a.NewRequest(ctx))

		case "l", "list":
			status := ""
			if len(args) > 0 {
				status = args[0]
			}
			a.report(a.List(ctx, status))

		case "donate", "fulfill":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			if cmd == "donate" {
				a.report(a.Donate(ctx, args[0]))
			} else {
				a.report(a.Fulfill(ctx, args[0]))
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
