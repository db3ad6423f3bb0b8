package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls    []string
	reported []error
	failWith error
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.failWith
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) report(err error) {
	if err != nil {
		f.reported = append(f.reported, err)
	}
}
func (f *fakeExec) Go(ctx context.Context, path string) error { return f.record("go " + path) }
func (f *fakeExec) Back(ctx context.Context) error            { return f.record("back") }
func (f *fakeExec) Relogin(ctx context.Context) error         { return f.record("relogin") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Signup(ctx context.Context) error            { return f.record("signup") }
func (f *fakeExec) Demo(ctx context.Context, role string) error { return f.record("demo " + role) }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Whoami(ctx context.Context) error              { return f.record("whoami") }
func (f *fakeExec) NewRequest(ctx context.Context) error          { return f.record("new") }
func (f *fakeExec) List(ctx context.Context, status string) error { return f.record("list " + status) }
func (f *fakeExec) Donate(ctx context.Context, id string) error   { return f.record("donate " + id) }
func (f *fakeExec) Fulfill(ctx context.Context, id string) error  { return f.record("fulfill " + id) }

// captureOutput redirects the REPL print seams into a slice of lines.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint, origPrintln := printFn, printlnFn
	printFn = func(a ...any) (int, error) { return 0, nil }
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printFn, printlnFn = origPrint, origPrintln })
	return &lines
}

func input(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, input(
		"demo donor",
		"go /requests",
		"back",
		"relogin",
		"login",
		"whoami",
		"",
		"list pending",
		"l",
		"new",
		"donate a1b2c3d4",
		"fulfill b2c3d4e5",
		"signup",
		"logout",
		"exit",
		"whoami",
	))

	assert.Equal(t, []string{
		"demo donor",
		"go /requests",
		"back",
		"relogin",
		"login",
		"whoami",
		"list pending",
		"list ",
		"new",
		"donate a1b2c3d4",
		"fulfill b2c3d4e5",
		"signup",
		"logout",
	}, exec.calls)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, input("go", "donate", "fulfill", "demo", "foobar", "quit"))

	assert.Empty(t, exec.calls)
	assert.Equal(t, []string{
		"Usage: go <path>",
		"Usage: donate <id>",
		"Usage: fulfill <id>",
		"Usage: demo <donor|student>",
		"Unknown command: foobar",
		"Bye!",
	}, *out)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, input("help", "login", "help", "exit"))

	var helps []string
	for _, l := range *out {
		if strings.HasPrefix(l, "Available commands:") {
			helps = append(helps, l)
		}
	}
	if assert.Len(t, helps, 2) {
		assert.NotContains(t, helps[0], "donate")
		assert.Contains(t, helps[1], "donate <id>")
	}
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	captureOutput(t)

	boom := errors.New("boom")
	exec := &fakeExec{failWith: boom}
	runREPL(context.Background(), exec, func() string { return "s" }, input("back", "whoami"))

	assert.Equal(t, []string{"back", "whoami"}, exec.calls)
	assert.Equal(t, []error{boom, boom}, exec.reported)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	captureOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "s" }, input("whoami"))
	assert.Empty(t, exec.calls)
}
