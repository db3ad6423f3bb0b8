package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/biteshare/internal/client/guard"
	"github.com/dmitrijs2005/biteshare/internal/client/services"
	"github.com/dmitrijs2005/biteshare/internal/logging"
)

// Deps are the collaborators of App.
type Deps struct {
	Sessions    services.SessionStore
	Navigator   *guard.Navigator
	Auth        services.AuthService
	Onboarding  services.OnboardingService
	Requests    services.RequestService
	Donations   services.DonationService
	Leaderboard services.LeaderboardService
	Log         logging.Logger

	// MaxAttachmentSize caps files picked during verification.
	MaxAttachmentSize int64
}

type App struct {
	Deps
	reader *bufio.Reader
	out    io.Writer
	closer func() error
}

const defaultMaxAttachmentSize = 5 << 20

func NewApp(d Deps, in io.Reader, out io.Writer) *App {
	if d.Log == nil {
		d.Log = logging.Discard()
	}
	if d.MaxAttachmentSize <= 0 {
		d.MaxAttachmentSize = defaultMaxAttachmentSize
	}
	return &App{Deps: d, reader: bufio.NewReader(in), out: out}
}

// Run shows the landing page and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to BiteShare (type 'help' for commands)")

	path := guard.PathLanding
	if a.isLoggedIn() {
		path = guard.PathHome
	}
	a.report(a.Go(ctx, path))

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.Sessions.Snapshot().IsAuthenticated()
}

// status is shown in the prompt: who is signed in and where they are.
func (a *App) status() string {
	who := "guest"
	if u := a.Sessions.Snapshot().User; u != nil {
		who = fmt.Sprintf("%s, %s", u.Name, u.Role())
	}
	return fmt.Sprintf("(%s) %s", who, a.Navigator.Current().Path)
}

// report prints a failed command's error in a user-facing form.
func (a *App) report(err error) {
	if err == nil {
		return
	}
	a.Log.Debug(context.Background(), "command failed", "error", err)
	fmt.Fprintln(a.out, describe(err))
}
