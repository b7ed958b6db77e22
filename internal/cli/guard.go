package cli

import (
	"fmt"
	"os"

	"github.com/luxebid/luxebid/internal/guard"
	"github.com/luxebid/luxebid/pkg/model"
)

// guardRoute evaluates the route guard for a destination before a
// command runs. A redirect decision surfaces its notice (if any) and
// fails the command with the destination the user was sent to instead.
func (a *app) guardRoute(route guard.Route) error {
	dec := guard.Evaluate(a.sessions.Current(), route)
	if dec.Action == guard.Render {
		return nil
	}

	if dec.Notice != "" {
		fmt.Fprintln(os.Stderr, dec.Notice)
	}
	if dec.Target == guard.LoginPath {
		return fmt.Errorf("not signed in (run 'luxebid login')")
	}
	return fmt.Errorf("not available for your account; see %s", dec.Target)
}

// requireAuth gates a command on any authenticated session.
func (a *app) requireAuth(path string) error {
	return a.guardRoute(guard.Route{Path: path})
}

// requireRole gates a command on a specific role.
func (a *app) requireRole(path string, role model.Role) error {
	return a.guardRoute(guard.Route{Path: path, Role: role})
}
