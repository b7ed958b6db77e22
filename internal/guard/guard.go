// Package guard decides, per navigation attempt, whether the current
// session may view a destination. Decisions are pure functions of the
// session and the route; the guard holds no state of its own.
package guard

import (
	"github.com/luxebid/luxebid/pkg/model"
)

// Well-known destinations.
const (
	LoginPath           = "/login"
	BuyerDashboardPath  = "/buyer-dashboard"
	SellerDashboardPath = "/seller-dashboard"
	AdminDashboardPath  = "/admin-dashboard"
)

// Route describes the access requirement of a destination.
type Route struct {
	// Path identifies the destination.
	Path string

	// Public routes render for anyone, authenticated or not.
	Public bool

	// Role restricts the route to one role. Empty means any
	// authenticated user.
	Role model.Role
}

// Action is the outcome kind of a guard evaluation.
type Action string

const (
	// Render means the destination may be shown.
	Render Action = "render"
	// Redirect means navigation is diverted to Decision.Target.
	Redirect Action = "redirect"
)

// Decision is the result of evaluating a navigation attempt.
type Decision struct {
	Action Action

	// Target is the redirect destination when Action is Redirect.
	Target string

	// Notice is a blocking message surfaced before the redirect.
	// Only admin-route mismatches set it.
	Notice string
}

// RoleHome returns the dashboard a role lands on.
func RoleHome(role model.Role) string {
	switch role {
	case model.RoleSeller:
		return SellerDashboardPath
	case model.RoleAdmin:
		return AdminDashboardPath
	default:
		return BuyerDashboardPath
	}
}

// Evaluate gates one navigation attempt. Unauthenticated sessions are
// sent to login with the intended destination discarded; a wrong-role
// session is sent to its own role's dashboard. Evaluation is
// synchronous and idempotent: the same session and route always yield
// the same decision.
func Evaluate(sess *model.Session, route Route) Decision {
	if route.Public {
		return Decision{Action: Render}
	}

	if sess == nil || sess.User == nil {
		return Decision{Action: Redirect, Target: LoginPath}
	}

	if route.Role == "" || sess.Role() == route.Role {
		return Decision{Action: Render}
	}

	dec := Decision{Action: Redirect, Target: RoleHome(sess.Role())}
	if route.Role == model.RoleAdmin {
		dec.Notice = "Admin access required. You have been redirected to your dashboard."
	}
	return dec
}
