// Package store persists client-side state that must survive process
// restarts: the current session and short-lived hand-off values passed
// between flows (pending-OTP email, password-reset email).
package store

import (
	"context"

	"github.com/luxebid/luxebid/pkg/model"
)

// Store defines the durable local state of the LuxeBid client.
type Store interface {
	// Session persistence. At most one session is stored; saving
	// replaces any previous one.
	SaveSession(ctx context.Context, sess *model.Session) error
	LoadSession(ctx context.Context) (*model.Session, error)
	DeleteSession(ctx context.Context) error

	// Hand-off values are write-once-read-once: TakeHandoff returns
	// the stored value and removes it in the same call. A missing key
	// yields ("", false).
	PutHandoff(ctx context.Context, key, value string) error
	TakeHandoff(ctx context.Context, key string) (string, bool, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}

// Hand-off keys used by the account flows.
const (
	HandoffPendingOTPEmail = "pending_otp_email"
	HandoffResetEmail      = "reset_email"
)
