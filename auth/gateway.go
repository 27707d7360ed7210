// Package auth gates sign-in to institutional accounts and resolves
// per-email permissions.
package auth

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ErosMello/jornalescolar/apperrors"
	"github.com/ErosMello/jornalescolar/models"
)

// Identity is an authenticated principal as issued by the provider.
type Identity struct {
	UID           string
	Email         string
	EmailVerified bool
}

// Provider performs the credential check itself.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (Identity, error)
	SignOut(ctx context.Context, uid string) error
	Register(ctx context.Context, email, password string) (Identity, error)
}

// PermissionStore reads and creates the per-email authorization records.
type PermissionStore interface {
	Get(ctx context.Context, email string) (*models.UserPermission, error)
	Create(ctx context.Context, perm models.UserPermission) error
}

type Gateway struct {
	provider    Provider
	permissions PermissionStore
	domain      string
}

func NewGateway(provider Provider, permissions PermissionStore, allowedDomain string) *Gateway {
	return &Gateway{provider: provider, permissions: permissions, domain: allowedDomain}
}

// SignIn rejects any address outside the institutional domain before the
// provider is ever consulted. An identity whose email is not yet verified
// is signed straight back out and rejected.
func (g *Gateway) SignIn(ctx context.Context, email, password string) (Identity, error) {
	if !strings.HasSuffix(email, g.domain) {
		return Identity{}, apperrors.New(apperrors.InvalidCredential, "only institutional emails are allowed")
	}

	identity, err := g.provider.SignIn(ctx, email, password)
	if err != nil {
		return Identity{}, err
	}

	if !identity.EmailVerified {
		if err := g.provider.SignOut(ctx, identity.UID); err != nil {
			logrus.WithError(err).Warn("forced sign-out failed")
		}
		return Identity{}, apperrors.New(apperrors.InvalidCredential, "verify your email to activate the account")
	}

	return identity, nil
}

func (g *Gateway) SignOut(ctx context.Context, uid string) error {
	return g.provider.SignOut(ctx, uid)
}

// SignUp creates the credential document and the default permission record.
// The domain gate applies the same way it does for sign-in; the account
// starts unverified and never as admin.
func (g *Gateway) SignUp(ctx context.Context, email, password string) (Identity, error) {
	if !strings.HasSuffix(email, g.domain) {
		return Identity{}, apperrors.New(apperrors.InvalidCredential, "only institutional emails are allowed")
	}

	identity, err := g.provider.Register(ctx, email, password)
	if err != nil {
		return Identity{}, err
	}

	if err := g.permissions.Create(ctx, defaultPermission(email)); err != nil {
		logrus.WithError(err).WithField("email", email).Warn("default permission record not created")
	}
	return identity, nil
}

// Permission looks up the record for the identity's email, creating the
// {isAdmin:false} default on first sight. The created record is returned in
// the same call. A store failure degrades to non-admin.
func (g *Gateway) Permission(ctx context.Context, identity Identity) models.UserPermission {
	perm, err := g.permissions.Get(ctx, identity.Email)
	if err == nil && perm != nil {
		return *perm
	}
	if err != nil && apperrors.KindOf(err) != apperrors.UserNotFound {
		logrus.WithError(err).WithField("email", identity.Email).Warn("permission lookup failed")
		return defaultPermission(identity.Email)
	}

	created := defaultPermission(identity.Email)
	if err := g.permissions.Create(ctx, created); err != nil {
		logrus.WithError(err).WithField("email", identity.Email).Warn("permission record not created")
	}
	return created
}

func defaultPermission(email string) models.UserPermission {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	return models.UserPermission{Email: email, IsAdmin: false, Name: name}
}
