// Package handlers wires HTTP requests to the core components. It is glue
// only: validation of transport input, status codes and JSON shapes live
// here, business rules live in the packages it calls.
package handlers

import (
	"github.com/ErosMello/jornalescolar/auth"
	"github.com/ErosMello/jornalescolar/config"
	"github.com/ErosMello/jornalescolar/posts"
	"github.com/ErosMello/jornalescolar/ratings"
)

type Handlers struct {
	cfg     *config.Config
	gateway *auth.Gateway
	repo    *posts.Repository
	ratings *ratings.Store
}

func New(cfg *config.Config, gateway *auth.Gateway, repo *posts.Repository, store *ratings.Store) *Handlers {
	return &Handlers{cfg: cfg, gateway: gateway, repo: repo, ratings: store}
}
