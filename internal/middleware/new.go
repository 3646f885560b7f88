package middleware

import "fluency-srv/pkg/log"

// Middleware bundles the dependencies route-level middlewares need.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
