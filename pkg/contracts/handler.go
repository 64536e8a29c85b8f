package contracts

import (
	"context"

	"github.com/julienschmidt/httprouter"
)

type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// Checker reports whether a dependency the service needs is usable.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}
