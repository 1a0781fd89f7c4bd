package impl

import (
	"context"

	deliverycontext "habit/internal/delivery/context"
	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"

	"github.com/pkg/errors"
)

// ownershipGuard restricts a mutation to the member who created the resource.
type ownershipGuard[T entity.Owned] struct {
	resource string
	identify func(ctx context.Context) *entity.Identity
	load     func(ctx context.Context, id int64) (T, error)
	// notFound is the repository sentinel load returns for a missing resource.
	notFound error
}

func newOwnershipGuard[T entity.Owned](resource string, load func(ctx context.Context, id int64) (T, error), notFound error) ownershipGuard[T] {
	return ownershipGuard[T]{
		resource: resource,
		identify: deliverycontext.IdentityFromContext,
		load:     load,
		notFound: notFound,
	}
}

// check returns the resource and the caller identity. The identity is checked
// first, then existence, then ownership.
func (g ownershipGuard[T]) check(ctx context.Context, id int64) (T, *entity.Identity, error) {
	var zero T

	identity, err := requireIdentity(ctx, g.identify)
	if err != nil {
		return zero, nil, err
	}

	resource, err := g.load(ctx, id)
	if err != nil {
		if errors.Is(err, g.notFound) {
			return zero, nil, domainerrors.ErrNotFound.WrapMessage(g.resource + " does not exist")
		}

		return zero, nil, errors.Wrapf(err, "failed to load %s", g.resource)
	}

	if resource.OwnerUsername() != identity.Username {
		return zero, nil, domainerrors.ErrForbidden.WrapMessage("member is not the creator of this " + g.resource)
	}

	return resource, identity, nil
}

func requireIdentity(ctx context.Context, identify func(ctx context.Context) *entity.Identity) (*entity.Identity, error) {
	identity := identify(ctx)
	if identity == nil || identity.ID == 0 || identity.Username == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token does not contain the member identity")
	}

	return identity, nil
}
