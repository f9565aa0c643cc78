package lock

import (
	"context"
	"errors"
)

// ErrLocked indica que outro ciclo já possui a chave
var ErrLocked = errors.New("lock em uso por outro processo")

// Release libera a chave adquirida; chamar mais de uma vez é seguro
type Release func(ctx context.Context) error

type Locker interface {
	Acquire(ctx context.Context, key string) (Release, error)
}
