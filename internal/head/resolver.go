package head

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/PanelKit_Go/internal/domain"
)

// Profile is a player identity a head renders
type Profile struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Resolver looks up the profile for a player name
type Resolver interface {
	Resolve(ctx context.Context, name string) (Profile, error)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(ctx context.Context, name string) (Profile, error)

func (f ResolverFunc) Resolve(ctx context.Context, name string) (Profile, error) {
	return f(ctx, name)
}

// OfflineResolver derives stable profile ids from names, without any lookup service
type OfflineResolver struct{}

func (OfflineResolver) Resolve(ctx context.Context, name string) (Profile, error) {
	if name == "" {
		return Profile{}, fmt.Errorf(ErrFmtEmptyName, domain.ErrUnknownPlayer)
	}
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	return Profile{
		ID:   uuid.NewMD5(uuid.NameSpaceOID, []byte(offlinePrefix+name)),
		Name: name,
	}, nil
}
