package ports

import (
	"context"

	"dilemma/internal/domain"
)

// ConfigLoader supplies the pool configuration from wherever it is stored.
// Implementations overlay stored values on top of the caller's base config
// and leave unset fields alone.
type ConfigLoader interface {
	Load(ctx context.Context, base domain.PoolConfig) (domain.PoolConfig, error)
}
