package dashboard

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
)

type DashboardService interface {
	Stats(ctx context.Context, caller auth.Caller) (Stats, error)
}
