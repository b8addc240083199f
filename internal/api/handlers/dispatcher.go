package handlers

import (
	"context"
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/services"
)

// Dispatcher answers report and status queries by simulating the day.
type Dispatcher interface {
	Report(ctx context.Context) (*services.Report, error)
	StatusAt(ctx context.Context, t domain.TimeOfDay) ([]services.PackageStatus, error)
	PackageAt(ctx context.Context, id int, t domain.TimeOfDay) (services.PackageStatus, error)
	PackageFinal(ctx context.Context, id int) (services.PackageStatus, error)
}
