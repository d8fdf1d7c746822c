package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/geoedge"
)

// StatusSource answers the business status of a set of accounts. Ids
// unknown to the source are omitted from the result map; callers treat
// absence as unknown.
type StatusSource interface {
	Statuses(ctx context.Context, accountIDs []string) (map[string]domain.StatusLabel, error)
}

// ProjectInventory maps accounts to the scan projects they own.
type ProjectInventory interface {
	ProjectsFor(ctx context.Context, accountIDs []string, allProjects bool, lookbackDays int) ([]domain.Project, error)
	ProjectsByID(ctx context.Context, projectIDs []string) ([]domain.Project, error)
	ConfiguredAccountIDs(ctx context.Context) ([]string, error)
}

// ConfigClient drives the remote scan-project API.
type ConfigClient interface {
	GetConfig(ctx context.Context, projectID string) (domain.ScanConfig, error)
	SetConfig(ctx context.Context, projectID string, desired domain.ScanConfig) error
	List(ctx context.Context, cursor string) ([]geoedge.RemoteProject, string, error)
}

// BaselineStore persists the previous run's status snapshot.
type BaselineStore interface {
	Load() *domain.Baseline
	Save(statuses map[string]domain.StatusLabel) error
}

// Reporter consumes the structured run report; all human-facing
// formatting happens on its side.
type Reporter interface {
	Publish(ctx context.Context, rep *domain.RunReport) error
	Close() error
}
