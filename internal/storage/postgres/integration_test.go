//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_read_contract.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM geo_edge_projects")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sp_campaigns")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sp_network_syndication")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sp_syndication_v2")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sp_syndication_base")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM publishers")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) seedPublisher(id int64, status string) {
	_, err := s.db.ExecContext(s.ctx,
		"INSERT INTO publishers (id, name, status) VALUES ($1, $2, $3)",
		id, "publisher", status)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) seedNetworkAccount(id int64, status string, paused, depleted int) {
	s.seedPublisher(id, status)
	_, err := s.db.ExecContext(s.ctx,
		"INSERT INTO sp_network_syndication (network_id, is_paused, is_depleted) VALUES ($1, $2, $3)",
		id, paused, depleted)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) seedProject(projectID string, campaignID, accountID int64, campaignType string, createdAt time.Time) {
	_, err := s.db.ExecContext(s.ctx,
		"INSERT INTO sp_campaigns (id, syndicator_id, campaign_type) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
		campaignID, accountID, campaignType)
	s.Require().NoError(err)
	_, err = s.db.ExecContext(s.ctx,
		"INSERT INTO geo_edge_projects (project_id, campaign_id, creation_date) VALUES ($1, $2, $3)",
		projectID, campaignID, createdAt)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) TestAccountStatusStore_NetworkAccounts() {
	s.seedNetworkAccount(1001, "LIVE", 0, 0)
	s.seedNetworkAccount(1002, "PAUSED", 0, 0)
	s.seedNetworkAccount(1003, "LIVE", 1, 0)
	s.seedNetworkAccount(1004, "LIVE", 0, 1)

	store := NewAccountStatusStore(s.db)
	statuses, err := store.Statuses(s.ctx, []string{"1001", "1002", "1003", "1004"})
	s.NoError(err)

	s.Equal(domain.StatusActive, statuses["1001"])
	s.Equal(domain.StatusFrozenInactive, statuses["1002"])
	s.Equal(domain.StatusFrozenPaused, statuses["1003"])
	s.Equal(domain.StatusFrozenDepleted, statuses["1004"])
}

func (s *PostgresIntegrationSuite) TestAccountStatusStore_SyndicatorAccounts() {
	s.seedPublisher(2001, "LIVE")
	_, err := s.db.ExecContext(s.ctx,
		"INSERT INTO sp_syndication_base (syndicator_id, campaign_type, is_depleted) VALUES ($1, 'SPONSORED', 1)", 2001)
	s.Require().NoError(err)
	_, err = s.db.ExecContext(s.ctx,
		"INSERT INTO sp_syndication_v2 (syndicator_id, is_paused) VALUES ($1, 0)", 2001)
	s.Require().NoError(err)

	store := NewAccountStatusStore(s.db)
	statuses, err := store.Statuses(s.ctx, []string{"2001"})
	s.NoError(err)
	s.Equal(domain.StatusFrozenDepleted, statuses["2001"])
}

func (s *PostgresIntegrationSuite) TestAccountStatusStore_UnknownIDsOmitted() {
	s.seedNetworkAccount(1001, "LIVE", 0, 0)

	store := NewAccountStatusStore(s.db)
	statuses, err := store.Statuses(s.ctx, []string{"1001", "9999", "not-a-number"})
	s.NoError(err)

	s.Len(statuses, 1)
	s.Contains(statuses, "1001")
	s.NotContains(statuses, "9999")
}

func (s *PostgresIntegrationSuite) TestAccountStatusStore_EmptyInput() {
	store := NewAccountStatusStore(s.db)
	statuses, err := store.Statuses(s.ctx, nil)
	s.NoError(err)
	s.Empty(statuses)
}

func (s *PostgresIntegrationSuite) TestProjectStore_LookbackWindow() {
	s.seedPublisher(1001, "LIVE")
	now := time.Now()
	s.seedProject("p-recent", 10, 1001, "SPONSORED", now.Add(-24*time.Hour))
	s.seedProject("p-old", 11, 1001, "SPONSORED", now.Add(-90*24*time.Hour))

	store := NewProjectStore(s.db)

	recent, err := store.ProjectsFor(s.ctx, []string{"1001"}, false, 30)
	s.NoError(err)
	s.Len(recent, 1)
	s.Equal("p-recent", recent[0].ID)

	all, err := store.ProjectsFor(s.ctx, []string{"1001"}, true, 0)
	s.NoError(err)
	s.Len(all, 2)
}

func (s *PostgresIntegrationSuite) TestProjectStore_ProductLine() {
	s.seedPublisher(1001, "LIVE")
	now := time.Now()
	s.seedProject("p-std", 10, 1001, "SPONSORED", now)
	s.seedProject("p-addon", 11, 1001, "APCAMPAIGN", now)

	store := NewProjectStore(s.db)
	projects, err := store.ProjectsFor(s.ctx, []string{"1001"}, true, 0)
	s.NoError(err)
	s.Require().Len(projects, 2)

	byID := map[string]domain.Project{}
	for _, p := range projects {
		byID[p.ID] = p
	}
	s.Equal(domain.LineStandard, byID["p-std"].Line)
	s.Equal(domain.LineAddon, byID["p-addon"].Line)
	s.Equal("1001", byID["p-std"].AccountID)
}

func (s *PostgresIntegrationSuite) TestProjectStore_ProjectsByID() {
	s.seedPublisher(1001, "LIVE")
	s.seedProject("p-1", 10, 1001, "SPONSORED", time.Now())

	store := NewProjectStore(s.db)
	projects, err := store.ProjectsByID(s.ctx, []string{"p-1", "p-unknown"})
	s.NoError(err)
	s.Require().Len(projects, 1)
	s.Equal("p-1", projects[0].ID)
	s.Equal("1001", projects[0].AccountID)
}

func (s *PostgresIntegrationSuite) TestProjectStore_ConfiguredAccountIDs() {
	s.seedPublisher(1001, "LIVE")
	s.seedPublisher(2002, "LIVE")
	now := time.Now()
	s.seedProject("p-1", 10, 1001, "SPONSORED", now)
	s.seedProject("p-2", 11, 1001, "SPONSORED", now)
	s.seedProject("p-3", 12, 2002, "APCAMPAIGN", now)

	store := NewProjectStore(s.db)
	ids, err := store.ConfiguredAccountIDs(s.ctx)
	s.NoError(err)
	s.Equal([]string{"1001", "2002"}, ids)
}
