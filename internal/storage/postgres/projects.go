package postgres

import (
	"context"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
)

// ProjectStore maps accounts to the scan projects they own. Read-only.
type ProjectStore struct {
	db *sqlx.DB
}

func NewProjectStore(db *sqlx.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

type projectRow struct {
	ProjectID   string    `db:"project_id"`
	CampaignID  int64     `db:"campaign_id"`
	AccountID   int64     `db:"account_id"`
	ProductLine string    `db:"product_line"`
	CreatedAt   time.Time `db:"creation_date"`
}

// ProjectsFor returns the projects owned by the given accounts. With
// allProjects set, every project is returned regardless of age; this is
// the frozen-account path, where all scanning has to stop. Otherwise the
// result is limited to projects created within lookbackDays, which
// bounds the query for active accounts.
func (s *ProjectStore) ProjectsFor(ctx context.Context, accountIDs []string, allProjects bool, lookbackDays int) ([]domain.Project, error) {
	ids := numericIDs(accountIDs)
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT p.project_id,
		       p.campaign_id,
		       c.syndicator_id AS account_id,
		       CASE WHEN c.campaign_type = 'APCAMPAIGN' THEN 'addon' ELSE 'standard' END AS product_line,
		       p.creation_date
		FROM geo_edge_projects p
		JOIN sp_campaigns c ON c.id = p.campaign_id
		WHERE c.syndicator_id = ANY($1)`
	args := []interface{}{pq.Array(ids)}

	if !allProjects {
		query += `
		  AND p.creation_date >= NOW() - make_interval(days => $2)`
		args = append(args, lookbackDays)
	}
	query += `
		ORDER BY p.creation_date DESC`

	var rows []projectRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, r := range rows {
		projects = append(projects, domain.Project{
			ID:         r.ProjectID,
			AccountID:  strconv.FormatInt(r.AccountID, 10),
			CampaignID: strconv.FormatInt(r.CampaignID, 10),
			Line:       domain.ProductLine(r.ProductLine),
			CreatedAt:  r.CreatedAt,
		})
	}

	return projects, nil
}

// ProjectsByID resolves remote project ids to their owning accounts.
// Ids unknown to the inventory are omitted from the result.
func (s *ProjectStore) ProjectsByID(ctx context.Context, projectIDs []string) ([]domain.Project, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT p.project_id,
		       p.campaign_id,
		       c.syndicator_id AS account_id,
		       CASE WHEN c.campaign_type = 'APCAMPAIGN' THEN 'addon' ELSE 'standard' END AS product_line,
		       p.creation_date
		FROM geo_edge_projects p
		JOIN sp_campaigns c ON c.id = p.campaign_id
		WHERE p.project_id = ANY($1)`

	var rows []projectRow
	if err := s.db.SelectContext(ctx, &rows, query, pq.Array(projectIDs)); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, r := range rows {
		projects = append(projects, domain.Project{
			ID:         r.ProjectID,
			AccountID:  strconv.FormatInt(r.AccountID, 10),
			CampaignID: strconv.FormatInt(r.CampaignID, 10),
			Line:       domain.ProductLine(r.ProductLine),
			CreatedAt:  r.CreatedAt,
		})
	}

	return projects, nil
}

// ConfiguredAccountIDs returns the accounts that currently own at least
// one scan project; used when the run is not given an explicit account
// list.
func (s *ProjectStore) ConfiguredAccountIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT c.syndicator_id
		FROM geo_edge_projects p
		JOIN sp_campaigns c ON c.id = p.campaign_id
		ORDER BY c.syndicator_id`

	var ids []int64
	if err := s.db.SelectContext(ctx, &ids, query); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, strconv.FormatInt(id, 10))
	}
	return out, nil
}
