package domain

import "time"

// ProductLine identifies which product owns a scan project. The line
// determines the enabled scan frequency.
type ProductLine string

const (
	LineStandard ProductLine = "standard"
	LineAddon    ProductLine = "addon"
)

// Project is a remotely hosted scan project owned by an account. The
// project id is the stable identity; ownership never changes mid-run.
type Project struct {
	ID         string      `db:"project_id"`
	AccountID  string      `db:"account_id"`
	CampaignID string      `db:"campaign_id"`
	Line       ProductLine `db:"product_line"`
	CreatedAt  time.Time   `db:"creation_date"`
}
