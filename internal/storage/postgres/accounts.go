package postgres

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
)

// AccountStatusStore answers "what is the business status of these
// accounts" from the account system's tables. Read-only.
type AccountStatusStore struct {
	db *sqlx.DB
}

func NewAccountStatusStore(db *sqlx.DB) *AccountStatusStore {
	return &AccountStatusStore{db: db}
}

// Statuses returns a status label for every requested account id that
// exists. Ids that are unknown to the account system are silently
// omitted; callers must treat absence as unknown, not active.
func (s *AccountStatusStore) Statuses(ctx context.Context, accountIDs []string) (map[string]domain.StatusLabel, error) {
	ids := numericIDs(accountIDs)
	if len(ids) == 0 {
		return map[string]domain.StatusLabel{}, nil
	}

	query := `
		WITH accounts AS (
			SELECT n.network_id AS account_id,
			       n.is_depleted,
			       n.is_paused,
			       pub.status AS publisher_status
			FROM sp_network_syndication n
			JOIN publishers pub ON pub.id = n.network_id
			WHERE n.network_id = ANY($1)
			UNION ALL
			SELECT sb.syndicator_id,
			       sb.is_depleted,
			       sv.is_paused,
			       pub.status
			FROM sp_syndication_base sb
			LEFT JOIN sp_syndication_v2 sv ON sv.syndicator_id = sb.syndicator_id
			JOIN publishers pub ON pub.id = sb.syndicator_id
			WHERE sb.syndicator_id = ANY($1)
			  AND sb.campaign_type = 'SPONSORED'
		)
		SELECT account_id,
		       CASE
		           WHEN publisher_status <> 'LIVE' THEN 'frozen_inactive'
		           WHEN is_paused = 1 THEN 'frozen_paused'
		           WHEN is_depleted = 1 THEN 'frozen_depleted'
		           ELSE 'active'
		       END AS status_label
		FROM accounts`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]domain.StatusLabel)
	for rows.Next() {
		var accountID int64
		var label string
		if err := rows.Scan(&accountID, &label); err != nil {
			return nil, err
		}
		result[strconv.FormatInt(accountID, 10)] = domain.StatusLabel(label)
	}

	return result, rows.Err()
}

func numericIDs(accountIDs []string) []int64 {
	seen := make(map[int64]struct{}, len(accountIDs))
	ids := make([]int64, 0, len(accountIDs))
	for _, raw := range accountIDs {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
