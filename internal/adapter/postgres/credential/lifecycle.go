// Package credential implements persistence for the credential assets of a
// device: iCloud profiles, social accounts and proxies. All three share the
// batch correlation columns (status, batch_id, archived_at).
package credential

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

// latestBatchID returns the batch id of the most recently created row of
// table on the device whose status is one of statuses and whose batch id is
// set. No such row yields (nil, nil); any other failure is returned.
func latestBatchID(ctx context.Context, q postgres.Querier, table string, deviceID uuid.UUID, statuses ...domain.AssetStatus) (*uuid.UUID, error) {
	sql, args, err := postgres.Builder.
		Select("batch_id").
		From(table).
		Where(sq.Eq{"device_id": deviceID, "status": statusStrings(statuses)}).
		Where(sq.NotEq{"batch_id": nil}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var id uuid.UUID
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if postgres.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s latest batch for device %s: %w", table, deviceID, err)
	}
	return &id, nil
}

// archiveUpdate flips rows to archived. The batch id is stamped only where
// none was assigned before.
func archiveUpdate(table string, batchID uuid.UUID, now time.Time) sq.UpdateBuilder {
	return postgres.Builder.
		Update(table).
		Set("batch_id", sq.Expr("COALESCE(batch_id, ?)", batchID)).
		Set("status", string(domain.AssetStatusArchived)).
		Set("archived_at", now).
		Set("updated_at", now).
		Where(sq.NotEq{"status": string(domain.AssetStatusArchived)})
}

// archiveByDevice archives every live row of table on the device and
// returns how many rows changed.
func archiveByDevice(ctx context.Context, q postgres.Querier, table string, deviceID, batchID uuid.UUID, now time.Time) (int64, error) {
	n, err := postgres.Exec(ctx, q, archiveUpdate(table, batchID, now).Where(sq.Eq{"device_id": deviceID}))
	if err != nil {
		return 0, fmt.Errorf("archive %s for device %s: %w", table, deviceID, err)
	}
	return n, nil
}

func statusStrings(statuses []domain.AssetStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
