package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

// BulkUpdateStatus toggles the soft-delete marker for a list of ids.
// status 0 deactivates (sets deleted_at/deleted_by_id), 1 reactivates.
// Any id that does not exist (active or not) aborts the whole batch.
func BulkUpdateStatus(tx *gorm.DB, table, entity string, ids []uint, status int, actorID uint) error {
	if err := requireAll(tx, table, entity, ids); err != nil {
		return err
	}

	var updates map[string]interface{}
	if status == 0 {
		updates = map[string]interface{}{
			"deleted_at":    time.Now(),
			"deleted_by_id": actorID,
		}
	} else {
		updates = map[string]interface{}{
			"deleted_at":    nil,
			"deleted_by_id": nil,
			"updated_by_id": actorID,
		}
	}
	return tx.Table(table).Where("id IN ?", ids).Updates(updates).Error
}

// BulkHardDelete removes rows permanently. A single missing id rolls the
// whole batch back; there are no partial deletes.
func BulkHardDelete(tx *gorm.DB, table, entity string, ids []uint) error {
	if err := requireAll(tx, table, entity, ids); err != nil {
		return err
	}
	return tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE id IN ?", table), ids).Error
}

func requireAll(tx *gorm.DB, table, entity string, ids []uint) error {
	if len(ids) == 0 {
		return helper.Business("%s ids are required", entity)
	}
	// clients may repeat an id; count distinct ids only
	unique := dedupe(ids)
	var count int64
	if err := tx.Table(table).Where("id IN ?", unique).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(unique)) {
		return helper.Business("%s not found", entity)
	}
	return nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// TranslateDBError maps a unique-constraint violation raised by the
// database to the same duplicate error the pre-insert check produces, so
// two racing saves of one natural key both answer "already taken".
func TranslateDBError(err error, naturalKey string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return helper.Business("%s already taken", naturalKey)
	}
	return err
}
