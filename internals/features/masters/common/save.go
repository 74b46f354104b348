package common

import (
	"time"

	"gorm.io/gorm"
)

func ActorPtr(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

// ApplyStatus maps the payload status onto the soft-delete marker during
// an update. status 0 deactivates, 1 reactivates, nil leaves it alone.
func ApplyStatus(a *Audit, status *int, actorID uint) {
	if status == nil {
		return
	}
	if *status == 0 {
		a.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
		a.DeletedByID = ActorPtr(actorID)
	} else {
		a.DeletedAt = gorm.DeletedAt{}
		a.DeletedByID = nil
	}
}
