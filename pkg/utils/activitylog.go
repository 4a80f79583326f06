package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/domain/activity"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/rs/zerolog/log"
)

// Activity describes one entry for the operator activity log.
type Activity struct {
	ProjectID    *uint
	Action       string
	ResourceType string
	ResourceID   string
	Before       any
	After        any
	Description  string
}

// LogActivity stores an activity entry. Failures are logged and never
// propagate; the mutation they describe has already committed.
var LogActivity = func(c *gin.Context, repo repository.ActivityRepo, actorID uint, a Activity) {
	if repo == nil {
		return
	}

	entry := &activity.Log{
		ProjectID:    a.ProjectID,
		UserID:       actorID,
		Action:       a.Action,
		ResourceType: a.ResourceType,
		ResourceID:   a.ResourceID,
		OldData:      marshalSnapshot(a.Before),
		NewData:      marshalSnapshot(a.After),
		Description:  a.Description,
	}
	if c != nil && c.Request != nil {
		entry.IPAddress = c.ClientIP()
		entry.UserAgent = c.GetHeader("User-Agent")
	}

	if err := repo.CreateActivityLog(entry); err != nil {
		log.Error().Err(err).
			Str("action", a.Action).
			Str("resource", a.ResourceType).
			Str("resource_id", a.ResourceID).
			Msg("failed to write activity log")
	}
}

func marshalSnapshot(v any) []byte {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Msg("activity snapshot marshal failed")
		return nil
	}
	return data
}
