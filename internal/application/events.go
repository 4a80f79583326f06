package application

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/metrics"
	"github.com/linskybing/tracker-go/internal/notify"
)

func publish(p notify.Publisher, typ string, projectID, entityID, actorID uint) {
	metrics.DomainEvents.WithLabelValues(typ).Inc()
	if p == nil {
		return
	}
	p.Publish(notify.Event{
		Type:      typ,
		ProjectID: projectID,
		EntityID:  entityID,
		ActorID:   actorID,
		At:        time.Now().UTC(),
	})
}

func requestContext(c *gin.Context) context.Context {
	if c != nil && c.Request != nil {
		return c.Request.Context()
	}
	return context.Background()
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
