package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/draft"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/draft/service"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/events"
	"github.com/inkhaven/inkhaven/backend/go-services/pkg/metrics"
	"github.com/inkhaven/inkhaven/backend/go-services/pkg/middleware"
)

// writeError maps the draft core's tagged errors onto HTTP statuses:
// not-found -> 404, authorization -> 403, validation -> 400.
func writeError(c *gin.Context, err error) {
	var de *draft.Error
	if errors.As(err, &de) {
		status := http.StatusBadRequest
		switch de.Kind {
		case draft.KindNotFound:
			status = http.StatusNotFound
		case draft.KindUnauthorized:
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": de.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// RegisterDraftRoutes mounts the draft workspace API. The viewer id is
// resolved upstream by middleware.ViewerMiddleware.
func RegisterDraftRoutes(r *gin.Engine, svc *service.Service) {
	r.POST("/api/drafts", func(c *gin.Context) {
		var in draft.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if in.OwnerID == "" {
			in.OwnerID = middleware.ViewerID(c)
		}
		d, err := svc.CreateDraft(in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, d)
	})

	r.GET("/api/drafts", func(c *gin.Context) {
		list := svc.ListAccessibleDrafts(middleware.ViewerID(c))
		if list == nil {
			list = []draft.Draft{}
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/api/drafts/buckets", func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.ListDraftBuckets(middleware.ViewerID(c)))
	})

	r.GET("/api/drafts/collaborators", func(c *gin.Context) {
		list, err := svc.ListPotentialCollaborators(c.Request.Context(), middleware.ViewerID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/api/drafts/:id", func(c *gin.Context) {
		d, err := svc.GetDraftWorkspace(c.Param("id"), middleware.ViewerID(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	})

	r.PATCH("/api/drafts/:id", func(c *gin.Context) {
		var p draft.Patch
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		d, err := svc.UpdateDraft(c.Param("id"), middleware.ViewerID(c), p)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	})

	r.GET("/api/drafts/:id/revisions", func(c *gin.Context) {
		revs, err := svc.ListDraftRevisions(c.Param("id"), middleware.ViewerID(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, revs)
	})

	r.GET("/api/drafts/:id/revisions/compare", func(c *gin.Context) {
		base := c.Query("base")
		target := c.Query("target")
		if base == "" || target == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "base and target revision ids are required"})
			return
		}
		segs, err := svc.CompareDraftRevisions(c.Param("id"), base, target, middleware.ViewerID(c))
		if err != nil {
			writeError(c, err)
			return
		}
		if segs == nil {
			segs = []draft.DiffSegment{}
		}
		c.JSON(http.StatusOK, gin.H{"segments": segs})
	})

	r.POST("/api/drafts/:id/comments", func(c *gin.Context) {
		var in draft.CommentInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cm, err := svc.CreateDraftComment(c.Request.Context(), c.Param("id"), middleware.ViewerID(c), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cm)
	})

	r.GET("/api/drafts/:id/comments", func(c *gin.Context) {
		list, err := svc.ListDraftComments(c.Param("id"), middleware.ViewerID(c))
		if err != nil {
			writeError(c, err)
			return
		}
		if list == nil {
			list = []draft.Comment{}
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/api/drafts/:id/events", func(c *gin.Context) {
		streamDraftEvents(c, svc)
	})
}

// streamDraftEvents serves the live event stream for one draft as
// server-sent events: a `ready` handshake, the current full draft state,
// then every draft:updated / draft:commented event until the client goes
// away. Subscriptions are torn down on disconnect so listeners don't leak.
func streamDraftEvents(c *gin.Context, svc *service.Service) {
	draftID := c.Param("id")
	viewerID := middleware.ViewerID(c)

	d, err := svc.GetDraftWorkspace(draftID, viewerID)
	if err != nil {
		writeError(c, err)
		return
	}

	// modest buffer: a stalled client drops events rather than blocking the
	// publisher
	ch := make(chan events.Event, 32)
	forward := func(ev events.Event) {
		if ev.DraftID != draftID {
			return
		}
		select {
		case ch <- ev:
		default:
		}
	}
	cancelUpdated := svc.Emitter().Subscribe(events.KindDraftUpdated, forward)
	cancelCommented := svc.Emitter().Subscribe(events.KindDraftCommented, forward)
	defer cancelUpdated()
	defer cancelCommented()

	metrics.StreamSubscribers.Inc()
	defer metrics.StreamSubscribers.Dec()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.SSEvent("ready", gin.H{"draftId": draftID})
	c.SSEvent("draft", d)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case ev := <-ch:
			c.SSEvent(ev.Kind, ev.Payload)
			return true
		}
	})
}
