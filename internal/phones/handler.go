package phones

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"phonehub/internal/scraper"
	"phonehub/internal/stream"
	"phonehub/pkg/models"
)

type Handler struct {
	Repo    *Repo
	Scraper *scraper.Client

	// Hub mirrors bulk progress to passive TCP/websocket observers; nil
	// disables mirroring.
	Hub *stream.Hub

	// Keepalive is the SSE idle heartbeat interval.
	Keepalive time.Duration
}

func NewHandler(repo *Repo, sc *scraper.Client, hub *stream.Hub, keepalive time.Duration) *Handler {
	if keepalive <= 0 {
		keepalive = 25 * time.Second
	}
	return &Handler{Repo: repo, Scraper: sc, Hub: hub, Keepalive: keepalive}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/brands", h.listBrands)
	r.GET("/brands/:brandSlug/models", h.listBrandModels)
	r.GET("/brands/:brandSlug/bulk/stream", h.bulkStream)
	r.GET("/phones", h.listStored)
	r.GET("/phones/:phoneSlug", h.getStored)
	r.POST("/phones/:phoneSlug", h.insertPhone)
}

func (h *Handler) listBrands(c *gin.Context) {
	brands, err := h.Scraper.Brands(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(brands), "items": brands})
}

func (h *Handler) listBrandModels(c *gin.Context) {
	page := parseInt(c.Query("page"), 1)
	res, err := h.Scraper.BrandModels(c.Request.Context(), c.Param("brandSlug"), page)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// insertPhone resolves one phone and upserts it. A single item is one unit
// of work: the first error surfaces straight to the caller.
func (h *Handler) insertPhone(c *gin.Context) {
	slug := c.Param("phoneSlug")
	ctx := c.Request.Context()

	rec, err := h.Scraper.PhoneDetails(ctx, slug)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if err := h.Repo.Upsert(ctx, slug, rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store failed"})
		return
	}

	p, err := h.Repo.GetBySlug(ctx, slug)
	if err != nil || p == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read back failed"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) listStored(c *gin.Context) {
	items, err := h.Repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(items), "items": items})
}

func (h *Handler) getStored(c *gin.Context) {
	p, err := h.Repo.GetBySlug(c.Request.Context(), c.Param("phoneSlug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// bulkStream runs a bulk scrape of one brand and streams its progress as
// server-sent events, one JSON event per message. Client disconnect cancels
// the job through the request context; rows persisted so far stay. A
// keepalive goes out whenever the stream has been idle for a full interval.
func (h *Handler) bulkStream(c *gin.Context) {
	brand := c.Param("brandSlug")
	ctx := c.Request.Context()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	send := func(e scraper.Event) {
		if h.Hub != nil {
			h.Hub.BroadcastJSON(e)
		}
		c.SSEvent("message", e)
		c.Writer.Flush()
	}

	// A dead store makes every item fail; refuse the whole job instead.
	if err := h.Repo.Ping(ctx); err != nil {
		send(scraper.FatalEvent("", fmt.Errorf("store unreachable: %w", err)))
		return
	}

	events := make(chan scraper.Event, 16)
	go func() {
		defer close(events)
		_, _ = h.Scraper.BulkInsert(ctx, brand, h.persist, scraper.SinkFunc(func(e scraper.Event) {
			select {
			case events <- e:
			case <-ctx.Done():
			}
		}))
	}()

	keep := time.NewTicker(h.Keepalive)
	defer keep.Stop()

	for {
		select {
		case e, ok := <-events:
			if !ok {
				return
			}
			send(e)
			keep.Reset(h.Keepalive)
		case <-keep.C:
			send(scraper.KeepaliveEvent())
		case <-ctx.Done():
			return
		}
	}
}

func (h *Handler) persist(ctx context.Context, slug string, rec models.PhoneRecord) error {
	return h.Repo.Upsert(ctx, slug, rec)
}

// statusFor maps scrape failures onto responses: a missing source page is
// the caller's 404, everything else is a bad gateway.
func statusFor(err error) int {
	var fe *scraper.FetchError
	if errors.As(err, &fe) && fe.Status == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
