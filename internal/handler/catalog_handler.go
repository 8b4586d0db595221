package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nearest-throne/service-restroom/internal/application"
	"github.com/nearest-throne/service-restroom/internal/domain/restroom"
	"github.com/nearest-throne/service-restroom/internal/geo"
	"github.com/nearest-throne/service-restroom/internal/geocode"
	"github.com/nearest-throne/service-restroom/internal/location"
	"github.com/nearest-throne/service-restroom/internal/response"
)

// CatalogHandler dispatches view-layer intents into the catalog service.
type CatalogHandler struct {
	service  *application.CatalogService
	geocoder *geocode.NominatimClient
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *application.CatalogService, geocoder *geocode.NominatimClient) *CatalogHandler {
	return &CatalogHandler{service: service, geocoder: geocoder}
}

// RegisterRoutes registers all catalog routes.
func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	{
		api.GET("/state", h.GetState)
		api.GET("/events", h.StreamEvents)

		api.GET("/restrooms", h.ListFiltered)
		api.POST("/restrooms", h.AddRestroom)
		api.GET("/restrooms/:id/travel", h.GetTravelEstimates)
		api.GET("/restrooms/:id/reviews", h.GetReviews)
		api.POST("/restrooms/sort-by-distance", h.SortByDistance)

		api.PUT("/search", h.SetSearchQuery)
		api.PATCH("/filters", h.SetFilters)
		api.DELETE("/filters", h.ResetFilters)
		api.PUT("/selection", h.SetSelection)
		api.PUT("/viewport", h.SetViewport)

		api.POST("/location", h.AcquireLocation)
		api.DELETE("/location", h.ClearLocation)
		api.POST("/directions", h.GetDirections)
		api.DELETE("/directions", h.ClearDirections)

		api.GET("/addresses", h.SearchAddresses)
	}
}

// GetState returns the full state snapshot.
func (h *CatalogHandler) GetState(c *gin.Context) {
	response.Success(c, h.service.Snapshot())
}

// ListFiltered returns the filtered restroom collection.
func (h *CatalogHandler) ListFiltered(c *gin.Context) {
	response.Success(c, h.service.Snapshot().Filtered)
}

// AddRestroom validates the draft and appends it to the catalog. The
// catalog itself trusts its caller; this is the validation boundary.
func (h *CatalogHandler) AddRestroom(c *gin.Context) {
	var draft restroom.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := draft.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, _ := h.service.AddRestroom(draft)
	response.Created(c, entry)
}

type searchRequest struct {
	Query string `json:"query"`
}

// SetSearchQuery updates the search text.
func (h *CatalogHandler) SetSearchQuery(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, h.service.SetSearchQuery(req.Query))
}

// SetFilters folds a partial facet update into the active criteria.
func (h *CatalogHandler) SetFilters(c *gin.Context) {
	var update restroom.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, h.service.SetFilters(update))
}

// ResetFilters restores open criteria.
func (h *CatalogHandler) ResetFilters(c *gin.Context) {
	response.Success(c, h.service.ResetFilters())
}

type selectionRequest struct {
	RestroomID *uuid.UUID `json:"restroom_id"`
}

// SetSelection selects a restroom by id, or clears the selection when the
// id is null.
func (h *CatalogHandler) SetSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.RestroomID == nil {
		response.Success(c, h.service.SetSelected(nil))
		return
	}

	r, err := h.service.FindByID(*req.RestroomID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, h.service.SetSelected(&r))
}

type viewportRequest struct {
	Center restroom.Position `json:"center" binding:"required"`
	Zoom   *int              `json:"zoom"`
}

// SetViewport re-centers the map; zoom defaults to the close level.
func (h *CatalogHandler) SetViewport(c *gin.Context) {
	var req viewportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, h.service.SetMapCenter(req.Center, req.Zoom))
}

// AcquireLocation records a client-reported position fix when the body
// carries one, otherwise acquires a fix through the location provider.
// Failures are state, not HTTP errors.
func (h *CatalogHandler) AcquireLocation(c *gin.Context) {
	if c.Request.ContentLength > 0 {
		var fix location.Fix
		if err := c.ShouldBindJSON(&fix); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		response.Success(c, h.service.SetUserLocation(&fix))
		return
	}
	response.Success(c, h.service.GetUserLocation(c.Request.Context()))
}

// ClearLocation discards the recorded user location.
func (h *CatalogHandler) ClearLocation(c *gin.Context) {
	response.Success(c, h.service.SetUserLocation(nil))
}

type directionsRequest struct {
	RestroomID uuid.UUID `json:"restroom_id" binding:"required"`
}

// GetDirections fetches a route to the given restroom.
func (h *CatalogHandler) GetDirections(c *gin.Context) {
	var req directionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dest, err := h.service.FindByID(req.RestroomID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, h.service.GetDirections(c.Request.Context(), dest))
}

// ClearDirections deactivates the route overlay.
func (h *CatalogHandler) ClearDirections(c *gin.Context) {
	response.Success(c, h.service.ClearDirections())
}

// SortByDistance stably reorders the filtered collection by distance.
func (h *CatalogHandler) SortByDistance(c *gin.Context) {
	response.Success(c, h.service.SortByDistance())
}

type travelEstimates struct {
	Distance string `json:"distance"`
	Walking  string `json:"walking"`
	Driving  string `json:"driving"`
}

// GetTravelEstimates returns the formatted distance and walking/driving
// times for one restroom. Fields are empty until a user location is known.
func (h *CatalogHandler) GetTravelEstimates(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid restroom ID")
		return
	}

	r, err := h.service.FindByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, travelEstimates{
		Distance: geo.FormatDistance(r.Distance),
		Walking:  geo.WalkingEstimate(r.Distance),
		Driving:  geo.DrivingEstimate(r.Distance),
	})
}

// SearchAddresses proxies the address-lookup collaborator for the creation
// form. Queries under three characters return no suggestions.
func (h *CatalogHandler) SearchAddresses(c *gin.Context) {
	suggestions, err := h.geocoder.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, suggestions)
}

// StreamEvents streams state snapshots over SSE, starting with the current
// one. Slow consumers drop intermediate snapshots rather than block the
// catalog.
func (h *CatalogHandler) StreamEvents(c *gin.Context) {
	updates := make(chan application.Snapshot, 8)
	unsubscribe := h.service.Subscribe(func(snap application.Snapshot) {
		select {
		case updates <- snap:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Connection", "keep-alive")

	c.SSEvent("state", h.service.Snapshot())
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case snap := <-updates:
			c.SSEvent("state", snap)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// Health reports service liveness.
func Health(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
	}
}
