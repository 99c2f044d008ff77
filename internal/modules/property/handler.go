package property

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"dreamsproperty/internal/domain"
	"dreamsproperty/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListProperties handles GET /api/properties
func (h *Handler) ListProperties(c *gin.Context) {
	properties, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err, "Server error retrieving properties")
		return
	}

	c.JSON(http.StatusOK, properties)
}

// GetProperty handles GET /api/properties/:id
func (h *Handler) GetProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	property, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Server error retrieving property")
		return
	}

	c.JSON(http.StatusOK, property)
}

// CreateProperty handles POST /api/properties
func (h *Handler) CreateProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "Server error creating property")
		return
	}

	c.JSON(http.StatusCreated, property)
}

// UpdateProperty handles PUT /api/properties/:id
func (h *Handler) UpdateProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err, "Server error updating property")
		return
	}

	c.JSON(http.StatusOK, property)
}

// DeleteProperty handles DELETE /api/properties/:id
func (h *Handler) DeleteProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Server error deleting property")
		return
	}

	response.Message(c, http.StatusOK, "Property deleted successfully")
}

// RegisterRoutes registers the property routes on the given group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	properties := r.Group("/properties")
	{
		properties.GET("", h.ListProperties)
		properties.GET("/:id", h.GetProperty)
		properties.POST("", h.CreateProperty)
		properties.PUT("/:id", h.UpdateProperty)
		properties.DELETE("/:id", h.DeleteProperty)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid property ID")
		return 0, false
	}
	return id, true
}

// handleError maps service errors onto the API's status codes. Store
// details are logged, never returned to the client.
func handleError(c *gin.Context, err error, serverMessage string) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		response.Error(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, domain.ErrPropertyNotFound):
		response.Error(c, http.StatusNotFound, "Property not found")
	default:
		log.Printf("property: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.Error(c, http.StatusInternalServerError, serverMessage)
	}
}
