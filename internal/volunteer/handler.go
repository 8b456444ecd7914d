package volunteer

import (
	"net/http"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type VolunteerHandler struct {
	volunteerService *VolunteerService
}

func NewVolunteerHandler(volunteerService *VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{
		volunteerService: volunteerService,
	}
}

// RegisterRoutes mounts the volunteer endpoints on r
func (h *VolunteerHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/volunteers", h.Create)
	r.GET("/volunteers", h.List)
	r.GET("/volunteers/:id", h.Get)
	r.PUT("/volunteers/:id", h.Update)
	r.DELETE("/volunteers/:id", h.Delete)
}

func (h *VolunteerHandler) Create(c *gin.Context) {
	var request CreateVolunteerRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.volunteerService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *VolunteerHandler) List(c *gin.Context) {
	var request ListVolunteersRequest
	if !handler.BindQuery(c, &request) {
		return
	}

	response, err := h.volunteerService.List(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *VolunteerHandler) Get(c *gin.Context) {
	id, ok := handler.ParamInt64(c, "id")
	if !ok {
		return
	}

	response, err := h.volunteerService.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *VolunteerHandler) Update(c *gin.Context) {
	id, ok := handler.ParamInt64(c, "id")
	if !ok {
		return
	}

	var request UpdateVolunteerRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.volunteerService.Update(c.Request.Context(), id, &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *VolunteerHandler) Delete(c *gin.Context) {
	id, ok := handler.ParamInt64(c, "id")
	if !ok {
		return
	}

	if err := h.volunteerService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
