package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tours360/tourgraph/internal/middleware"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/serializer"
	"github.com/tours360/tourgraph/internal/modules/service"
)

type PropertyHandler struct {
	svc     service.PropertyService
	publish service.PublicationService
}

func NewPropertyHandler(s service.PropertyService, p service.PublicationService) *PropertyHandler {
	return &PropertyHandler{
		svc:     s,
		publish: p,
	}
}

type ListPropertiesReq struct {
	Status   string `form:"status" json:"status" binding:"omitempty,oneof=draft published" example:"published"`
	Limit    int    `form:"limit,default=20" json:"limit" binding:"min=1,max=200" example:"20"`
	Cursor   string `form:"cursor" json:"cursor"`
	TimeDesc bool   `form:"time_desc,default=false" json:"time_desc" example:"false"`
}

// ListProperties godoc
//
//	@Summary		List properties
//	@Description	List properties, optionally filtered by status, with cursor paging
//	@Tags			property
//	@Produce		json
//	@Param			status		query	string	false	"draft or published"
//	@Param			limit		query	integer	false	"Page size, default 20. Max 200."
//	@Param			cursor		query	string	false	"Cursor from the previous page"
//	@Param			time_desc	query	string	false	"Order by created_at descending if true"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ListPropertiesOutput}
//	@Router			/api/v1/properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	req := ListPropertiesReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.List(c.Request.Context(), middleware.CallerFrom(c), service.ListPropertiesInput{
		Status:   model.PropertyStatus(req.Status),
		Limit:    req.Limit,
		Cursor:   req.Cursor,
		TimeDesc: req.TimeDesc,
	})
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// CreateProperty godoc
//
//	@Summary		Create property
//	@Description	Create a draft property
//	@Tags			property
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.CreatePropertyInput	true	"CreateProperty payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Property}
//	@Router			/api/v1/properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	req := service.CreatePropertyInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

// GetProperty godoc
//
//	@Summary		Get property
//	@Tags			property
//	@Produce		json
//	@Param			property_id	path	string	true	"Property ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Property}
//	@Router			/api/v1/properties/{property_id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// UpdateProperty godoc
//
//	@Summary		Update property
//	@Description	Patch the listing fields of a property. Omitted fields are unchanged.
//	@Tags			property
//	@Accept			json
//	@Produce		json
//	@Param			property_id	path	string						true	"Property ID"	Format(uuid)
//	@Param			payload		body	service.UpdatePropertyInput	true	"UpdateProperty payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Property}
//	@Router			/api/v1/properties/{property_id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}
	req := service.UpdatePropertyInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), middleware.CallerFrom(c), id, req)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// DeleteProperty godoc
//
//	@Summary		Delete property
//	@Description	Delete a property. Refused while it still has scenes.
//	@Tags			property
//	@Produce		json
//	@Param			property_id	path	string	true	"Property ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/api/v1/properties/{property_id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}

// GetTour godoc
//
//	@Summary		Get complete tour
//	@Description	Property with ordered scenes, all hotspots and gallery, regardless of status
//	@Tags			property
//	@Produce		json
//	@Param			property_id	path	string	true	"Property ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.Tour}
//	@Router			/api/v1/properties/{property_id}/tour [get]
func (h *PropertyHandler) GetTour(c *gin.Context) {
	id, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}

	tour, err := h.svc.GetCompleteTour(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: tour})
}

// GetPublicTour godoc
//
//	@Summary		Get public tour
//	@Description	Tour of a published property. Drafts are reported as not found.
//	@Tags			public
//	@Produce		json
//	@Param			property_id	path	string	true	"Property ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=service.Tour}
//	@Router			/public/properties/{property_id}/tour [get]
func (h *PropertyHandler) GetPublicTour(c *gin.Context) {
	id, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}

	tour, err := h.svc.GetPublicTour(c.Request.Context(), id)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: tour})
}

// Publish godoc
//
//	@Summary		Publish property
//	@Description	Make the property visible. Requires a default scene.
//	@Tags			property
//	@Produce		json
//	@Param			property_id	path	string	true	"Property ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Property}
//	@Failure		422	{object}	serializer.Response
//	@Router			/api/v1/properties/{property_id}/publish [post]
func (h *PropertyHandler) Publish(c *gin.Context) {
	id, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}

	p, err := h.publish.Publish(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// Unpublish godoc
//
//	@Summary		Unpublish property
//	@Tags			property
//	@Produce		json
//	@Param			property_id	path	string	true	"Property ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Property}
//	@Router			/api/v1/properties/{property_id}/unpublish [post]
func (h *PropertyHandler) Unpublish(c *gin.Context) {
	id, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}

	p, err := h.publish.Unpublish(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: p})
}
