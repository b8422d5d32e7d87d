package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tours360/tourgraph/internal/middleware"
	"github.com/tours360/tourgraph/internal/modules/serializer"
	"github.com/tours360/tourgraph/internal/modules/service"
)

type HotspotHandler struct {
	svc service.HotspotService
}

func NewHotspotHandler(s service.HotspotService) *HotspotHandler {
	return &HotspotHandler{svc: s}
}

// ListHotspots godoc
//
//	@Summary		List hotspots
//	@Description	Hotspots placed on a scene
//	@Tags			hotspot
//	@Produce		json
//	@Param			scene_id	path	string	true	"Scene ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Hotspot}
//	@Router			/api/v1/scenes/{scene_id}/hotspots [get]
func (h *HotspotHandler) ListHotspots(c *gin.Context) {
	sceneID, ok := paramUUID(c, "scene_id")
	if !ok {
		return
	}

	hotspots, err := h.svc.ListHotspots(c.Request.Context(), middleware.CallerFrom(c), sceneID)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: hotspots})
}

// CreateHotspot godoc
//
//	@Summary		Create hotspot
//	@Description	Place an info or navigation hotspot. Navigation targets must be in the same property.
//	@Tags			hotspot
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.CreateHotspotInput	true	"CreateHotspot payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Hotspot}
//	@Failure		422	{object}	serializer.Response
//	@Router			/api/v1/hotspots [post]
func (h *HotspotHandler) CreateHotspot(c *gin.Context) {
	req := service.CreateHotspotInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	hs, err := h.svc.CreateHotspot(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: hs})
}

// UpdateHotspot godoc
//
//	@Summary		Update hotspot
//	@Description	Patch a hotspot. Switching to info clears the navigation target.
//	@Tags			hotspot
//	@Accept			json
//	@Produce		json
//	@Param			hotspot_id	path	string				true	"Hotspot ID"	Format(uuid)
//	@Param			payload		body	service.HotspotPatch	true	"UpdateHotspot payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Hotspot}
//	@Router			/api/v1/hotspots/{hotspot_id} [patch]
func (h *HotspotHandler) UpdateHotspot(c *gin.Context) {
	id, ok := paramUUID(c, "hotspot_id")
	if !ok {
		return
	}
	req := service.HotspotPatch{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	hs, err := h.svc.UpdateHotspot(c.Request.Context(), middleware.CallerFrom(c), id, req)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: hs})
}

// DeleteHotspot godoc
//
//	@Summary		Delete hotspot
//	@Description	Delete a hotspot. Deleting a missing hotspot succeeds.
//	@Tags			hotspot
//	@Produce		json
//	@Param			hotspot_id	path	string	true	"Hotspot ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/api/v1/hotspots/{hotspot_id} [delete]
func (h *HotspotHandler) DeleteHotspot(c *gin.Context) {
	id, ok := paramUUID(c, "hotspot_id")
	if !ok {
		return
	}

	if err := h.svc.DeleteHotspot(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}
