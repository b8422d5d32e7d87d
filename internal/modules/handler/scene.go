package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tours360/tourgraph/internal/middleware"
	"github.com/tours360/tourgraph/internal/modules/serializer"
	"github.com/tours360/tourgraph/internal/modules/service"
)

type SceneHandler struct {
	svc service.SceneService
}

func NewSceneHandler(s service.SceneService) *SceneHandler {
	return &SceneHandler{svc: s}
}

// ListScenes godoc
//
//	@Summary		List scenes
//	@Description	Scenes of a property in display order
//	@Tags			scene
//	@Produce		json
//	@Param			property_id	path	string	true	"Property ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Scene}
//	@Router			/api/v1/properties/{property_id}/scenes [get]
func (h *SceneHandler) ListScenes(c *gin.Context) {
	propertyID, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}

	scenes, err := h.svc.ListScenes(c.Request.Context(), middleware.CallerFrom(c), propertyID)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: scenes})
}

// CreateScene godoc
//
//	@Summary		Create scene
//	@Description	Add a panorama to a property. The first scene becomes the default.
//	@Tags			scene
//	@Accept			json
//	@Produce		json
//	@Param			property_id	path	string					true	"Property ID"	Format(uuid)
//	@Param			payload		body	service.CreateSceneInput	true	"CreateScene payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Scene}
//	@Router			/api/v1/properties/{property_id}/scenes [post]
func (h *SceneHandler) CreateScene(c *gin.Context) {
	propertyID, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}
	req := service.CreateSceneInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req.PropertyID = propertyID

	scene, err := h.svc.CreateScene(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: scene})
}

type UploadSceneReq struct {
	Title     string `form:"title" binding:"required"`
	IsDefault bool   `form:"is_default"`
}

// UploadScene godoc
//
//	@Summary		Upload panorama
//	@Description	Upload an equirectangular JPEG or PNG (2:1, 2048x1024 to 8192x4096, 100 KB to 50 MB) and create a scene for it
//	@Tags			scene
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			property_id	path		string	true	"Property ID"	Format(uuid)
//	@Param			file		formData	file	true	"Panorama file"
//	@Param			title		formData	string	true	"Scene title"
//	@Param			is_default	formData	bool	false	"Make this the entry scene"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Scene}
//	@Router			/api/v1/properties/{property_id}/scenes/upload [post]
func (h *SceneHandler) UploadScene(c *gin.Context) {
	propertyID, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}
	req := UploadSceneReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("file is required", err))
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("unreadable file", err))
		return
	}
	defer f.Close()

	scene, err := h.svc.UploadScene(c.Request.Context(), middleware.CallerFrom(c), service.UploadSceneInput{
		PropertyID: propertyID,
		Filename:   fh.Filename,
		Size:       fh.Size,
		Body:       f,
		Title:      req.Title,
		IsDefault:  req.IsDefault,
	})
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: scene})
}

type ReorderScenesReq struct {
	SceneIDs []uuid.UUID `json:"scene_ids" binding:"required"`
}

// ReorderScenes godoc
//
//	@Summary		Reorder scenes
//	@Description	Set the display order. Every scene of the property must be listed exactly once.
//	@Tags			scene
//	@Accept			json
//	@Produce		json
//	@Param			property_id	path	string					true	"Property ID"	Format(uuid)
//	@Param			payload		body	handler.ReorderScenesReq	true	"ReorderScenes payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Scene}
//	@Router			/api/v1/properties/{property_id}/scenes/order [put]
func (h *SceneHandler) ReorderScenes(c *gin.Context) {
	propertyID, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}
	req := ReorderScenesReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	scenes, err := h.svc.ReorderScenes(c.Request.Context(), middleware.CallerFrom(c), propertyID, req.SceneIDs)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: scenes})
}

// GetScene godoc
//
//	@Summary		Get scene
//	@Tags			scene
//	@Produce		json
//	@Param			scene_id	path	string	true	"Scene ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Scene}
//	@Router			/api/v1/scenes/{scene_id} [get]
func (h *SceneHandler) GetScene(c *gin.Context) {
	id, ok := paramUUID(c, "scene_id")
	if !ok {
		return
	}

	scene, err := h.svc.GetScene(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: scene})
}

// UpdateScene godoc
//
//	@Summary		Update scene
//	@Description	Patch image and view fields. Omitted fields are unchanged.
//	@Tags			scene
//	@Accept			json
//	@Produce		json
//	@Param			scene_id	path	string					true	"Scene ID"	Format(uuid)
//	@Param			payload		body	service.UpdateSceneInput	true	"UpdateScene payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Scene}
//	@Router			/api/v1/scenes/{scene_id} [patch]
func (h *SceneHandler) UpdateScene(c *gin.Context) {
	id, ok := paramUUID(c, "scene_id")
	if !ok {
		return
	}
	req := service.UpdateSceneInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	scene, err := h.svc.UpdateScene(c.Request.Context(), middleware.CallerFrom(c), id, req)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: scene})
}

type RenameSceneReq struct {
	Title string `json:"title" binding:"required" example:"Living room"`
}

// RenameScene godoc
//
//	@Summary		Rename scene
//	@Tags			scene
//	@Accept			json
//	@Produce		json
//	@Param			scene_id	path	string					true	"Scene ID"	Format(uuid)
//	@Param			payload		body	handler.RenameSceneReq	true	"RenameScene payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Scene}
//	@Router			/api/v1/scenes/{scene_id}/title [put]
func (h *SceneHandler) RenameScene(c *gin.Context) {
	id, ok := paramUUID(c, "scene_id")
	if !ok {
		return
	}
	req := RenameSceneReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	scene, err := h.svc.RenameScene(c.Request.Context(), middleware.CallerFrom(c), id, req.Title)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: scene})
}

// SetDefaultScene godoc
//
//	@Summary		Set default scene
//	@Description	Make this scene the entry point of its property's tour
//	@Tags			scene
//	@Produce		json
//	@Param			scene_id	path	string	true	"Scene ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Scene}
//	@Router			/api/v1/scenes/{scene_id}/default [post]
func (h *SceneHandler) SetDefaultScene(c *gin.Context) {
	id, ok := paramUUID(c, "scene_id")
	if !ok {
		return
	}

	scene, err := h.svc.SetDefaultScene(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: scene})
}

type DeleteSceneReq struct {
	FallbackSceneID string `form:"fallback_scene_id" json:"fallback_scene_id" binding:"omitempty,uuid"`
}

// DeleteScene godoc
//
//	@Summary		Delete scene
//	@Description	Delete a scene with its owned hotspots. Inbound navigation hotspots are deleted, or retargeted to fallback_scene_id when given.
//	@Tags			scene
//	@Produce		json
//	@Param			scene_id			path	string	true	"Scene ID"			Format(uuid)
//	@Param			fallback_scene_id	query	string	false	"Retarget inbound navigation here"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.CascadeResult}
//	@Failure		409	{object}	serializer.Response
//	@Router			/api/v1/scenes/{scene_id} [delete]
func (h *SceneHandler) DeleteScene(c *gin.Context) {
	id, ok := paramUUID(c, "scene_id")
	if !ok {
		return
	}
	req := DeleteSceneReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	opts := service.DeleteSceneOptions{}
	if req.FallbackSceneID != "" {
		fallback := uuid.MustParse(req.FallbackSceneID)
		opts.FallbackSceneID = &fallback
	}

	res, err := h.svc.DeleteScene(c.Request.Context(), middleware.CallerFrom(c), id, opts)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: res})
}
