package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tours360/tourgraph/internal/middleware"
	"github.com/tours360/tourgraph/internal/modules/serializer"
	"github.com/tours360/tourgraph/internal/modules/service"
)

type GalleryHandler struct {
	svc service.GalleryService
}

func NewGalleryHandler(s service.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: s}
}

// ListGallery godoc
//
//	@Summary		List gallery
//	@Tags			gallery
//	@Produce		json
//	@Param			property_id	path	string	true	"Property ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.GalleryImage}
//	@Router			/api/v1/properties/{property_id}/gallery [get]
func (h *GalleryHandler) ListGallery(c *gin.Context) {
	propertyID, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}

	images, err := h.svc.List(c.Request.Context(), middleware.CallerFrom(c), propertyID)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: images})
}

type AddImageReq struct {
	URL string `json:"url" binding:"required" example:"https://cdn.example.com/p/1.jpg"`
}

// AddImage godoc
//
//	@Summary		Add gallery image
//	@Description	Register an already hosted image. The first image becomes the cover.
//	@Tags			gallery
//	@Accept			json
//	@Produce		json
//	@Param			property_id	path	string				true	"Property ID"	Format(uuid)
//	@Param			payload		body	handler.AddImageReq	true	"AddImage payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.GalleryImage}
//	@Router			/api/v1/properties/{property_id}/gallery [post]
func (h *GalleryHandler) AddImage(c *gin.Context) {
	propertyID, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}
	req := AddImageReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	img, err := h.svc.AddImage(c.Request.Context(), middleware.CallerFrom(c), propertyID, req.URL)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: img})
}

// UploadImage godoc
//
//	@Summary		Upload gallery image
//	@Description	Upload a JPEG or PNG to the bucket and add it to the gallery
//	@Tags			gallery
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			property_id	path		string	true	"Property ID"	Format(uuid)
//	@Param			file		formData	file	true	"Image file"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.GalleryImage}
//	@Router			/api/v1/properties/{property_id}/gallery/upload [post]
func (h *GalleryHandler) UploadImage(c *gin.Context) {
	propertyID, ok := paramUUID(c, "property_id")
	if !ok {
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

	img, err := h.svc.UploadImage(c.Request.Context(), middleware.CallerFrom(c), service.UploadImageInput{
		PropertyID: propertyID,
		Filename:   fh.Filename,
		Size:       fh.Size,
		Body:       f,
	})
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: img})
}

// SetMainImage godoc
//
//	@Summary		Set cover image
//	@Tags			gallery
//	@Produce		json
//	@Param			image_id	path	string	true	"Image ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.GalleryImage}
//	@Router			/api/v1/gallery/{image_id}/main [post]
func (h *GalleryHandler) SetMainImage(c *gin.Context) {
	id, ok := paramUUID(c, "image_id")
	if !ok {
		return
	}

	img, err := h.svc.SetMain(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: img})
}

// DeleteImage godoc
//
//	@Summary		Delete gallery image
//	@Description	Remove an image. When it was the cover, the oldest remaining image takes over.
//	@Tags			gallery
//	@Produce		json
//	@Param			image_id	path	string	true	"Image ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/api/v1/gallery/{image_id} [delete]
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id, ok := paramUUID(c, "image_id")
	if !ok {
		return
	}

	if err := h.svc.DeleteImage(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}
