package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tours360/tourgraph/internal/middleware"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/serializer"
	"github.com/tours360/tourgraph/internal/modules/service"
)

type LeadHandler struct {
	svc service.LeadService
}

func NewLeadHandler(s service.LeadService) *LeadHandler {
	return &LeadHandler{svc: s}
}

type CreateLeadReq struct {
	Name     string  `json:"name" binding:"required" example:"Ana Souza"`
	Email    string  `json:"email" binding:"required" example:"ana@example.com"`
	Phone    string  `json:"phone" binding:"required" example:"+55 11 99999-0000"`
	Whatsapp *string `json:"whatsapp,omitempty"`
	Interest string  `json:"interest" example:"visita" enums:"compra,aluguel,informacoes,visita,outro"`
	Message  *string `json:"message,omitempty"`
	Consent  bool    `json:"consent" example:"true"`
}

// CreateLead godoc
//
//	@Summary		Leave a contact request
//	@Description	Public contact form of a published tour. Consent is required.
//	@Tags			public
//	@Accept			json
//	@Produce		json
//	@Param			property_id	path	string					true	"Property ID"	Format(uuid)
//	@Param			payload		body	handler.CreateLeadReq	true	"CreateLead payload"
//	@Success		201	{object}	serializer.Response{data=model.Lead}
//	@Router			/public/properties/{property_id}/leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	propertyID, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}
	req := CreateLeadReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	lead, err := h.svc.CreateLead(c.Request.Context(), service.CreateLeadInput{
		PropertyID: propertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Whatsapp:   req.Whatsapp,
		Interest:   model.LeadInterest(req.Interest),
		Message:    req.Message,
		Consent:    req.Consent,
	})
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: lead})
}

// ListPropertyLeads godoc
//
//	@Summary		List leads of a property
//	@Tags			lead
//	@Produce		json
//	@Param			property_id	path	string	true	"Property ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Lead}
//	@Router			/api/v1/properties/{property_id}/leads [get]
func (h *LeadHandler) ListPropertyLeads(c *gin.Context) {
	propertyID, ok := paramUUID(c, "property_id")
	if !ok {
		return
	}
	h.list(c, propertyID)
}

// ListLeads godoc
//
//	@Summary		List all leads
//	@Description	Newest first, across every property
//	@Tags			lead
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Lead}
//	@Router			/api/v1/leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	h.list(c, uuid.Nil)
}

func (h *LeadHandler) list(c *gin.Context, propertyID uuid.UUID) {
	leads, err := h.svc.ListLeads(c.Request.Context(), middleware.CallerFrom(c), propertyID)
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: leads})
}

type UpdateLeadStatusReq struct {
	Status string `json:"status" binding:"required" example:"contacted" enums:"new,contacted,qualified,closed"`
}

// UpdateLeadStatus godoc
//
//	@Summary		Update lead status
//	@Tags			lead
//	@Accept			json
//	@Produce		json
//	@Param			lead_id	path	string						true	"Lead ID"	Format(uuid)
//	@Param			payload	body	handler.UpdateLeadStatusReq	true	"UpdateLeadStatus payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Lead}
//	@Router			/api/v1/leads/{lead_id} [patch]
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	id, ok := paramUUID(c, "lead_id")
	if !ok {
		return
	}
	req := UpdateLeadStatusReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	lead, err := h.svc.UpdateLeadStatus(c.Request.Context(), middleware.CallerFrom(c), id, model.LeadStatus(req.Status))
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: lead})
}

// DeleteLead godoc
//
//	@Summary		Delete lead
//	@Tags			lead
//	@Produce		json
//	@Param			lead_id	path	string	true	"Lead ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/api/v1/leads/{lead_id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := paramUUID(c, "lead_id")
	if !ok {
		return
	}

	if err := h.svc.DeleteLead(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}
