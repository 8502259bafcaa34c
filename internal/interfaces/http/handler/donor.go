package handler

import (
	appcharity "github.com/alimenta/backend/internal/application/charity"
	appdonation "github.com/alimenta/backend/internal/application/donation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonorHandler serves the donor-facing pages: the dashboard, the donation
// form and the donation history
type DonorHandler struct {
	BaseHandler
	needService     *appcharity.NeedService
	orgService      *appcharity.OrganizationService
	donationService *appdonation.DonationService
}

// NewDonorHandler creates a new DonorHandler
func NewDonorHandler(
	needService *appcharity.NeedService,
	orgService *appcharity.OrganizationService,
	donationService *appdonation.DonationService,
) *DonorHandler {
	return &DonorHandler{
		needService:     needService,
		orgService:      orgService,
		donationService: donationService,
	}
}

// donorDashboardResponse aggregates everything the donor landing page shows
type donorDashboardResponse struct {
	Organizations   []appcharity.OrganizationResponse `json:"organizations"`
	Needs           []appcharity.NeedResponse         `json:"needs"`
	RecentDonations []appdonation.DonationResponse    `json:"recent_donations"`
	DonationCounts  []appdonation.StatusCountResponse `json:"donation_counts"`
}

// recentDonationsLimit caps the dashboard's donation history preview
const recentDonationsLimit = 5

// Dashboard handles GET /dashboard/donor. Needs can be narrowed with the
// category and search query parameters; organizations with search.
func (h *DonorHandler) Dashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var categoryID *uuid.UUID
	if raw := c.Query("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid category ID")
			return
		}
		categoryID = &id
	}
	search := c.Query("search")

	ctx := c.Request.Context()

	orgs, err := h.orgService.ListActive(ctx, search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	needs, err := h.needService.Browse(ctx, categoryID, search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	donations, err := h.donationService.ListByDonor(ctx, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if len(donations) > recentDonationsLimit {
		donations = donations[:recentDonationsLimit]
	}
	counts, err := h.donationService.CountsForDonor(ctx, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, donorDashboardResponse{
		Organizations:   orgs,
		Needs:           needs,
		RecentDonations: donations,
		DonationCounts:  counts,
	})
}

// NeedDetails handles GET /donate/:id, the donation form for one need
func (h *DonorHandler) NeedDetails(c *gin.Context) {
	needID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid need ID")
		return
	}

	need, err := h.needService.GetOpen(c.Request.Context(), needID)
	if err != nil {
		h.HandleErrorRedirect(c, err)
		return
	}

	h.Success(c, need)
}

// donateRequest is the donation form body; the need comes from the path
type donateRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Message  string          `json:"message" binding:"max=500"`
}

// Donate handles POST /donate/:id, pledging a donation against a need
func (h *DonorHandler) Donate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	needID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid need ID")
		return
	}

	var req donateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.donationService.Place(c.Request.Context(), userID, appdonation.PlaceDonationRequest{
		NeedID:   needID,
		Quantity: req.Quantity,
		Message:  req.Message,
	})
	if err != nil {
		h.HandleErrorRedirect(c, err)
		return
	}

	h.Created(c, resp)
}

// donationHistoryResponse is the donor's donation history with per-status
// totals
type donationHistoryResponse struct {
	Donations []appdonation.DonationResponse    `json:"donations"`
	Counts    []appdonation.StatusCountResponse `json:"counts"`
}

// MyDonations handles GET /my-donations
func (h *DonorHandler) MyDonations(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	ctx := c.Request.Context()
	donations, err := h.donationService.ListByDonor(ctx, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	counts, err := h.donationService.CountsForDonor(ctx, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, donationHistoryResponse{Donations: donations, Counts: counts})
}

// MyDonation handles GET /my-donations/:id
func (h *DonorHandler) MyDonation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	donationID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid donation ID")
		return
	}

	resp, err := h.donationService.GetForDonor(c.Request.Context(), userID, donationID)
	if err != nil {
		h.HandleErrorRedirect(c, err)
		return
	}

	h.Success(c, resp)
}

// CancelDonation handles POST /my-donations/:id/cancel. Only pending
// donations can be cancelled by their donor.
func (h *DonorHandler) CancelDonation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	donationID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid donation ID")
		return
	}

	resp, err := h.donationService.CancelByDonor(c.Request.Context(), userID, donationID)
	if err != nil {
		h.HandleErrorRedirect(c, err)
		return
	}

	h.Success(c, resp)
}
