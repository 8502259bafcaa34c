package handler

import (
	appcharity "github.com/alimenta/backend/internal/application/charity"
	appdonation "github.com/alimenta/backend/internal/application/donation"
	"github.com/alimenta/backend/internal/domain/donation"
	"github.com/gin-gonic/gin"
)

// OrganizationHandler serves the organization-facing pages: the dashboard,
// need management, incoming donations and the profile
type OrganizationHandler struct {
	BaseHandler
	orgService      *appcharity.OrganizationService
	needService     *appcharity.NeedService
	donationService *appdonation.DonationService
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(
	orgService *appcharity.OrganizationService,
	needService *appcharity.NeedService,
	donationService *appdonation.DonationService,
) *OrganizationHandler {
	return &OrganizationHandler{
		orgService:      orgService,
		needService:     needService,
		donationService: donationService,
	}
}

// organizationDashboardResponse aggregates the organization landing page
type organizationDashboardResponse struct {
	Organization     appcharity.OrganizationResponse   `json:"organization"`
	Needs            []appcharity.NeedResponse         `json:"needs"`
	PendingDonations []appdonation.DonationResponse    `json:"pending_donations"`
	DonationCounts   []appdonation.StatusCountResponse `json:"donation_counts"`
}

// Dashboard handles GET /dashboard/organization
func (h *OrganizationHandler) Dashboard(c *gin.Context) {
	orgID, err := getOrganizationID(c)
	if err != nil {
		h.Unauthorized(c, "No organization linked to this account")
		return
	}

	ctx := c.Request.Context()

	org, err := h.orgService.GetProfile(ctx, orgID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	needs, err := h.needService.ListForOrganization(ctx, orgID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	pending := donation.StatusPending
	pendingDonations, err := h.donationService.ListByOrganization(ctx, orgID, &pending)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	counts, err := h.donationService.CountsForOrganization(ctx, orgID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, organizationDashboardResponse{
		Organization:     org.Organization,
		Needs:            needs,
		PendingDonations: pendingDonations,
		DonationCounts:   counts,
	})
}

// ListNeeds handles GET /organization/needs
func (h *OrganizationHandler) ListNeeds(c *gin.Context) {
	orgID, err := getOrganizationID(c)
	if err != nil {
		h.Unauthorized(c, "No organization linked to this account")
		return
	}

	needs, err := h.needService.ListForOrganization(c.Request.Context(), orgID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, needs)
}

// CreateNeed handles POST /organization/needs
func (h *OrganizationHandler) CreateNeed(c *gin.Context) {
	orgID, err := getOrganizationID(c)
	if err != nil {
		h.Unauthorized(c, "No organization linked to this account")
		return
	}

	var req appcharity.CreateNeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.needService.Create(c.Request.Context(), orgID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// UpdateNeed handles POST /organization/needs/:id
func (h *OrganizationHandler) UpdateNeed(c *gin.Context) {
	orgID, err := getOrganizationID(c)
	if err != nil {
		h.Unauthorized(c, "No organization linked to this account")
		return
	}
	needID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid need ID")
		return
	}

	var req appcharity.UpdateNeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.needService.Update(c.Request.Context(), orgID, needID, req)
	if err != nil {
		h.HandleErrorRedirect(c, err)
		return
	}

	h.Success(c, resp)
}

// DeactivateNeed handles POST /organization/needs/:id/deactivate
func (h *OrganizationHandler) DeactivateNeed(c *gin.Context) {
	orgID, err := getOrganizationID(c)
	if err != nil {
		h.Unauthorized(c, "No organization linked to this account")
		return
	}
	needID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid need ID")
		return
	}

	if err := h.needService.Deactivate(c.Request.Context(), orgID, needID); err != nil {
		h.HandleErrorRedirect(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Need closed"})
}

// ListDonations handles GET /organization/donations, optionally narrowed by
// the status query parameter
func (h *OrganizationHandler) ListDonations(c *gin.Context) {
	orgID, err := getOrganizationID(c)
	if err != nil {
		h.Unauthorized(c, "No organization linked to this account")
		return
	}

	var status *donation.DonationStatus
	if raw := c.Query("status"); raw != "" {
		s := donation.DonationStatus(raw)
		if !s.IsValid() {
			h.BadRequest(c, "Invalid donation status")
			return
		}
		status = &s
	}

	donations, err := h.donationService.ListByOrganization(c.Request.Context(), orgID, status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, donations)
}

// ChangeDonationStatus handles POST /organization/donations/:id/status.
// Confirming or delivering a pending donation credits the need exactly once.
func (h *OrganizationHandler) ChangeDonationStatus(c *gin.Context) {
	orgID, err := getOrganizationID(c)
	if err != nil {
		h.Unauthorized(c, "No organization linked to this account")
		return
	}
	donationID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid donation ID")
		return
	}

	var req appdonation.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	if !req.Status.IsValid() {
		h.BadRequest(c, "Invalid donation status")
		return
	}

	resp, err := h.donationService.ApplyStatusChange(c.Request.Context(), orgID, donationID, req.Status)
	if err != nil {
		h.HandleErrorRedirect(c, err)
		return
	}

	h.Success(c, resp)
}

// Profile handles GET /organization/profile
func (h *OrganizationHandler) Profile(c *gin.Context) {
	orgID, err := getOrganizationID(c)
	if err != nil {
		h.Unauthorized(c, "No organization linked to this account")
		return
	}

	resp, err := h.orgService.GetProfile(c.Request.Context(), orgID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateProfile handles POST /organization/profile
func (h *OrganizationHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appcharity.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.orgService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// PublicProfile handles GET /organizations/:id, the public organization page
// available to any authenticated user
func (h *OrganizationHandler) PublicProfile(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	resp, err := h.orgService.GetProfile(c.Request.Context(), orgID)
	if err != nil {
		h.HandleErrorRedirect(c, err)
		return
	}

	h.Success(c, resp)
}

// ListOrganizations handles GET /organizations, optionally narrowed by the
// search query parameter
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.orgService.ListActive(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orgs)
}
