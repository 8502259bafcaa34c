package report

import (
	"context"
	"time"

	"github.com/alimenta/backend/internal/domain/donation"
	"github.com/alimenta/backend/internal/domain/identity"
	"github.com/alimenta/backend/internal/domain/report"
	"go.uber.org/zap"
)

const (
	rankingSize         = 5
	recentActivityLimit = 5
	recentWindow        = 7 * 24 * time.Hour
)

// ReportService builds the admin dashboard and the public status probe
type ReportService struct {
	statsRepo    report.StatsRepository
	donationRepo donation.DonationRepository
	userRepo     identity.UserRepository
	serviceName  string
	logger       *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	statsRepo report.StatsRepository,
	donationRepo donation.DonationRepository,
	userRepo identity.UserRepository,
	serviceName string,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		statsRepo:    statsRepo,
		donationRepo: donationRepo,
		userRepo:     userRepo,
		serviceName:  serviceName,
		logger:       logger,
	}
}

// Dashboard aggregates the admin dashboard payload
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	counts, err := s.statsRepo.EntityCounts(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.donationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	lastWeek, err := s.statsRepo.DonationsSince(ctx, time.Now().Add(-recentWindow))
	if err != nil {
		return nil, err
	}

	topOrgs, err := s.statsRepo.TopOrganizations(ctx, rankingSize)
	if err != nil {
		return nil, err
	}
	topDonors, err := s.statsRepo.TopDonors(ctx, rankingSize)
	if err != nil {
		return nil, err
	}
	topFoods, err := s.statsRepo.TopFoods(ctx, rankingSize)
	if err != nil {
		return nil, err
	}

	recentDonations, err := s.statsRepo.RecentDonations(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	recentUsers, err := s.userRepo.FindRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	resp := &DashboardResponse{
		Counts:            toEntityCounts(counts),
		DonationsLastWeek: lastWeek,
		GeneratedAt:       time.Now(),
	}
	for _, c := range byStatus {
		resp.DonationsByStatus = append(resp.DonationsByStatus, StatusCountResponse{
			Status: c.Status.String(),
			Count:  c.Count,
		})
	}
	for _, o := range topOrgs {
		resp.TopOrganizations = append(resp.TopOrganizations, TopOrganizationResponse(o))
	}
	for _, d := range topDonors {
		resp.TopDonors = append(resp.TopDonors, TopDonorResponse(d))
	}
	for _, f := range topFoods {
		resp.TopFoods = append(resp.TopFoods, TopFoodResponse(f))
	}
	for _, d := range recentDonations {
		resp.RecentDonations = append(resp.RecentDonations, RecentDonationResponse(d))
	}
	for i := range recentUsers {
		u := &recentUsers[i]
		resp.RecentUsers = append(resp.RecentUsers, RecentUserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Role:      u.Role.String(),
			CreatedAt: u.CreatedAt,
		})
	}

	return resp, nil
}

// Status builds the public status probe: a headline message plus the active
// totals. Failures degrade to status "degraded" rather than an error so the
// probe itself stays available.
func (s *ReportService) Status(ctx context.Context) *StatusResponse {
	counts, err := s.statsRepo.EntityCounts(ctx)
	if err != nil {
		s.logger.Warn("Status probe could not read entity counts", zap.Error(err))
		return &StatusResponse{
			Status:  "degraded",
			Message: s.serviceName + " API is running, statistics are temporarily unavailable",
		}
	}

	return &StatusResponse{
		Status:                   "ok",
		Message:                  s.serviceName + " API is running",
		TotalActiveOrganizations: counts.ActiveOrganizations,
		TotalActiveNeeds:         counts.ActiveNeeds,
		TotalDonations:           counts.Donations,
	}
}

func toEntityCounts(c *report.EntityCounts) EntityCountsResponse {
	resp := EntityCountsResponse{
		Users:               c.Users,
		Organizations:       c.Organizations,
		ActiveOrganizations: c.ActiveOrganizations,
		Categories:          c.Categories,
		Foods:               c.Foods,
		Needs:               c.Needs,
		ActiveNeeds:         c.ActiveNeeds,
		CompletedNeeds:      c.CompletedNeeds,
		Donations:           c.Donations,
	}
	for _, rc := range c.UsersByRole {
		resp.UsersByRole = append(resp.UsersByRole, RoleCountResponse(rc))
	}
	return resp
}
