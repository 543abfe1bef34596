package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/idx"
	"github.com/strataworks/societyd/pkg/slogx"
)

var ErrInvalidComplaintStatus = errors.New("invalid complaint status")

type ComplaintService struct {
	Store store.Store
}

func (s *ComplaintService) FileComplaint(ctx context.Context, userID, title, description, imageURL string) (domain.Complaint, error) {
	if userID == "" || title == "" || description == "" {
		return domain.Complaint{}, ErrInvalidRequest
	}

	now := time.Now()
	c := domain.Complaint{
		ID:          idx.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		Status:      domain.ComplaintOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Complaints().CreateComplaint(ctx, c); err != nil {
		return domain.Complaint{}, err
	}
	return c, nil
}

func (s *ComplaintService) GetComplaint(ctx context.Context, id string) (domain.Complaint, error) {
	return s.Store.Complaints().GetComplaintByID(ctx, id)
}

func (s *ComplaintService) ListMyComplaints(ctx context.Context, userID string) ([]domain.Complaint, error) {
	return s.Store.Complaints().ListComplaintsByUser(ctx, userID)
}

func (s *ComplaintService) ListAssignedComplaints(ctx context.Context, staffID string) ([]domain.Complaint, error) {
	return s.Store.Complaints().ListComplaintsByAssignee(ctx, staffID)
}

// ListComplaints lists all complaints, optionally filtered by status.
func (s *ComplaintService) ListComplaints(ctx context.Context, status string) ([]domain.Complaint, error) {
	if status != "" && !validComplaintStatus(status) {
		return nil, ErrInvalidComplaintStatus
	}
	return s.Store.Complaints().ListComplaints(ctx, status)
}

// AssignComplaint hands a complaint to a staff member and moves it to
// in_progress. The assignee must hold the staff role.
func (s *ComplaintService) AssignComplaint(ctx context.Context, complaintID, staffID string) (domain.Complaint, error) {
	log := slogx.FromContext(ctx)

	prof, err := s.Store.Profiles().GetProfileByID(ctx, staffID)
	if err != nil {
		return domain.Complaint{}, err
	}
	if prof.Role != domain.RoleStaff {
		log.Warn("attempted to assign complaint to non-staff profile",
			slog.String("profile_id", staffID),
			slog.String("role", prof.Role),
		)
		return domain.Complaint{}, ErrInvalidRole
	}

	if err := s.Store.Complaints().AssignComplaint(ctx, complaintID, staffID, time.Now()); err != nil {
		return domain.Complaint{}, err
	}
	return s.Store.Complaints().GetComplaintByID(ctx, complaintID)
}

func (s *ComplaintService) UpdateComplaintStatus(ctx context.Context, complaintID, status string) (domain.Complaint, error) {
	if !validComplaintStatus(status) {
		return domain.Complaint{}, ErrInvalidComplaintStatus
	}
	if err := s.Store.Complaints().UpdateComplaintStatus(ctx, complaintID, status, time.Now()); err != nil {
		return domain.Complaint{}, err
	}
	return s.Store.Complaints().GetComplaintByID(ctx, complaintID)
}

func validComplaintStatus(status string) bool {
	switch status {
	case domain.ComplaintOpen, domain.ComplaintInProgress, domain.ComplaintResolved:
		return true
	}
	return false
}
