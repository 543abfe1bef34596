package http

import (
	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/pkg/societysdk"
)

func toProfileResponse(p domain.Profile) societysdk.ProfileResponse {
	return societysdk.ProfileResponse{
		ID:             p.ID,
		FullName:       p.FullName,
		Role:           p.Role,
		OrganizationID: p.OrganizationID,
		Phone:          p.Phone,
	}
}

func toPoolResponse(p domain.EmergencyService) societysdk.PoolResponse {
	return societysdk.PoolResponse{
		ID:             p.ID,
		ServiceType:    p.ServiceType,
		Description:    p.Description,
		AvailableUnits: p.AvailableUnits,
	}
}

func toReservationResponse(r domain.Reservation) societysdk.ReservationResponse {
	return societysdk.ReservationResponse{
		ID:          r.ID,
		PoolID:      r.PoolID,
		RequesterID: r.RequesterID,
		OpenedAt:    r.OpenedAt,
	}
}

func toNoticeResponse(n domain.Notice) societysdk.NoticeResponse {
	return societysdk.NoticeResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		AuthorID:  n.AuthorID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toPollResponse(p domain.Poll) societysdk.PollResponse {
	return societysdk.PollResponse{
		ID:        p.ID,
		Question:  p.Question,
		Options:   p.Options,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toEventResponse(e domain.Event) societysdk.EventResponse {
	return societysdk.EventResponse{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		Title:          e.Title,
		Description:    e.Description,
		EventDate:      e.EventDate,
	}
}

func toAmenityResponse(a domain.Amenity) societysdk.AmenityResponse {
	return societysdk.AmenityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Category:    a.Category,
	}
}

func toBookingResponse(b domain.Booking) societysdk.BookingResponse {
	return societysdk.BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		AmenityID:     b.AmenityID,
		RequestedDate: b.RequestedDate,
		CreatedAt:     b.CreatedAt,
	}
}

func toComplaintResponse(c domain.Complaint) societysdk.ComplaintResponse {
	return societysdk.ComplaintResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Status:      c.Status,
		AssignedTo:  c.AssignedTo,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
