// Package memory is an in-memory store.Store used by unit tests. It mirrors
// the single-record atomicity of the real store: every method takes the
// store lock for exactly one record operation, so concurrent callers observe
// the same races the sqlite driver would allow (in particular the
// read-then-CAS gap on pool counters).
//
// InjectErr lets tests simulate store outages on individual operations to
// exercise saga compensation paths.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
)

type Store struct {
	mu sync.Mutex

	identities    map[string]domain.Identity
	organizations map[string]domain.Organization
	profiles      map[string]domain.Profile
	residents     map[string]domain.ResidentDetail
	staff         map[string]domain.StaffDetail
	pools         map[string]domain.EmergencyService
	reservations  map[string]domain.Reservation
	notices       map[string]domain.Notice
	polls         map[string]domain.Poll
	events        map[string]domain.Event
	amenities     map[string]domain.Amenity
	bookings      map[string]domain.Booking
	complaints    map[string]domain.Complaint

	errs map[string]error
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		identities:    make(map[string]domain.Identity),
		organizations: make(map[string]domain.Organization),
		profiles:      make(map[string]domain.Profile),
		residents:     make(map[string]domain.ResidentDetail),
		staff:         make(map[string]domain.StaffDetail),
		pools:         make(map[string]domain.EmergencyService),
		reservations:  make(map[string]domain.Reservation),
		notices:       make(map[string]domain.Notice),
		polls:         make(map[string]domain.Poll),
		events:        make(map[string]domain.Event),
		amenities:     make(map[string]domain.Amenity),
		bookings:      make(map[string]domain.Booking),
		complaints:    make(map[string]domain.Complaint),
		errs:          make(map[string]error),
	}
}

// InjectErr makes every subsequent call to the named operation (e.g.
// "CreateOrganization") fail with err until ClearErr is called.
func (s *Store) InjectErr(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[op] = err
}

func (s *Store) ClearErr(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.errs, op)
}

// injected must be called with s.mu held.
func (s *Store) injected(op string) error {
	return s.errs[op]
}

func (s *Store) ApplyMigrations() error          { return nil }
func (s *Store) Close() error                    { return nil }
func (s *Store) Ping(_ context.Context) error    { return nil }
func (s *Store) Identities() store.Identities    { return (*identitiesRepo)(s) }
func (s *Store) Organizations() store.Organizations {
	return (*organizationsRepo)(s)
}
func (s *Store) Profiles() store.Profiles               { return (*profilesRepo)(s) }
func (s *Store) ResidentDetails() store.ResidentDetails { return (*residentsRepo)(s) }
func (s *Store) StaffDetails() store.StaffDetails       { return (*staffRepo)(s) }
func (s *Store) EmergencyServices() store.EmergencyServices {
	return (*poolsRepo)(s)
}
func (s *Store) Reservations() store.Reservations { return (*reservationsRepo)(s) }
func (s *Store) Notices() store.Notices           { return (*noticesRepo)(s) }
func (s *Store) Polls() store.Polls               { return (*pollsRepo)(s) }
func (s *Store) Events() store.Events             { return (*eventsRepo)(s) }
func (s *Store) Amenities() store.Amenities       { return (*amenitiesRepo)(s) }
func (s *Store) Bookings() store.Bookings         { return (*bookingsRepo)(s) }
func (s *Store) Complaints() store.Complaints     { return (*complaintsRepo)(s) }

// --- identities ---

type identitiesRepo Store

func (r *identitiesRepo) CreateIdentity(_ context.Context, ident domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("CreateIdentity"); err != nil {
		return err
	}
	for _, existing := range r.identities {
		if existing.Email == ident.Email {
			return store.ErrAlreadyExists
		}
	}
	r.identities[ident.ID] = ident
	return nil
}

func (r *identitiesRepo) GetIdentityByID(_ context.Context, id string) (domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ident, ok := r.identities[id]
	if !ok {
		return domain.Identity{}, store.ErrNotFound
	}
	return ident, nil
}

func (r *identitiesRepo) GetIdentityByEmail(_ context.Context, email string) (domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ident := range r.identities {
		if ident.Email == email {
			return ident, nil
		}
	}
	return domain.Identity{}, store.ErrNotFound
}

func (r *identitiesRepo) DeleteIdentity(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("DeleteIdentity"); err != nil {
		return err
	}
	if _, ok := r.identities[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.identities, id)
	return nil
}

// --- organizations ---

type organizationsRepo Store

func (r *organizationsRepo) CreateOrganization(_ context.Context, org domain.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("CreateOrganization"); err != nil {
		return err
	}
	for _, existing := range r.organizations {
		if existing.JoinCode == org.JoinCode {
			return store.ErrAlreadyExists
		}
	}
	r.organizations[org.ID] = org
	return nil
}

func (r *organizationsRepo) GetOrganizationByID(_ context.Context, id string) (domain.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	org, ok := r.organizations[id]
	if !ok {
		return domain.Organization{}, store.ErrNotFound
	}
	return org, nil
}

func (r *organizationsRepo) GetOrganizationByJoinCode(_ context.Context, code string) (domain.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, org := range r.organizations {
		if org.JoinCode == code {
			return org, nil
		}
	}
	return domain.Organization{}, store.ErrNotFound
}

func (r *organizationsRepo) DeleteOrganization(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("DeleteOrganization"); err != nil {
		return err
	}
	if _, ok := r.organizations[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.organizations, id)
	return nil
}

// --- profiles ---

type profilesRepo Store

func (r *profilesRepo) CreateProfile(_ context.Context, p domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("CreateProfile"); err != nil {
		return err
	}
	if _, ok := r.profiles[p.ID]; ok {
		return store.ErrAlreadyExists
	}
	r.profiles[p.ID] = p
	return nil
}

func (r *profilesRepo) GetProfileByID(_ context.Context, id string) (domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return domain.Profile{}, store.ErrNotFound
	}
	return p, nil
}

func (r *profilesRepo) SetProfileOrganization(_ context.Context, profileID, organizationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("SetProfileOrganization"); err != nil {
		return err
	}
	p, ok := r.profiles[profileID]
	if !ok {
		return store.ErrNotFound
	}
	p.OrganizationID = organizationID
	r.profiles[profileID] = p
	return nil
}

func (r *profilesRepo) DeleteProfile(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("DeleteProfile"); err != nil {
		return err
	}
	if _, ok := r.profiles[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.profiles, id)
	return nil
}

// --- resident / staff details ---

type residentsRepo Store

func (r *residentsRepo) CreateResidentDetail(_ context.Context, d domain.ResidentDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("CreateResidentDetail"); err != nil {
		return err
	}
	if _, ok := r.residents[d.ProfileID]; ok {
		return store.ErrAlreadyExists
	}
	r.residents[d.ProfileID] = d
	return nil
}

func (r *residentsRepo) GetResidentDetail(_ context.Context, profileID string) (domain.ResidentDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.residents[profileID]
	if !ok {
		return domain.ResidentDetail{}, store.ErrNotFound
	}
	return d, nil
}

func (r *residentsRepo) DeleteResidentDetail(_ context.Context, profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("DeleteResidentDetail"); err != nil {
		return err
	}
	if _, ok := r.residents[profileID]; !ok {
		return store.ErrNotFound
	}
	delete(r.residents, profileID)
	return nil
}

type staffRepo Store

func (r *staffRepo) CreateStaffDetail(_ context.Context, d domain.StaffDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("CreateStaffDetail"); err != nil {
		return err
	}
	if _, ok := r.staff[d.ProfileID]; ok {
		return store.ErrAlreadyExists
	}
	r.staff[d.ProfileID] = d
	return nil
}

func (r *staffRepo) GetStaffDetail(_ context.Context, profileID string) (domain.StaffDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.staff[profileID]
	if !ok {
		return domain.StaffDetail{}, store.ErrNotFound
	}
	return d, nil
}

func (r *staffRepo) DeleteStaffDetail(_ context.Context, profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("DeleteStaffDetail"); err != nil {
		return err
	}
	if _, ok := r.staff[profileID]; !ok {
		return store.ErrNotFound
	}
	delete(r.staff, profileID)
	return nil
}

// --- emergency service pools ---

type poolsRepo Store

func (r *poolsRepo) CreateEmergencyService(_ context.Context, svc domain.EmergencyService) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("CreateEmergencyService"); err != nil {
		return err
	}
	r.pools[svc.ID] = svc
	return nil
}

func (r *poolsRepo) GetEmergencyServiceByID(_ context.Context, id string) (domain.EmergencyService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	svc, ok := r.pools[id]
	if !ok {
		return domain.EmergencyService{}, store.ErrNotFound
	}
	return svc, nil
}

func (r *poolsRepo) ListEmergencyServices(_ context.Context) ([]domain.EmergencyService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.EmergencyService, 0, len(r.pools))
	for _, svc := range r.pools {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *poolsRepo) DeleteEmergencyService(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pools[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.pools, id)
	return nil
}

func (r *poolsRepo) DecrementUnitsCAS(_ context.Context, id string, observed int) (domain.EmergencyService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("DecrementUnitsCAS"); err != nil {
		return domain.EmergencyService{}, err
	}
	svc, ok := r.pools[id]
	if !ok {
		return domain.EmergencyService{}, store.ErrNotFound
	}
	if svc.AvailableUnits != observed {
		return domain.EmergencyService{}, store.ErrConflict
	}
	svc.AvailableUnits--
	r.pools[id] = svc
	return svc, nil
}

func (r *poolsRepo) RestoreUnits(_ context.Context, id string, units int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("RestoreUnits"); err != nil {
		return err
	}
	svc, ok := r.pools[id]
	if !ok {
		return store.ErrNotFound
	}
	svc.AvailableUnits = units
	r.pools[id] = svc
	return nil
}

func (r *poolsRepo) IncrementUnits(_ context.Context, id string) (domain.EmergencyService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("IncrementUnits"); err != nil {
		return domain.EmergencyService{}, err
	}
	svc, ok := r.pools[id]
	if !ok {
		return domain.EmergencyService{}, store.ErrNotFound
	}
	svc.AvailableUnits++
	r.pools[id] = svc
	return svc, nil
}

// --- reservations ---

type reservationsRepo Store

func (r *reservationsRepo) CreateReservation(_ context.Context, res domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("CreateReservation"); err != nil {
		return err
	}
	r.reservations[res.ID] = res
	return nil
}

func (r *reservationsRepo) GetReservationByID(_ context.Context, id string) (domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[id]
	if !ok {
		return domain.Reservation{}, store.ErrNotFound
	}
	return res, nil
}

func (r *reservationsRepo) ListReservationsByPool(_ context.Context, poolID string) ([]domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Reservation
	for _, res := range r.reservations {
		if res.PoolID == poolID {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *reservationsRepo) DeleteReservationReturning(_ context.Context, id string) (domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).injected("DeleteReservationReturning"); err != nil {
		return domain.Reservation{}, err
	}
	res, ok := r.reservations[id]
	if !ok {
		return domain.Reservation{}, store.ErrNotFound
	}
	delete(r.reservations, id)
	return res, nil
}

// --- notices ---

type noticesRepo Store

func (r *noticesRepo) CreateNotice(_ context.Context, n domain.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices[n.ID] = n
	return nil
}

func (r *noticesRepo) GetNoticeByID(_ context.Context, id string) (domain.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notices[id]
	if !ok {
		return domain.Notice{}, store.ErrNotFound
	}
	return n, nil
}

func (r *noticesRepo) ListNotices(_ context.Context) ([]domain.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Notice, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *noticesRepo) UpdateNotice(_ context.Context, id, title, content string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notices[id]
	if !ok {
		return store.ErrNotFound
	}
	n.Title, n.Content, n.UpdatedAt = title, content, updatedAt
	r.notices[id] = n
	return nil
}

func (r *noticesRepo) DeleteNotice(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notices[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.notices, id)
	return nil
}

// --- polls ---

type pollsRepo Store

func (r *pollsRepo) CreatePoll(_ context.Context, p domain.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls[p.ID] = p
	return nil
}

func (r *pollsRepo) GetPollByID(_ context.Context, id string) (domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.polls[id]
	if !ok {
		return domain.Poll{}, store.ErrNotFound
	}
	return p, nil
}

func (r *pollsRepo) ListPolls(_ context.Context) ([]domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Poll, 0, len(r.polls))
	for _, p := range r.polls {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *pollsRepo) UpdatePoll(_ context.Context, id, question string, options []string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.polls[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Question, p.Options, p.UpdatedAt = question, options, updatedAt
	r.polls[id] = p
	return nil
}

func (r *pollsRepo) DeletePoll(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.polls[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.polls, id)
	return nil
}

// --- events ---

type eventsRepo Store

func (r *eventsRepo) CreateEvent(_ context.Context, e domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[e.ID] = e
	return nil
}

func (r *eventsRepo) ListEventsByOrganization(_ context.Context, organizationID string) ([]domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Event
	for _, e := range r.events {
		if e.OrganizationID == organizationID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *eventsRepo) DeleteEvent(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

// --- amenities ---

type amenitiesRepo Store

func (r *amenitiesRepo) CreateAmenity(_ context.Context, a domain.Amenity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.amenities[a.ID] = a
	return nil
}

func (r *amenitiesRepo) GetAmenityByID(_ context.Context, id string) (domain.Amenity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.amenities[id]
	if !ok {
		return domain.Amenity{}, store.ErrNotFound
	}
	return a, nil
}

func (r *amenitiesRepo) ListAmenities(_ context.Context) ([]domain.Amenity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Amenity, 0, len(r.amenities))
	for _, a := range r.amenities {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *amenitiesRepo) UpdateAmenity(_ context.Context, a domain.Amenity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.amenities[a.ID]; !ok {
		return store.ErrNotFound
	}
	r.amenities[a.ID] = a
	return nil
}

func (r *amenitiesRepo) DeleteAmenity(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.amenities[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.amenities, id)
	return nil
}

// --- bookings ---

type bookingsRepo Store

func (r *bookingsRepo) CreateBooking(_ context.Context, b domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = b
	return nil
}

func (r *bookingsRepo) GetBookingByID(_ context.Context, id string) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return domain.Booking{}, store.ErrNotFound
	}
	return b, nil
}

func (r *bookingsRepo) ListBookingsByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *bookingsRepo) UpdateBookingDate(_ context.Context, id string, requestedDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return store.ErrNotFound
	}
	b.RequestedDate = requestedDate
	r.bookings[id] = b
	return nil
}

func (r *bookingsRepo) DeleteBooking(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

// --- complaints ---

type complaintsRepo Store

func (r *complaintsRepo) CreateComplaint(_ context.Context, c domain.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.complaints[c.ID] = c
	return nil
}

func (r *complaintsRepo) GetComplaintByID(_ context.Context, id string) (domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.complaints[id]
	if !ok {
		return domain.Complaint{}, store.ErrNotFound
	}
	return c, nil
}

func (r *complaintsRepo) ListComplaintsByUser(_ context.Context, userID string) ([]domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Complaint
	for _, c := range r.complaints {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *complaintsRepo) ListComplaintsByAssignee(_ context.Context, staffID string) ([]domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Complaint
	for _, c := range r.complaints {
		if c.AssignedTo == staffID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *complaintsRepo) ListComplaints(_ context.Context, status string) ([]domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Complaint
	for _, c := range r.complaints {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *complaintsRepo) AssignComplaint(_ context.Context, id, staffID string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.complaints[id]
	if !ok {
		return store.ErrNotFound
	}
	c.AssignedTo, c.Status, c.UpdatedAt = staffID, domain.ComplaintInProgress, updatedAt
	r.complaints[id] = c
	return nil
}

func (r *complaintsRepo) UpdateComplaintStatus(_ context.Context, id, status string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.complaints[id]
	if !ok {
		return store.ErrNotFound
	}
	c.Status, c.UpdatedAt = status, updatedAt
	r.complaints[id] = c
	return nil
}
