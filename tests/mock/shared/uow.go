// Package sharedmock provides an in-memory unit of work for command tests.
// The fakes record every write so assertions can inspect what a command
// persisted without a database.
package sharedmock

import (
	"context"
	"fmt"
	"time"

	"resource-booking-api/internal/domain/calendar"
	"resource-booking-api/internal/domain/unit"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// FakeUoW implements shared.UnitOfWork over in-memory fakes. Within runs the
// callback once without retries; transactionality is not simulated.
type FakeUoW struct {
	Tx    *FakeTx
	Reads *FakeCommandReads

	// WithinErr short-circuits Within before the callback runs.
	WithinErr error
}

func NewFakeUoW() *FakeUoW {
	reads := NewFakeCommandReads()
	return &FakeUoW{
		Tx:    NewFakeTx(reads),
		Reads: reads,
	}
}

func (u *FakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.WithinErr != nil {
		return u.WithinErr
	}
	return fn(ctx, u.Tx)
}

func (u *FakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlq.DBTX) error) error {
	return fn(ctx, u.Tx.DB())
}

func (u *FakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlq.DBTX) error) error {
	return fn(ctx, u.Tx.DB())
}

func (u *FakeUoW) CommandReads() shared.CommandReads {
	return u.Reads
}

type FakeTx struct {
	AuthRepo        *FakeUnitAuthorizationRepo
	UserRepo        *FakeUserRepo
	TokenRepo       *FakeTokenRequestRepo
	LinkRepo        *FakeCalendarLinkRepo
	ResourceRepo    *FakeResourceRepo
	ReservationRepo *FakeReservationRepo
	QueueRepo       *FakeSyncQueueRepo
	NotifRepo       *FakeNotificationRepo
	CmdReads        *FakeCommandReads
}

func NewFakeTx(reads *FakeCommandReads) *FakeTx {
	return &FakeTx{
		AuthRepo:        &FakeUnitAuthorizationRepo{},
		UserRepo:        &FakeUserRepo{},
		TokenRepo:       NewFakeTokenRequestRepo(),
		LinkRepo:        &FakeCalendarLinkRepo{},
		ResourceRepo:    NewFakeResourceRepo(),
		ReservationRepo: &FakeReservationRepo{},
		QueueRepo:       &FakeSyncQueueRepo{EnqueueResult: true},
		NotifRepo:       &FakeNotificationRepo{},
		CmdReads:        reads,
	}
}

func (t *FakeTx) UnitAuthorizations() shared.UnitAuthorizationRepository { return t.AuthRepo }
func (t *FakeTx) Users() shared.UserRepository                          { return t.UserRepo }
func (t *FakeTx) TokenRequests() shared.TokenRequestRepository          { return t.TokenRepo }
func (t *FakeTx) CalendarLinks() shared.CalendarLinkRepository          { return t.LinkRepo }
func (t *FakeTx) Resources() shared.ResourceRepository                  { return t.ResourceRepo }
func (t *FakeTx) Reservations() shared.ReservationRepository            { return t.ReservationRepo }
func (t *FakeTx) SyncQueue() shared.SyncQueueRepository                 { return t.QueueRepo }
func (t *FakeTx) Notifications() shared.NotificationRepository          { return t.NotifRepo }
func (t *FakeTx) Reads() shared.CommandReads                            { return t.CmdReads }
func (t *FakeTx) DB() sqlq.DBTX                                         { return nil }

// FakeCommandReads serves snapshots from maps. Missing keys surface as
// KindNotFound repository errors, same as the real read side.
type FakeCommandReads struct {
	Units     map[string]*shared.UnitSnapshot
	Resources map[uuid.UUID]*shared.ResourceSnapshot
	Links     map[uuid.UUID]*calendar.OutlookCalendarLink
	Levels    map[string][]unit.AuthorizationLevel
}

func NewFakeCommandReads() *FakeCommandReads {
	return &FakeCommandReads{
		Units:     map[string]*shared.UnitSnapshot{},
		Resources: map[uuid.UUID]*shared.ResourceSnapshot{},
		Links:     map[uuid.UUID]*calendar.OutlookCalendarLink{},
		Levels:    map[string][]unit.AuthorizationLevel{},
	}
}

func levelKey(unitID string, userID uuid.UUID) string {
	return unitID + "/" + userID.String()
}

func (r *FakeCommandReads) SetLevels(unitID string, userID uuid.UUID, levels ...unit.AuthorizationLevel) {
	r.Levels[levelKey(unitID, userID)] = levels
}

func (r *FakeCommandReads) UnitByID(_ context.Context, id string) (*shared.UnitSnapshot, error) {
	if u, ok := r.Units[id]; ok {
		return u, nil
	}
	return nil, notFound("unit %s", id)
}

func (r *FakeCommandReads) ResourceByID(_ context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	if res, ok := r.Resources[id]; ok {
		return res, nil
	}
	return nil, notFound("resource %s", id)
}

func (r *FakeCommandReads) CalendarLinkByResource(_ context.Context, resourceID uuid.UUID) (*calendar.OutlookCalendarLink, error) {
	if l, ok := r.Links[resourceID]; ok {
		return l, nil
	}
	return nil, notFound("link for resource %s", resourceID)
}

func (r *FakeCommandReads) AuthorizationLevels(_ context.Context, unitID string, userID uuid.UUID) ([]unit.AuthorizationLevel, error) {
	return r.Levels[levelKey(unitID, userID)], nil
}

type FakeUnitAuthorizationRepo struct {
	Existing  []unit.AuthorizationLevel
	Created   []*unit.UnitAuthorization
	CreateErr func(auth *unit.UnitAuthorization) error
}

func (r *FakeUnitAuthorizationRepo) Create(_ context.Context, _ sqlq.DBTX, auth *unit.UnitAuthorization) error {
	if r.CreateErr != nil {
		if err := r.CreateErr(auth); err != nil {
			return err
		}
	}
	r.Created = append(r.Created, auth)
	return nil
}

func (r *FakeUnitAuthorizationRepo) LevelsFor(_ context.Context, _ sqlq.DBTX, _ string, _ uuid.UUID) ([]unit.AuthorizationLevel, error) {
	return r.Existing, nil
}

type FakeUserRepo struct {
	StaffSet     []uuid.UUID
	LastLogins   []uuid.UUID
	SetStaffErr  error
	AlreadyStaff bool
}

func (r *FakeUserRepo) SetStaff(_ context.Context, _ sqlq.DBTX, userID uuid.UUID) (bool, error) {
	if r.SetStaffErr != nil {
		return false, r.SetStaffErr
	}
	r.StaffSet = append(r.StaffSet, userID)
	return !r.AlreadyStaff, nil
}

func (r *FakeUserRepo) UpdateLastLogin(_ context.Context, _ sqlq.DBTX, userID uuid.UUID, _ time.Time) error {
	r.LastLogins = append(r.LastLogins, userID)
	return nil
}

type FakeTokenRequestRepo struct {
	ByState map[string]*calendar.OutlookTokenRequestData
	Deleted []string
}

func NewFakeTokenRequestRepo() *FakeTokenRequestRepo {
	return &FakeTokenRequestRepo{ByState: map[string]*calendar.OutlookTokenRequestData{}}
}

func (r *FakeTokenRequestRepo) Create(_ context.Context, _ sqlq.DBTX, req *calendar.OutlookTokenRequestData) error {
	r.ByState[req.State()] = req
	return nil
}

func (r *FakeTokenRequestRepo) FindByState(_ context.Context, _ sqlq.DBTX, state string) (*calendar.OutlookTokenRequestData, error) {
	if req, ok := r.ByState[state]; ok {
		return req, nil
	}
	return nil, notFound("token request %s", state)
}

func (r *FakeTokenRequestRepo) Delete(_ context.Context, _ sqlq.DBTX, state string) error {
	delete(r.ByState, state)
	r.Deleted = append(r.Deleted, state)
	return nil
}

type MappingKey struct {
	LinkID        uuid.UUID
	ReservationID uuid.UUID
}

type FakeCalendarLinkRepo struct {
	Created         []*calendar.OutlookCalendarLink
	Saved           []*calendar.OutlookCalendarLink
	Deleted         []uuid.UUID
	Mappings        map[MappingKey]string
	DeletedMappings []MappingKey
}

func (r *FakeCalendarLinkRepo) Create(_ context.Context, _ sqlq.DBTX, link *calendar.OutlookCalendarLink) error {
	r.Created = append(r.Created, link)
	return nil
}

func (r *FakeCalendarLinkRepo) SaveSyncState(_ context.Context, _ sqlq.DBTX, link *calendar.OutlookCalendarLink) error {
	r.Saved = append(r.Saved, link)
	return nil
}

func (r *FakeCalendarLinkRepo) Delete(_ context.Context, _ sqlq.DBTX, linkID uuid.UUID) error {
	r.Deleted = append(r.Deleted, linkID)
	return nil
}

func (r *FakeCalendarLinkRepo) UpsertEventMapping(_ context.Context, _ sqlq.DBTX, linkID, reservationID uuid.UUID, eventID string) error {
	if r.Mappings == nil {
		r.Mappings = map[MappingKey]string{}
	}
	r.Mappings[MappingKey{linkID, reservationID}] = eventID
	return nil
}

func (r *FakeCalendarLinkRepo) DeleteEventMapping(_ context.Context, _ sqlq.DBTX, linkID, reservationID uuid.UUID) error {
	delete(r.Mappings, MappingKey{linkID, reservationID})
	r.DeletedMappings = append(r.DeletedMappings, MappingKey{linkID, reservationID})
	return nil
}

type FakeResourceRepo struct {
	PeriodCounts map[uuid.UUID]int64
	OpeningHours map[uuid.UUID][]byte
	PeriodsWiped []uuid.UUID
}

func NewFakeResourceRepo() *FakeResourceRepo {
	return &FakeResourceRepo{
		PeriodCounts: map[uuid.UUID]int64{},
		OpeningHours: map[uuid.UUID][]byte{},
	}
}

func (r *FakeResourceRepo) DeletePeriods(_ context.Context, _ sqlq.DBTX, resourceID uuid.UUID) (int64, error) {
	n := r.PeriodCounts[resourceID]
	r.PeriodsWiped = append(r.PeriodsWiped, resourceID)
	return n, nil
}

func (r *FakeResourceRepo) UpdateOpeningHours(_ context.Context, _ sqlq.DBTX, resourceID uuid.UUID, hours []byte) error {
	r.OpeningHours[resourceID] = hours
	return nil
}

type FakeReservationRepo struct {
	Externals []sqlq.CreateExternalReservationParams
	Updated   []sqlq.UpdateReservationTimesParams
	Cancelled []uuid.UUID
}

func (r *FakeReservationRepo) CreateExternal(_ context.Context, _ sqlq.DBTX, arg sqlq.CreateExternalReservationParams) error {
	r.Externals = append(r.Externals, arg)
	return nil
}

func (r *FakeReservationRepo) UpdateTimes(_ context.Context, _ sqlq.DBTX, arg sqlq.UpdateReservationTimesParams) error {
	r.Updated = append(r.Updated, arg)
	return nil
}

func (r *FakeReservationRepo) Cancel(_ context.Context, _ sqlq.DBTX, reservationID uuid.UUID) error {
	r.Cancelled = append(r.Cancelled, reservationID)
	return nil
}

type FakeSyncQueueRepo struct {
	Enqueued      []uuid.UUID
	EnqueueResult bool
	EnqueueErr    error
	Deleted       []uuid.UUID
}

func (r *FakeSyncQueueRepo) Enqueue(_ context.Context, _ sqlq.DBTX, linkID uuid.UUID, _ time.Time) (bool, error) {
	if r.EnqueueErr != nil {
		return false, r.EnqueueErr
	}
	r.Enqueued = append(r.Enqueued, linkID)
	return r.EnqueueResult, nil
}

func (r *FakeSyncQueueRepo) Delete(_ context.Context, _ sqlq.DBTX, entryID uuid.UUID) error {
	r.Deleted = append(r.Deleted, entryID)
	return nil
}

type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type FakeNotificationRepo struct {
	Jobs []NotificationJob
}

func (r *FakeNotificationRepo) CreateJob(_ context.Context, _ sqlq.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.Jobs = append(r.Jobs, NotificationJob{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

func notFound(format string, args ...any) error {
	return infra.WrapRepoErr(fmt.Sprintf(format, args...), errNoRows, infra.KindNotFound)
}

var errNoRows = fmt.Errorf("no rows in result set")
