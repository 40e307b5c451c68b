// Package queriesmock provides gomock implementations of the usecase
// query interfaces and read stores.
package queriesmock

import (
	"context"
	"reflect"
	"time"

	"resource-booking-api/internal/domain/calendar"
	"resource-booking-api/internal/domain/unit"
	"resource-booking-api/internal/usecase/commands"
	"resource-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// MockUserQueries mocks queries.UserQueries.
type MockUserQueries struct {
	ctrl     *gomock.Controller
	recorder *MockUserQueriesMockRecorder
}

type MockUserQueriesMockRecorder struct {
	mock *MockUserQueries
}

func NewMockUserQueries(ctrl *gomock.Controller) *MockUserQueries {
	mock := &MockUserQueries{ctrl: ctrl}
	mock.recorder = &MockUserQueriesMockRecorder{mock}
	return mock
}

func (m *MockUserQueries) EXPECT() *MockUserQueriesMockRecorder {
	return m.recorder
}

func (m *MockUserQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCurrentUser", ctx, userID)
	ret0, _ := ret[0].(*queries.AuthorizedUserView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserQueriesMockRecorder) GetCurrentUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCurrentUser", reflect.TypeOf((*MockUserQueries)(nil).GetCurrentUser), ctx, userID)
}

// MockUserReadStore mocks queries.UserReadStore.
type MockUserReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockUserReadStoreMockRecorder
}

type MockUserReadStoreMockRecorder struct {
	mock *MockUserReadStore
}

func NewMockUserReadStore(ctrl *gomock.Controller) *MockUserReadStore {
	mock := &MockUserReadStore{ctrl: ctrl}
	mock.recorder = &MockUserReadStoreMockRecorder{mock}
	return mock
}

func (m *MockUserReadStore) EXPECT() *MockUserReadStoreMockRecorder {
	return m.recorder
}

func (m *MockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.AuthorizedUserView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockUserReadStore)(nil).FindByID), ctx, id)
}

func (m *MockUserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByEmail", ctx, email)
	ret0, _ := ret[0].(*queries.AuthorizedUserView)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockUserReadStoreMockRecorder) FindByEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByEmail", reflect.TypeOf((*MockUserReadStore)(nil).FindByEmail), ctx, email)
}

// MockUnitQueries mocks queries.UnitQueries.
type MockUnitQueries struct {
	ctrl     *gomock.Controller
	recorder *MockUnitQueriesMockRecorder
}

type MockUnitQueriesMockRecorder struct {
	mock *MockUnitQueries
}

func NewMockUnitQueries(ctrl *gomock.Controller) *MockUnitQueries {
	mock := &MockUnitQueries{ctrl: ctrl}
	mock.recorder = &MockUnitQueriesMockRecorder{mock}
	return mock
}

func (m *MockUnitQueries) EXPECT() *MockUnitQueriesMockRecorder {
	return m.recorder
}

func (m *MockUnitQueries) GetUnit(ctx context.Context, unitID string) (*queries.UnitView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUnit", ctx, unitID)
	ret0, _ := ret[0].(*queries.UnitView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitQueriesMockRecorder) GetUnit(ctx, unitID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUnit", reflect.TypeOf((*MockUnitQueries)(nil).GetUnit), ctx, unitID)
}

func (m *MockUnitQueries) ListUnits(ctx context.Context) ([]*queries.UnitView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUnits", ctx)
	ret0, _ := ret[0].([]*queries.UnitView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitQueriesMockRecorder) ListUnits(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUnits", reflect.TypeOf((*MockUnitQueries)(nil).ListUnits), ctx)
}

func (m *MockUnitQueries) ListManagedUnits(ctx context.Context, actor *queries.AuthorizedUserView) ([]*queries.UnitView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListManagedUnits", ctx, actor)
	ret0, _ := ret[0].([]*queries.UnitView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitQueriesMockRecorder) ListManagedUnits(ctx, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListManagedUnits", reflect.TypeOf((*MockUnitQueries)(nil).ListManagedUnits), ctx, actor)
}

func (m *MockUnitQueries) ListUnitsByRoles(ctx context.Context, actor *queries.AuthorizedUserView, roles []unit.Role) ([]*queries.UnitView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUnitsByRoles", ctx, actor, roles)
	ret0, _ := ret[0].([]*queries.UnitView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitQueriesMockRecorder) ListUnitsByRoles(ctx, actor, roles any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUnitsByRoles", reflect.TypeOf((*MockUnitQueries)(nil).ListUnitsByRoles), ctx, actor, roles)
}

func (m *MockUnitQueries) ListHighestAuthorizations(ctx context.Context, actor *queries.AuthorizedUserView, unitID string) ([]*queries.UnitAuthorizationView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListHighestAuthorizations", ctx, actor, unitID)
	ret0, _ := ret[0].([]*queries.UnitAuthorizationView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitQueriesMockRecorder) ListHighestAuthorizations(ctx, actor, unitID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListHighestAuthorizations", reflect.TypeOf((*MockUnitQueries)(nil).ListHighestAuthorizations), ctx, actor, unitID)
}

func (m *MockUnitQueries) ListApprovers(ctx context.Context, actor *queries.AuthorizedUserView, unitID string) ([]*queries.ApproverView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListApprovers", ctx, actor, unitID)
	ret0, _ := ret[0].([]*queries.ApproverView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitQueriesMockRecorder) ListApprovers(ctx, actor, unitID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListApprovers", reflect.TypeOf((*MockUnitQueries)(nil).ListApprovers), ctx, actor, unitID)
}

// MockReservationQueries mocks queries.ReservationQueries.
type MockReservationQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReservationQueriesMockRecorder
}

type MockReservationQueriesMockRecorder struct {
	mock *MockReservationQueries
}

func NewMockReservationQueries(ctrl *gomock.Controller) *MockReservationQueries {
	mock := &MockReservationQueries{ctrl: ctrl}
	mock.recorder = &MockReservationQueriesMockRecorder{mock}
	return mock
}

func (m *MockReservationQueries) EXPECT() *MockReservationQueriesMockRecorder {
	return m.recorder
}

func (m *MockReservationQueries) GetPaymentDeadline(ctx context.Context, reservationID uuid.UUID) (*queries.PaymentDeadlineView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPaymentDeadline", ctx, reservationID)
	ret0, _ := ret[0].(*queries.PaymentDeadlineView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockReservationQueriesMockRecorder) GetPaymentDeadline(ctx, reservationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPaymentDeadline", reflect.TypeOf((*MockReservationQueries)(nil).GetPaymentDeadline), ctx, reservationID)
}

// MockSyncReads mocks commands.SyncReads.
type MockSyncReads struct {
	ctrl     *gomock.Controller
	recorder *MockSyncReadsMockRecorder
}

type MockSyncReadsMockRecorder struct {
	mock *MockSyncReads
}

func NewMockSyncReads(ctrl *gomock.Controller) *MockSyncReads {
	mock := &MockSyncReads{ctrl: ctrl}
	mock.recorder = &MockSyncReadsMockRecorder{mock}
	return mock
}

func (m *MockSyncReads) EXPECT() *MockSyncReadsMockRecorder {
	return m.recorder
}

func (m *MockSyncReads) FindLinkByID(ctx context.Context, id uuid.UUID) (*calendar.OutlookCalendarLink, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindLinkByID", ctx, id)
	ret0, _ := ret[0].(*calendar.OutlookCalendarLink)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSyncReadsMockRecorder) FindLinkByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindLinkByID", reflect.TypeOf((*MockSyncReads)(nil).FindLinkByID), ctx, id)
}

func (m *MockSyncReads) FindLinkByResource(ctx context.Context, resourceID uuid.UUID) (*calendar.OutlookCalendarLink, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindLinkByResource", ctx, resourceID)
	ret0, _ := ret[0].(*calendar.OutlookCalendarLink)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSyncReadsMockRecorder) FindLinkByResource(ctx, resourceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindLinkByResource", reflect.TypeOf((*MockSyncReads)(nil).FindLinkByResource), ctx, resourceID)
}

func (m *MockSyncReads) ListLinks(ctx context.Context) ([]*calendar.OutlookCalendarLink, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListLinks", ctx)
	ret0, _ := ret[0].([]*calendar.OutlookCalendarLink)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSyncReadsMockRecorder) ListLinks(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListLinks", reflect.TypeOf((*MockSyncReads)(nil).ListLinks), ctx)
}

func (m *MockSyncReads) ListPendingEntries(ctx context.Context) ([]commands.SyncQueueEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPendingEntries", ctx)
	ret0, _ := ret[0].([]commands.SyncQueueEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSyncReadsMockRecorder) ListPendingEntries(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPendingEntries", reflect.TypeOf((*MockSyncReads)(nil).ListPendingEntries), ctx)
}

func (m *MockSyncReads) ListMappings(ctx context.Context, linkID uuid.UUID) ([]commands.EventMapping, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListMappings", ctx, linkID)
	ret0, _ := ret[0].([]commands.EventMapping)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSyncReadsMockRecorder) ListMappings(ctx, linkID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListMappings", reflect.TypeOf((*MockSyncReads)(nil).ListMappings), ctx, linkID)
}

func (m *MockSyncReads) ListReservationsChangedSince(ctx context.Context, resourceID uuid.UUID, since time.Time) ([]commands.ReservationSyncItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListReservationsChangedSince", ctx, resourceID, since)
	ret0, _ := ret[0].([]commands.ReservationSyncItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSyncReadsMockRecorder) ListReservationsChangedSince(ctx, resourceID, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListReservationsChangedSince", reflect.TypeOf((*MockSyncReads)(nil).ListReservationsChangedSince), ctx, resourceID, since)
}

// MockUnitReadStore mocks queries.UnitReadStore.
type MockUnitReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockUnitReadStoreMockRecorder
}

type MockUnitReadStoreMockRecorder struct {
	mock *MockUnitReadStore
}

func NewMockUnitReadStore(ctrl *gomock.Controller) *MockUnitReadStore {
	mock := &MockUnitReadStore{ctrl: ctrl}
	mock.recorder = &MockUnitReadStoreMockRecorder{mock}
	return mock
}

func (m *MockUnitReadStore) EXPECT() *MockUnitReadStoreMockRecorder {
	return m.recorder
}

func (m *MockUnitReadStore) FindByID(ctx context.Context, id string) (*queries.UnitView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.UnitView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockUnitReadStore)(nil).FindByID), ctx, id)
}

func (m *MockUnitReadStore) List(ctx context.Context) ([]*queries.UnitView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*queries.UnitView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitReadStoreMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockUnitReadStore)(nil).List), ctx)
}

func (m *MockUnitReadStore) ListManagedBy(ctx context.Context, userID uuid.UUID) ([]*queries.UnitView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListManagedBy", ctx, userID)
	ret0, _ := ret[0].([]*queries.UnitView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitReadStoreMockRecorder) ListManagedBy(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListManagedBy", reflect.TypeOf((*MockUnitReadStore)(nil).ListManagedBy), ctx, userID)
}

func (m *MockUnitReadStore) ListByRoleLevels(ctx context.Context, userID uuid.UUID, unitLevels, groupLevels []string) ([]*queries.UnitView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByRoleLevels", ctx, userID, unitLevels, groupLevels)
	ret0, _ := ret[0].([]*queries.UnitView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitReadStoreMockRecorder) ListByRoleLevels(ctx, userID, unitLevels, groupLevels any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByRoleLevels", reflect.TypeOf((*MockUnitReadStore)(nil).ListByRoleLevels), ctx, userID, unitLevels, groupLevels)
}

func (m *MockUnitReadStore) HighestAuthorizationsPerUser(ctx context.Context, unitID string) ([]*queries.UnitAuthorizationView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HighestAuthorizationsPerUser", ctx, unitID)
	ret0, _ := ret[0].([]*queries.UnitAuthorizationView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitReadStoreMockRecorder) HighestAuthorizationsPerUser(ctx, unitID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HighestAuthorizationsPerUser", reflect.TypeOf((*MockUnitReadStore)(nil).HighestAuthorizationsPerUser), ctx, unitID)
}

func (m *MockUnitReadStore) Approvers(ctx context.Context, unitID string) ([]*queries.ApproverView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Approvers", ctx, unitID)
	ret0, _ := ret[0].([]*queries.ApproverView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitReadStoreMockRecorder) Approvers(ctx, unitID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Approvers", reflect.TypeOf((*MockUnitReadStore)(nil).Approvers), ctx, unitID)
}

func (m *MockUnitReadStore) AuthorizationLevels(ctx context.Context, unitID string, userID uuid.UUID) ([]unit.AuthorizationLevel, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AuthorizationLevels", ctx, unitID, userID)
	ret0, _ := ret[0].([]unit.AuthorizationLevel)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitReadStoreMockRecorder) AuthorizationLevels(ctx, unitID, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AuthorizationLevels", reflect.TypeOf((*MockUnitReadStore)(nil).AuthorizationLevels), ctx, unitID, userID)
}

// MockReservationReadStore mocks queries.ReservationReadStore.
type MockReservationReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockReservationReadStoreMockRecorder
}

type MockReservationReadStoreMockRecorder struct {
	mock *MockReservationReadStore
}

func NewMockReservationReadStore(ctrl *gomock.Controller) *MockReservationReadStore {
	mock := &MockReservationReadStore{ctrl: ctrl}
	mock.recorder = &MockReservationReadStoreMockRecorder{mock}
	return mock
}

func (m *MockReservationReadStore) EXPECT() *MockReservationReadStoreMockRecorder {
	return m.recorder
}

func (m *MockReservationReadStore) PaymentContext(ctx context.Context, reservationID uuid.UUID) (*queries.PaymentContextView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PaymentContext", ctx, reservationID)
	ret0, _ := ret[0].(*queries.PaymentContextView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockReservationReadStoreMockRecorder) PaymentContext(ctx, reservationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PaymentContext", reflect.TypeOf((*MockReservationReadStore)(nil).PaymentContext), ctx, reservationID)
}
