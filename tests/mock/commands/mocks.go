// Package commandsmock provides gomock implementations of the usecase
// command interfaces.
package commandsmock

import (
	"context"
	"reflect"

	reqdto "resource-booking-api/internal/handler/dto/request"
	"resource-booking-api/internal/usecase/commands"
	"resource-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// MockAuthCommands mocks commands.AuthCommands.
type MockAuthCommands struct {
	ctrl     *gomock.Controller
	recorder *MockAuthCommandsMockRecorder
}

type MockAuthCommandsMockRecorder struct {
	mock *MockAuthCommands
}

func NewMockAuthCommands(ctrl *gomock.Controller) *MockAuthCommands {
	mock := &MockAuthCommands{ctrl: ctrl}
	mock.recorder = &MockAuthCommandsMockRecorder{mock}
	return mock
}

func (m *MockAuthCommands) EXPECT() *MockAuthCommandsMockRecorder {
	return m.recorder
}

func (m *MockAuthCommands) Login(ctx context.Context, req reqdto.LoginRequest) (*commands.LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", ctx, req)
	ret0, _ := ret[0].(*commands.LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAuthCommandsMockRecorder) Login(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthCommands)(nil).Login), ctx, req)
}

func (m *MockAuthCommands) RefreshToken(ctx context.Context, refreshToken string) (*commands.TokenPair, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RefreshToken", ctx, refreshToken)
	ret0, _ := ret[0].(*commands.TokenPair)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAuthCommandsMockRecorder) RefreshToken(ctx, refreshToken any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefreshToken", reflect.TypeOf((*MockAuthCommands)(nil).RefreshToken), ctx, refreshToken)
}

// MockUnitAuthorizationCommands mocks commands.UnitAuthorizationCommands.
type MockUnitAuthorizationCommands struct {
	ctrl     *gomock.Controller
	recorder *MockUnitAuthorizationCommandsMockRecorder
}

type MockUnitAuthorizationCommandsMockRecorder struct {
	mock *MockUnitAuthorizationCommands
}

func NewMockUnitAuthorizationCommands(ctrl *gomock.Controller) *MockUnitAuthorizationCommands {
	mock := &MockUnitAuthorizationCommands{ctrl: ctrl}
	mock.recorder = &MockUnitAuthorizationCommandsMockRecorder{mock}
	return mock
}

func (m *MockUnitAuthorizationCommands) EXPECT() *MockUnitAuthorizationCommandsMockRecorder {
	return m.recorder
}

func (m *MockUnitAuthorizationCommands) Grant(ctx context.Context, actor *queries.AuthorizedUserView, unitID string, req reqdto.GrantAuthorizationRequest) (*commands.GrantResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Grant", ctx, actor, unitID, req)
	ret0, _ := ret[0].(*commands.GrantResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitAuthorizationCommandsMockRecorder) Grant(ctx, actor, unitID, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Grant", reflect.TypeOf((*MockUnitAuthorizationCommands)(nil).Grant), ctx, actor, unitID, req)
}

// MockCalendarLinkCommands mocks commands.CalendarLinkCommands.
type MockCalendarLinkCommands struct {
	ctrl     *gomock.Controller
	recorder *MockCalendarLinkCommandsMockRecorder
}

type MockCalendarLinkCommandsMockRecorder struct {
	mock *MockCalendarLinkCommands
}

func NewMockCalendarLinkCommands(ctrl *gomock.Controller) *MockCalendarLinkCommands {
	mock := &MockCalendarLinkCommands{ctrl: ctrl}
	mock.recorder = &MockCalendarLinkCommandsMockRecorder{mock}
	return mock
}

func (m *MockCalendarLinkCommands) EXPECT() *MockCalendarLinkCommandsMockRecorder {
	return m.recorder
}

func (m *MockCalendarLinkCommands) StartLogin(ctx context.Context, actor *queries.AuthorizedUserView, req reqdto.CalendarLoginStartQuery) (*commands.LoginStartResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StartLogin", ctx, actor, req)
	ret0, _ := ret[0].(*commands.LoginStartResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCalendarLinkCommandsMockRecorder) StartLogin(ctx, actor, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StartLogin", reflect.TypeOf((*MockCalendarLinkCommands)(nil).StartLogin), ctx, actor, req)
}

func (m *MockCalendarLinkCommands) CompleteLogin(ctx context.Context, state, code string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompleteLogin", ctx, state, code)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCalendarLinkCommandsMockRecorder) CompleteLogin(ctx, state, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompleteLogin", reflect.TypeOf((*MockCalendarLinkCommands)(nil).CompleteLogin), ctx, state, code)
}

func (m *MockCalendarLinkCommands) Unlink(ctx context.Context, actor *queries.AuthorizedUserView, resourceID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Unlink", ctx, actor, resourceID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCalendarLinkCommandsMockRecorder) Unlink(ctx, actor, resourceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unlink", reflect.TypeOf((*MockCalendarLinkCommands)(nil).Unlink), ctx, actor, resourceID)
}

// MockCalendarSyncCommands mocks commands.CalendarSyncCommands.
type MockCalendarSyncCommands struct {
	ctrl     *gomock.Controller
	recorder *MockCalendarSyncCommandsMockRecorder
}

type MockCalendarSyncCommandsMockRecorder struct {
	mock *MockCalendarSyncCommands
}

func NewMockCalendarSyncCommands(ctrl *gomock.Controller) *MockCalendarSyncCommands {
	mock := &MockCalendarSyncCommands{ctrl: ctrl}
	mock.recorder = &MockCalendarSyncCommandsMockRecorder{mock}
	return mock
}

func (m *MockCalendarSyncCommands) EXPECT() *MockCalendarSyncCommandsMockRecorder {
	return m.recorder
}

func (m *MockCalendarSyncCommands) AddToQueue(ctx context.Context, linkID uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddToQueue", ctx, linkID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCalendarSyncCommandsMockRecorder) AddToQueue(ctx, linkID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddToQueue", reflect.TypeOf((*MockCalendarSyncCommands)(nil).AddToQueue), ctx, linkID)
}

func (m *MockCalendarSyncCommands) EnqueueAll(ctx context.Context, resourceID *uuid.UUID) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnqueueAll", ctx, resourceID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCalendarSyncCommandsMockRecorder) EnqueueAll(ctx, resourceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnqueueAll", reflect.TypeOf((*MockCalendarSyncCommands)(nil).EnqueueAll), ctx, resourceID)
}

func (m *MockCalendarSyncCommands) ProcessQueue(ctx context.Context) (*commands.SyncReport, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProcessQueue", ctx)
	ret0, _ := ret[0].(*commands.SyncReport)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCalendarSyncCommandsMockRecorder) ProcessQueue(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProcessQueue", reflect.TypeOf((*MockCalendarSyncCommands)(nil).ProcessQueue), ctx)
}

func (m *MockCalendarSyncCommands) SyncNow(ctx context.Context, resourceID *uuid.UUID) (*commands.SyncReport, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SyncNow", ctx, resourceID)
	ret0, _ := ret[0].(*commands.SyncReport)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCalendarSyncCommandsMockRecorder) SyncNow(ctx, resourceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SyncNow", reflect.TypeOf((*MockCalendarSyncCommands)(nil).SyncNow), ctx, resourceID)
}

// MockCalendarProvider mocks commands.CalendarProvider.
type MockCalendarProvider struct {
	ctrl     *gomock.Controller
	recorder *MockCalendarProviderMockRecorder
}

type MockCalendarProviderMockRecorder struct {
	mock *MockCalendarProvider
}

func NewMockCalendarProvider(ctrl *gomock.Controller) *MockCalendarProvider {
	mock := &MockCalendarProvider{ctrl: ctrl}
	mock.recorder = &MockCalendarProviderMockRecorder{mock}
	return mock
}

func (m *MockCalendarProvider) EXPECT() *MockCalendarProviderMockRecorder {
	return m.recorder
}

func (m *MockCalendarProvider) ExchangeCode(ctx context.Context, code string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExchangeCode", ctx, code)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCalendarProviderMockRecorder) ExchangeCode(ctx, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExchangeCode", reflect.TypeOf((*MockCalendarProvider)(nil).ExchangeCode), ctx, code)
}

func (m *MockCalendarProvider) Me(ctx context.Context, token []byte) (*commands.CalendarAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Me", ctx, token)
	ret0, _ := ret[0].(*commands.CalendarAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCalendarProviderMockRecorder) Me(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Me", reflect.TypeOf((*MockCalendarProvider)(nil).Me), ctx, token)
}

func (m *MockCalendarProvider) AuthCodeURL(state string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AuthCodeURL", state)
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockCalendarProviderMockRecorder) AuthCodeURL(state any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AuthCodeURL", reflect.TypeOf((*MockCalendarProvider)(nil).AuthCodeURL), state)
}

func (m *MockCalendarProvider) ListEvents(ctx context.Context, token []byte) ([]commands.CalendarEvent, []byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListEvents", ctx, token)
	ret0, _ := ret[0].([]commands.CalendarEvent)
	ret1, _ := ret[1].([]byte)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockCalendarProviderMockRecorder) ListEvents(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListEvents", reflect.TypeOf((*MockCalendarProvider)(nil).ListEvents), ctx, token)
}

func (m *MockCalendarProvider) CreateEvent(ctx context.Context, token []byte, ev commands.CalendarEvent) (string, []byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateEvent", ctx, token, ev)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].([]byte)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockCalendarProviderMockRecorder) CreateEvent(ctx, token, ev any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateEvent", reflect.TypeOf((*MockCalendarProvider)(nil).CreateEvent), ctx, token, ev)
}

func (m *MockCalendarProvider) UpdateEvent(ctx context.Context, token []byte, ev commands.CalendarEvent) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateEvent", ctx, token, ev)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCalendarProviderMockRecorder) UpdateEvent(ctx, token, ev any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateEvent", reflect.TypeOf((*MockCalendarProvider)(nil).UpdateEvent), ctx, token, ev)
}

func (m *MockCalendarProvider) DeleteEvent(ctx context.Context, token []byte, eventID string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteEvent", ctx, token, eventID)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCalendarProviderMockRecorder) DeleteEvent(ctx, token, eventID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteEvent", reflect.TypeOf((*MockCalendarProvider)(nil).DeleteEvent), ctx, token, eventID)
}
