package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/9seconds/whereami/wailib"
	"github.com/9seconds/whereami/web"
)

type EchoProviderMock struct {
	mock.Mock
}

func (m *EchoProviderMock) Name() string {
	return m.Called().String(0)
}

func (m *EchoProviderMock) Addr(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}

type GeoProviderMock struct {
	mock.Mock
}

func (m *GeoProviderMock) Name() string {
	return m.Called().String(0)
}

func (m *GeoProviderMock) Lookup(ctx context.Context, ip string) (wailib.Record, error) {
	args := m.Called(ctx, ip)

	return args.Get(0).(wailib.Record), args.Error(1)
}

type StoreMock struct {
	mock.Mock
}

func (m *StoreMock) Get(ip string) (wailib.Record, bool) {
	args := m.Called(ip)

	return args.Get(0).(wailib.Record), args.Bool(1)
}

func (m *StoreMock) Put(ip string, record wailib.Record) error {
	return m.Called(ip, record).Error(0)
}

type ServerTestSuite struct {
	suite.Suite

	echoMock  *EchoProviderMock
	geoMock   *GeoProviderMock
	storeMock *StoreMock
	h         http.Handler
	resp      *httptest.ResponseRecorder
}

func (suite *ServerTestSuite) SetupTest() {
	suite.echoMock = &EchoProviderMock{}
	suite.geoMock = &GeoProviderMock{}
	suite.storeMock = &StoreMock{}

	suite.echoMock.On("Name").Return("echoMock").Maybe()
	suite.geoMock.On("Name").Return("geoMock").Maybe()

	resolver := wailib.NewResolver(
		[]wailib.EchoProvider{suite.echoMock},
		[]wailib.EchoProvider{suite.echoMock},
		nil)
	locator := wailib.NewLocator(
		[]wailib.GeoProvider{suite.geoMock},
		suite.storeMock,
		nil)

	suite.h = web.MakeServer(resolver, locator)
	suite.resp = httptest.NewRecorder()
}

func (suite *ServerTestSuite) TearDownTest() {
	suite.echoMock.AssertExpectations(suite.T())
	suite.geoMock.AssertExpectations(suite.T())
	suite.storeMock.AssertExpectations(suite.T())
}
