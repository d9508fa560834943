package wailib_test

import (
	"context"

	"github.com/9seconds/whereami/wailib"
	"github.com/stretchr/testify/mock"
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

func (m *StoreMock) Put(ip string, rec wailib.Record) error {
	return m.Called(ip, rec).Error(0)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) EchoError(name string, err error) {
	m.Called(name, err)
}

func (m *LoggerMock) RateLimited(name, next string) {
	m.Called(name, next)
}

func (m *LoggerMock) CacheError(err error) {
	m.Called(err)
}
