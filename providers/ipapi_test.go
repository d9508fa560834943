package providers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/9seconds/whereami/providers"
	"github.com/9seconds/whereami/wailib"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

type MockedIPAPITestSuite struct {
	MockedProviderTestSuite

	prov wailib.GeoProvider
}

func (suite *MockedIPAPITestSuite) SetupTest() {
	suite.MockedProviderTestSuite.SetupTest()

	suite.prov = providers.NewIPAPI(suite.http)
}

func (suite *MockedIPAPITestSuite) TestName() {
	suite.Equal(providers.NameIPAPI, suite.prov.Name())
}

func (suite *MockedIPAPITestSuite) TestLookupClosedContext() {
	ctx, cancel := context.WithCancel(context.Background())

	cancel()

	_, err := suite.prov.Lookup(ctx, "23.22.13.113")

	suite.Error(err)
}

func (suite *MockedIPAPITestSuite) TestLookupOk() {
	httpmock.RegisterResponder("GET",
		"https://ipapi.co/23.22.13.113/json/",
		httpmock.NewStringResponder(http.StatusOK, `{
  "ip": "23.22.13.113",
  "version": "IPv4",
  "city": "Virginia Beach",
  "region": "Virginia",
  "country_name": "United States",
  "latitude": 36.7957,
  "longitude": -76.0126,
  "org": "AS14618 Amazon.com, Inc.",
  "asn": "AS14618"
}`))

	rec, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.NoError(err)
	suite.Equal("United States", rec.CountryName)
	suite.Equal("Virginia Beach", rec.City)
	suite.InDelta(36.7957, rec.Latitude, 1e-6)
	suite.InDelta(-76.0126, rec.Longitude, 1e-6)
	suite.Equal("AS14618 Amazon.com, Inc.", rec.Org)
	suite.Equal("AS14618", rec.ASN)
}

func (suite *MockedIPAPITestSuite) TestLookupPartialBody() {
	httpmock.RegisterResponder("GET",
		"https://ipapi.co/23.22.13.113/json/",
		httpmock.NewStringResponder(http.StatusOK, `{"country_name": "United States"}`))

	rec, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.NoError(err)
	suite.Equal("United States", rec.CountryName)
	suite.Equal("", rec.City)
	suite.Zero(rec.Latitude)
	suite.Zero(rec.Longitude)
}

func (suite *MockedIPAPITestSuite) TestLookupAPIError() {
	httpmock.RegisterResponder("GET",
		"https://ipapi.co/300.1.1.1/json/",
		httpmock.NewStringResponder(http.StatusOK, `{"error": "invalid"}`))

	_, err := suite.prov.Lookup(context.Background(), "300.1.1.1")

	suite.Error(err)
	suite.Equal(wailib.FailureAPI, wailib.KindOf(err))
	suite.Contains(err.Error(), "invalid")
}

func (suite *MockedIPAPITestSuite) TestLookupRateLimited() {
	httpmock.RegisterResponder("GET",
		"https://ipapi.co/23.22.13.113/json/",
		httpmock.NewStringResponder(http.StatusTooManyRequests, ""))

	_, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.Error(err)
	suite.True(errors.Is(err, wailib.ErrRateLimited))
}

func (suite *MockedIPAPITestSuite) TestLookupFailed() {
	httpmock.RegisterResponder("GET",
		"https://ipapi.co/23.22.13.113/json/",
		httpmock.NewStringResponder(http.StatusInternalServerError, ""))

	_, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.Error(err)
	suite.Equal(wailib.FailureProvider, wailib.KindOf(err))
	suite.False(errors.Is(err, wailib.ErrRateLimited))
}

func (suite *MockedIPAPITestSuite) TestLookupBadJSON() {
	httpmock.RegisterResponder("GET",
		"https://ipapi.co/23.22.13.113/json/",
		httpmock.NewStringResponder(http.StatusOK, `{[`))

	_, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.Error(err)
	suite.Equal(wailib.FailureProvider, wailib.KindOf(err))
}

func (suite *MockedIPAPITestSuite) TestLookupTransportError() {
	httpmock.RegisterResponder("GET",
		"https://ipapi.co/23.22.13.113/json/",
		httpmock.NewErrorResponder(errors.New("dial tcp: connection refused")))

	_, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.Error(err)
	suite.Equal(wailib.FailureNetwork, wailib.KindOf(err))
}

type IntegrationIPAPITestSuite struct {
	ProviderTestSuite

	prov wailib.GeoProvider
}

func (suite *IntegrationIPAPITestSuite) SetupTest() {
	suite.ProviderTestSuite.SetupTest()

	suite.prov = providers.NewIPAPI(suite.http)
}

func (suite *IntegrationIPAPITestSuite) TestLookup() {
	rec, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	if errors.Is(err, wailib.ErrRateLimited) {
		suite.T().Skip("ipapi.co rate limit reached from this address")
		return
	}

	suite.NoError(err)
	suite.Equal("United States", rec.CountryName)
}

func TestIPAPI(t *testing.T) {
	suite.Run(t, &MockedIPAPITestSuite{})
}

func TestIntegrationIPAPI(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipped because of the short mode")
		return
	}

	suite.Run(t, &IntegrationIPAPITestSuite{})
}
