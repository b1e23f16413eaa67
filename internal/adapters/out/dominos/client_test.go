package dominos_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pizzaorder/internal/adapters/out/dominos"
	"pizzaorder/internal/core/domain/model/menu"
	"pizzaorder/internal/core/domain/model/order"
	"pizzaorder/internal/core/domain/model/store"
	"pizzaorder/internal/core/domain/model/tracking"
	"pizzaorder/internal/pkg/errs"
	"pizzaorder/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const userAgent = "pizza-order-test/1.0"

const locatorReply = `{
	"Status": 0,
	"Granularity": "Locations",
	"Address": {"Street": "3457 W 1ST AVE", "City": "VANCOUVER", "Region": "BC", "PostalCode": "V6R1G6", "UnitType": "House"},
	"Stores": [
		{"StoreID": "10502", "AddressDescription": "2125 W 4th Ave\nVancouver, BC V6K 1N7", "IsOnlineNow": true},
		{"StoreID": "10503", "AddressDescription": "3308 Dunbar St\nVancouver, BC V6S 2B9", "IsOnlineNow": false},
		{"StoreID": "10504", "AddressDescription": "1 Main St\nVancouver, BC V5T 3C9"}
	]
}`

const trackerReply = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <GetTrackerDataResponse xmlns="http://www.dominos.com/message/">
      <OrderStatuses>
        <OrderStatus>
          <StoreID>10503</StoreID>
          <OrderID>2024-01-05#1234</OrderID>
          <OrderDescription>1 Medium Pizza</OrderDescription>
          <OrderStatus>Bake</OrderStatus>
        </OrderStatus>
        <OrderStatus>
          <StoreID>10503</StoreID>
          <OrderID>2024-01-05#1240</OrderID>
          <OrderStatus>Out the door</OrderStatus>
        </OrderStatus>
      </OrderStatuses>
    </GetTrackerDataResponse>
  </soap:Body>
</soap:Envelope>`

// ClientTestSuite runs the client against an echo server standing in for the
// ordering service.
type ClientTestSuite struct {
	suite.Suite
	e      *echo.Echo
	server *httptest.Server
	client *dominos.Client
}

func (suite *ClientTestSuite) SetupTest() {
	suite.e = echo.New()
	suite.e.HideBanner = true
	suite.server = httptest.NewServer(suite.e)
	suite.client = suite.newClient(suite.server.URL, time.Second)
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *ClientTestSuite) newClient(baseURL string, readTimeout time.Duration) *dominos.Client {
	client, err := dominos.NewClient(dominos.Config{
		BaseURL:        baseURL,
		ConnectTimeout: time.Second,
		ReadTimeout:    readTimeout,
		UserAgent:      userAgent,
	}, logger.NewNop())
	suite.Require().NoError(err)
	return client
}

func (suite *ClientTestSuite) storedOrder() order.Envelope {
	lookup, err := suite.client.FindStores(context.Background(), suite.query())
	suite.Require().NoError(err)

	o := order.NewOrder()
	suite.Require().NoError(o.SetAddress(lookup.Address))
	suite.Require().NoError(o.SetStore(lookup.Stores[0]))
	suite.Require().NoError(o.SetProducts([]order.Selection{{Size: "m", Toppings: []string{"cheese"}}}))
	return o.Envelope()
}

func (suite *ClientTestSuite) query() store.Query {
	q, err := store.NewQuery("3457 West 1st Avenue", "Vancouver", "BC", "V6R1G6")
	suite.Require().NoError(err)
	return q
}

func (suite *ClientTestSuite) serveLocator() {
	suite.e.GET("/power/store-locator", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(locatorReply))
	})
}

func (suite *ClientTestSuite) TestFindStores() {
	var gotQuery map[string]string
	var gotAgent string
	suite.e.GET("/power/store-locator", func(c echo.Context) error {
		gotQuery = map[string]string{
			"type": c.QueryParam("type"),
			"c":    c.QueryParam("c"),
			"s":    c.QueryParam("s"),
		}
		gotAgent = c.Request().UserAgent()
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(locatorReply))
	})

	lookup, err := suite.client.FindStores(context.Background(), suite.query())

	suite.Require().NoError(err)
	suite.Equal(map[string]string{
		"type": "Delivery",
		"c":    "Vancouver, BC V6R1G6",
		"s":    "3457 West 1st Avenue",
	}, gotQuery)
	suite.Equal(userAgent, gotAgent)

	suite.Equal("VANCOUVER", lookup.Address.City())
	suite.Equal("House", lookup.Address.Fields()["UnitType"])
	suite.Require().Len(lookup.Stores, 3)
	suite.Equal("10502", lookup.Stores[0].ID())
	suite.Equal("2125 W 4th Ave", lookup.Stores[0].Summary())

	available := lookup.Available()
	suite.Require().Len(available, 2)
	suite.Equal("10502", available[0].ID())
	suite.Equal("10504", available[1].ID())
}

func (suite *ClientTestSuite) TestFindStores_EmptyStores() {
	suite.e.GET("/power/store-locator", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"Address": map[string]any{"City": "NOWHERE"},
			"Stores":  []any{},
		})
	})

	lookup, err := suite.client.FindStores(context.Background(), suite.query())

	suite.Require().NoError(err)
	suite.Empty(lookup.Stores)
}

func (suite *ClientTestSuite) TestFindStores_ServerError() {
	suite.e.GET("/power/store-locator", func(c echo.Context) error {
		return c.String(http.StatusInternalServerError, "boom")
	})

	_, err := suite.client.FindStores(context.Background(), suite.query())

	suite.Require().ErrorIs(err, dominos.ErrRemoteRejection)
	var rejection *dominos.RemoteRejectionError
	suite.Require().ErrorAs(err, &rejection)
	suite.Equal(http.StatusInternalServerError, rejection.StatusCode)
	suite.Equal("store-locator", rejection.Operation)
}

func (suite *ClientTestSuite) TestFindStores_MalformedReply() {
	suite.e.GET("/power/store-locator", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(`{"Stores": "nope"`))
	})

	_, err := suite.client.FindStores(context.Background(), suite.query())

	suite.Require().ErrorIs(err, dominos.ErrRemoteRejection)
	suite.NotErrorIs(err, dominos.ErrTransport)
}

func (suite *ClientTestSuite) TestValidateOrder_SendsEnvelope() {
	suite.serveLocator()

	var raw map[string]map[string]any
	var contentType string
	suite.e.POST("/power/validate-order", func(c echo.Context) error {
		contentType = c.Request().Header.Get(echo.HeaderContentType)
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}
		if err = json.Unmarshal(body, &raw); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]any{"Status": 1, "StatusItems": []any{}})
	})

	err := suite.client.ValidateOrder(context.Background(), suite.storedOrder())

	suite.Require().NoError(err)
	suite.Equal("application/json", contentType)
	suite.Require().Contains(raw, "Order")
	doc := raw["Order"]
	suite.Equal("10502", doc["StoreID"])
	suite.Equal("Delivery", doc["ServiceMethod"])
	suite.Equal(true, doc["NoCombine"])
	suite.Nil(doc["OrderTaker"])
	suite.NotContains(doc, "Amounts")
	products := doc["Products"].([]any)
	suite.Require().Len(products, 1)
	suite.Equal(menu.MediumCode, products[0].(map[string]any)["Code"])
	suite.Equal(true, products[0].(map[string]any)["isNew"])
}

func (suite *ClientTestSuite) TestValidateOrder_Rejected() {
	suite.serveLocator()
	suite.e.POST("/power/validate-order", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"Status": -1,
			"StatusItems": []map[string]string{
				{"Code": "PosOrderIncomplete"},
				{"Code": "StoreClosed"},
			},
		})
	})

	err := suite.client.ValidateOrder(context.Background(), suite.storedOrder())

	suite.Require().ErrorIs(err, dominos.ErrRemoteRejection)
	var rejection *dominos.RemoteRejectionError
	suite.Require().ErrorAs(err, &rejection)
	suite.Equal([]string{"PosOrderIncomplete", "StoreClosed"}, rejection.Codes)
	suite.Equal("validate-order: rejected by the ordering service: PosOrderIncomplete, StoreClosed", err.Error())
}

func (suite *ClientTestSuite) TestValidateOrder_HTTPStatusWithCodes() {
	suite.serveLocator()
	suite.e.POST("/power/validate-order", func(c echo.Context) error {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"Status":      -1,
			"StatusItems": []map[string]string{{"Code": "InvalidStore"}},
		})
	})

	err := suite.client.ValidateOrder(context.Background(), suite.storedOrder())

	var rejection *dominos.RemoteRejectionError
	suite.Require().ErrorAs(err, &rejection)
	suite.Equal(http.StatusBadRequest, rejection.StatusCode)
	suite.Equal([]string{"InvalidStore"}, rejection.Codes)
}

func (suite *ClientTestSuite) TestPriceOrder() {
	suite.serveLocator()
	suite.e.POST("/power/price-order", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(`{
			"Status": 0,
			"Order": {"Amounts": {"Menu": 15.99, "Discount": 0, "Tax": 2.46, "Payment": 18.45}}
		}`))
	})

	priced, err := suite.client.PriceOrder(context.Background(), suite.storedOrder())

	suite.Require().NoError(err)
	payment, ok := priced.Order.Amounts.Payment()
	suite.True(ok)
	suite.Equal(18.45, payment)
	suite.Equal(2.46, priced.Order.Amounts["Tax"])

	o := order.NewOrder()
	suite.Require().NoError(o.SetPrice(priced))
	total, err := o.Payment()
	suite.Require().NoError(err)
	suite.Equal(18.45, total)
}

func (suite *ClientTestSuite) TestPriceOrder_MissingPayment() {
	suite.serveLocator()
	suite.e.POST("/power/price-order", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"Status": 0, "Order": map[string]any{}})
	})

	_, err := suite.client.PriceOrder(context.Background(), suite.storedOrder())

	suite.Require().ErrorIs(err, dominos.ErrRemoteRejection)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *ClientTestSuite) TestPlaceOrder() {
	suite.serveLocator()

	called := false
	suite.e.POST("/power/place-order", func(c echo.Context) error {
		called = true
		return c.JSON(http.StatusOK, map[string]any{"Status": 1})
	})

	err := suite.client.PlaceOrder(context.Background(), suite.storedOrder())

	suite.Require().NoError(err)
	suite.True(called)
}

func (suite *ClientTestSuite) TestPlaceOrder_Rejected() {
	suite.serveLocator()
	suite.e.POST("/power/place-order", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"Status":      -1,
			"StatusItems": []map[string]string{{"Code": "CardDeclined"}},
		})
	})

	err := suite.client.PlaceOrder(context.Background(), suite.storedOrder())

	suite.Require().ErrorIs(err, dominos.ErrRemoteRejection)
}

func (suite *ClientTestSuite) TestTrackOrders() {
	var phone string
	suite.e.GET("/orderstorage/GetTrackerData", func(c echo.Context) error {
		phone = c.QueryParam("Phone")
		return c.Blob(http.StatusOK, echo.MIMETextXMLCharsetUTF8, []byte(trackerReply))
	})

	statuses, err := suite.client.TrackOrders(context.Background(), "6045550199")

	suite.Require().NoError(err)
	suite.Equal("6045550199", phone)
	suite.Equal([]tracking.OrderStatus{
		{StoreID: "10503", OrderID: "2024-01-05#1234", Description: "1 Medium Pizza", Status: "Bake"},
		{StoreID: "10503", OrderID: "2024-01-05#1240", Status: "Out the door"},
	}, statuses)
}

func (suite *ClientTestSuite) TestTrackOrders_NotSOAP() {
	suite.e.GET("/orderstorage/GetTrackerData", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMETextXML, []byte(`<html><body>maintenance</body></html>`))
	})

	_, err := suite.client.TrackOrders(context.Background(), "6045550199")

	suite.Require().ErrorIs(err, dominos.ErrRemoteRejection)
}

func (suite *ClientTestSuite) TestReadTimeout() {
	suite.e.GET("/power/store-locator", func(c echo.Context) error {
		select {
		case <-time.After(2 * time.Second):
		case <-c.Request().Context().Done():
		}
		return c.NoContent(http.StatusOK)
	})
	client := suite.newClient(suite.server.URL, 50*time.Millisecond)

	started := time.Now()
	_, err := client.FindStores(context.Background(), suite.query())

	suite.Require().ErrorIs(err, dominos.ErrTransport)
	suite.NotErrorIs(err, dominos.ErrRemoteRejection)
	suite.Less(time.Since(started), 2*time.Second)
}

func (suite *ClientTestSuite) TestUnreachable() {
	closed := httptest.NewServer(http.NotFoundHandler())
	url := closed.URL
	closed.Close()
	client := suite.newClient(url, time.Second)

	err := client.PlaceOrder(context.Background(), order.NewOrder().Envelope())

	suite.Require().ErrorIs(err, dominos.ErrTransport)
	var transport *dominos.TransportError
	suite.Require().ErrorAs(err, &transport)
	suite.Equal("place-order", transport.Operation)
}

func (suite *ClientTestSuite) TestCallerCancellation() {
	suite.serveLocator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.client.FindStores(ctx, suite.query())

	suite.Require().ErrorIs(err, dominos.ErrTransport)
	suite.Require().ErrorIs(err, context.Canceled)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestNewClient_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     dominos.Config
		wantErr error
	}{
		{
			name:    "missing base url",
			cfg:     dominos.Config{ConnectTimeout: time.Second, ReadTimeout: time.Second},
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "relative base url",
			cfg:     dominos.Config{BaseURL: "order.dominos.ca", ConnectTimeout: time.Second, ReadTimeout: time.Second},
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name:    "zero connect timeout",
			cfg:     dominos.Config{BaseURL: "https://order.dominos.ca", ReadTimeout: time.Second},
			wantErr: errs.ErrValueIsOutOfRange,
		},
		{
			name:    "negative read timeout",
			cfg:     dominos.Config{BaseURL: "https://order.dominos.ca", ConnectTimeout: time.Second, ReadTimeout: -1},
			wantErr: errs.ErrValueIsOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := dominos.NewClient(tt.cfg, nil)

			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, client)
		})
	}
}
