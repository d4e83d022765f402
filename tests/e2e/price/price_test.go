//go:build e2e

package price_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "pricing-admin-api/internal/handler/dto/response"
	"pricing-admin-api/tests/common/authtest"
	"pricing-admin-api/tests/common/builder"
	"pricing-admin-api/tests/common/dbtest"
	"pricing-admin-api/tests/common/httptest"
	"pricing-admin-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	createURL = "/api/prices"
	lookupURL = "/api/prices/lookup"
	rangeURL  = "/api/prices/range"
	deleteURL = "/api/prices/delete"
)

type priceSuite struct {
	e2e.SharedSuite
	operatorToken string
	viewerToken   string
}

func TestPriceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(priceSuite))
}

func (s *priceSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.operatorToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator.user", "operator")
	s.viewerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "viewer.user", "viewer")
}

func (s *priceSuite) countIntervals(skuID string) int {
	var count int
	err := s.DB.QueryRow(s.T().Context(),
		"SELECT count(*) FROM price_intervals WHERE sku_id = $1", skuID).Scan(&count)
	s.Require().NoError(err)
	return count
}

func (s *priceSuite) TestCreate() {
	s.Run("a valid batch is committed and ids come back in order", func() {
		first := builder.NewPriceBuilder().WithSKU("SKU-A")
		second := builder.NewPriceBuilder().WithSKU("SKU-B").WithPrice(2999)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, createURL,
			[]any{first.BuildDTO(), second.BuildDTO()}, s.operatorToken)

		var response resdto.CreateIntervalsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &response)
		s.Equal([]uuid.UUID{first.IntervalID, second.IntervalID}, response.IntervalIDs)
		s.Equal(1, s.countIntervals("SKU-A"))
		s.Equal(1, s.countIntervals("SKU-B"))
	})

	s.Run("server assigns ids left blank", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, createURL,
			[]any{builder.NewPriceBuilder().WithoutID().BuildDTO()}, s.operatorToken)

		var response resdto.CreateIntervalsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &response)
		s.Require().Len(response.IntervalIDs, 1)
		s.NotEqual(uuid.Nil, response.IntervalIDs[0])
	})

	s.Run("a duplicate id rolls back the whole batch", func() {
		existingID := dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-EXISTING", 1500,
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nil)

		fresh := builder.NewPriceBuilder().WithSKU("SKU-FRESH")
		duplicate := builder.NewPriceBuilder().WithSKU("SKU-DUP")
		duplicate.IntervalID = existingID

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, createURL,
			[]any{fresh.BuildDTO(), duplicate.BuildDTO()}, s.operatorToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Interval already exists")
		s.Equal(0, s.countIntervals("SKU-FRESH"), "valid rows must not survive a failed batch")
		s.Equal(0, s.countIntervals("SKU-DUP"))
	})

	s.Run("an invalid row rejects the whole batch", func() {
		good := builder.NewPriceBuilder().WithSKU("SKU-GOOD")
		bad := builder.NewPriceBuilder().WithSKU("SKU-BAD").WithCurrency("DOLLARS")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, createURL,
			[]any{good.BuildDTO(), bad.BuildDTO()}, s.operatorToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid interval")
		s.Equal(0, s.countIntervals("SKU-GOOD"))
	})

	s.Run("empty array is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, createURL,
			[]any{}, s.operatorToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "At least one interval is required")
	})

	s.Run("viewer role may not create", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, createURL,
			[]any{builder.NewPriceBuilder().BuildDTO()}, s.viewerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, createURL,
			[]any{builder.NewPriceBuilder().BuildDTO()}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *priceSuite) TestLookup() {
	s.Run("lists every interval for the SKU ordered by start", func() {
		jan := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		feb := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-1001", 2999, feb, nil)
		dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-1001", 1999, jan, &feb)
		dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-OTHER", 999, jan, nil)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			lookupURL+"?skuId=SKU-1001", nil, s.viewerToken)

		var response []resdto.PriceIntervalResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(int64(1999), response[0].EffectivePriceCent)
		s.Equal(int64(2999), response[1].EffectivePriceCent)
	})

	s.Run("at narrows to the active window with half-open bounds", func() {
		jan := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		feb := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		januaryID := dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-1001", 1999, jan, &feb)
		februaryID := dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-1001", 2999, feb, nil)

		cases := []struct {
			name     string
			at       string
			expectID uuid.UUID
		}{
			{name: "inside the first window", at: "2026-01-15T00:00:00Z", expectID: januaryID},
			{name: "start boundary is included", at: "2026-01-01T00:00:00Z", expectID: januaryID},
			{name: "end boundary belongs to the next window", at: "2026-02-01T00:00:00Z", expectID: februaryID},
			{name: "open-ended window matches far future", at: "2030-01-01T00:00:00Z", expectID: februaryID},
		}
		for _, tc := range cases {
			s.T().Run(tc.name, func(t *testing.T) {
				w := httptest.PerformRequest(t, s.Router, http.MethodGet,
					lookupURL+"?skuId=SKU-1001&at="+tc.at, nil, s.viewerToken)

				var response []resdto.PriceIntervalResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
				if s.Len(response, 1) {
					s.Equal(tc.expectID, response[0].IntervalID)
				}
			})
		}
	})

	s.Run("unknown SKU yields an empty array", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			lookupURL+"?skuId=SKU-NONE", nil, s.viewerToken)

		s.Equal(http.StatusOK, w.Code)
		s.Equal("[]", w.Body.String())
	})

	s.Run("missing skuId", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, lookupURL, nil, s.viewerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "skuId is required")
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			lookupURL+"?skuId=SKU-1001", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *priceSuite) TestRange() {
	s.Run("bounds are inclusive and results ordered by price", func() {
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-CHEAP", 999, start, nil)
		dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-MID", 1999, start, nil)
		dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-HIGH", 2999, start, nil)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			rangeURL+"?min=999&max=1999", nil, s.viewerToken)

		var response []resdto.PriceIntervalResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(int64(999), response[0].EffectivePriceCent)
		s.Equal(int64(1999), response[1].EffectivePriceCent)
	})

	s.Run("inverted bounds", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			rangeURL+"?min=2000&max=1000", nil, s.viewerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "min must not exceed max")
	})

	s.Run("non-integer bounds", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			rangeURL+"?min=abc&max=1000", nil, s.viewerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}

func (s *priceSuite) TestUpdate() {
	s.Run("replaces the interval in full", func() {
		id := dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-1001", 1999,
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nil)

		replacement := builder.NewPriceBuilder().WithSKU("SKU-1001").WithPrice(2599)
		replacement.IntervalID = id

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s", createURL, id), replacement.BuildDTO(), s.operatorToken)

		var response resdto.PriceIntervalResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(id, response.IntervalID)
		s.Equal(int64(2599), response.EffectivePriceCent)
	})

	s.Run("omitting startAtUtc keeps the stored window start", func() {
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		id := dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-1001", 1999, start, nil)

		replacement := builder.NewPriceBuilder().WithSKU("SKU-1001").WithPrice(2599)
		replacement.IntervalID = id
		body := replacement.BuildUpdateDTO()
		body.StartAtUTC = nil

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s", createURL, id), body, s.operatorToken)

		var response resdto.PriceIntervalResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(int64(2599), response.EffectivePriceCent)
		s.True(response.StartAtUTC.Equal(start), "stored start must survive the replace")
	})

	s.Run("clearing end_at reopens the window", func() {
		end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		id := dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-1001", 1999,
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), &end)

		replacement := builder.NewPriceBuilder().WithSKU("SKU-1001")
		replacement.IntervalID = id
		replacement.EndAtUTC = nil

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s", createURL, id), replacement.BuildDTO(), s.operatorToken)

		var response resdto.PriceIntervalResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Nil(response.EndAtUTC)
	})

	s.Run("body id disagreeing with the path", func() {
		id := dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-1001", 1999,
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nil)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s", createURL, id), builder.NewPriceBuilder().BuildDTO(), s.operatorToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "does not match path")
	})

	s.Run("unknown interval", func() {
		b := builder.NewPriceBuilder()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s", createURL, b.IntervalID), b.BuildDTO(), s.operatorToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Interval not found")
	})

	s.Run("viewer role may not update", func() {
		b := builder.NewPriceBuilder()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s", createURL, b.IntervalID), b.BuildDTO(), s.viewerToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *priceSuite) TestDelete() {
	s.Run("removes every interval under the SKU", func() {
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		mid := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-1001", 1999, start, &mid)
		dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-1001", 2999, mid, nil)
		dbtest.CreatePriceInterval(s.T(), s.DB, "SKU-KEEP", 999, start, nil)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			deleteURL+"?skuId=SKU-1001", nil, s.operatorToken)

		var response resdto.DeleteIntervalsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(int64(2), response.Deleted)
		s.Equal(0, s.countIntervals("SKU-1001"))
		s.Equal(1, s.countIntervals("SKU-KEEP"))
	})

	s.Run("deleting a SKU with no intervals succeeds with zero", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			deleteURL+"?skuId=SKU-NONE", nil, s.operatorToken)

		var response resdto.DeleteIntervalsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(int64(0), response.Deleted)
	})

	s.Run("missing skuId", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, deleteURL, nil, s.operatorToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "skuId is required")
	})

	s.Run("viewer role may not delete", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			deleteURL+"?skuId=SKU-1001", nil, s.viewerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}
