package queries

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery(t *testing.T) {
	preparing := "PREPARING"
	empty := ""
	unknown := "COOKING"

	tests := []struct {
		name       string
		status     *string
		limit      int
		wantStatus *order.Status
		wantLimit  int
		wantErr    error
	}{
		{name: "defaults", wantLimit: DefaultOrdersLimit},
		{name: "empty status is no filter", status: &empty, limit: 10, wantLimit: 10},
		{name: "status filter", status: &preparing, limit: MaxOrdersLimit, wantLimit: MaxOrdersLimit},
		{name: "unknown status", status: &unknown, wantErr: errs.ErrValueIsInvalid},
		{name: "negative limit", limit: -1, wantErr: errs.ErrValueIsOutOfRange},
		{name: "limit above max", limit: MaxOrdersLimit + 1, wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewGetOrdersQuery(tt.status, tt.limit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, q.Validate())
			assert.Equal(t, tt.wantLimit, q.Limit())
			if tt.status != nil && *tt.status == preparing {
				require.NotNil(t, q.Status())
				assert.Equal(t, order.Preparing, *q.Status())
			} else {
				assert.Nil(t, q.Status())
			}
		})
	}
}

func TestNewGetDailySalesQuery(t *testing.T) {
	q, err := NewGetDailySalesQuery(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultSalesDays, q.Days())

	q, err = NewGetDailySalesQuery(30)
	require.NoError(t, err)
	assert.Equal(t, 30, q.Days())

	_, err = NewGetDailySalesQuery(-3)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = NewGetDailySalesQuery(MaxSalesDays + 1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewGetOrderQuery_RejectsNilID(t *testing.T) {
	_, err := NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)

	_, err = NewGetOrderTicketQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestReportDay(t *testing.T) {
	mexicoCity := time.FixedZone("CST", -6*60*60)
	late := time.Date(2026, 3, 10, 21, 30, 0, 0, mexicoCity)

	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), reportDay(late))
	assert.Equal(t, reportDay(time.Now()), reportDay(time.Time{}))

	q := NewGetCashCloseQuery(late)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), q.Day())
}

func TestReportStatuses(t *testing.T) {
	assert.ElementsMatch(t, []string{"RECEIVED", "PREPARING", "READY", "DELIVERED"}, billableStatuses())
	assert.Equal(t, []string{"DELIVERED"}, settledStatuses())
}

func TestQueries_ZeroValue_FailValidation(t *testing.T) {
	validators := map[string]interface{ Validate() error }{
		"GetOrdersQuery":               GetOrdersQuery{},
		"GetOrderQuery":                GetOrderQuery{},
		"GetOrderTicketQuery":          GetOrderTicketQuery{},
		"GetProductsQuery":             GetProductsQuery{},
		"GetCashCloseQuery":            GetCashCloseQuery{},
		"GetDailySalesQuery":           GetDailySalesQuery{},
		"GetProductMarginsQuery":       GetProductMarginsQuery{},
		"GetDeadStockQuery":            GetDeadStockQuery{},
		"GetOrderTotalMismatchesQuery": GetOrderTotalMismatchesQuery{},
	}

	for name, v := range validators {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, v.Validate())
		})
	}
}
