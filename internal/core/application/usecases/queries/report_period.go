package queries

import (
	"slices"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// reportDay truncates date to its UTC calendar day. A zero date means today.
func reportDay(date time.Time) time.Time {
	if date.IsZero() {
		date = time.Now()
	}
	y, m, d := date.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// statusNames lists the persisted names of the given statuses, for use with
// pq.Array in "status = ANY(?)" filters.
func statusNames(statuses ...order.Status) []string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}

// billableStatuses are the statuses whose orders count as sales.
func billableStatuses() []string {
	return statusNames(slices.DeleteFunc(order.AllStatuses(), func(s order.Status) bool {
		return s == order.Canceled
	})...)
}

// settledStatuses are the statuses whose lines count as sold product.
func settledStatuses() []string {
	return statusNames(order.Delivered)
}
