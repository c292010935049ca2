package plate_test

import (
	"math/rand/v2"
	"testing"

	"restaurant/internal/core/domain/model/plate"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string
	Plate int
	Qty   int
	Price decimal.Decimal
}

func (i item) PlateNumber() int           { return i.Plate }
func (i item) Quantity() int              { return i.Qty }
func (i item) UnitPrice() decimal.Decimal { return i.Price }
func (i item) WithPlateNumber(n int) item { i.Plate = n; return i }

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func onPlates(plates ...int) []item {
	items := make([]item, len(plates))
	for i, p := range plates {
		items[i] = item{Name: string(rune('a' + i)), Plate: p, Qty: i + 1, Price: decimal.NewFromInt(int64(10 * (i + 1)))}
	}
	return items
}

func plateNumbers(items []item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Plate
	}
	return out
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name      string
		requested int
		existing  []item
		expected  int
	}{
		{name: "explicit plate is kept", requested: 3, existing: onPlates(1, 2, 7), expected: 3},
		{name: "explicit plate may open a new plate", requested: 9, existing: nil, expected: 9},
		{name: "no preference on empty order", requested: 0, existing: nil, expected: 1},
		{name: "no preference goes one past the highest plate", requested: 0, existing: onPlates(1, 2), expected: 3},
		{name: "negative request means no preference", requested: -4, existing: onPlates(5), expected: 6},
		{name: "unnumbered existing items count as plate 1", requested: 0, existing: onPlates(0, -1), expected: 2},
		{name: "existing order is irrelevant", requested: 0, existing: onPlates(4, 1, 2), expected: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, plate.Normalize(tc.requested, tc.existing))
		})
	}
}

func TestCompact(t *testing.T) {
	testCases := []struct {
		name     string
		plates   []int
		expected []int
	}{
		{name: "gap is closed", plates: []int{1, 1, 3}, expected: []int{1, 1, 2}},
		{name: "already dense", plates: []int{1, 2, 2, 3}, expected: []int{1, 2, 2, 3}},
		{name: "rank follows value not position", plates: []int{7, 2, 7, 40}, expected: []int{2, 1, 2, 3}},
		{name: "single high plate collapses to 1", plates: []int{5}, expected: []int{1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := plate.Compact(onPlates(tc.plates...))

			assert.Equal(t, tc.expected, plateNumbers(got))
		})
	}

	t.Run("empty input is returned unchanged", func(t *testing.T) {
		assert.Empty(t, plate.Compact([]item{}))
		assert.Nil(t, plate.Compact[item](nil))
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		in := onPlates(2, 4)

		_ = plate.Compact(in)

		assert.Equal(t, []int{2, 4}, plateNumbers(in))
	})
}

func TestCompact_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for range 200 {
		in := onPlates(randomPlates(rng)...)

		once := plate.Compact(in)
		twice := plate.Compact(once)

		// idempotent
		require.Empty(t, cmp.Diff(once, twice, decimalEqual))

		// same length, same order, only plate numbers differ
		require.Len(t, once, len(in))
		for i := range in {
			want := in[i]
			want.Plate = once[i].Plate
			require.Empty(t, cmp.Diff(want, once[i], decimalEqual))
		}

		// dense range 1..k
		distinctIn := map[int]struct{}{}
		for _, it := range in {
			distinctIn[it.Plate] = struct{}{}
		}
		distinctOut := map[int]struct{}{}
		for _, it := range once {
			distinctOut[it.Plate] = struct{}{}
		}
		require.Len(t, distinctOut, len(distinctIn))
		for n := 1; n <= len(distinctIn); n++ {
			require.Contains(t, distinctOut, n)
		}
	}
}

func randomPlates(rng *rand.Rand) []int {
	n := 1 + rng.IntN(12)
	plates := make([]int, n)
	for i := range plates {
		plates[i] = 1 + rng.IntN(9)
	}
	return plates
}

func TestGroup(t *testing.T) {
	t.Run("totals per plate in ascending order", func(t *testing.T) {
		items := []item{
			{Name: "soup", Plate: 2, Qty: 3, Price: decimal.NewFromInt(4)},
			{Name: "taco", Plate: 1, Qty: 2, Price: decimal.NewFromInt(10)},
			{Name: "salsa", Plate: 1, Qty: 1, Price: decimal.NewFromInt(5)},
		}

		plates := plate.Group(items)

		require.Len(t, plates, 2)
		assert.Equal(t, 1, plates[0].Number)
		assert.Equal(t, 3, plates[0].TotalQuantity)
		assert.True(t, decimal.NewFromInt(25).Equal(plates[0].TotalPrice))
		assert.Equal(t, []string{"taco", "salsa"}, names(plates[0].Items))
		assert.Equal(t, 2, plates[1].Number)
		assert.Equal(t, 3, plates[1].TotalQuantity)
		assert.True(t, decimal.NewFromInt(12).Equal(plates[1].TotalPrice))
	})

	t.Run("unnumbered items land on plate 1", func(t *testing.T) {
		items := []item{
			{Name: "a", Plate: 0, Qty: 1, Price: decimal.NewFromInt(1)},
			{Name: "b", Plate: 1, Qty: 1, Price: decimal.NewFromInt(1)},
			{Name: "c", Plate: -2, Qty: 1, Price: decimal.NewFromInt(1)},
		}

		plates := plate.Group(items)

		require.Len(t, plates, 1)
		assert.Equal(t, []string{"a", "b", "c"}, names(plates[0].Items))
	})

	t.Run("fractional prices are summed exactly", func(t *testing.T) {
		items := []item{
			{Name: "a", Plate: 1, Qty: 3, Price: decimal.RequireFromString("0.10")},
			{Name: "b", Plate: 1, Qty: 1, Price: decimal.RequireFromString("0.20")},
		}

		plates := plate.Group(items)

		assert.Equal(t, "0.5", plates[0].TotalPrice.String())
	})

	t.Run("no items no plates", func(t *testing.T) {
		assert.Empty(t, plate.Group[item](nil))
	})
}

func TestCompactThenGroup(t *testing.T) {
	plates := plate.Group(plate.Compact(onPlates(1, 1, 3)))

	require.Len(t, plates, 2)
	assert.Equal(t, 1, plates[0].Number)
	assert.Len(t, plates[0].Items, 2)
	assert.Equal(t, 2, plates[1].Number)
	assert.Len(t, plates[1].Items, 1)
}

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}
