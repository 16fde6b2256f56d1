package shopping

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	testCases := []struct {
		name     string
		items    map[string][2]string // quantity, price
		tax      Percent
		discount Percent
		want     string
	}{
		{
			name:     "empty ledger",
			tax:      20,
			discount: 50,
			want:     "0.00",
		},
		{
			name:     "tax then discount on the running total",
			items:    map[string][2]string{"A": {"2", "5.00"}},
			tax:      10,
			discount: 10,
			want:     "9.90",
		},
		{
			name:  "no tax no discount",
			items: map[string][2]string{"A": {"3", "1.10"}, "B": {"2", "0.45"}},
			want:  "4.20",
		},
		{
			name:     "full discount",
			items:    map[string][2]string{"A": {"1", "99.99"}},
			tax:      100,
			discount: 100,
			want:     "0.00",
		},
		{
			name:  "tax only",
			items: map[string][2]string{"A": {"4", "2.50"}},
			tax:   7.5,
			want:  "10.75",
		},
		{
			name:     "zero quantity costs nothing",
			items:    map[string][2]string{"A": {"0", "12.00"}, "B": {"1", "1.00"}},
			discount: 50,
			want:     "0.50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			for name, v := range tc.items {
				require.NoError(t, l.UpsertString(name, v[0], v[1]))
			}
			got := ComputeTotal(l, tc.tax, tc.discount)
			assert.Equal(t, tc.want, got.StringFixed(2))

			total, err := l.Total(tc.tax, tc.discount)
			require.NoError(t, err)
			assert.True(t, total.Equal(got))
		})
	}
}

func TestBreakdown(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Upsert("A", 2, d("5.00")))

	b, err := l.Breakdown(10, 10)
	require.NoError(t, err)
	assert.True(t, b.Subtotal.Equal(d("10")), "subtotal %s", b.Subtotal)
	assert.True(t, b.Tax.Equal(d("1")), "tax %s", b.Tax)
	assert.True(t, b.Discount.Equal(d("1.1")), "discount %s", b.Discount)
	assert.True(t, b.Total.Equal(d("9.9")), "total %s", b.Total)
}

func TestTotal_InvalidPercent(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Upsert("A", 2, d("5.00")))

	for _, p := range [][2]Percent{{-1, 0}, {0, -0.5}, {100.01, 0}, {0, 250}, {Percent(math.NaN()), 0}} {
		_, err := l.Total(p[0], p[1])
		assert.ErrorIs(t, err, ErrInvalidInput, "tax=%v discount=%v", float64(p[0]), float64(p[1]))
	}
}

func TestParsePercent(t *testing.T) {
	testCases := []struct {
		input   string
		want    Percent
		wantErr bool
	}{
		{input: "0", want: 0},
		{input: "100", want: 100},
		{input: " 12.5 ", want: 12.5},
		{input: "100.5", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "ten", wantErr: true},
		{input: "", wantErr: true},
		{input: "NaN", wantErr: true},
		{input: "Inf", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePercent(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPercent_String(t *testing.T) {
	assert.Equal(t, "12.50%", Percent(12.5).String())
}
