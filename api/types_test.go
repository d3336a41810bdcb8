package api_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumacafe/cafekit/api"
)

func TestDecimalUnmarshal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `3.5`, 3.5},
		{"integer", `3`, 3},
		{"string decimal", `"3.50"`, 3.5},
		{"string integer", `"2"`, 2},
		{"null", `null`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var d api.Decimal
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &d))
			assert.InDelta(t, tc.want, d.Float64(), 1e-9)
		})
	}

	t.Run("garbage string fails", func(t *testing.T) {
		t.Parallel()

		var d api.Decimal
		assert.Error(t, json.Unmarshal([]byte(`"tres"`), &d))
	})
}

func TestDecimalMarshal(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(api.Decimal(3.5))
	require.NoError(t, err)
	assert.Equal(t, "3.5", string(raw))

	raw, err = json.Marshal(api.Decimal(2))
	require.NoError(t, err)
	assert.Equal(t, "2", string(raw))
}

func TestProductDecodesStringPrice(t *testing.T) {
	t.Parallel()

	var p api.Product
	require.NoError(t, json.Unmarshal([]byte(`{
		"id_producto": 1,
		"nombre": "Latte",
		"precio": "3.50",
		"id_categoria": 2,
		"disponible": true
	}`), &p))

	assert.Equal(t, int64(1), p.ID)
	assert.InDelta(t, 3.5, p.Price.Float64(), 1e-9)
}
