package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingParams(t *testing.T) {
	t.Parallel()

	t.Run("cardholder name is forwarded", func(t *testing.T) {
		t.Parallel()

		bp := billingParams(Billing{Name: "Alice Doe", Email: "a@x.com"})
		require.NotNil(t, bp)
		require.NotNil(t, bp.Name)
		assert.Equal(t, "Alice Doe", *bp.Name)
		require.NotNil(t, bp.Email)
		assert.Equal(t, "a@x.com", *bp.Email)
	})

	t.Run("name alone is enough", func(t *testing.T) {
		t.Parallel()

		bp := billingParams(Billing{Name: "Alice Doe"})
		require.NotNil(t, bp)
		require.NotNil(t, bp.Name)
		assert.Equal(t, "Alice Doe", *bp.Name)
		assert.Nil(t, bp.Email)
	})

	t.Run("empty billing attaches nothing", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, billingParams(Billing{}))
	})
}
