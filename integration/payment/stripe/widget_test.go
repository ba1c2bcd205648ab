package stripe_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shopkit/core/checkout"
	"github.com/dmitrymomot/shopkit/integration/payment/stripe"
)

func TestNew(t *testing.T) {
	t.Run("requires secret key", func(t *testing.T) {
		_, err := stripe.New(stripe.Config{})
		require.ErrorIs(t, err, stripe.ErrInvalidConfig)
	})

	t.Run("valid config", func(t *testing.T) {
		widget, err := stripe.New(stripe.Config{SecretKey: "sk_test_123"})
		require.NoError(t, err)
		require.NotNil(t, widget)
	})
}

func TestCardInput(t *testing.T) {
	t.Parallel()

	full := stripe.Card{Number: "4242424242424242", ExpMonth: "12", ExpYear: "2030", CVC: "123"}
	partial := stripe.Card{Number: "4242424242424242"}

	assert.True(t, full.Complete())
	assert.False(t, partial.Complete())
	assert.False(t, stripe.Card{}.Complete())

	assert.True(t, full.InputEvent().Complete)
	assert.Empty(t, full.InputEvent().ErrorMessage)
	assert.False(t, partial.InputEvent().Complete)
	assert.NotEmpty(t, partial.InputEvent().ErrorMessage)
}

func TestCollectPaymentMethodWithoutCard(t *testing.T) {
	widget, err := stripe.New(stripe.Config{SecretKey: "sk_test_123"})
	require.NoError(t, err)

	_, err = widget.CollectPaymentMethod()
	require.ErrorIs(t, err, stripe.ErrNoCard)

	widget.SetCard(stripe.Card{Number: "4242424242424242"})
	_, err = widget.CollectPaymentMethod()
	require.ErrorIs(t, err, stripe.ErrNoCard)
}

func TestConfirmRejectsBadSecret(t *testing.T) {
	widget, err := stripe.New(stripe.Config{SecretKey: "sk_test_123"})
	require.NoError(t, err)

	err = widget.Confirm(context.Background(), "seti_123_secret_abc", checkout.PaymentMethod("pm_1"), checkout.Billing{})
	require.ErrorIs(t, err, stripe.ErrBadClientSecret)

	err = widget.Confirm(context.Background(), "garbage", checkout.PaymentMethod("pm_1"), checkout.Billing{})
	require.ErrorIs(t, err, stripe.ErrBadClientSecret)
}
