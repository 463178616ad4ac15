package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval/pkg/rules"
)

func TestCreditCard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fn := rules.CreditCard()

	t.Run("accepts valid card numbers", func(t *testing.T) {
		for _, card := range []string{
			"4111111111111111",
			"4111 1111 1111 1111",
			"4111-1111-1111-1111",
			"5500005555555559",
			"378282246310005", // 15-digit Amex
		} {
			msg, err := fn(ctx, card, nil)
			require.NoError(t, err)
			assert.Empty(t, msg, "card %q should be valid", card)
		}
	})

	t.Run("rejects invalid card numbers", func(t *testing.T) {
		for _, card := range []string{
			"1234567890123456", // fails Luhn
			"4111111111111112", // off-by-one checksum
			"411111111111",     // too short
			"41111111111111111111", // too long
			"4111-1111-1111-111a",
			"not a card",
		} {
			msg, err := fn(ctx, card, nil)
			require.NoError(t, err)
			assert.Equal(t, "Must be a valid card number", msg, "card %q should be invalid", card)
		}
	})

	t.Run("rejects non-string input", func(t *testing.T) {
		msg, err := fn(ctx, 4111111111111111, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, msg)
	})
}
