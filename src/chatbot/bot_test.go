package chatbot

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/crypto-chatbot/src/models"
)

func TestRunLoop(t *testing.T) {
	ctx := context.Background()

	t.Run("quit ends the session after the farewell", func(t *testing.T) {
		in := strings.NewReader("help\nquit\n")
		out := &bytes.Buffer{}

		bot := NewBot(&stubService{}, "usd", 10, in, out)
		require.NoError(t, bot.Run(ctx))

		output := out.String()
		assert.Contains(t, output, "Welcome to Crypto Chatbot")
		assert.Contains(t, output, "Crypto Chatbot Commands")
		assert.Contains(t, output, farewellMessage)
		assert.True(t, strings.HasSuffix(strings.TrimSpace(output), farewellMessage),
			"nothing may be printed after the farewell")
	})

	t.Run("end of input behaves like quit", func(t *testing.T) {
		in := strings.NewReader("trending\n")
		out := &bytes.Buffer{}

		svc := &stubService{trending: []models.TrendingItem{
			{ID: "pepe", Name: "Pepe", Symbol: "PEPE", MarketCapRank: 42},
		}}

		bot := NewBot(svc, "usd", 10, in, out)
		require.NoError(t, bot.Run(ctx))

		assert.Contains(t, out.String(), "Pepe")
		assert.Contains(t, out.String(), farewellMessage)
	})

	t.Run("failed command keeps the loop interactive", func(t *testing.T) {
		in := strings.NewReader("news\nhelp\nquit\n")
		out := &bytes.Buffer{}

		svc := &stubService{globalErr: fmt.Errorf("boom")}

		bot := NewBot(svc, "usd", 10, in, out)
		require.NoError(t, bot.Run(ctx))

		output := out.String()
		assert.Contains(t, output, "Could not retrieve data")
		assert.Contains(t, output, "Crypto Chatbot Commands")
		assert.Contains(t, output, farewellMessage)
	})

	t.Run("blank lines are ignored", func(t *testing.T) {
		in := strings.NewReader("\n\nquit\n")
		out := &bytes.Buffer{}

		bot := NewBot(&stubService{}, "usd", 10, in, out)
		require.NoError(t, bot.Run(ctx))

		assert.Equal(t, 1, strings.Count(out.String(), "🤖 Bot:"))
	})
}
