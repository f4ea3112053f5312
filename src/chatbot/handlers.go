package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/crypto-chatbot/src/coingecko"
	"github.com/jiaming2012/crypto-chatbot/src/config"
)

const farewellMessage = "👋 Thanks for using Crypto Chatbot! Goodbye!"
const retrieveFailedMessage = "❌ Could not retrieve data. Please try again later."

const helpText = `🚀 Crypto Chatbot Commands:

• help - Show this help message
• price <coin> [<currency>] - Get current price (e.g., 'price bitcoin')
• top [number] - Show top cryptocurrencies (default: 10)
• trending - Show trending coins
• market <coin> - Get market cap info
• compare <coin1> <coin2> - Compare two cryptocurrencies
• news - Get market overview
• quit - Exit the chatbot

Examples:
- price ethereum
- top 5
- compare bitcoin ethereum
- market dogecoin`

// NormalizeCoinID converts user input into the API's canonical slug:
// lower case, spaces replaced with hyphens.
func NormalizeCoinID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func notFoundMessage(name string) string {
	return fmt.Sprintf("❌ Coin '%s' not found. Please check the spelling.", name)
}

// fetchFailedReply maps a client error onto the user-facing message.
func fetchFailedReply(err error, coinName string) string {
	if errors.Is(err, coingecko.ErrCoinNotFound) {
		return notFoundMessage(coinName)
	}

	log.Debugf("fetch failed: %v", err)
	return retrieveFailedMessage
}

func (b *Bot) handleHelp(ctx context.Context, args []string) string {
	return helpText
}

func (b *Bot) handleQuit(ctx context.Context, args []string) string {
	return farewellMessage
}

func (b *Bot) handlePrice(ctx context.Context, args []string) string {
	if len(args) < 1 || len(args) > 2 {
		return "❌ Please specify a coin name. Example: 'price bitcoin'"
	}

	currency := b.defaultCurrency
	if len(args) == 2 {
		currency = strings.ToLower(args[1])
	}

	coinID := NormalizeCoinID(args[0])

	prices, err := b.svc.FetchSimplePrices(ctx, []string{coinID}, currency)
	if err != nil {
		return fetchFailedReply(err, args[0])
	}

	price, found := prices[coinID]
	if !found {
		return notFoundMessage(args[0])
	}

	return formatPrice(b.printer, b.titler.String(args[0]), price, b.clock())
}

func (b *Bot) handleTop(ctx context.Context, args []string) string {
	if len(args) > 1 {
		return "❌ Please enter a valid number. Example: 'top 5'"
	}

	limit := b.defaultTopN
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return "❌ Please enter a valid number. Example: 'top 5'"
		}

		limit = n
		if limit > config.MaxTopN {
			limit = config.MaxTopN
		}
	}

	markets, err := b.svc.FetchTopCoins(ctx, limit, b.defaultCurrency)
	if err != nil {
		log.Debugf("handleTop: %v", err)
		return retrieveFailedMessage
	}

	return formatTop(b.printer, markets, b.defaultCurrency)
}

func (b *Bot) handleTrending(ctx context.Context, args []string) string {
	items, err := b.svc.FetchTrending(ctx)
	if err != nil {
		log.Debugf("handleTrending: %v", err)
		return retrieveFailedMessage
	}

	return formatTrending(items)
}

func (b *Bot) handleMarket(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return "❌ Please specify a coin name. Example: 'market bitcoin'"
	}

	coinID := NormalizeCoinID(args[0])

	detail, err := b.svc.FetchCoinDetail(ctx, coinID)
	if err != nil {
		return fetchFailedReply(err, args[0])
	}

	reply, err := formatMarket(b.printer, detail, b.defaultCurrency)
	if err != nil {
		log.Debugf("handleMarket: %v", err)
		return retrieveFailedMessage
	}

	return reply
}

func (b *Bot) handleCompare(ctx context.Context, args []string) string {
	if len(args) != 2 {
		return "❌ Please specify two coins. Example: 'compare bitcoin ethereum'"
	}

	id1 := NormalizeCoinID(args[0])
	id2 := NormalizeCoinID(args[1])

	prices, err := b.svc.FetchSimplePrices(ctx, []string{id1, id2}, b.defaultCurrency)
	if err != nil {
		if errors.Is(err, coingecko.ErrCoinNotFound) {
			return "❌ Could not find both coins. Please check the spelling."
		}

		log.Debugf("handleCompare: %v", err)
		return retrieveFailedMessage
	}

	price1, found1 := prices[id1]
	price2, found2 := prices[id2]
	if !found1 || !found2 {
		return "❌ Could not find both coins. Please check the spelling."
	}

	return formatCompare(b.printer, b.titler.String(args[0]), b.titler.String(args[1]), price1, price2)
}

func (b *Bot) handleNews(ctx context.Context, args []string) string {
	stats, err := b.svc.FetchGlobalStats(ctx)
	if err != nil {
		log.Debugf("handleNews: %v", err)
		return retrieveFailedMessage
	}

	return formatGlobal(b.printer, stats)
}
