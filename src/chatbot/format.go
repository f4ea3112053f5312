package chatbot

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/message"

	"github.com/jiaming2012/crypto-chatbot/src/models"
)

// money renders a comma-grouped amount with a currency marker: a "$"
// prefix for usd, an upper-cased code suffix otherwise.
func money(p *message.Printer, value float64, currency string, decimals int) string {
	var amount string
	if decimals == 0 {
		amount = p.Sprintf("%.0f", value)
	} else {
		amount = p.Sprintf("%.2f", value)
	}

	if currency == "usd" {
		return "$" + amount
	}

	return fmt.Sprintf("%s %s", amount, strings.ToUpper(currency))
}

func changeIndicator(change float64) string {
	if change >= 0 {
		return "📈"
	}

	return "📉"
}

func signedPercent(p *message.Printer, change float64) string {
	return p.Sprintf("%+.2f%%", change)
}

func formatPrice(p *message.Printer, coinName string, price models.SimplePrice, now time.Time) string {
	display := &strings.Builder{}

	fmt.Fprintf(display, "💰 %s Price Info:\n", coinName)
	fmt.Fprintf(display, "• Price: %s\n", money(p, price.Price, price.Currency, 2))
	fmt.Fprintf(display, "• 24h Change: %s %s\n", changeIndicator(price.Change24h), signedPercent(p, price.Change24h))
	fmt.Fprintf(display, "• Market Cap: %s\n", money(p, price.MarketCap, price.Currency, 0))
	fmt.Fprintf(display, "• Updated: %s", now.Format("15:04:05"))

	return display.String()
}

func formatTop(p *message.Printer, markets []models.CoinMarket, currency string) string {
	display := &strings.Builder{}

	fmt.Fprintf(display, "🏆 Top %d Cryptocurrencies:\n", len(markets))

	for i, coin := range markets {
		change := 0.0
		if coin.PriceChange24hP != nil {
			change = *coin.PriceChange24hP
		}

		fmt.Fprintf(display, "\n%2d. %s (%s) - %s %s %s",
			i+1,
			coin.Name,
			strings.ToUpper(coin.Symbol),
			money(p, coin.CurrentPrice, currency, 2),
			changeIndicator(change),
			signedPercent(p, change))
	}

	return display.String()
}

func formatTrending(items []models.TrendingItem) string {
	display := &strings.Builder{}

	display.WriteString("🔥 Trending Cryptocurrencies:\n")

	for i, item := range items {
		fmt.Fprintf(display, "\n%d. %s (%s) - Rank #%d", i+1, item.Name, item.Symbol, item.MarketCapRank)
	}

	return display.String()
}

func formatMarket(p *message.Printer, detail *models.CoinDetail, currency string) (string, error) {
	price, found := detail.MarketData.CurrentPrice[currency]
	if !found {
		return "", fmt.Errorf("formatMarket: %s is not quoted in %s", detail.ID, currency)
	}

	symbol := strings.ToUpper(detail.Symbol)

	display := &strings.Builder{}
	fmt.Fprintf(display, "📊 %s (%s) Market Info:\n", detail.Name, symbol)
	fmt.Fprintf(display, "• Rank: #%d\n", detail.MarketCapRank)
	fmt.Fprintf(display, "• Price: %s\n", money(p, price, currency, 2))
	fmt.Fprintf(display, "• Market Cap: %s\n", money(p, detail.MarketData.MarketCap[currency], currency, 0))
	fmt.Fprintf(display, "• 24h Volume: %s\n", money(p, detail.MarketData.TotalVolume[currency], currency, 0))
	fmt.Fprintf(display, "• Circulating Supply: %s %s", p.Sprintf("%.0f", detail.MarketData.CirculatingSupply), symbol)

	return display.String(), nil
}

func formatCompare(p *message.Printer, name1, name2 string, price1, price2 models.SimplePrice) string {
	display := &strings.Builder{}

	fmt.Fprintf(display, "⚖️  %s vs %s:\n", name1, name2)

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"", name1, name2})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	table.Append([]string{"Price",
		money(p, price1.Price, price1.Currency, 2),
		money(p, price2.Price, price2.Currency, 2)})
	table.Append([]string{"24h Change",
		fmt.Sprintf("%s %s", changeIndicator(price1.Change24h), signedPercent(p, price1.Change24h)),
		fmt.Sprintf("%s %s", changeIndicator(price2.Change24h), signedPercent(p, price2.Change24h))})
	table.Append([]string{"Market Cap",
		money(p, price1.MarketCap, price1.Currency, 0),
		money(p, price2.MarketCap, price2.Currency, 0)})

	table.Render()

	return strings.TrimRight(display.String(), "\n")
}

func formatGlobal(p *message.Printer, stats *models.GlobalStats) string {
	display := &strings.Builder{}

	fmt.Fprintf(display, "📰 Crypto Market Overview:\n")
	fmt.Fprintf(display, "• Total Market Cap: %s\n", money(p, stats.TotalMarketCap["usd"], "usd", 0))
	fmt.Fprintf(display, "• 24h Volume: %s\n", money(p, stats.TotalVolume["usd"], "usd", 0))
	fmt.Fprintf(display, "• Bitcoin Dominance: %.1f%%\n", stats.MarketCapPercentage["btc"])
	fmt.Fprintf(display, "• Active Cryptocurrencies: %s\n", p.Sprintf("%d", stats.ActiveCryptocurrencies))
	fmt.Fprintf(display, "• Markets: %s", p.Sprintf("%d", stats.Markets))

	return display.String()
}
