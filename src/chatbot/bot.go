package chatbot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jiaming2012/crypto-chatbot/src/models"
	"github.com/jiaming2012/crypto-chatbot/src/utils"
)

// MarketService is the slice of the market-data API the bot consumes.
// *coingecko.Client satisfies it; tests substitute a stub.
type MarketService interface {
	FetchSimplePrices(ctx context.Context, ids []string, currency string) (map[string]models.SimplePrice, error)
	FetchCoinDetail(ctx context.Context, id string) (*models.CoinDetail, error)
	FetchTopCoins(ctx context.Context, limit int, currency string) ([]models.CoinMarket, error)
	FetchTrending(ctx context.Context) ([]models.TrendingItem, error)
	FetchGlobalStats(ctx context.Context) (*models.GlobalStats, error)
}

type handlerFunc func(ctx context.Context, args []string) string

// Bot runs the interactive loop. It holds no session state between
// commands: each command is dispatched, answered and forgotten.
type Bot struct {
	svc             MarketService
	defaultCurrency string
	defaultTopN     int
	in              io.Reader
	out             io.Writer
	printer         *message.Printer
	titler          cases.Caser
	clock           func() time.Time
	commands        map[string]handlerFunc
}

// NewBot builds a bot with its dispatch table. The table is populated
// once here and never mutated afterwards.
func NewBot(svc MarketService, defaultCurrency string, defaultTopN int, in io.Reader, out io.Writer) *Bot {
	b := &Bot{
		svc:             svc,
		defaultCurrency: strings.ToLower(defaultCurrency),
		defaultTopN:     defaultTopN,
		in:              in,
		out:             out,
		printer:         message.NewPrinter(language.English),
		titler:          cases.Title(language.English),
		clock:           time.Now,
	}

	b.commands = map[string]handlerFunc{
		"help":     b.handleHelp,
		"price":    b.handlePrice,
		"top":      b.handleTop,
		"trending": b.handleTrending,
		"market":   b.handleMarket,
		"compare":  b.handleCompare,
		"news":     b.handleNews,
		"quit":     b.handleQuit,
	}

	return b
}

// Process dispatches one input line. It returns the reply text (empty
// for blank input) and whether the loop should terminate.
func (b *Bot) Process(ctx context.Context, line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	keyword := strings.ToLower(fields[0])

	handler, found := b.commands[keyword]
	if !found {
		return fmt.Sprintf("❓ Command '%s' not recognized. Type 'help' for available commands.", keyword), false
	}

	return handler(ctx, fields[1:]), keyword == "quit"
}

// Run reads lines until quit or end of input. Every error path returns
// control to the prompt; nothing here terminates the process.
func (b *Bot) Run(ctx context.Context) error {
	fmt.Fprintln(b.out, "🚀 Welcome to Crypto Chatbot!")
	fmt.Fprintln(b.out, "Type 'help' for available commands or 'quit' to exit.")
	fmt.Fprintln(b.out, strings.Repeat("-", 50))

	reader := bufio.NewReader(b.in)

	for {
		fmt.Fprint(b.out, "\n💬 You: ")

		line, err := utils.ReadLine(reader)
		if err != nil {
			// end of input behaves like quit
			fmt.Fprintf(b.out, "\n🤖 Bot: %s\n", farewellMessage)
			return nil
		}

		reply, shouldQuit := b.Process(ctx, line)
		if reply != "" {
			fmt.Fprintf(b.out, "\n🤖 Bot: %s\n", reply)
		}

		if shouldQuit {
			return nil
		}
	}
}
