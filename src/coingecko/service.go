package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jiaming2012/crypto-chatbot/src/models"
	"github.com/jiaming2012/crypto-chatbot/src/utils"
)

const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Client queries the CoinGecko v3 REST API. Each fetch makes a single
// attempt with a bounded timeout.
type Client struct {
	baseURL string
	timeout time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	fullUrl := c.baseURL + endpoint
	if len(query) > 0 {
		fullUrl = fmt.Sprintf("%s?%s", fullUrl, query.Encode())
	}

	return utils.Get(ctx, fullUrl, c.timeout)
}

// FetchSimplePrices returns price, 24h change and market cap for each
// requested coin in the given quote currency. Coins the API does not
// know are absent from the result; an entirely empty payload maps to
// ErrCoinNotFound.
func (c *Client) FetchSimplePrices(ctx context.Context, ids []string, currency string) (map[string]models.SimplePrice, error) {
	query := url.Values{}
	query.Add("ids", strings.Join(ids, ","))
	query.Add("vs_currencies", currency)
	query.Add("include_24hr_change", "true")
	query.Add("include_market_cap", "true")

	body, err := c.get(ctx, "/simple/price", query)
	if err != nil {
		return nil, fmt.Errorf("FetchSimplePrices: %w", err)
	}

	var raw models.SimplePriceResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("FetchSimplePrices: failed to parse response body: %w", err)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("FetchSimplePrices: empty payload for ids %v: %w", ids, ErrCoinNotFound)
	}

	prices := make(map[string]models.SimplePrice, len(raw))
	for coinID, fields := range raw {
		price, found := fields[currency]
		if !found {
			return nil, fmt.Errorf("FetchSimplePrices: %s is missing the %s price: %w", coinID, currency, ErrUnexpectedShape)
		}

		prices[coinID] = models.SimplePrice{
			CoinID:    coinID,
			Currency:  currency,
			Price:     price,
			Change24h: fields[currency+"_24h_change"],
			MarketCap: fields[currency+"_market_cap"],
		}
	}

	return prices, nil
}

// FetchCoinDetail returns the market detail for one coin.
func (c *Client) FetchCoinDetail(ctx context.Context, id string) (*models.CoinDetail, error) {
	query := url.Values{}
	query.Add("localization", "false")
	query.Add("tickers", "false")
	query.Add("market_data", "true")
	query.Add("community_data", "false")
	query.Add("developer_data", "false")
	query.Add("sparkline", "false")

	body, err := c.get(ctx, "/coins/"+url.PathEscape(id), query)
	if err != nil {
		var httpErr *utils.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("FetchCoinDetail: %s: %w", id, ErrCoinNotFound)
		}

		return nil, fmt.Errorf("FetchCoinDetail: %w", err)
	}

	var detail models.CoinDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("FetchCoinDetail: failed to parse response body: %w", err)
	}

	if detail.Name == "" || len(detail.MarketData.CurrentPrice) == 0 {
		return nil, fmt.Errorf("FetchCoinDetail: %s has no market data: %w", id, ErrUnexpectedShape)
	}

	return &detail, nil
}

// FetchTopCoins returns the top coins by market cap, in API order.
func (c *Client) FetchTopCoins(ctx context.Context, limit int, currency string) ([]models.CoinMarket, error) {
	query := url.Values{}
	query.Add("vs_currency", currency)
	query.Add("order", "market_cap_desc")
	query.Add("per_page", fmt.Sprintf("%d", limit))
	query.Add("page", "1")
	query.Add("sparkline", "false")

	body, err := c.get(ctx, "/coins/markets", query)
	if err != nil {
		return nil, fmt.Errorf("FetchTopCoins: %w", err)
	}

	var markets []models.CoinMarket
	if err := json.Unmarshal(body, &markets); err != nil {
		return nil, fmt.Errorf("FetchTopCoins: failed to parse response body: %w", err)
	}

	if len(markets) == 0 {
		return nil, fmt.Errorf("FetchTopCoins: empty markets listing: %w", ErrUnexpectedShape)
	}

	return markets, nil
}

// FetchTrending returns the coins currently most searched on
// CoinGecko, independent of price ranking.
func (c *Client) FetchTrending(ctx context.Context) ([]models.TrendingItem, error) {
	body, err := c.get(ctx, "/search/trending", nil)
	if err != nil {
		return nil, fmt.Errorf("FetchTrending: %w", err)
	}

	var trending models.TrendingResponse
	if err := json.Unmarshal(body, &trending); err != nil {
		return nil, fmt.Errorf("FetchTrending: failed to parse response body: %w", err)
	}

	items := make([]models.TrendingItem, 0, len(trending.Coins))
	for _, coin := range trending.Coins {
		items = append(items, coin.Item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("FetchTrending: empty trending listing: %w", ErrUnexpectedShape)
	}

	return items, nil
}

// FetchGlobalStats returns aggregate figures across all tracked
// cryptocurrencies.
func (c *Client) FetchGlobalStats(ctx context.Context) (*models.GlobalStats, error) {
	body, err := c.get(ctx, "/global", nil)
	if err != nil {
		return nil, fmt.Errorf("FetchGlobalStats: %w", err)
	}

	var global models.GlobalResponse
	if err := json.Unmarshal(body, &global); err != nil {
		return nil, fmt.Errorf("FetchGlobalStats: failed to parse response body: %w", err)
	}

	if len(global.Data.TotalMarketCap) == 0 {
		return nil, fmt.Errorf("FetchGlobalStats: missing global data: %w", ErrUnexpectedShape)
	}

	return &global.Data, nil
}
