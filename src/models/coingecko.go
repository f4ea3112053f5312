package models

// SimplePriceResponse is the raw /simple/price payload: coin id mapped
// to currency-keyed numeric fields, e.g. "usd", "usd_24h_change",
// "usd_market_cap".
type SimplePriceResponse map[string]map[string]float64

// SimplePrice holds the extracted fields for a single coin in a single
// quote currency.
type SimplePrice struct {
	CoinID    string
	Currency  string
	Price     float64
	Change24h float64
	MarketCap float64
}

type CoinMarketData struct {
	CurrentPrice      map[string]float64 `json:"current_price"`
	MarketCap         map[string]float64 `json:"market_cap"`
	TotalVolume       map[string]float64 `json:"total_volume"`
	CirculatingSupply float64            `json:"circulating_supply"`
}

type CoinDetail struct {
	ID            string         `json:"id"`
	Symbol        string         `json:"symbol"`
	Name          string         `json:"name"`
	MarketCapRank int            `json:"market_cap_rank"`
	MarketData    CoinMarketData `json:"market_data"`
}

// CoinMarket is one entry of the /coins/markets listing. The 24h change
// is a pointer because the API returns null for thinly traded coins.
type CoinMarket struct {
	ID              string   `json:"id"`
	Symbol          string   `json:"symbol"`
	Name            string   `json:"name"`
	CurrentPrice    float64  `json:"current_price"`
	MarketCapRank   int      `json:"market_cap_rank"`
	PriceChange24hP *float64 `json:"price_change_percentage_24h"`
}

type TrendingItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
}

type TrendingCoin struct {
	Item TrendingItem `json:"item"`
}

type TrendingResponse struct {
	Coins []TrendingCoin `json:"coins"`
}

type GlobalStats struct {
	TotalMarketCap         map[string]float64 `json:"total_market_cap"`
	TotalVolume            map[string]float64 `json:"total_volume"`
	MarketCapPercentage    map[string]float64 `json:"market_cap_percentage"`
	ActiveCryptocurrencies int                `json:"active_cryptocurrencies"`
	Markets                int                `json:"markets"`
}

type GlobalResponse struct {
	Data GlobalStats `json:"data"`
}

type ErrorDTO struct {
	Msg string `json:"error"`
}
