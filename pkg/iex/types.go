package iex

// Symbol is one row of /ref-data/symbols.
type Symbol struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Exchange  string `json:"exchange"`
	Type      string `json:"type"` // "cs", "et", "ps", ...
	IsEnabled bool   `json:"isEnabled"`
}

// Quote is one row of the /stock/market/list endpoints. Lists come back in
// rank order (biggest mover first).
type Quote struct {
	Symbol        string  `json:"symbol"`
	CompanyName   string  `json:"companyName"`
	LatestPrice   float64 `json:"latestPrice"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}
