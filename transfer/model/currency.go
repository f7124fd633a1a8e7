package model

type CurrencyInfo struct {
	ID      int32   `json:"id"`
	Code    string  `json:"code"`
	Symbol  *string `json:"symbol,omitempty"`
	Rate    float64 `json:"rate"`
	Enabled bool    `json:"enabled"`
}

type ConversionResult struct {
	ConvertedAmount int64             `json:"converted_amount"`
	Metadata        *CurrencyMetadata `json:"metadata,omitempty"`
}

type CurrencyMetadata struct {
	OriginalAmountCents int64   `json:"original_amount_cents"`
	OriginalCurrency    string  `json:"original_currency"`
	ExchangeRate        float64 `json:"exchange_rate"`
}
