package domain

import "github.com/shopspring/decimal"

const (
	PlatformFacebook = "Facebook"
	PlatformGoogle   = "Google"
)

// RawFacebookRecord representa uma linha do CSV exportado pelo Facebook Ads.
// Campos numéricos são ponteiros para diferenciar valor ausente de zero.
type RawFacebookRecord struct {
	AdID        *int64
	Date        string
	Platform    string
	Clicks      *int64
	SpendUSD    *decimal.Decimal
	Impressions *int64
}

// RawGoogleRecord representa um objeto do JSON exportado pelo Google Ads.
// O custo vem em centavos e a data como timestamp ISO-8601.
type RawGoogleRecord struct {
	CampaignID     string
	Timestamp      string
	SourcePlatform string
	ClickCount     *int64
	CostInCents    *int64
}
