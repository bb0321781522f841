package model

// AssetCode identifies one of the supported asset classes. Prices are quoted
// in local currency per unit of the asset, except BTC (quoted in USD and
// converted through the USD rate) and INTEREST (an annual percentage rate,
// not a price).
type AssetCode string

const (
	AssetUSD      AssetCode = "USD"
	AssetEUR      AssetCode = "EUR"
	AssetGold     AssetCode = "GOLD"
	AssetSilver   AssetCode = "SILVER"
	AssetBTC      AssetCode = "BTC"
	AssetInterest AssetCode = "INTEREST"
	AssetHousing  AssetCode = "HOUSING"
	AssetCarNew   AssetCode = "CAR_NEW"
	AssetCarUsed  AssetCode = "CAR_USED"
)

// AllAssets lists every member of the asset enumeration.
var AllAssets = []AssetCode{
	AssetUSD,
	AssetEUR,
	AssetGold,
	AssetSilver,
	AssetBTC,
	AssetInterest,
	AssetHousing,
	AssetCarNew,
	AssetCarUsed,
}

// AlternativeAssets is the fixed candidate set used for the ranked
// comparison. CAR_USED is deliberately absent: it remains a valid direct
// selection but is not ranked against the other scenarios.
var AlternativeAssets = []AssetCode{
	AssetUSD,
	AssetEUR,
	AssetGold,
	AssetSilver,
	AssetBTC,
	AssetInterest,
	AssetHousing,
	AssetCarNew,
}

// IsValid reports whether c is a member of the asset enumeration.
func (c AssetCode) IsValid() bool {
	for _, a := range AllAssets {
		if c == a {
			return true
		}
	}
	return false
}

// AssetInfo describes an asset for the catalogue endpoint.
type AssetInfo struct {
	Code        AssetCode `json:"code"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	Description string    `json:"description"`
}

// AssetCatalogue is the static asset metadata served by GET /api/data/assets.
var AssetCatalogue = []AssetInfo{
	{Code: AssetUSD, Name: "US Dollar", Category: "Currency", Unit: "USD", Description: "US dollar against local currency"},
	{Code: AssetEUR, Name: "Euro", Category: "Currency", Unit: "EUR", Description: "Euro against local currency"},
	{Code: AssetGold, Name: "Gold", Category: "Precious Metal", Unit: "gram", Description: "Gram gold in local currency"},
	{Code: AssetSilver, Name: "Silver", Category: "Precious Metal", Unit: "gram", Description: "Gram silver in local currency"},
	{Code: AssetBTC, Name: "Bitcoin", Category: "Crypto", Unit: "BTC", Description: "Bitcoin, quoted in USD and converted through the USD rate"},
	{Code: AssetInterest, Name: "Deposit Interest", Category: "Savings", Unit: "%", Description: "Average annual deposit rate, compounded"},
	{Code: AssetHousing, Name: "Housing", Category: "Real Estate", Unit: "m²", Description: "Residential price per square metre, metropolitan average"},
	{Code: AssetCarNew, Name: "New Car", Category: "Automotive", Unit: "car", Description: "Mid-segment sedan, list price"},
	{Code: AssetCarUsed, Name: "Used Car", Category: "Automotive", Unit: "car", Description: "Five-year-old average car"},
}
