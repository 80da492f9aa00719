// Package sysb searches the Systembolaget product catalog so scanned
// wines can be matched to an article number.
package sysb

// SearchResponse is the product search payload.
type SearchResponse struct {
	Products   []Product `json:"products"`
	TotalCount int       `json:"totalCount"`
}

// Product is a catalog entry. Category levels run coarse to fine
// (e.g. Vin, Rött vin, Bordeaux).
type Product struct {
	ProductID         string   `json:"productId"`
	ProductName       string   `json:"productName"`
	ProducerName      string   `json:"producerName"`
	Vintage           *int     `json:"vintage,omitempty"`
	TotalVolume       *int     `json:"totalVolume,omitempty"`
	AlcoholPercentage *string  `json:"alcoholPercentage,omitempty"`
	Country           *string  `json:"country,omitempty"`
	CategoryLevel1    *string  `json:"categoryLevel1,omitempty"`
	CategoryLevel2    *string  `json:"categoryLevel2,omitempty"`
	CategoryLevel3    *string  `json:"categoryLevel3,omitempty"`
	TasteDescription  *string  `json:"tasteDescription,omitempty"`
	Usage             *string  `json:"usage,omitempty"`
	TasteSymbols      []string `json:"tasteSymbols,omitempty"`
}
