package nftitem

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// RawAttribute tolerates non-string values, which are common in the wild
type RawAttribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

type Attributes = []Attribute

// Properties is the loose `properties` form some collections emit
// instead of `attributes`
type Properties = map[string]interface{}

type PropertyDetail struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

type PropertyDetails = map[string]PropertyDetail
