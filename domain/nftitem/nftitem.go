package nftitem

const (
	// substituted when the metadata document omits the matching field
	DefaultName        = "Untitled NFT"
	DefaultDescription = "No description available."
)

// Nft is one render-ready gallery record. Immutable once constructed.
type Nft struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Attributes  Attributes `json:"attributes"`
}
