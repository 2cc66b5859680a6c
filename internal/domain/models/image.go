package models

// Image references a binary asset stored on the external media host.
// URL is the delivery URL; AssetID is the host-side identifier needed
// to delete the asset later.
type Image struct {
	URL     string `bson:"url" json:"url"`
	AssetID string `bson:"asset_id" json:"assetId"`
}
