package model

// BOM is the subset of a CycloneDX document the scan consumes: the format
// marker and the component list with each component's purl. Everything else
// in the document is ignored.
type BOM struct {
	BOMFormat  string      `json:"bomFormat,omitempty"`
	Components []Component `json:"components"`
}

// Component is a single CycloneDX component entry
type Component struct {
	Purl string `json:"purl,omitempty"`
}

// NewBOM creates a CycloneDX BOM with the given component purls
func NewBOM(purls ...string) *BOM {
	bom := &BOM{BOMFormat: "CycloneDX"}
	for _, purl := range purls {
		bom.Components = append(bom.Components, Component{Purl: purl})
	}
	return bom
}
