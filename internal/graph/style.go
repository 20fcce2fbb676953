package graph

import "strings"

// Style is the detected package-organization style of an analyzed codebase.
type Style string

const (
	StyleHexagonal Style = "HEXAGONAL"
	StyleLayered   Style = "LAYERED"
	StyleFlat      Style = "FLAT"
	StyleUnknown   Style = "UNKNOWN"
)

var hexagonalMarkers = []string{"domain", "port", "ports", "adapter", "adapters", "application", "infrastructure"}

var layeredMarkers = []string{"controller", "controllers", "service", "services", "repository", "repositories", "dao", "dto", "web", "persistence"}

// DetectStyle inspects package names and guesses the organization style.
// Hexagonal markers win over layered markers when both appear; codebases
// with a single package (or none) are flat.
func DetectStyle(packages []string) Style {
	if len(packages) <= 1 {
		return StyleFlat
	}
	hexHits := 0
	layerHits := 0
	for _, pkg := range packages {
		segments := strings.Split(pkg, ".")
		for _, seg := range segments {
			low := strings.ToLower(seg)
			if containsString(hexagonalMarkers, low) {
				hexHits++
			}
			if containsString(layeredMarkers, low) {
				layerHits++
			}
		}
	}
	switch {
	case hexHits >= 2 && hexHits >= layerHits:
		return StyleHexagonal
	case layerHits >= 2:
		return StyleLayered
	case hexHits > 0 || layerHits > 0:
		return StyleUnknown
	default:
		return StyleFlat
	}
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
