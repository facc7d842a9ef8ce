package render

import (
	"encoding/json"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// ManifestVersion is bumped whenever the manifest layout changes.
const ManifestVersion = 1

// Manifest is the JSON document handed to the site renderer.
type Manifest struct {
	Version int             `json:"version"`
	BuildID string          `json:"buildId,omitempty"`
	Site    site.SiteConfig `json:"site"`
}

// MarshalManifest encodes cfg as an indented JSON manifest.
func MarshalManifest(cfg site.SiteConfig, buildID string) ([]byte, error) {
	data, err := json.MarshalIndent(Manifest{Version: ManifestVersion, BuildID: buildID, Site: cfg}, "", "  ")
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRender, "failed to marshal manifest").Build()
	}
	return append(data, '\n'), nil
}
