package assets

import "strings"

// Asset mirrors the catalog backend's wire format. The id is assigned by the
// backend and never synthesized here; is_favorite is server-authoritative.
type Asset struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	ModelVersion   string   `json:"model_version"`
	BaseModel      string   `json:"base_model"`
	Creator        string   `json:"creator"`
	NSFWLevel      string   `json:"nsfw_level"`
	TriggerWords   string   `json:"trigger_words"`
	PositivePrompt string   `json:"positive_prompt"`
	NegativePrompt string   `json:"negative_prompt"`
	Tags           string   `json:"tags"`
	UsedResources  string   `json:"used_resources"`
	DownloadURL    string   `json:"download_url"`
	PreviewImage   string   `json:"preview_image"`
	MediaFiles     []string `json:"media_files"`
	IsFavorite     bool     `json:"is_favorite"`
}

type AssetList struct {
	Items []Asset `json:"items"`
	Total int     `json:"total"`
}

// SplitList turns a flat comma-separated field (tags, used_resources) into
// its trimmed elements. There is no escaping: a literal comma inside an
// element is indistinguishable from a separator, and the stored string is
// sent back to the backend untouched.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// TagList returns the display form of the flat tags field.
func (a Asset) TagList() []string {
	return SplitList(a.Tags)
}

// ResourceList returns the display form of the flat used_resources field.
func (a Asset) ResourceList() []string {
	return SplitList(a.UsedResources)
}
