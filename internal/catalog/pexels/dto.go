package pexels

// listEnvelope is the wire envelope returned by the list endpoint.
// ok=false or a missing data object is treated as failure.
type listEnvelope struct {
	OK    bool      `json:"ok"`
	Error string    `json:"error,omitempty"`
	Data  *listData `json:"data,omitempty"`
}

// listData is the payload of a successful list response
type listData struct {
	Provider string     `json:"provider"`
	Kind     string     `json:"kind"`
	Page     int        `json:"page"`
	PerPage  int        `json:"perPage"`
	Total    *int       `json:"total"` // null when the provider does not report totals
	Assets   []assetDTO `json:"assets"`
}

// assetDTO is one catalog item on the wire
type assetDTO struct {
	ID         string `json:"id"`
	SrcURL     string `json:"srcUrl"`
	PreviewURL string `json:"previewUrl"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Name       string `json:"name,omitempty"`
	Author     string `json:"author,omitempty"`
}
