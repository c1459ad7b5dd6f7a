package formatter

// Row is one renderable interval with its resolved labels.
type Row struct {
	Label     string `json:"label"`
	Start     string `json:"start"`
	End       string `json:"end"`
	StartUnix int64  `json:"startUnix"`
	EndUnix   int64  `json:"endUnix"`
	OnBar     string `json:"onBar,omitempty"`
	Tooltip   string `json:"tooltip,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	HasImage  bool   `json:"hasImage,omitempty"`
}

// Timeline is a fully resolved render request: either the serial-level
// overview or one serial's inject-level detail.
type Timeline struct {
	Title       string `json:"title"`
	LabelColumn string `json:"labelColumn"` // "Serial", "Persona", or "Channel"
	Rows        []Row  `json:"rows"`
}

// Formatter renders a timeline to its output.
type Formatter interface {
	Format(tl Timeline) error
}

// hasDetail reports whether any row carries inject-level label data.
func hasDetail(rows []Row) bool {
	for _, r := range rows {
		if r.OnBar != "" || r.Tooltip != "" {
			return true
		}
	}
	return false
}

// hasImages reports whether any row carries an image reference.
func hasImages(rows []Row) bool {
	for _, r := range rows {
		if r.HasImage {
			return true
		}
	}
	return false
}
