package domain

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type Banner struct {
	ID        int64
	Title     string
	Subtitle  string
	Image     string
	VideoURL  string
	MediaType MediaType
	CTAText   string
	CTALink   string
	Position  int
	Height    string
	TextColor string
}

// MediaSource returns the playable source for the banner. A video banner
// without a video URL falls back to its image.
func (b Banner) MediaSource() string {
	if b.MediaType == MediaVideo && b.VideoURL != "" {
		return b.VideoURL
	}
	return b.Image
}

func (b Banner) Validate() error {
	if b.Title == "" {
		return NewValidation("title is required")
	}
	if b.MediaType != MediaImage && b.MediaType != MediaVideo {
		return NewValidation("media type must be image or video")
	}
	return nil
}
