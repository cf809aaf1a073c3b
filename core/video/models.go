package video

import (
	"strings"

	"github.com/gauravw/coachcenter/core"
)

type Video struct {
	ID      int64  `json:"id"`
	Subject string `json:"subject"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

// NewVideo contains information needed to add a video lecture.
type NewVideo struct {
	Subject string `json:"subject" validate:"required"`
	Title   string `json:"title" validate:"required"`
	URL     string `json:"url" validate:"required,url"`
}

func (nv *NewVideo) Validate() error {
	nv.Subject = core.CleanString(nv.Subject)
	nv.Title = core.CleanString(nv.Title)
	nv.URL = core.CleanString(nv.URL)
	return core.Validate.Struct(nv)
}

// NormalizeURL rewrites a "watch" query-parameter YouTube URL to its
// embeddable path form. Applied once at creation; URLs are treated as
// opaque afterwards.
func NormalizeURL(url string) string {
	return strings.Replace(url, "watch?v=", "embed/", 1)
}
