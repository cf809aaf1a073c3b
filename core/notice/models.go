package notice

import (
	"sort"

	"github.com/gauravw/coachcenter/core"
)

type Notice struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Date    string `json:"date"` // ISO calendar date, no time component
	Pinned  bool   `json:"pinned"`
}

// NewNotice contains information needed to post a Notice. Author is
// free text supplied by the caller, not checked against the session.
type NewNotice struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required"`
}

func (nn *NewNotice) Validate() error {
	nn.Title = core.CleanString(nn.Title)
	nn.Content = core.CleanString(nn.Content)
	nn.Author = core.CleanString(nn.Author)
	return core.Validate.Struct(nn)
}

// SortForDisplay orders notices pinned-first, most recent first within
// each group. The sort is stable for equal keys.
func SortForDisplay(notices []Notice) {
	sort.SliceStable(notices, func(i, j int) bool {
		if notices[i].Pinned != notices[j].Pinned {
			return notices[i].Pinned
		}
		// ISO dates compare correctly as strings
		return notices[i].Date > notices[j].Date
	})
}
