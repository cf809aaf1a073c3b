package video

import (
	"fmt"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/user"
)

type (
	Repository interface {
		// CreateVideo assigns an ID and prepends the video so insertion
		// order stays newest-first.
		CreateVideo(v Video) (Video, error)
		QueryAllVideos() ([]Video, error)
	}

	Service struct {
		repo     Repository
		notifier core.Notifier
	}
)

func NewService(repo Repository, notifier core.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create adds a video lecture with its URL normalized to the embeddable
// form. Teacher only.
func (svc *Service) Create(actor user.User, nv NewVideo) (Video, error) {
	if !actor.IsTeacher() {
		return Video{}, core.NewPermissionError("only teachers may add videos")
	}
	v := Video{
		Subject: nv.Subject,
		Title:   nv.Title,
		URL:     NormalizeURL(nv.URL),
	}
	v, err := svc.repo.CreateVideo(v)
	if err != nil {
		return Video{}, err
	}
	svc.notifier.Notify(fmt.Sprintf("New video lecture added: %q", v.Title))
	return v, nil
}

// QueryAll returns videos in insertion order, newest-added first.
func (svc *Service) QueryAll() ([]Video, error) {
	return svc.repo.QueryAllVideos()
}

// BySubject groups the current videos by subject, preserving each
// group's insertion order.
func (svc *Service) BySubject() (map[string][]Video, error) {
	videos, err := svc.repo.QueryAllVideos()
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]Video)
	for _, v := range videos {
		grouped[v.Subject] = append(grouped[v.Subject], v)
	}
	return grouped, nil
}
