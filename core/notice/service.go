package notice

import (
	"errors"
	"fmt"
	"time"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/user"
)

var (
	nowFunc = time.Now // mockable

	// errors
	ErrNotFound = errors.New("notice not found")
)

type (
	Repository interface {
		// CreateNotice assigns an ID and prepends the notice to the
		// collection so insertion order stays newest-first.
		CreateNotice(n Notice) (Notice, error)
		QueryAllNotices() ([]Notice, error)
		// TogglePinNotice flips the pinned flag; ErrNotFound for an unknown id.
		TogglePinNotice(id int64) (Notice, error)
		// DeleteNotice removes the notice; ErrNotFound for an unknown id.
		DeleteNotice(id int64) error
	}

	Service struct {
		repo     Repository
		notifier core.Notifier
	}
)

func NewService(repo Repository, notifier core.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create posts a new notice dated today, unpinned. Any signed-in user may post.
func (svc *Service) Create(actor user.User, nn NewNotice) (Notice, error) {
	if !actor.IsAuthenticated() {
		return Notice{}, core.NewPermissionError("sign in to post notices")
	}
	n := Notice{
		Title:   nn.Title,
		Content: nn.Content,
		Author:  nn.Author,
		Date:    core.FormatDate(nowFunc()),
	}
	n, err := svc.repo.CreateNotice(n)
	if err != nil {
		return Notice{}, err
	}
	svc.notifier.Notify(fmt.Sprintf("New notice posted: %q", n.Title))
	return n, nil
}

// TogglePin flips the pinned flag of the matching notice. Admin only.
func (svc *Service) TogglePin(actor user.User, id int64) (Notice, error) {
	if !actor.IsAdmin() {
		return Notice{}, core.NewPermissionError("only admins may pin notices")
	}
	n, err := svc.repo.TogglePinNotice(id)
	if err != nil {
		if err == ErrNotFound {
			return Notice{}, core.NewNotFoundError("notice not found")
		}
		return Notice{}, err
	}
	return n, nil
}

// Delete removes the matching notice. Admin only.
func (svc *Service) Delete(actor user.User, id int64) error {
	if !actor.IsAdmin() {
		return core.NewPermissionError("only admins may delete notices")
	}
	if err := svc.repo.DeleteNotice(id); err != nil {
		if err == ErrNotFound {
			return core.NewNotFoundError("notice not found")
		}
		return err
	}
	return nil
}

// QueryAll returns notices in insertion order, newest-posted first.
func (svc *Service) QueryAll() ([]Notice, error) {
	return svc.repo.QueryAllNotices()
}

// QueryForDisplay returns notices in display order: pinned first,
// most recent first within each group.
func (svc *Service) QueryForDisplay() ([]Notice, error) {
	notices, err := svc.repo.QueryAllNotices()
	if err != nil {
		return nil, err
	}
	SortForDisplay(notices)
	return notices, nil
}
