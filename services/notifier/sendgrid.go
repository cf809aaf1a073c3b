package notifysvc

import (
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/gauravw/coachcenter/core"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

type sendgridNotifier struct {
	key        string
	from       *sgmail.Email
	recipients []*sgmail.Email
	subjPrefix string
	logger     core.Logger
}

var _ core.Notifier = (*sendgridNotifier)(nil)

// NewSendgridNotifier returns a Notifier that emails each message to
// the center's configured mailing list.
func NewSendgridNotifier(conf *core.Config, logger core.Logger) core.Notifier {
	svc := &sendgridNotifier{
		key:        conf.Notifier.SendgridAPIKey,
		from:       sgmail.NewEmail(conf.AppName, conf.Notifier.FromEmail),
		subjPrefix: "[" + conf.AppName + "] ",
		logger:     logger,
	}
	for _, addr := range conf.Notifier.Recipients {
		svc.recipients = append(svc.recipients, sgmail.NewEmail("", addr))
	}
	return svc
}

func (svc *sendgridNotifier) Notify(message string) {
	// do not block the mutation on the email round trip
	go svc.send(message)
}

func (svc *sendgridNotifier) send(message string) {
	p := sgmail.NewPersonalization()
	p.Subject = svc.subjPrefix + message
	for _, to := range svc.recipients {
		p.AddTos(to)
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(svc.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", message))

	req := sendgrid.GetRequest(svc.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	resp, err := makeRequestFunc(req)
	if err != nil {
		svc.logger.Error("sending notification email", err)
		return
	}
	if resp.StatusCode >= http.StatusBadRequest {
		svc.logger.Error("notification email rejected", resp.StatusCode, resp.Body)
	}
}

var makeRequestFunc = func(req rest.Request) (*rest.Response, error) { // mockable
	return sendgrid.MakeRequestRetry(req)
}
