package order

import (
	"context"
	"fmt"

	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// Opener opens a URL in a new browsing context.
type Opener interface {
	Open(url string) error
}

type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// BrowserOpener opens links with the system browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}

type Dispatcher struct {
	opener Opener
	logger *zap.Logger
}

func NewDispatcher(opener Opener, logger *zap.Logger) *Dispatcher {
	if opener == nil {
		opener = BrowserOpener{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Dispatcher{opener: opener, logger: logger}
}

// Dispatch opens the WhatsApp deep link for phone and message and returns
// it. A failure to open is returned together with the link so the caller
// can still show it.
func (d *Dispatcher) Dispatch(ctx context.Context, phone, message string) (string, error) {
	link := DeepLink(phone, message)

	if err := ctx.Err(); err != nil {
		return link, err
	}

	d.logger.Info("dispatching order link",
		zap.String("phone", CleanPhone(phone)),
		zap.Int("message_len", len(message)))

	if err := d.opener.Open(link); err != nil {
		return link, fmt.Errorf("opener.Open: %w", err)
	}

	return link, nil
}
