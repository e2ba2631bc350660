package services

import (
	"context"

	"github.com/sirupsen/logrus"

	imports "github.com/orgkit/orgconsole/modules/imports/domain"
	"github.com/orgkit/orgconsole/pkg/eventbus"
)

type NoticeKind string

const (
	NoticeSuccess      NoticeKind = "success"
	NoticeErrors       NoticeKind = "errors"
	NoticeWarnings     NoticeKind = "warnings"
	NoticeMixed        NoticeKind = "mixed"
	NoticeNoData       NoticeKind = "no_data"
	NoticeParseFailure NoticeKind = "parse_failure"
)

// Notice is the toast-equivalent signal surfaced at batch completion (or
// structural abort). Report is nil for structural notices.
type Notice struct {
	Kind    NoticeKind
	Message string
	Report  *imports.BatchReport
}

// Notifier is the injected capability the coordinator signals through.
// There is deliberately no process-wide dispatcher.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}

// EventNotifier publishes notices on the in-process event bus and logs
// them.
type EventNotifier struct {
	bus eventbus.EventBus
	log *logrus.Logger
}

func NewEventNotifier(bus eventbus.EventBus, log *logrus.Logger) *EventNotifier {
	return &EventNotifier{bus: bus, log: log}
}

func (n *EventNotifier) Notify(ctx context.Context, notice Notice) {
	entry := n.log.WithField("kind", string(notice.Kind))
	switch notice.Kind {
	case NoticeSuccess:
		entry.Info(notice.Message)
	case NoticeWarnings:
		entry.Warn(notice.Message)
	default:
		entry.Error(notice.Message)
	}
	n.bus.Publish(notice)
}

// NopNotifier discards notices; used where no signal surface exists.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Notice) {}
