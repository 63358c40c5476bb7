package postgres

import (
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-leads-api/internal/config"
)

// Listener mantém uma conexão dedicada ao LISTEN do canal de alterações de documentos.
type Listener struct {
	listener *pq.Listener
	channel  string
}

func NewListener(db config.Database, store config.DocStore) (*Listener, error) {
	l := pq.NewListener(db.DSN, store.MinReconnectInterval, store.MaxReconnectInterval, logListenerEvent)

	if err := l.Listen(store.NotifyChannel); err != nil {
		_ = l.Close()
		return nil, err
	}

	logrus.WithField("channel", store.NotifyChannel).Info("Escutando alterações de documentos no PostgreSQL")

	return &Listener{listener: l, channel: store.NotifyChannel}, nil
}

// Notifications entrega as notificações recebidas. Um valor nil indica que a conexão foi
// restabelecida e que notificações podem ter sido perdidas.
func (l *Listener) Notifications() <-chan *pq.Notification {
	return l.listener.Notify
}

func (l *Listener) Ping() error {
	return l.listener.Ping()
}

func (l *Listener) Close() error {
	return l.listener.Close()
}

func logListenerEvent(event pq.ListenerEventType, err error) {
	logger := logrus.WithField("event", listenerEventName(event))
	if err != nil {
		logger.WithError(err).Warn("Evento no listener do PostgreSQL")
		return
	}

	logger.Debug("Evento no listener do PostgreSQL")
}

func listenerEventName(event pq.ListenerEventType) string {
	switch event {
	case pq.ListenerEventConnected:
		return "connected"
	case pq.ListenerEventDisconnected:
		return "disconnected"
	case pq.ListenerEventReconnected:
		return "reconnected"
	case pq.ListenerEventConnectionAttemptFailed:
		return "connection_attempt_failed"
	}
	return "unknown"
}
