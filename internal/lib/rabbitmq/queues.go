package rabbitmq

// Ключи маршрутизации уведомлений.
const (
	RoutingExpiring = "expiring"
	RoutingExpired  = "expired"
)

// QueueConfig связывает очередь с ключом маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// NotificationQueues возвращает очереди, которые слушает сервис рассылки.
func NotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notifications.expiring", RoutingKey: RoutingExpiring},
		{QueueName: "notifications.expired", RoutingKey: RoutingExpired},
	}
}
