package event

// NotificationEventPushModel is the payload consumed from the push queue by
// the notification service.
type NotificationEventPushModel struct {
	LstUserIds []string       `json:"lstUserIds,omitempty"`
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	Data       map[string]any `json:"data,omitempty"`
}

const PushNotiQueue string = "push_noti_events"

const cartNoticeTitle = "KisanBazaar"
