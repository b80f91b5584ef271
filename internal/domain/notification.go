package domain

// EmailNotification is one user-owned subscription in the primary table.
// PK: sub, SK: uuid.
type EmailNotification struct {
	Sub       string   `json:"-" dynamodbav:"sub"`
	UUID      string   `json:"uuid" dynamodbav:"uuid"`
	Name      string   `json:"name" dynamodbav:"name"`
	Recipient string   `json:"recipient" dynamodbav:"recipient"`
	Topics    []string `json:"topics" dynamodbav:"topics"`
	Active    bool     `json:"active" dynamodbav:"active"`
	Created   int64    `json:"created" dynamodbav:"created"` // Unix milliseconds
}

// EmailNotificationVM is an EmailNotification annotated for display.
type EmailNotificationVM struct {
	EmailNotification
	Format      string   `json:"format"`
	NoticeTypes []string `json:"noticeTypes"`
}

// EmailNotificationInput carries the user-editable fields. UUID is ignored on
// create and selects the record on update. Topics may be empty on update;
// create additionally requires at least one.
type EmailNotificationInput struct {
	UUID      string   `json:"uuid"`
	Name      string   `json:"name" validate:"required"`
	Recipient string   `json:"recipient" validate:"required"`
	Topics    []string `json:"topics" validate:"dive,required"`
	Active    bool     `json:"active"`
}

// SubscriptionRow is one entry of the materialized view: who receives a topic.
// PK: uuid, SK: topic. The topic-index GSI serves lookups by topic.
type SubscriptionRow struct {
	UUID      string `json:"uuid" dynamodbav:"uuid"`
	Topic     string `json:"topic" dynamodbav:"topic"`
	Recipient string `json:"recipient" dynamodbav:"recipient"`
}
