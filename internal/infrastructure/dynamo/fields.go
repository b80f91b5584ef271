package dynamo

// DynamoDB key attribute names used across all repos.
const (
	fieldSub      = "sub"
	fieldUUID     = "uuid"
	fieldTopic    = "topic"
	fieldSubIss   = "subiss"
	fieldClientID = "client_id"
)

const indexTopic = "topic-index"
