package handler

import (
	"net/http"

	"github.com/gcn-portal/internal/pkg/topic"
)

// NoticeTypesResponse is the catalogue the subscription form is built from.
type NoticeTypesResponse struct {
	Formats  []string        `json:"formats"`
	Missions []topic.Mission `json:"missions"`
}

func ListNoticeTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, NoticeTypesResponse{
		Formats:  topic.Formats(),
		Missions: topic.Missions(),
	})
}
