package topic

// Mission is a group of notice types as shown in the notice-type selector.
type Mission struct {
	Name        string   `json:"name"`
	NoticeTypes []string `json:"noticeTypes"`
}

var known = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, ms := range missions {
		for _, nt := range ms.NoticeTypes {
			m[nt] = struct{}{}
		}
	}
	return m
}()

// Missions returns a copy of the catalogue.
func Missions() []Mission {
	out := make([]Mission, len(missions))
	for i, ms := range missions {
		out[i] = Mission{Name: ms.Name, NoticeTypes: append([]string(nil), ms.NoticeTypes...)}
	}
	return out
}

// NoticeTypes returns the notice types of a mission, or nil if unknown.
func NoticeTypes(missionName string) []string {
	for _, ms := range missions {
		if ms.Name == missionName {
			return append([]string(nil), ms.NoticeTypes...)
		}
	}
	return nil
}

func IsKnownNoticeType(nt string) bool {
	_, ok := known[nt]
	return ok
}
