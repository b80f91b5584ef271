package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	got := Parse("gcn.classic.voevent.SWIFT_BAT_GRB_POS_ACK")
	assert.Equal(t, FormatAndNoticeType{NoticeFormat: "voevent", NoticeType: "SWIFT_BAT_GRB_POS_ACK"}, got)
}

func TestParse_Short(t *testing.T) {
	assert.Equal(t, FormatAndNoticeType{}, Parse("gcn"))
	assert.Equal(t, FormatAndNoticeType{NoticeFormat: "text"}, Parse("gcn.classic.text"))
	assert.Equal(t, FormatAndNoticeType{}, Parse(""))
}

func TestTopics_RoundTrip(t *testing.T) {
	types := []string{"LVC_INITIAL", "ICECUBE_CASCADE"}
	topics := Topics(FormatVOEvent, types)
	assert.Equal(t, []string{"gcn.classic.voevent.LVC_INITIAL", "gcn.classic.voevent.ICECUBE_CASCADE"}, topics)
	for i, tp := range topics {
		p := Parse(tp)
		assert.Equal(t, FormatVOEvent, p.NoticeFormat)
		assert.Equal(t, types[i], p.NoticeType)
	}
}

func TestFormats(t *testing.T) {
	assert.True(t, IsKnownFormat("text"))
	assert.True(t, IsKnownFormat("binary"))
	assert.False(t, IsKnownFormat("json"))
	f := Formats()
	f[0] = "mutated"
	assert.True(t, IsKnownFormat("text"))
}

func TestCatalogue(t *testing.T) {
	ms := Missions()
	assert.Len(t, ms, 13)
	assert.Equal(t, "Agile", ms[0].Name)
	assert.Equal(t, "Other", ms[len(ms)-1].Name)

	assert.Equal(t, []string{"IPN_POS", "IPN_RAW", "IPN_SEG"}, NoticeTypes("IPN"))
	assert.Nil(t, NoticeTypes("Hubble"))

	assert.True(t, IsKnownNoticeType("SWIFT_XRT_POSITION"))
	assert.True(t, IsKnownNoticeType("FERMI_GBM_FIN_POS"))
	assert.False(t, IsKnownNoticeType("NOT_A_NOTICE"))
}

func TestMissions_ReturnsCopy(t *testing.T) {
	ms := Missions()
	ms[0].NoticeTypes[0] = "changed"
	assert.Equal(t, "AGILE_GRB_GROUND", Missions()[0].NoticeTypes[0])
}
