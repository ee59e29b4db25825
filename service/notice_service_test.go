package service

import (
	"testing"

	"community_portal/model"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestApplyNoticeUpdatePartialFields(t *testing.T) {
	notice := &model.Notice{Title: "Water outage", Image: "https://cdn.example.com/outage.png"}

	applyNoticeUpdate(notice, NoticeUpdate{Title: strptr("Water outage (resolved)")})
	assert.Equal(t, "Water outage (resolved)", notice.Title)
	assert.Equal(t, "https://cdn.example.com/outage.png", notice.Image, "omitted image must be preserved")

	applyNoticeUpdate(notice, NoticeUpdate{Image: strptr("")})
	assert.Equal(t, "Water outage (resolved)", notice.Title)
	assert.Equal(t, "", notice.Image, "explicit empty image clears it")

	applyNoticeUpdate(notice, NoticeUpdate{})
	assert.Equal(t, "Water outage (resolved)", notice.Title)
	assert.Equal(t, "", notice.Image)
}
