package dataset

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepsync/dance_marketplace/models"
)

func TestLoadSeedCollections(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, ds.Users())
	assert.NotEmpty(t, ds.ActiveLessons())
	assert.NotEmpty(t, ds.Bookings())
	assert.NotEmpty(t, ds.Notifications())

	// Every seeded lesson references a seeded instructor.
	for _, l := range ds.ActiveLessons() {
		instructor := ds.UserByID(l.InstructorID)
		require.NotNil(t, instructor, "lesson %s has dangling instructor %s", l.ID, l.InstructorID)
		assert.Equal(t, models.RoleInstructor, instructor.Role)
	}
}

func TestLookupsReturnNilOnMiss(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	assert.Nil(t, ds.UserByID("nope"))
	assert.Nil(t, ds.UserByEmail("nobody@example.com"))
	assert.Nil(t, ds.LessonByID("nope"))
	assert.Empty(t, ds.BookingsByStudent("nope"))
	assert.Empty(t, ds.ReviewsByLesson("nope"))
}

func TestSearchLessonsIsCaseInsensitiveOverThreeFields(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	byTitle := ds.SearchLessons("BEGINNER")
	require.NotEmpty(t, byTitle)
	for _, l := range byTitle {
		haystack := strings.ToLower(l.Title + " " + l.Description + " " + string(l.Category))
		assert.Contains(t, haystack, "beginner")
	}

	byCategory := ds.SearchLessons("salsa")
	require.NotEmpty(t, byCategory)

	assert.Empty(t, ds.SearchLessons("zzzz-no-such-lesson"))
}

func TestMessagesBetweenSortedAscending(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	thread := ds.MessagesBetween("user1", "user2")
	require.Len(t, thread, 3)
	for i := 1; i < len(thread); i++ {
		assert.False(t, thread[i].CreatedAt.Before(thread[i-1].CreatedAt))
	}

	// Same thread regardless of argument order.
	assert.Equal(t, thread, ds.MessagesBetween("user2", "user1"))
}

func TestConversationsForUser(t *testing.T) {
	now := time.Now()
	ds := New(nil, nil, nil, nil, []models.Message{
		{ID: "m1", SenderID: "a", ReceiverID: "b", Message: "hi", IsRead: true, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "m2", SenderID: "b", ReceiverID: "a", Message: "hey", IsRead: false, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "m3", SenderID: "c", ReceiverID: "a", Message: "yo", IsRead: false, CreatedAt: now},
	}, nil)

	convs := ds.ConversationsForUser("a")
	require.Len(t, convs, 2)

	// Newest-first ordering: c's message is most recent.
	assert.Equal(t, "c", convs[0].OtherUserID)
	assert.Equal(t, "m3", convs[0].LastMessage.ID)
	assert.Equal(t, 1, convs[0].UnreadCount)

	// Both directions grouped under one canonical key.
	assert.Equal(t, "b", convs[1].OtherUserID)
	assert.Equal(t, ConversationKey("b", "a"), convs[1].Key)
	assert.Equal(t, "m2", convs[1].LastMessage.ID)
	assert.Equal(t, 1, convs[1].UnreadCount)
}

func TestConversationKeyIsCanonical(t *testing.T) {
	assert.Equal(t, ConversationKey("x", "y"), ConversationKey("y", "x"))
}

func TestMarkMessagesRead(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	ds.MarkMessagesRead("user2", "user1")
	for _, m := range ds.MessagesBetween("user1", "user2") {
		if m.SenderID == "user2" {
			assert.True(t, m.IsRead)
		}
	}
}
