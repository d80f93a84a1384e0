package service

import (
	"errors"
	"testing"

	"github.com/GurshaanDaula/Assignment2-Database/internal/model"
)

func TestSendMessageRequiresMembership(t *testing.T) {
	f := newFixture(t)

	user, err := f.users.Register("a@x.com", "alice", "Abcdef1234!")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	room := f.createRoom(t, "General")

	if _, err := f.messages.SendMessage(user.ID, room.ID, "hi"); !errors.Is(err, ErrNotMember) {
		t.Errorf("send without join: err = %v, want ErrNotMember", err)
	}
}

func TestJoinThenSendThenList(t *testing.T) {
	f := newFixture(t)

	user, err := f.users.Register("a@x.com", "alice", "Abcdef1234!")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	room := f.createRoom(t, "General")

	if err := f.rooms.JoinRoom(user.ID, room.ID); err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}

	if _, err := f.messages.SendMessage(user.ID, room.ID, "hi"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	messages, err := f.messages.ListMessages(room.ID)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("ListMessages returned %d messages, want 1", len(messages))
	}
	if messages[0].Text != "hi" || messages[0].Username != "alice" {
		t.Errorf("message = %+v, want text=hi username=alice", messages[0])
	}
}

func TestJoinRoomIsIdempotent(t *testing.T) {
	f := newFixture(t)

	user, err := f.users.Register("a@x.com", "alice", "Abcdef1234!")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	room := f.createRoom(t, "General")

	if err := f.rooms.JoinRoom(user.ID, room.ID); err != nil {
		t.Fatalf("first JoinRoom: %v", err)
	}
	if err := f.rooms.JoinRoom(user.ID, room.ID); err != nil {
		t.Fatalf("second JoinRoom: %v", err)
	}

	var count int64
	if err := f.db.Model(&model.RoomUser{}).Count(&count).Error; err != nil {
		t.Fatalf("count memberships: %v", err)
	}
	if count != 1 {
		t.Errorf("joining twice left %d membership rows, want 1", count)
	}
}

func TestJoinRoomUnknownRoom(t *testing.T) {
	f := newFixture(t)

	user, err := f.users.Register("a@x.com", "alice", "Abcdef1234!")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := f.rooms.JoinRoom(user.ID, 999); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("join unknown room: err = %v, want ErrRoomNotFound", err)
	}
}

func TestMarkReadValidatesRoom(t *testing.T) {
	f := newFixture(t)

	user, err := f.users.Register("a@x.com", "alice", "Abcdef1234!")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	general := f.createRoom(t, "General")
	random := f.createRoom(t, "Random")

	for _, room := range []*model.Room{general, random} {
		if err := f.rooms.JoinRoom(user.ID, room.ID); err != nil {
			t.Fatalf("JoinRoom: %v", err)
		}
	}

	message, err := f.messages.SendMessage(user.ID, general.ID, "hi")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	if err := f.messages.MarkRead(user.ID, general.ID, message.ID); err != nil {
		t.Fatalf("MarkRead in own room: %v", err)
	}

	var membership model.RoomUser
	if err := f.db.Where("room_id = ? AND user_id = ?", general.ID, user.ID).First(&membership).Error; err != nil {
		t.Fatalf("find membership: %v", err)
	}
	if membership.LastReadMessageID != message.ID {
		t.Errorf("LastReadMessageID = %d, want %d", membership.LastReadMessageID, message.ID)
	}

	// Сообщение из другой комнаты маркер двигать не должно
	if err := f.messages.MarkRead(user.ID, random.ID, message.ID); !errors.Is(err, ErrMessageNotInRoom) {
		t.Errorf("mark read across rooms: err = %v, want ErrMessageNotInRoom", err)
	}

	var randomMembership model.RoomUser
	if err := f.db.Where("room_id = ? AND user_id = ?", random.ID, user.ID).First(&randomMembership).Error; err != nil {
		t.Fatalf("find membership: %v", err)
	}
	if randomMembership.LastReadMessageID != model.NoMessageRead {
		t.Errorf("foreign-room mark read moved the marker to %d, want sentinel %d",
			randomMembership.LastReadMessageID, model.NoMessageRead)
	}
}

func TestMarkReadRequiresMembership(t *testing.T) {
	f := newFixture(t)

	user, err := f.users.Register("a@x.com", "alice", "Abcdef1234!")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	room := f.createRoom(t, "General")

	if err := f.messages.MarkRead(user.ID, room.ID, 1); !errors.Is(err, ErrNotMember) {
		t.Errorf("mark read without join: err = %v, want ErrNotMember", err)
	}
}

func TestSendMessageRejectsEmptyText(t *testing.T) {
	f := newFixture(t)

	user, err := f.users.Register("a@x.com", "alice", "Abcdef1234!")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	room := f.createRoom(t, "General")

	if err := f.rooms.JoinRoom(user.ID, room.ID); err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}

	if _, err := f.messages.SendMessage(user.ID, room.ID, "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("empty text: err = %v, want ErrEmptyMessage", err)
	}
}
