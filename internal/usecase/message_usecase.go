package usecase

import (
	"context"
	"errors"
	"unicode/utf8"

	"skill-trade/internal/domain/message"
	"skill-trade/internal/domain/user"
)

// MessageNotifier pushes a best-effort new-message event to the recipient.
// Delivery failures never affect the send.
type MessageNotifier interface {
	NotifyMessageReceived(toUserID int64, fromUsername string, msg message.Message)
}

type MessageUsecase interface {
	Send(ctx context.Context, fromUserID int64, toUsername, body string) (message.Message, error)
	ListForUser(ctx context.Context, userID int64) ([]message.Enriched, error)
}

type Message struct {
	messages   message.Repository
	users      user.Repository
	notifier   MessageNotifier
	maxBodyLen int
}

func NewMessageUsecase(messages message.Repository, users user.Repository, notifier MessageNotifier, maxBodyLen int) *Message {
	if maxBodyLen <= 0 {
		maxBodyLen = 300
	}
	return &Message{messages: messages, users: users, notifier: notifier, maxBodyLen: maxBodyLen}
}

// Send resolves the recipient username first; an unknown recipient writes
// nothing.
func (u *Message) Send(ctx context.Context, fromUserID int64, toUsername, body string) (message.Message, error) {
	if fromUserID <= 0 || toUsername == "" {
		return message.Message{}, ErrInvalidInput
	}
	if body == "" || utf8.RuneCountInString(body) > u.maxBodyLen {
		return message.Message{}, ErrInvalidInput
	}

	recipient, err := u.users.GetByUsername(ctx, toUsername)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return message.Message{}, ErrRecipientNotFound
		}
		return message.Message{}, ErrInternal
	}

	sender, err := u.users.GetByID(ctx, fromUserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return message.Message{}, ErrInvalidInput
		}
		return message.Message{}, ErrInternal
	}

	created, err := u.messages.Create(ctx, sender.ID, recipient.ID, body)
	if err != nil {
		return message.Message{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.NotifyMessageReceived(recipient.ID, sender.Username, created)
	}

	return created, nil
}

func (u *Message) ListForUser(ctx context.Context, userID int64) ([]message.Enriched, error) {
	if userID <= 0 {
		return nil, ErrInvalidInput
	}

	items, err := u.messages.ListForUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
