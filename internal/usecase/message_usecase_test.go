package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"skill-trade/internal/domain/message"
)

type mockMessageRepo struct {
	rows   []message.Message
	nextID int64
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{nextID: 1}
}

func (m *mockMessageRepo) Create(_ context.Context, fromUserID, toUserID int64, body string) (message.Message, error) {
	msg := message.Message{
		ID:         m.nextID,
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Body:       body,
		CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, int(m.nextID), time.UTC),
	}
	m.nextID++
	m.rows = append(m.rows, msg)
	return msg, nil
}

func (m *mockMessageRepo) ListForUser(_ context.Context, userID int64) ([]message.Enriched, error) {
	out := make([]message.Enriched, 0)
	for _, r := range m.rows {
		if r.FromUserID != userID && r.ToUserID != userID {
			continue
		}
		out = append(out, message.Enriched{ID: r.ID, Body: r.Body, CreatedAt: r.CreatedAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type mockNotifier struct {
	events []int64
}

func (m *mockNotifier) NotifyMessageReceived(toUserID int64, _ string, _ message.Message) {
	m.events = append(m.events, toUserID)
}

func seededUsers() *mockUserRepo {
	repo := newMockUserRepo()
	_, _ = repo.Create(context.Background(), "alice", "x") // id 1
	_, _ = repo.Create(context.Background(), "bob", "x")   // id 2
	_, _ = repo.Create(context.Background(), "carol", "x") // id 3
	return repo
}

func TestMessageSend_UnknownRecipientWritesNothing(t *testing.T) {
	msgs := newMockMessageRepo()
	uc := NewMessageUsecase(msgs, seededUsers(), nil, 300)

	_, err := uc.Send(context.Background(), 1, "nobody", "hello")
	if !errors.Is(err, ErrRecipientNotFound) {
		t.Fatalf("expected ErrRecipientNotFound, got %v", err)
	}
	if len(msgs.rows) != 0 {
		t.Fatalf("no row must be created for unknown recipient, got %d", len(msgs.rows))
	}
}

func TestMessageSend_BodyLimits(t *testing.T) {
	uc := NewMessageUsecase(newMockMessageRepo(), seededUsers(), nil, 300)

	if _, err := uc.Send(context.Background(), 1, "bob", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty body must fail, got %v", err)
	}
	if _, err := uc.Send(context.Background(), 1, "bob", strings.Repeat("a", 301)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("301-char body must fail, got %v", err)
	}
	if _, err := uc.Send(context.Background(), 1, "bob", strings.Repeat("a", 300)); err != nil {
		t.Fatalf("300-char body must succeed, got %v", err)
	}
}

func TestMessageSend_ResolvesRecipientAndNotifies(t *testing.T) {
	msgs := newMockMessageRepo()
	notifier := &mockNotifier{}
	uc := NewMessageUsecase(msgs, seededUsers(), notifier, 300)

	sent, err := uc.Send(context.Background(), 1, "bob", "hello")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sent.FromUserID != 1 || sent.ToUserID != 2 {
		t.Fatalf("recipient username not resolved to id: %+v", sent)
	}
	if len(notifier.events) != 1 || notifier.events[0] != 2 {
		t.Fatalf("expected one notify to user 2, got %v", notifier.events)
	}
}

func TestMessageList_SenderOrRecipientNewestFirst(t *testing.T) {
	msgs := newMockMessageRepo()
	uc := NewMessageUsecase(msgs, seededUsers(), nil, 300)

	if _, err := uc.Send(context.Background(), 1, "bob", "first"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Send(context.Background(), 2, "alice", "second"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Send(context.Background(), 2, "carol", "third"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	inbox, err := uc.ListForUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(inbox) != 2 {
		t.Fatalf("alice is party to 2 messages, got %d", len(inbox))
	}
	if inbox[0].Body != "second" || inbox[1].Body != "first" {
		t.Fatalf("expected newest-first order, got %+v", inbox)
	}
	for _, m := range inbox {
		if m.Body == "third" {
			t.Fatalf("bob→carol message must not appear in alice's list")
		}
	}
}

func TestMessageList_RequiresUserID(t *testing.T) {
	uc := NewMessageUsecase(newMockMessageRepo(), seededUsers(), nil, 300)

	if _, err := uc.ListForUser(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
