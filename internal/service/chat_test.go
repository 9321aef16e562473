package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/memstore"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository/memory"
)

// stubCompanion lets each test script the companion's behavior.
type stubCompanion struct {
	replyFn       func(ctx context.Context, userInput string) (string, error)
	icebreakersFn func(ctx context.Context, topic string, count int) ([]string, error)
}

func (s *stubCompanion) Reply(ctx context.Context, userInput string) (string, error) {
	return s.replyFn(ctx, userInput)
}

func (s *stubCompanion) Icebreakers(ctx context.Context, topic string, count int) ([]string, error) {
	return s.icebreakersFn(ctx, topic, count)
}

func newChatFixture(t *testing.T, companion *stubCompanion) *ChatService {
	t.Helper()
	repo := memory.New(memstore.New())
	community := &model.Community{ID: "anxiety", Name: "Anxiety Support"}
	if err := repo.Communities().Upsert(context.Background(), community); err != nil {
		t.Fatalf("seeding community: %v", err)
	}
	return NewChatService(companion, repo.Communities(), discardLogger())
}

func TestChatReply(t *testing.T) {
	svc := newChatFixture(t, &stubCompanion{
		replyFn: func(_ context.Context, userInput string) (string, error) {
			if userInput != "I had a rough day" {
				t.Errorf("userInput = %q", userInput)
			}
			return "That sounds hard.", nil
		},
	})

	reply, err := svc.Reply(context.Background(), "I had a rough day")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if reply != "That sounds hard." {
		t.Errorf("Reply() = %q", reply)
	}
}

func TestChatReply_EmptyMessage(t *testing.T) {
	svc := newChatFixture(t, &stubCompanion{})

	_, err := svc.Reply(context.Background(), "   ")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("Reply() error = %v, want ErrValidation", err)
	}
}

func TestChatReply_FallbackWhenUnavailable(t *testing.T) {
	svc := newChatFixture(t, &stubCompanion{
		replyFn: func(context.Context, string) (string, error) {
			return "", apperror.RemoteUnavailable("companion")
		},
	})

	reply, err := svc.Reply(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Reply() error = %v, want fallback instead of error", err)
	}
	if reply != FallbackReply {
		t.Errorf("Reply() = %q, want fallback text", reply)
	}
}

func TestChatReply_FallbackOnEmptyResponse(t *testing.T) {
	svc := newChatFixture(t, &stubCompanion{
		replyFn: func(context.Context, string) (string, error) {
			return "  ", nil
		},
	})

	reply, err := svc.Reply(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if reply != FallbackReply {
		t.Errorf("Reply() = %q, want fallback text", reply)
	}
}

func TestIcebreakers_UsesCommunityName(t *testing.T) {
	var gotTopic string
	svc := newChatFixture(t, &stubCompanion{
		icebreakersFn: func(_ context.Context, topic string, count int) ([]string, error) {
			gotTopic = topic
			return []string{"starter one", "starter two"}, nil
		},
	})

	messages, err := svc.Icebreakers(context.Background(), "anxiety", 2)
	if err != nil {
		t.Fatalf("Icebreakers() error = %v", err)
	}
	if len(messages) != 2 {
		t.Errorf("Icebreakers() returned %d messages", len(messages))
	}
	// The companion is prompted with the display name, not the slug.
	if gotTopic != "Anxiety Support" {
		t.Errorf("topic sent to companion = %q, want %q", gotTopic, "Anxiety Support")
	}
}

func TestIcebreakers_UnknownCommunity(t *testing.T) {
	svc := newChatFixture(t, &stubCompanion{})

	_, err := svc.Icebreakers(context.Background(), "missing", 3)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Icebreakers() error = %v, want ErrNotFound", err)
	}
}

func TestIcebreakers_FallbackWhenUnavailable(t *testing.T) {
	svc := newChatFixture(t, &stubCompanion{
		icebreakersFn: func(context.Context, string, int) ([]string, error) {
			return nil, apperror.RemoteUnavailable("companion")
		},
	})

	messages, err := svc.Icebreakers(context.Background(), "anxiety", 3)
	if err != nil {
		t.Fatalf("Icebreakers() error = %v, want fallback instead of error", err)
	}
	if len(messages) != len(fallbackStarters) {
		t.Errorf("Icebreakers() returned %d messages, want the fallback starters", len(messages))
	}
}
