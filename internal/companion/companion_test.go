package companion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sakif/wellverse/internal/apperror"
)

func TestReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reply" {
			t.Errorf("path = %q, want /reply", r.URL.Path)
		}
		var req replyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.UserInput != "I had a rough day" {
			t.Errorf("userInput = %q", req.UserInput)
		}
		json.NewEncoder(w).Encode(replyResponse{Response: "That sounds hard. Want to talk about it?"})
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	reply, err := client.Reply(context.Background(), "I had a rough day")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if reply != "That sounds hard. Want to talk about it?" {
		t.Errorf("Reply() = %q", reply)
	}
}

func TestReply_ServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	_, err := client.Reply(context.Background(), "hello")
	if !errors.Is(err, apperror.ErrRemoteUnavailable) {
		t.Errorf("Reply() error = %v, want ErrRemoteUnavailable", err)
	}
}

func TestReply_Unreachable(t *testing.T) {
	// A server that is already closed refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL, nil)
	_, err := client.Reply(context.Background(), "hello")
	if !errors.Is(err, apperror.ErrRemoteUnavailable) {
		t.Errorf("Reply() error = %v, want ErrRemoteUnavailable", err)
	}
}

func TestIcebreakers(t *testing.T) {
	var got icebreakersRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/icebreakers" {
			t.Errorf("path = %q, want /icebreakers", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(icebreakersResponse{Messages: []string{"a", "b", "c"}})
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	messages, err := client.Icebreakers(context.Background(), "anxiety", 0)
	if err != nil {
		t.Fatalf("Icebreakers() error = %v", err)
	}
	if len(messages) != 3 {
		t.Errorf("Icebreakers() returned %d messages, want 3", len(messages))
	}
	if got.NumMessages != DefaultIcebreakerCount {
		t.Errorf("numMessages sent = %d, want default %d", got.NumMessages, DefaultIcebreakerCount)
	}
	if got.Topic != "anxiety" {
		t.Errorf("topic sent = %q", got.Topic)
	}
}

func TestIcebreakers_CountPassedThrough(t *testing.T) {
	var got icebreakersRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(icebreakersResponse{Messages: []string{"a", "b", "c", "d", "e"}})
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	if _, err := client.Icebreakers(context.Background(), "sleep", 5); err != nil {
		t.Fatalf("Icebreakers() error = %v", err)
	}
	if got.NumMessages != 5 {
		t.Errorf("numMessages sent = %d, want 5", got.NumMessages)
	}
}
