package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/nexusai/internal/interaction/interactiontest"
	"github.com/zhouzirui/nexusai/internal/model/chat"
	chatservice "github.com/zhouzirui/nexusai/internal/service/chat"
)

type fixedReplier string

func (f fixedReplier) Reply(context.Context, []chat.Message, string) (string, error) {
	return string(f), nil
}

type sseEvent struct {
	name string
	data string
}

func nextEvent(t *testing.T, sc *bufio.Scanner) sseEvent {
	t.Helper()
	var ev sseEvent
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			ev.name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			ev.data = strings.TrimPrefix(line, "data: ")
		case line == "" && ev.name != "":
			return ev
		}
	}
	t.Fatalf("stream ended: %v", sc.Err())
	return ev
}

func setup(t *testing.T) (*httptest.Server, *chatservice.Service, *interactiontest.Scheduler) {
	t.Helper()
	sched := interactiontest.New()
	chatSvc := chatservice.NewService(fixedReplier("canned"), chatservice.Config{ReplyDelay: time.Second, IdleTTL: time.Hour}, nil,
		chatservice.WithScheduler(sched))
	t.Cleanup(chatSvc.Shutdown)

	r := chi.NewRouter()
	New(chatSvc, nil).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, chatSvc, sched
}

func TestStreamDeliversSnapshotAndReply(t *testing.T) {
	srv, chatSvc, sched := setup(t)
	ctx := context.Background()
	session, _ := chatSvc.CreateSession(ctx)
	if _, err := chatSvc.Send(ctx, session.ID, "Hello"); err != nil {
		t.Fatalf("Send err: %v", err)
	}

	resp, err := http.Get(srv.URL + "/chat/" + session.ID + "/events")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}
	sc := bufio.NewScanner(resp.Body)

	ready := nextEvent(t, sc)
	if ready.name != "ready" {
		t.Fatalf("expected ready event, got %q", ready.name)
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(ready.data), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Messages) != 2 || !snap.Typing {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	sched.Advance(time.Second)

	msg := nextEvent(t, sc)
	if msg.name != chat.EventMessage || !strings.Contains(msg.data, "canned") {
		t.Fatalf("expected reply message event, got %+v", msg)
	}
	typing := nextEvent(t, sc)
	if typing.name != chat.EventTyping || !strings.Contains(typing.data, `"typing":false`) {
		t.Fatalf("expected typing off, got %+v", typing)
	}

	chatSvc.Close(session.ID)
	if closed := nextEvent(t, sc); closed.name != "closed" {
		t.Fatalf("expected closed event, got %q", closed.name)
	}
}

func TestStreamUnknownSession(t *testing.T) {
	srv, _, _ := setup(t)

	resp, err := http.Get(srv.URL + "/chat/missing/events")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
