package api

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	chattersv1 "github.com/matheus3301/chatters/gen/chatters/v1"
	"github.com/matheus3301/chatters/internal/archive"
	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/engine"
	"github.com/matheus3301/chatters/internal/store"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

var c1 = chat.NewConversationID("wa", "alice")

type fakeEngine struct {
	sendErr   error
	sent      []chat.Body
	read      []chat.ConversationID
	reconnect []chat.BackendID
	logout    []chat.BackendID
	calls     []string
}

func (f *fakeEngine) Send(_ context.Context, conv chat.ConversationID, body chat.Body) (chat.Message, error) {
	if f.sendErr != nil {
		return chat.Message{}, f.sendErr
	}
	f.sent = append(f.sent, body)
	return chat.Message{ID: "local-1", FromMe: true, State: chat.Sending, Body: body}, nil
}

func (f *fakeEngine) React(_ context.Context, conv chat.ConversationID, msgID, emoji string) (chat.Message, error) {
	f.calls = append(f.calls, "react "+conv.String()+" "+msgID+" "+emoji)
	return chat.Message{ID: msgID, Reactions: []chat.Reaction{{Sender: "me", Emoji: emoji}}}, nil
}

func (f *fakeEngine) Edit(_ context.Context, conv chat.ConversationID, msgID, text string) (chat.Message, error) {
	if msgID == "theirs" {
		return chat.Message{}, fmt.Errorf("message %s: %w", msgID, engine.ErrNotOwnMessage)
	}
	f.calls = append(f.calls, "edit "+conv.String()+" "+msgID+" "+text)
	return chat.Message{ID: msgID, FromMe: true, Body: chat.Body{Text: text}, Edited: true}, nil
}

func (f *fakeEngine) Delete(_ context.Context, conv chat.ConversationID, msgID string) error {
	if msgID == "pending" {
		return fmt.Errorf("message %s: %w", msgID, engine.ErrNotSent)
	}
	f.calls = append(f.calls, "delete "+conv.String()+" "+msgID)
	return nil
}

func (f *fakeEngine) Forward(_ context.Context, from chat.ConversationID, msgID string, to chat.ConversationID) (chat.Message, error) {
	f.calls = append(f.calls, "forward "+from.String()+" "+msgID+" "+to.String())
	return chat.Message{ID: "local-2", FromMe: true, State: chat.Sending}, nil
}

func (f *fakeEngine) MarkRead(_ context.Context, conv chat.ConversationID) error {
	f.read = append(f.read, conv)
	return nil
}

func (f *fakeEngine) Reconnect(id chat.BackendID) error {
	if id != "wa" {
		return fmt.Errorf("backend %s: %w", id, chat.ErrNotFound)
	}
	f.reconnect = append(f.reconnect, id)
	return nil
}

func (f *fakeEngine) Logout(_ context.Context, id chat.BackendID) error {
	if id != "wa" {
		return fmt.Errorf("logout of %s (local): %w", id, engine.ErrUnsupported)
	}
	f.logout = append(f.logout, id)
	return nil
}

func (f *fakeEngine) Backends() []engine.BackendStatus {
	return []engine.BackendStatus{{ID: "wa", Kind: "whatsapp", State: chat.ConnState{Phase: chat.Live}, PendingSends: 2}}
}

func (f *fakeEngine) Linker(id chat.BackendID) (backend.Linker, error) {
	return nil, fmt.Errorf("backend %s (local): %w", id, engine.ErrUnsupported)
}

type fakeSearcher struct{ query string }

func (f *fakeSearcher) Search(_ context.Context, query string, conv chat.ConversationID, limit int) ([]archive.Hit, error) {
	f.query = query
	return []archive.Hit{{Conversation: c1, Message: chat.Message{ID: "m1"}, Snippet: "<<hi>>"}}, nil
}

func newTestService(t *testing.T, search Searcher) (*Service, *store.Store, *fakeEngine) {
	t.Helper()
	st := store.New(zap.NewNop())
	eng := &fakeEngine{}
	return NewService("default", eng, st, search, nil), st, eng
}

func apply(t *testing.T, st *store.Store, muts ...chat.Mutation) {
	t.Helper()
	for _, m := range muts {
		if _, err := st.Apply(m); err != nil {
			t.Fatalf("apply %T: %v", m, err)
		}
	}
}

func code(err error) codes.Code {
	return grpcstatus.Code(err)
}

func page(limit, offset int32) *chattersv1.Pagination {
	return &chattersv1.Pagination{Limit: limit, Offset: offset}
}

func TestListConversationsPages(t *testing.T) {
	svc, st, _ := newTestService(t, nil)
	for i := range 3 {
		apply(t, st, chat.UpsertConversation{ID: chat.NewConversationID("wa", fmt.Sprintf("c%d", i)), Name: fmt.Sprintf("C%d", i)})
	}
	apply(t, st, chat.UpsertConversation{ID: chat.NewConversationID("mx", "room"), Name: "Room"})
	ctx := context.Background()

	resp, err := svc.Conversation.ListConversations(ctx, &chattersv1.ListConversationsRequest{Backend: "wa", Pagination: page(2, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Conversations) != 2 || !resp.GetPageInfo().GetHasMore() {
		t.Errorf("first page = %d conversations, has_more=%v", len(resp.Conversations), resp.GetPageInfo().GetHasMore())
	}
	resp, err = svc.Conversation.ListConversations(ctx, &chattersv1.ListConversationsRequest{Backend: "wa", Pagination: page(2, 2)})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Conversations) != 1 || resp.GetPageInfo().GetHasMore() {
		t.Errorf("second page = %d conversations, has_more=%v", len(resp.Conversations), resp.GetPageInfo().GetHasMore())
	}
	resp, err = svc.Conversation.ListConversations(ctx, &chattersv1.ListConversationsRequest{Pagination: page(0, 10)})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Conversations) != 0 || resp.GetPageInfo().GetHasMore() {
		t.Errorf("past the end = %v", resp)
	}
	resp, err = svc.Conversation.ListConversations(ctx, &chattersv1.ListConversationsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Conversations) != 4 {
		t.Errorf("no pagination = %d conversations", len(resp.Conversations))
	}
	if _, err := svc.Conversation.ListConversations(ctx, &chattersv1.ListConversationsRequest{Pagination: page(-1, 0)}); code(err) != codes.InvalidArgument {
		t.Errorf("negative limit err = %v", err)
	}
}

func TestGetConversation(t *testing.T) {
	svc, st, _ := newTestService(t, nil)
	apply(t, st, chat.UpsertConversation{ID: c1, Name: "Alice", Kind: chat.Direct})
	ctx := context.Background()

	resp, err := svc.Conversation.GetConversation(ctx, &chattersv1.GetConversationRequest{ConversationId: "wa:alice"})
	if err != nil {
		t.Fatal(err)
	}
	conv := resp.GetConversation()
	if conv.GetName() != "Alice" || conv.GetId() != "wa:alice" || conv.GetKind() != chattersv1.ConversationKind_CONVERSATION_KIND_DIRECT {
		t.Errorf("conversation = %v", conv)
	}
	if _, err := svc.Conversation.GetConversation(ctx, &chattersv1.GetConversationRequest{ConversationId: "wa:nobody"}); code(err) != codes.NotFound {
		t.Errorf("missing err = %v", err)
	}
	if _, err := svc.Conversation.GetConversation(ctx, &chattersv1.GetConversationRequest{}); code(err) != codes.InvalidArgument {
		t.Errorf("empty id err = %v", err)
	}
	if _, err := svc.Conversation.GetConversation(ctx, &chattersv1.GetConversationRequest{ConversationId: "nocolon"}); code(err) != codes.InvalidArgument {
		t.Errorf("malformed id err = %v", err)
	}
}

func TestListMessagesWindow(t *testing.T) {
	svc, st, _ := newTestService(t, nil)
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := range 5 {
		apply(t, st, chat.AppendMessage{Conversation: c1, Message: chat.Message{
			ID: fmt.Sprintf("m%d", i), Sender: "alice", Body: chat.Body{Text: "x"}, Timestamp: t0.Add(time.Duration(i) * time.Second),
		}})
	}
	ctx := context.Background()

	resp, err := svc.Message.ListMessages(ctx, &chattersv1.ListMessagesRequest{ConversationId: "wa:alice", Before: "m3", Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Messages) != 2 || resp.Messages[0].Id != "m1" || resp.Messages[1].Id != "m2" {
		t.Errorf("messages = %v", resp.Messages)
	}
	if m := resp.Messages[0]; m.ConversationId != "wa:alice" || m.TimestampUnixMs != t0.Add(time.Second).UnixMilli() {
		t.Errorf("first message = %v", m)
	}
	resp, err = svc.Message.ListMessages(ctx, &chattersv1.ListMessagesRequest{ConversationId: "wa:alice", After: "m4"})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Messages) != 0 {
		t.Errorf("after newest = %v", resp.Messages)
	}
	if _, err := svc.Message.ListMessages(ctx, &chattersv1.ListMessagesRequest{ConversationId: "wa:alice", Before: "zz"}); code(err) != codes.NotFound {
		t.Errorf("unknown anchor err = %v", err)
	}
}

func TestSendMessage(t *testing.T) {
	svc, st, eng := newTestService(t, nil)
	apply(t, st, chat.AppendMessage{Conversation: c1, Message: chat.Message{ID: "m1", Sender: "alice", Body: chat.Body{Text: "lunch?"}}})
	ctx := context.Background()

	resp, err := svc.Message.SendMessage(ctx, &chattersv1.SendMessageRequest{
		ConversationId: "wa:alice",
		Text:           "hi",
		ReplyTo:        "m1",
		Attachments:    []*chattersv1.Attachment{{Name: "a.txt", MimeType: "text/plain", Size: 2, Inline: []byte("ok")}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Message.State != chattersv1.DeliveryState_DELIVERY_STATE_SENDING || len(eng.sent) != 1 {
		t.Errorf("message = %v, sent = %+v", resp.Message, eng.sent)
	}
	body := eng.sent[0]
	if body.Quote == nil || body.Quote.Sender != "alice" || body.Quote.Text != "lunch?" {
		t.Errorf("quote = %+v", body.Quote)
	}
	if len(body.Attachments) != 1 || string(body.Attachments[0].Inline) != "ok" || body.Attachments[0].MIMEType != "text/plain" {
		t.Errorf("attachments = %+v", body.Attachments)
	}

	eng.sendErr = engine.ErrEmptyBody
	if _, err := svc.Message.SendMessage(ctx, &chattersv1.SendMessageRequest{ConversationId: "wa:alice"}); code(err) != codes.InvalidArgument {
		t.Errorf("empty body err = %v", err)
	}
	eng.sendErr = &chat.SendError{Conversation: c1, Reason: "offline"}
	if _, err := svc.Message.SendMessage(ctx, &chattersv1.SendMessageRequest{ConversationId: "wa:alice", Text: "x"}); code(err) != codes.Internal {
		t.Errorf("send error err = %v", err)
	}
	if _, err := svc.Message.SendMessage(ctx, &chattersv1.SendMessageRequest{Text: "x"}); code(err) != codes.InvalidArgument {
		t.Errorf("empty conversation err = %v", err)
	}
}

func TestMessageActions(t *testing.T) {
	svc, _, eng := newTestService(t, nil)
	ctx := context.Background()

	react, err := svc.Message.React(ctx, &chattersv1.ReactRequest{ConversationId: "wa:alice", MessageId: "m1", Emoji: "👍"})
	if err != nil {
		t.Fatal(err)
	}
	if len(react.Message.Reactions) != 1 || react.Message.Reactions[0].Emoji != "👍" {
		t.Errorf("react = %v", react.Message)
	}
	edit, err := svc.Message.EditMessage(ctx, &chattersv1.EditMessageRequest{ConversationId: "wa:alice", MessageId: "m2", Text: "fixed"})
	if err != nil {
		t.Fatal(err)
	}
	if !edit.Message.Edited || edit.Message.Text != "fixed" {
		t.Errorf("edit = %v", edit.Message)
	}
	if _, err := svc.Message.DeleteMessage(ctx, &chattersv1.DeleteMessageRequest{ConversationId: "wa:alice", MessageId: "m2"}); err != nil {
		t.Fatal(err)
	}
	fwd, err := svc.Message.ForwardMessage(ctx, &chattersv1.ForwardMessageRequest{ConversationId: "wa:alice", MessageId: "m1", ToConversationId: "mx:!room:x"})
	if err != nil {
		t.Fatal(err)
	}
	if fwd.Message.ConversationId != "mx:!room:x" {
		t.Errorf("forwarded = %v", fwd.Message)
	}
	want := []string{"react wa:alice m1 👍", "edit wa:alice m2 fixed", "delete wa:alice m2", "forward wa:alice m1 mx:!room:x"}
	if fmt.Sprint(eng.calls) != fmt.Sprint(want) {
		t.Errorf("calls = %q", eng.calls)
	}

	if _, err := svc.Message.EditMessage(ctx, &chattersv1.EditMessageRequest{ConversationId: "wa:alice", MessageId: "theirs", Text: "x"}); code(err) != codes.PermissionDenied {
		t.Errorf("edit of other's message err = %v", err)
	}
	if _, err := svc.Message.DeleteMessage(ctx, &chattersv1.DeleteMessageRequest{ConversationId: "wa:alice", MessageId: "pending"}); code(err) != codes.FailedPrecondition {
		t.Errorf("delete of unsent message err = %v", err)
	}
	if _, err := svc.Message.React(ctx, &chattersv1.ReactRequest{ConversationId: "wa:alice"}); code(err) != codes.InvalidArgument {
		t.Errorf("react without message err = %v", err)
	}
	if _, err := svc.Message.ForwardMessage(ctx, &chattersv1.ForwardMessageRequest{ConversationId: "wa:alice", MessageId: "m1"}); code(err) != codes.InvalidArgument {
		t.Errorf("forward without target err = %v", err)
	}
}

func TestSearchMessages(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()
	if _, err := svc.Message.SearchMessages(ctx, &chattersv1.SearchMessagesRequest{Query: "hi"}); code(err) != codes.Unimplemented {
		t.Errorf("no archive err = %v", err)
	}

	search := &fakeSearcher{}
	svc, _, _ = newTestService(t, search)
	resp, err := svc.Message.SearchMessages(ctx, &chattersv1.SearchMessagesRequest{Query: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 1 || search.query != "hi" || resp.Results[0].Message.ConversationId != "wa:alice" || resp.Results[0].Snippet != "<<hi>>" {
		t.Errorf("results = %v", resp.Results)
	}
	if _, err := svc.Message.SearchMessages(ctx, &chattersv1.SearchMessagesRequest{}); code(err) != codes.InvalidArgument {
		t.Errorf("empty query err = %v", err)
	}
}

func TestBackendOperations(t *testing.T) {
	svc, _, eng := newTestService(t, nil)
	ctx := context.Background()
	resp, err := svc.Backend.GetStatus(ctx, &chattersv1.GetStatusRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Profile != "default" || len(resp.Backends) != 1 || resp.Backends[0].PendingSends != 2 ||
		resp.Backends[0].GetState().GetPhase() != chattersv1.ConnectionPhase_CONNECTION_PHASE_LIVE {
		t.Errorf("status = %v", resp)
	}

	if _, err := svc.Backend.Reconnect(ctx, &chattersv1.ReconnectRequest{Backend: "wa"}); err != nil || len(eng.reconnect) != 1 {
		t.Errorf("reconnect err = %v", err)
	}
	if _, err := svc.Backend.Reconnect(ctx, &chattersv1.ReconnectRequest{Backend: "tg"}); code(err) != codes.NotFound {
		t.Errorf("unknown backend err = %v", err)
	}
	if _, err := svc.Backend.Logout(ctx, &chattersv1.LogoutRequest{Backend: "wa"}); err != nil || len(eng.logout) != 1 {
		t.Errorf("logout err = %v", err)
	}
	if _, err := svc.Backend.Logout(ctx, &chattersv1.LogoutRequest{Backend: "local"}); code(err) != codes.Unimplemented {
		t.Errorf("logout of unlinkable backend err = %v", err)
	}
	if _, err := svc.Conversation.MarkRead(ctx, &chattersv1.MarkReadRequest{ConversationId: "wa:alice"}); err != nil || len(eng.read) != 1 {
		t.Errorf("mark read err = %v", err)
	}
}

func TestMessageConversion(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	msg := chat.Message{
		ID:     "m1",
		Sender: "bob",
		FromMe: true,
		Body: chat.Body{
			Text:        "see attached",
			Quote:       &chat.Quote{MessageID: "m0", Sender: "alice", Text: "send it"},
			Attachments: []chat.Attachment{{Name: "a.pdf", MIMEType: "application/pdf", Size: 10, Handle: "h1"}},
		},
		Timestamp:  at,
		ReceivedAt: at.Add(123 * time.Nanosecond),
		State:      chat.Read,
		Edited:     true,
		EditedAt:   at.Add(time.Minute),
		Reactions:  []chat.Reaction{{Sender: "alice", Emoji: "🎉"}},
	}
	conv, back := MessageFromProto(MessageToProto(c1, msg))
	if conv != c1 {
		t.Errorf("conversation = %v", conv)
	}
	if back.ID != msg.ID || back.State != chat.Read || !back.Timestamp.Equal(at) || !back.ReceivedAt.Equal(msg.ReceivedAt) || !back.EditedAt.Equal(msg.EditedAt) {
		t.Errorf("message = %+v", back)
	}
	if back.Body.Quote == nil || *back.Body.Quote != *msg.Body.Quote {
		t.Errorf("quote = %+v", back.Body.Quote)
	}
	if len(back.Body.Attachments) != 1 || back.Body.Attachments[0].Handle != "h1" || len(back.Reactions) != 1 {
		t.Errorf("attachments = %+v reactions = %+v", back.Body.Attachments, back.Reactions)
	}

	_, zero := MessageFromProto(MessageToProto(c1, chat.Message{ID: "m2"}))
	if !zero.Timestamp.IsZero() || !zero.ReceivedAt.IsZero() || zero.State != chat.StateUnknown {
		t.Errorf("zero times = %+v", zero)
	}
}

func TestChangeConversion(t *testing.T) {
	cases := []store.Change{
		{Conversation: c1, Backend: "wa", Kind: store.MessageAdded, MessageID: "m1"},
		{Backend: "wa", Kind: store.BackendChanged, State: chat.ConnState{Phase: chat.Degraded, Reason: "timeout"}},
		{Conversation: c1, Backend: "wa", Kind: store.Coalesced, Reason: "overflow"},
	}
	for _, c := range cases {
		if got := ChangeFromProto(changeToProto(c)); got != c {
			t.Errorf("change %+v came back as %+v", c, got)
		}
	}
}

func TestCodeOf(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{fmt.Errorf("x: %w", chat.ErrNotFound), codes.NotFound},
		{fmt.Errorf("x: %w", chat.ErrBackendUnavailable), codes.Unavailable},
		{engine.ErrNotRunning, codes.Unavailable},
		{engine.ErrEmptyBody, codes.InvalidArgument},
		{fmt.Errorf("x: %w", engine.ErrUnsupported), codes.Unimplemented},
		{fmt.Errorf("x: %w", engine.ErrNotOwnMessage), codes.PermissionDenied},
		{fmt.Errorf("x: %w", engine.ErrNotSent), codes.FailedPrecondition},
		{context.Canceled, codes.Canceled},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("boom"), codes.Internal},
	}
	for _, tc := range cases {
		if got := codeOf(tc.err); got != tc.want {
			t.Errorf("codeOf(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}
