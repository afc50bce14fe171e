package websocket

import (
	"context"
	"testing"
	"time"

	"moodmeter-srv/internal/sentiment"
)

type voteCall struct {
	Channel string
	Vote    sentiment.Vote
}

type fakeVoter struct {
	calls []voteCall
}

func (f *fakeVoter) Vote(_ context.Context, ch string, vote sentiment.Vote) error {
	f.calls = append(f.calls, voteCall{Channel: ch, Vote: vote})
	return nil
}

func TestHandleClientMessage(t *testing.T) {
	newHandler := func() (*fakeVoter, *Handler, *Hub) {
		hub := NewHub(mockLogger{}, 10)
		voter := &fakeVoter{}
		h := NewHandler(hub, mockLogger{}, WSConfig{
			PongWait:       time.Minute,
			PingPeriod:     54 * time.Second,
			WriteWait:      10 * time.Second,
			MaxMessageSize: 512,
		}, voter)
		return voter, h, hub
	}

	ctx := context.Background()

	t.Run("panel calibrate reaches the voter", func(t *testing.T) {
		voter, h, hub := newHandler()
		conn := NewConnection(hub, nil, PanelRoom("chan"), true, testConfig(), nil, mockLogger{})

		h.handleClientMessage(ctx, conn, []byte(`{"event":"calibrate","payload":{"vote":"happy"}}`))

		if len(voter.calls) != 1 {
			t.Fatalf("voter called %d times, want 1", len(voter.calls))
		}
		if got := voter.calls[0]; got.Channel != "chan" || got.Vote != sentiment.VoteHappy {
			t.Errorf("vote call = %+v", got)
		}
	})

	t.Run("calibrate from a general connection is ignored", func(t *testing.T) {
		voter, h, hub := newHandler()
		conn := NewConnection(hub, nil, "chan", false, testConfig(), nil, mockLogger{})

		h.handleClientMessage(ctx, conn, []byte(`{"event":"calibrate","payload":{"vote":"happy"}}`))

		if len(voter.calls) != 0 {
			t.Errorf("voter called %d times, want 0", len(voter.calls))
		}
	})

	t.Run("malformed frames are dropped", func(t *testing.T) {
		voter, h, hub := newHandler()
		conn := NewConnection(hub, nil, PanelRoom("chan"), true, testConfig(), nil, mockLogger{})

		h.handleClientMessage(ctx, conn, []byte(`not json`))
		h.handleClientMessage(ctx, conn, []byte(`{"event":"calibrate"}`))
		h.handleClientMessage(ctx, conn, []byte(`{"event":"something-else","payload":{}}`))

		if len(voter.calls) != 0 {
			t.Errorf("voter called %d times, want 0", len(voter.calls))
		}
	})
}
