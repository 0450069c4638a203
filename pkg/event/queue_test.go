package event

import "testing"

func TestReaderSeesEventsOnce(t *testing.T) {
	q := NewQueue[int]()
	r := q.NewReader()

	q.Send(1)
	q.Send(2)

	got := r.Read(q)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("Expected [1 2], got %v", got)
	}

	// 第二次读取不应再返回相同事件
	if again := r.Read(q); len(again) != 0 {
		t.Errorf("Expected no events on second read, got %v", again)
	}
}

func TestEventsSurviveOneFrameBoundary(t *testing.T) {
	q := NewQueue[string]()
	r := q.NewReader()

	// 生产者在消费者之后运行：事件在下一帧被读到
	q.Send("coin")
	q.Update()

	got := r.Read(q)
	if len(got) != 1 || got[0] != "coin" {
		t.Errorf("Expected [coin] after one frame boundary, got %v", got)
	}
}

func TestEventsDroppedAfterTwoFrameBoundaries(t *testing.T) {
	q := NewQueue[int]()
	r := q.NewReader()

	q.Send(7)
	q.Update()
	q.Update()

	if got := r.Read(q); len(got) != 0 {
		t.Errorf("Expected events to expire after two frames, got %v", got)
	}
}

func TestIndependentReaders(t *testing.T) {
	q := NewQueue[int]()
	audio := q.NewReader()
	state := q.NewReader()

	q.Send(1)
	if got := audio.Read(q); len(got) != 1 {
		t.Fatalf("audio reader expected 1 event, got %d", len(got))
	}

	q.Update()
	q.Send(2)

	// state 读取器尚未读过任何事件，应该按顺序看到两帧的事件
	got := state.Read(q)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Expected [1 2], got %v", got)
	}

	// audio 读取器只应看到新事件
	got = audio.Read(q)
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("Expected [2], got %v", got)
	}
}

func TestNewReaderIgnoresPastEvents(t *testing.T) {
	q := NewQueue[int]()
	q.Send(1)

	r := q.NewReader()
	if got := r.Read(q); len(got) != 0 {
		t.Errorf("Expected new reader to skip past events, got %v", got)
	}
}

func TestBusUpdateRotatesAllQueues(t *testing.T) {
	bus := NewBus()
	r := bus.GameOver.NewReader()
	coins := bus.CoinCollected.NewReader()

	bus.GameOver.Send(GameOverEvent{})
	bus.CoinCollected.Send(CoinCollectedEvent{})
	bus.Update()
	bus.Update()

	if got := coins.Read(bus.CoinCollected); len(got) != 0 {
		t.Errorf("Expected coin events to expire, got %v", got)
	}
	if got := r.Read(bus.GameOver); len(got) != 0 {
		t.Errorf("Expected game over events to expire, got %v", got)
	}
}
