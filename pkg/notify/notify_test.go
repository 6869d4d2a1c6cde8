package notify_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/notify"
)

type sender struct{ id string }

func TestCenter_PostFiltersBySender(t *testing.T) {
	center := notify.NewCenter()
	a := &sender{id: "a"}
	b := &sender{id: "b"}

	var got []string
	center.Observe(notify.TextDidBeginEditing, a, func(n notify.Notification) {
		got = append(got, "a:"+n.Sender.(*sender).id)
	})
	center.Observe(notify.TextDidBeginEditing, nil, func(n notify.Notification) {
		got = append(got, "any:"+n.Sender.(*sender).id)
	})

	if delivered := center.Post(notify.Notification{Name: notify.TextDidBeginEditing, Sender: a}); delivered != 2 {
		t.Fatalf("delivered = %d, want 2", delivered)
	}
	if delivered := center.Post(notify.Notification{Name: notify.TextDidBeginEditing, Sender: b}); delivered != 1 {
		t.Fatalf("delivered = %d, want 1", delivered)
	}
	if delivered := center.Post(notify.Notification{Name: notify.TextDidEndEditing, Sender: a}); delivered != 0 {
		t.Fatalf("delivered = %d, want 0", delivered)
	}

	want := []string{"a:a", "any:a", "any:b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("deliveries mismatch (-want +got):\n%s", diff)
	}
}

func TestCenter_Remove(t *testing.T) {
	center := notify.NewCenter()
	calls := 0
	first := center.Observe(notify.TextDidEndEditing, nil, func(notify.Notification) { calls++ })
	center.Observe(notify.TextDidEndEditing, nil, func(notify.Notification) { calls += 10 })

	center.Remove(first)
	center.Remove(first)
	center.Remove(0)

	if n := center.Observers(notify.TextDidEndEditing); n != 1 {
		t.Fatalf("observers = %d, want 1", n)
	}
	center.Post(notify.Notification{Name: notify.TextDidEndEditing})
	if calls != 10 {
		t.Fatalf("calls = %d, want 10", calls)
	}
}

func TestCenter_HandlerMayRemoveItself(t *testing.T) {
	center := notify.NewCenter()
	var token notify.Token
	calls := 0
	token = center.Observe(notify.TextDidChange, nil, func(notify.Notification) {
		calls++
		center.Remove(token)
	})

	center.Post(notify.Notification{Name: notify.TextDidChange})
	center.Post(notify.Notification{Name: notify.TextDidChange})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if center.Observers(notify.TextDidChange) != 0 {
		t.Fatalf("observer not removed")
	}
}

func TestCenter_NilHandler(t *testing.T) {
	center := notify.NewCenter()
	if token := center.Observe(notify.TextDidChange, nil, nil); token != 0 {
		t.Fatalf("token = %d, want 0", token)
	}
}

func TestCenter_ConcurrentUse(t *testing.T) {
	center := notify.NewCenter()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token := center.Observe(notify.TextDidChange, nil, func(notify.Notification) {})
			center.Post(notify.Notification{Name: notify.TextDidChange})
			center.Remove(token)
		}()
	}
	wg.Wait()
	if center.Observers(notify.TextDidChange) != 0 {
		t.Fatalf("expected all observers removed")
	}
}

func TestDefault_IsShared(t *testing.T) {
	if notify.Default() != notify.Default() {
		t.Fatalf("Default should return the same center")
	}
}
