package notify

import "testing"

func TestQueueDropsWhenFull(t *testing.T) {
	q := NewQueue(1)
	q.Notify(Notification{Title: "first"})
	q.Notify(Notification{Title: "second"})

	got := <-q.C()
	if got.Title != "first" {
		t.Fatalf("Title = %q, want first", got.Title)
	}

	select {
	case n := <-q.C():
		t.Fatalf("unexpected queued notification %q", n.Title)
	default:
	}
}

func TestDestructive(t *testing.T) {
	if (Notification{Variant: VariantDefault}).Destructive() {
		t.Error("default variant reported destructive")
	}
	if !(Notification{Variant: VariantDestructive}).Destructive() {
		t.Error("destructive variant not reported destructive")
	}
}
