package app

import "testing"

func TestSendQueue_FIFOPerConversation(t *testing.T) {
	q := newSendQueue()

	if !q.Enqueue("1", pendingSend{token: "a"}) {
		t.Fatal("first send should dispatch")
	}
	if q.Enqueue("1", pendingSend{token: "b"}) || q.Enqueue("1", pendingSend{token: "c"}) {
		t.Fatal("later sends should wait")
	}
	if !q.Enqueue("2", pendingSend{token: "x"}) {
		t.Error("another conversation should not wait")
	}
	if q.Pending("1") != 3 {
		t.Errorf("Pending = %d, want 3", q.Pending("1"))
	}

	for _, want := range []string{"b", "c"} {
		next, ok := q.Done("1")
		if !ok || next.token != want {
			t.Fatalf("Done() = %q, %v; want %q", next.token, ok, want)
		}
		if !q.IsCurrent("1", want) {
			t.Errorf("%q should be current", want)
		}
	}
	if _, ok := q.Done("1"); ok {
		t.Error("queue should be empty")
	}
	if q.Pending("1") != 0 {
		t.Errorf("Pending = %d, want 0", q.Pending("1"))
	}
}

func TestSendQueue_Drop(t *testing.T) {
	q := newSendQueue()
	q.Enqueue("1", pendingSend{token: "a"})
	q.Enqueue("1", pendingSend{token: "b"})

	q.Drop("1")

	if q.IsCurrent("1", "a") {
		t.Error("dropped send should not be current")
	}
	if !q.Enqueue("1", pendingSend{token: "c"}) {
		t.Error("queue should be free after Drop")
	}
}

func TestSendQueue_Landed(t *testing.T) {
	q := newSendQueue()
	q.Enqueue("1", pendingSend{token: "a"})
	q.Enqueue("1", pendingSend{token: "b"})

	if q.Landed("1", "a") {
		t.Error("fresh send should not be landed")
	}
	q.MarkLanded("1")
	if !q.Landed("1", "a") || !q.IsCurrent("1", "a") {
		t.Error("marked send should stay current and be landed")
	}

	next, ok := q.Done("1")
	if !ok || next.token != "b" {
		t.Fatalf("Done() = %q, %v; want b", next.token, ok)
	}
	if q.Landed("1", "b") {
		t.Error("marker must not carry over to the next send")
	}

	q.MarkLanded("2")
	if q.Pending("2") != 0 {
		t.Error("marking an idle conversation should not create a send")
	}
}
