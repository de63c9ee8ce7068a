package app

import (
	"github.com/zhubert/ragchat/internal/api"
)

// pendingSend is a composed message waiting for its turn.
type pendingSend struct {
	token   string
	content string

	// landed is set when fetched history already holds this send's
	// exchange; its reply must not be shown twice.
	landed bool
}

// sendQueue serialises sends per conversation. Only one send per id is in
// flight; later ones wait in FIFO order. Different conversations never wait
// on each other.
type sendQueue struct {
	inFlight map[api.ConversationID]pendingSend
	waiting  map[api.ConversationID][]pendingSend
}

func newSendQueue() *sendQueue {
	return &sendQueue{
		inFlight: make(map[api.ConversationID]pendingSend),
		waiting:  make(map[api.ConversationID][]pendingSend),
	}
}

// Enqueue registers p for id. It reports true when p should be dispatched
// now, false when it has to wait for the running send.
func (q *sendQueue) Enqueue(id api.ConversationID, p pendingSend) bool {
	if _, busy := q.inFlight[id]; busy {
		q.waiting[id] = append(q.waiting[id], p)
		return false
	}
	q.inFlight[id] = p
	return true
}

// IsCurrent reports whether token is the running send for id. Results for
// any other token belong to a closed or reopened conversation.
func (q *sendQueue) IsCurrent(id api.ConversationID, token string) bool {
	p, ok := q.inFlight[id]
	return ok && p.token == token
}

// Done finishes the running send for id and returns the next one to
// dispatch, if any.
func (q *sendQueue) Done(id api.ConversationID) (pendingSend, bool) {
	delete(q.inFlight, id)
	next := q.waiting[id]
	if len(next) == 0 {
		delete(q.waiting, id)
		return pendingSend{}, false
	}
	p := next[0]
	if len(next) == 1 {
		delete(q.waiting, id)
	} else {
		q.waiting[id] = next[1:]
	}
	q.inFlight[id] = p
	return p, true
}

// MarkLanded records that the running send for id is already part of the
// fetched history.
func (q *sendQueue) MarkLanded(id api.ConversationID) {
	if p, ok := q.inFlight[id]; ok {
		p.landed = true
		q.inFlight[id] = p
	}
}

// Landed reports whether the running send token for id was marked landed.
func (q *sendQueue) Landed(id api.ConversationID, token string) bool {
	p, ok := q.inFlight[id]
	return ok && p.token == token && p.landed
}

// Drop forgets everything queued or running for id.
func (q *sendQueue) Drop(id api.ConversationID) {
	delete(q.inFlight, id)
	delete(q.waiting, id)
}

// Snapshot returns the running send and the waiting ones for id.
func (q *sendQueue) Snapshot(id api.ConversationID) (running pendingSend, ok bool, waiting []pendingSend) {
	running, ok = q.inFlight[id]
	return running, ok, q.waiting[id]
}

// Pending counts the sends running or waiting for id.
func (q *sendQueue) Pending(id api.ConversationID) int {
	n := len(q.waiting[id])
	if _, ok := q.inFlight[id]; ok {
		n++
	}
	return n
}
