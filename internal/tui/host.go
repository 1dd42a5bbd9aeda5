package tui

import (
	"sync"

	"github.com/aidar/turmas/internal/view"
)

type requestKind int

const (
	requestNavigate requestKind = iota
	requestAlert
	requestConfirm
)

// request is a navigation or dialog call made by a view while a command ran
type request struct {
	kind    requestKind
	route   view.Route
	params  *view.RouteParams
	title   string
	message string
	choices []view.Choice
}

// host implements view.Navigator and view.Dialogs. Views call it from
// command goroutines; the model drains the queue on the event loop.
type host struct {
	mu       sync.Mutex
	requests []request
}

func (h *host) Navigate(route view.Route, params *view.RouteParams) {
	h.push(request{kind: requestNavigate, route: route, params: params})
}

func (h *host) Alert(title, message string) {
	h.push(request{kind: requestAlert, title: title, message: message})
}

func (h *host) Confirm(title, message string, choices []view.Choice) {
	h.push(request{kind: requestConfirm, title: title, message: message, choices: choices})
}

func (h *host) push(r request) {
	h.mu.Lock()
	h.requests = append(h.requests, r)
	h.mu.Unlock()
}

// drain returns the queued requests in call order and empties the queue
func (h *host) drain() []request {
	h.mu.Lock()
	defer h.mu.Unlock()
	requests := h.requests
	h.requests = nil
	return requests
}
