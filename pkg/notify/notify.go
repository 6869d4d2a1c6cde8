// Package notify provides a synchronous, in-process notification center. Text
// fields post begin/end editing notifications on it and views observe them to
// track focus.
package notify

import (
	"sync"
)

// Name identifies a notification.
type Name string

// Notifications posted by text fields.
const (
	TextDidBeginEditing Name = "TextFieldTextDidBeginEditing"
	TextDidEndEditing   Name = "TextFieldTextDidEndEditing"
	TextDidChange       Name = "TextFieldTextDidChange"
)

// Notification carries the posting object and optional payload.
type Notification struct {
	Name   Name
	Sender any
	Info   map[string]any
}

// Handler receives a posted notification.
type Handler func(Notification)

// Token identifies an observer registration. The zero Token is never issued.
type Token uint64

type observer struct {
	token   Token
	sender  any
	handler Handler
}

// Center dispatches notifications to observers on the posting goroutine.
// Senders used for filtering must be comparable (pointers in practice).
type Center struct {
	mu        sync.RWMutex
	next      Token
	observers map[Name][]observer
}

// NewCenter constructs an empty center.
func NewCenter() *Center {
	return &Center{observers: make(map[Name][]observer)}
}

var (
	defaultOnce   sync.Once
	defaultCenter *Center
)

// Default returns the process-wide center used when widgets are not given one.
func Default() *Center {
	defaultOnce.Do(func() {
		defaultCenter = NewCenter()
	})
	return defaultCenter
}

// Observe registers handler for name. When sender is non-nil only
// notifications posted by that sender are delivered.
func (c *Center) Observe(name Name, sender any, handler Handler) Token {
	if handler == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	token := c.next
	c.observers[name] = append(c.observers[name], observer{token: token, sender: sender, handler: handler})
	return token
}

// Remove drops the registration for token. Unknown tokens are ignored.
func (c *Center) Remove(token Token) {
	if token == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, list := range c.observers {
		for i, obs := range list {
			if obs.token != token {
				continue
			}
			list = append(list[:i:i], list[i+1:]...)
			if len(list) == 0 {
				delete(c.observers, name)
			} else {
				c.observers[name] = list
			}
			return
		}
	}
}

// Post delivers n to every matching observer in registration order and
// returns how many handlers ran. Handlers may observe or remove while being
// notified; changes apply to the next Post.
func (c *Center) Post(n Notification) int {
	c.mu.RLock()
	registered := c.observers[n.Name]
	matched := make([]Handler, 0, len(registered))
	for _, obs := range registered {
		if obs.sender != nil && obs.sender != n.Sender {
			continue
		}
		matched = append(matched, obs.handler)
	}
	c.mu.RUnlock()

	for _, handler := range matched {
		handler(n)
	}
	return len(matched)
}

// Observers reports how many registrations exist for name.
func (c *Center) Observers(name Name) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.observers[name])
}
