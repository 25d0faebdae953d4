// Package message defines the chat messages sent to text-generation backends.
package message

import "github.com/uigenlab/uigen/pkg/chats/role"

// Message is a single role/content pair in a chat completion request.
// Content is always plain text in this library.
type Message struct {
	Role    role.Role
	Content string
}

// New creates a Message with the given role and content.
func New(r role.Role, content string) Message {
	return Message{Role: r, Content: content}
}
