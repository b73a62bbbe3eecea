// internal/infrastructure/api/chat.go
package api

import (
	"context"
	"fmt"
	"net/http"
)

// ChatMessage is one turn of an assistant conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation roles understood by the assistant endpoint
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type chatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history,omitempty"`
}

type chatResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Chat sends a message to the store assistant. Prior turns are passed along
// so the assistant keeps conversational context.
func (c *Client) Chat(ctx context.Context, message string, history []ChatMessage) (string, error) {
	var resp chatResponse
	req := chatRequest{Message: message, History: history}
	if err := c.do(ctx, http.MethodPost, "/chatbot/chat", nil, req, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("assistant could not process the message")
	}
	return resp.Message, nil
}
