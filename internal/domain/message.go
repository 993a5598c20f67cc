package domain

import (
	"fmt"
	"strings"
)

// Message is the log payload: rendered content, an optional template and
// structured properties used to expand {key} tokens.
type Message struct {
	Content    string
	Template   string
	Properties map[string]any
}

func NewMessage(content, template string, properties map[string]any) (Message, error) {
	if content == "" {
		return Message{}, ErrEmptyContent
	}

	if properties == nil {
		properties = map[string]any{}
	}

	return Message{
		Content:    content,
		Template:   template,
		Properties: properties,
	}, nil
}

// FullMessage expands {key} tokens in the content from the properties map.
func (m Message) FullMessage() string {
	if len(m.Properties) == 0 {
		return m.Content
	}

	message := m.Content
	for key, value := range m.Properties {
		token := fmt.Sprintf("{%s}", key)
		message = strings.ReplaceAll(message, token, propertyString(value))
	}

	return message
}

func (m Message) ContainsKeyword(keyword string) bool {
	if strings.TrimSpace(keyword) == "" {
		return false
	}

	if containsFold(m.Content, keyword) || containsFold(m.Template, keyword) {
		return true
	}

	for _, value := range m.Properties {
		if containsFold(propertyString(value), keyword) {
			return true
		}
	}

	return false
}

func propertyString(value any) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprint(value)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
