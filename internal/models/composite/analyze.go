package composite

import (
	"fmt"
	"strings"
)

type message struct {
	Actor   string
	Content string
}

// history converts a decoded JSON conversationHistory into messages. Entries
// that are not objects are ignored.
func history(v any) []message {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]message, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		actor, _ := obj["actor"].(string)
		content, _ := obj["content"].(string)
		out = append(out, message{Actor: actor, Content: content})
	}
	return out
}

func analyze(text string, hist []message) string {
	userMsgs := 0
	for _, m := range hist {
		if m.Actor == "user" {
			userMsgs++
		}
	}
	return fmt.Sprintf("With >> %s <<, you have sent %d messages so far.", strings.ToUpper(text), userMsgs)
}
