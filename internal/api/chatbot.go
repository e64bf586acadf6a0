package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type chatbotRequest struct {
	Message string `json:"message"`
}

// cannedReplies maps message keywords to dashboard chat answers. First match
// wins, in order.
var cannedReplies = []struct {
	keywords []string
	reply    string
}{
	{[]string{"hello", "hi ", "hey"}, "Hello! I can help you with health readings, safety alerts, and reminders. What would you like to know?"},
	{[]string{"medication", "medicine", "pill"}, "You can see upcoming medication reminders on the Reminders panel. Say \"remind me\" followed by what you need and I will schedule it."},
	{[]string{"remind"}, "I've noted that. Use the Reminders panel to confirm the new reminder and its scheduled time."},
	{[]string{"fall", "fell"}, "If this is an emergency, use the emergency button now. Recent fall events are listed on the Safety panel."},
	{[]string{"heart", "blood pressure", "glucose", "oxygen", "health"}, "The latest vital signs are on the Health panel. Readings that triggered an alert are highlighted."},
	{[]string{"pattern", "routine", "sleep"}, "Daily routines learned from sensor activity are shown on the Patterns panel, with a confidence score for each."},
	{[]string{"help"}, "I can answer questions about health readings, safety events, reminders, and daily routines. Try asking about one of those."},
}

const chatbotFallback = "I'm sorry, I didn't quite catch that. I can help with health readings, safety alerts, reminders, and daily routines."

// handleChatbot answers dashboard chat messages with keyword-matched canned
// replies. It always returns 200 so the chat widget never shows a raw error.
func (s *Server) handleChatbot(w http.ResponseWriter, r *http.Request) {
	var req chatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusOK, map[string]string{"response": chatbotFallback})
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"response": chatbotReply(req.Message)})
}

func chatbotReply(message string) string {
	lowered := strings.ToLower(message)
	for _, c := range cannedReplies {
		for _, kw := range c.keywords {
			if strings.Contains(lowered, kw) {
				return c.reply
			}
		}
	}
	return chatbotFallback
}
