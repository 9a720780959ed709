package handler

import (
	"context"
	"encoding/xml"
	"net/http"
	"strings"
)

// MessageService routes one inbound message and always produces a reply.
type MessageService interface {
	HandleIncomingMessage(ctx context.Context, from, body string) string
}

// WebhookHandler receives Twilio-style message webhooks and answers with
// TwiML so the reply goes back in the same exchange.
type WebhookHandler struct {
	Svc MessageService
}

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	from := strings.TrimSpace(r.PostFormValue("From"))
	body := strings.TrimSpace(r.PostFormValue("Body"))
	if from == "" || body == "" {
		http.Error(w, "From and Body required", http.StatusBadRequest)
		return
	}

	reply := h.Svc.HandleIncomingMessage(r.Context(), from, body)

	w.Header().Set("Content-Type", "text/xml")
	_, _ = w.Write([]byte(xml.Header))
	_ = xml.NewEncoder(w).Encode(twimlResponse{Message: reply})
}
