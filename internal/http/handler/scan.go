package handler

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"jotbot/internal/bot"
)

// DueScanner runs one due-reminder scan.
type DueScanner interface {
	RunScan(ctx context.Context, now time.Time) (bot.ScanResult, error)
}

// ScanHandler exposes the reminder scan for external schedulers (cron hitting
// POST /scan). Safe to call repeatedly: a scan with nothing due is a no-op.
type ScanHandler struct {
	Scanner DueScanner
	Secret  string // empty disables the header check
}

func (h *ScanHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if h.Secret != "" {
		got := r.Header.Get("X-Scan-Secret")
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.Secret)) != 1 {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
	}

	res, err := h.Scanner.RunScan(r.Context(), time.Now())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "scan failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}
