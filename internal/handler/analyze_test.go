package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/engine"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/service"
)

func TestAnalyzeWireContract(t *testing.T) {
	h := NewAnalyzeHandler(service.NewAnalyzeService(engine.DefaultFeeTable()))

	body := `{"title": "Gameboy Color", "buy_price": 30, "estimated_sell_price": 60}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Success  bool                       `json:"success"`
		Analysis map[string]json.RawMessage `json:"analysis"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if !payload.Success {
		t.Error("success = false, want true")
	}
	for _, field := range []string{
		"title", "buy_price", "estimated_sell_price",
		"net_profit", "roi_percent", "score", "recommendation",
		"breakeven_price", "risk_adjusted", "total_investment", "costs_breakdown",
	} {
		if _, ok := payload.Analysis[field]; !ok {
			t.Errorf("analysis missing field %q", field)
		}
	}

	var costs map[string]float64
	if err := json.Unmarshal(payload.Analysis["costs_breakdown"], &costs); err != nil {
		t.Fatalf("costs_breakdown: %v", err)
	}
	for _, field := range []string{
		"buy_price", "buy_commission", "buy_shipping",
		"sell_commission", "sell_shipping", "payment_fee",
		"packaging", "taxes", "risk_cost", "total_investment",
	} {
		if _, ok := costs[field]; !ok {
			t.Errorf("costs_breakdown missing field %q", field)
		}
	}
	if costs["total_investment"] != 38.50 {
		t.Errorf("total_investment = %.2f, want 38.50", costs["total_investment"])
	}
}

func TestAnalyzeValidationResponses(t *testing.T) {
	h := NewAnalyzeHandler(service.NewAnalyzeService(engine.DefaultFeeTable()))

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"malformed json", `{"title": `, "invalid JSON body"},
		{"missing title", `{"buy_price": 30, "estimated_sell_price": 60}`, "title is required"},
		{"zero buy price", `{"title": "gameboy", "estimated_sell_price": 60}`, "buy_price must be greater than zero"},
		{"zero sell price", `{"title": "gameboy", "buy_price": 30}`, "estimated_sell_price must be greater than zero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Analyze(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var payload struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("error response is not JSON: %v", err)
			}
			if payload.Success || payload.Error != tt.wantErr {
				t.Errorf("error = %q, want %q", payload.Error, tt.wantErr)
			}
		})
	}
}
