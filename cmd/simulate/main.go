package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

const (
	baseURL = "http://localhost:3000/api/chat/v1"
	userId  = "66a32015-43b7-4f30-a4c9-6f4c74a0d3c3"
)

// Simplified DTOs for the script
type ChatRequest struct {
	UserId    string  `json:"user_id"`
	SessionId *string `json:"session_id,omitempty"`
	Message   string  `json:"message"`
	Subject   string  `json:"subject"`
	Grade     string  `json:"grade"`
	Medium    string  `json:"medium"`
}

type ChatResponse struct {
	Data struct {
		SessionId   string  `json:"session_id"`
		Answer      string  `json:"answer"`
		ImageURL    *string `json:"image_url"`
		CreditsLeft int     `json:"credits_left"`
		Status      string  `json:"status"`
	} `json:"data"`
}

func main() {
	color.Cyan("🎓 Tutor Chat Simulation Client\n")
	color.Cyan("Acting as user: %s\n", userId)

	questions := []string{
		"mage aharaya jirnaya wenne kohomada",
		"photosynthesis kiyanne mokakda",
	}

	var sessionId *string

	for _, q := range questions {
		color.Yellow("\nSTUDENT: %s", q)

		start := time.Now()
		resp, err := sendChat(sessionId, q)
		elapsed := time.Since(start)

		if err != nil {
			color.Red("Error: %v", err)
			os.Exit(1)
		}

		color.Green("TUTOR (%v) [%s, credits %d]:", elapsed, resp.Data.Status, resp.Data.CreditsLeft)
		fmt.Println(resp.Data.Answer)
		if resp.Data.ImageURL != nil {
			color.Blue("📷 %s", *resp.Data.ImageURL)
		}

		sessionId = &resp.Data.SessionId

		// Small delay to allow async logs to flush on server side
		time.Sleep(1 * time.Second)
	}
}

func sendChat(sessionId *string, message string) (*ChatResponse, error) {
	reqBody := ChatRequest{
		UserId:    userId,
		SessionId: sessionId,
		Message:   message,
		Subject:   "Science",
		Grade:     "10",
		Medium:    "Sinhala",
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	resp, err := http.Post(baseURL, "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %s: %s", resp.Status, string(body))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, err
	}
	return &chatResp, nil
}
