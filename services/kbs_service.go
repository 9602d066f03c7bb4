package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"hotel-pms-backend/models"
)

// KBSService talks to the external KBS identity-verification API that gates
// check-in. When no endpoint is configured (local dev), verification is
// mocked as a logged success, like the SMTP fallback in utils/email.go.
type KBSService struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

func NewKBSService() *KBSService {
	return &KBSService{
		Endpoint: os.Getenv("KBS_ENDPOINT"),
		APIKey:   os.Getenv("KBS_API_KEY"),
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type kbsResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Matched bool   `json:"matched"`
}

func (s *KBSService) Verify(guest models.Guest) (bool, error) {
	if strings.TrimSpace(guest.IDNumber) == "" {
		return false, validationErr("idNumber", "guest has no ID number on file")
	}

	if s.Endpoint == "" || s.APIKey == "" {
		log.Printf("[MOCK KBS] verified guest %d (%s %s)", guest.ID, guest.FirstName, guest.LastName)
		return true, nil
	}

	payload := map[string]interface{}{
		"first_name":  guest.FirstName,
		"last_name":   guest.LastName,
		"id_number":   guest.IDNumber,
		"nationality": guest.Nationality,
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", s.Endpoint, bytes.NewReader(b))
	if err != nil {
		return false, fmt.Errorf("cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-kbs-key", s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("kbs request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("kbs HTTP error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var kr kbsResponse
	if err := json.Unmarshal(bodyBytes, &kr); err != nil {
		return false, fmt.Errorf("kbs JSON parse error: %w", err)
	}
	if kr.Status != "success" {
		return false, fmt.Errorf("kbs status error: %s - %s", kr.Status, kr.Message)
	}
	return kr.Matched, nil
}
