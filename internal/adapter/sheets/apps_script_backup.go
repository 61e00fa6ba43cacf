package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fireforge/internal/domain"
)

// AppsScriptBackup mirrors contact leads into the legacy spreadsheet through
// a Google Apps Script web endpoint. It implements domain.LeadBackup.
//
// The mirror is best-effort by policy: the database row is the durability
// guarantee, so callers log a failure here and carry on.
type AppsScriptBackup struct {
	scriptURL  string
	httpClient *http.Client
}

// NewAppsScriptBackup creates a backup client for the given endpoint URL.
func NewAppsScriptBackup(scriptURL string, timeout time.Duration) *AppsScriptBackup {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AppsScriptBackup{
		scriptURL:  scriptURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// backupPayload is the flat JSON shape the legacy script expects.
type backupPayload struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	ClientName  string `json:"clientName"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Whatsapp    string `json:"whatsapp"`
	ServiceType string `json:"serviceType"`
	Plan        string `json:"plan"`
	Notes       string `json:"notes"`
}

// Backup POSTs the lead to the script endpoint. Any non-2xx response counts
// as a failure.
func (b *AppsScriptBackup) Backup(ctx context.Context, lead *domain.Lead) error {
	payload := backupPayload{
		ID:          lead.CorrelationID,
		Date:        lead.CreatedAt.Format(time.RFC3339),
		ClientName:  lead.ClientName,
		CompanyName: lead.CompanyName,
		Email:       lead.Email,
		Whatsapp:    lead.Whatsapp,
		ServiceType: lead.ServiceType,
		Plan:        lead.Plan,
		Notes:       lead.Notes,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode backup payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.scriptURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build backup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backup endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
